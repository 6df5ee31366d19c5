package entities

import "time"

type EnrollmentStatus string

const (
	EnrollmentEnrolled   EnrollmentStatus = "enrolled"
	EnrollmentInProgress EnrollmentStatus = "inProgress"
	EnrollmentCompleted  EnrollmentStatus = "completed"
)

// TrainingEnrollment is unique per (user, course). The certificate number
// is assigned on completion only, format UC-<year>-<seq> with a 3-digit
// zero-padded sequence.
type TrainingEnrollment struct {
	ID                string           `json:"id"`
	UserID            string           `json:"userId"`
	UserName          string           `json:"userName"`
	Course            string           `json:"course"`
	Status            EnrollmentStatus `json:"status"`
	EnrolledAt        time.Time        `json:"enrolledAt"`
	CompletedAt       *time.Time       `json:"completedAt,omitempty"`
	CertificateNumber string           `json:"certificateNumber,omitempty"`
}
