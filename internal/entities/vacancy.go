package entities

import "time"

type VacancyStatus string

const (
	VacancyActive VacancyStatus = "active"
	VacancyClosed VacancyStatus = "closed"
)

type ApplicationStatus string

const (
	ApplicationPending  ApplicationStatus = "pending"
	ApplicationAccepted ApplicationStatus = "accepted"
	ApplicationRejected ApplicationStatus = "rejected"
)

type Vacancy struct {
	ID           string        `json:"id"`
	EmployerID   string        `json:"employerId"`
	CompanyName  string        `json:"companyName"`
	Title        string        `json:"title"`
	City         string        `json:"city"`
	District     string        `json:"district"`
	Salary       string        `json:"salary"`
	Schedule     string        `json:"schedule"`
	Experience   string        `json:"experience"`
	Description  string        `json:"description"`
	Requirements []string      `json:"requirements"`
	IsHot        bool          `json:"isHot"`
	IsVerified   bool          `json:"isVerified"` // employer flag snapshotted at creation
	Status       VacancyStatus `json:"status"`
	CreatedAt    time.Time     `json:"createdAt"`
	Applications []Application `json:"applications"`
}

type Application struct {
	ID             string            `json:"id"`
	VacancyID      string            `json:"vacancyId"`
	SpecialistID   string            `json:"specialistId"`
	SpecialistName string            `json:"specialistName"`
	Message        string            `json:"message"`
	Status         ApplicationStatus `json:"status"`
	CreatedAt      time.Time         `json:"createdAt"`
}
