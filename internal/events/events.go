// Package events defines the in-process domain events that carry the two
// cross-entity side effects of the store: review aggregates and granted
// certifications both land on the user record through a subscriber instead
// of a hidden cross-repository write.
package events

var ReviewRecordedTopic = "ReviewRecordedEvent"

// ReviewRecorded is published after a review is persisted. Rating is the
// recomputed mean over all reviews of the target, rounded to one decimal.
type ReviewRecorded struct {
	TargetID    string
	Rating      float64
	ReviewCount int
}

var CertificationGrantedTopic = "CertificationGrantedEvent"

// CertificationGranted is published when a training enrollment completes.
type CertificationGranted struct {
	UserID            string
	CertificateNumber string
}
