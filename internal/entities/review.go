package entities

import "time"

type ReviewTarget string

const (
	TargetCompany    ReviewTarget = "company"
	TargetSpecialist ReviewTarget = "specialist"
)

type Review struct {
	ID         string       `json:"id"`
	TargetID   string       `json:"targetId"`
	TargetType ReviewTarget `json:"targetType"`
	AuthorID   string       `json:"authorId"`
	AuthorName string       `json:"authorName"`
	Rating     int          `json:"rating"` // 1..5
	Text       string       `json:"text"`
	CreatedAt  time.Time    `json:"createdAt"`
}
