package entities

import "time"

type GigStatus string

const (
	GigActive    GigStatus = "active"
	GigTaken     GigStatus = "taken"
	GigCompleted GigStatus = "completed"
)

// Gig is a short one-off job; employers post them to cover a shift and
// specialists post them to offer a free day.
type Gig struct {
	ID         string        `json:"id"`
	AuthorID   string        `json:"authorId"`
	AuthorName string        `json:"authorName"`
	Type       UserRole      `json:"type"` // employer or specialist
	Title      string        `json:"title"`
	City       string        `json:"city"`
	District   string        `json:"district"`
	Date       string        `json:"date"`
	Pay        string        `json:"pay"`
	Description string       `json:"description"`
	Urgent     bool          `json:"urgent"`
	Status     GigStatus     `json:"status"`
	CreatedAt  time.Time     `json:"createdAt"`
	Responses  []GigResponse `json:"responses"`
}

type GigResponse struct {
	ID            string            `json:"id"`
	GigID         string            `json:"gigId"`
	ResponderID   string            `json:"responderId"`
	ResponderName string            `json:"responderName"`
	Message       string            `json:"message"`
	Status        ApplicationStatus `json:"status"`
	CreatedAt     time.Time         `json:"createdAt"`
}
