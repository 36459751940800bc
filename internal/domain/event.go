package domain

import "time"

const (
	EventStatusActive    = "active"
	EventStatusCompleted = "completed"
	EventStatusCancelled = "cancelled"
)

type Event struct {
	ID           uint      `json:"id"`
	OrganizerID  uint      `json:"organizer_id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Category     string    `json:"category"`
	StartDate    time.Time `json:"start_date"`
	EndDate      time.Time `json:"end_date"`
	Participants int       `json:"participants"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}
