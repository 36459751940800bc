package request

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
)

type CreateEventRequest struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	Category     string `json:"category"`
	StartDate    string `json:"start_date"` // RFC 3339
	EndDate      string `json:"end_date"`   // RFC 3339
	Participants int    `json:"participants"`
	Status       string `json:"status,omitempty"` // defaults to "active"
}

func (req *CreateEventRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Title, validation.Required, validation.Length(2, 200)),
		validation.Field(&req.Description, validation.Length(0, 2000)),
		validation.Field(&req.Category, validation.Required,
			validation.In("fact-checking", "digital-literacy", "safety-ethics")),
		validation.Field(&req.StartDate, validation.Required, validation.Date(time.RFC3339)),
		validation.Field(&req.EndDate, validation.Required, validation.Date(time.RFC3339)),
		validation.Field(&req.Participants, validation.Min(0)),
		validation.Field(&req.Status, validation.In("active", "completed", "cancelled")),
	)
}
