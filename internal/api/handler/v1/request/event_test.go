package request

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validCreateEvent() CreateEventRequest {
	return CreateEventRequest{
		Title:        "Fact-checking workshop",
		Description:  "Hands-on verification exercises.",
		Category:     "fact-checking",
		StartDate:    "2026-09-01T10:00:00Z",
		EndDate:      "2026-09-01T12:00:00Z",
		Participants: 30,
	}
}

func TestCreateEventRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*CreateEventRequest)
		wantErr bool
	}{
		{"valid", func(*CreateEventRequest) {}, false},
		{"zero participants", func(r *CreateEventRequest) { r.Participants = 0 }, false},
		{"no status", func(r *CreateEventRequest) { r.Status = "" }, false},
		{"explicit status", func(r *CreateEventRequest) { r.Status = "completed" }, false},
		{"unknown status", func(r *CreateEventRequest) { r.Status = "archived" }, true},
		{"missing title", func(r *CreateEventRequest) { r.Title = "" }, true},
		{"unknown category", func(r *CreateEventRequest) { r.Category = "party" }, true},
		{"missing start date", func(r *CreateEventRequest) { r.StartDate = "" }, true},
		{"non-RFC3339 start date", func(r *CreateEventRequest) { r.StartDate = "2026-09-01" }, true},
		{"non-RFC3339 end date", func(r *CreateEventRequest) { r.EndDate = "noon" }, true},
		{"negative participants", func(r *CreateEventRequest) { r.Participants = -5 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validCreateEvent()
			tt.mutate(&req)

			err := req.Validate()

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestChatRequest_Validate(t *testing.T) {
	assert.NoError(t, (&ChatRequest{Message: "How do I verify a source?"}).Validate())
	assert.Error(t, (&ChatRequest{}).Validate())
}
