package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

// CreateContentRequest optionally carries initial engagement counters, so a
// piece imported with existing reach enters the badge evaluation with its
// real numbers.
type CreateContentRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Type        string `json:"type"`
	ContentURL  string `json:"content_url"`
	Views       int    `json:"views,omitempty"`
	Likes       int    `json:"likes,omitempty"`
	Comments    int    `json:"comments,omitempty"`
}

func (req *CreateContentRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Title, validation.Required, validation.Length(2, 200)),
		validation.Field(&req.Description, validation.Length(0, 2000)),
		validation.Field(&req.Category, validation.Required,
			validation.In("fact-checking", "digital-literacy", "safety-ethics")),
		validation.Field(&req.Type, validation.Required, validation.In("post", "video", "reel")),
		validation.Field(&req.ContentURL, is.URL),
		validation.Field(&req.Views, validation.Min(0)),
		validation.Field(&req.Likes, validation.Min(0)),
		validation.Field(&req.Comments, validation.Min(0)),
	)
}

// UpdateContentStatsRequest carries a partial engagement update. A nil
// counter means "leave unchanged".
type UpdateContentStatsRequest struct {
	Views    *int `json:"views,omitempty"`
	Likes    *int `json:"likes,omitempty"`
	Comments *int `json:"comments,omitempty"`
}

func (req *UpdateContentStatsRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Views, validation.Min(0)),
		validation.Field(&req.Likes, validation.Min(0)),
		validation.Field(&req.Comments, validation.Min(0)),
	)
}
