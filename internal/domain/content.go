package domain

import "time"

const (
	ContentCategoryFactChecking    = "fact-checking"
	ContentCategoryDigitalLiteracy = "digital-literacy"
	ContentCategorySafetyEthics    = "safety-ethics"
)

const (
	ContentTypePost  = "post"
	ContentTypeVideo = "video"
	ContentTypeReel  = "reel"
)

type Content struct {
	ID          uint      `json:"id"`
	UserID      uint      `json:"user_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Type        string    `json:"type"`
	ContentURL  string    `json:"content_url"`
	Views       int       `json:"views"`
	Likes       int       `json:"likes"`
	Comments    int       `json:"comments"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
