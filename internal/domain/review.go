package domain

import "time"

// Review is a testimonial shown on the homepage slider.
type Review struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	AvatarURL string    `json:"avatar_url"`
	Rating    int       `json:"rating"`
	Featured  bool      `json:"featured"`
	CreatedAt time.Time `json:"created_at"`
}
