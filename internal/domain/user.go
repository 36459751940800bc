package domain

import "time"

// Role separates content creators from educator-ambassadors. It is chosen at
// signup and never changed by the platform afterwards.
type Role string

const (
	RoleCreator    Role = "creator"
	RoleAmbassador Role = "ambassador"
)

func (r Role) IsValid() bool {
	return r == RoleCreator || r == RoleAmbassador
}

type User struct {
	ID              uint      `json:"id"`
	Email           string    `json:"email"`
	Password        string    `json:"-"`
	FirstName       string    `json:"first_name"`
	LastName        string    `json:"last_name"`
	ProfileImageURL string    `json:"profile_image_url"`
	Role            Role      `json:"role"`
	Points          int       `json:"points"`
	Institution     string    `json:"institution"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
