package domain

import "errors"

const (
	RoleUser      = "user"
	RoleModerator = "moderator"
	RoleAdmin     = "admin"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// User models an account in the system. The mock roster carries no
// password material: login matches by email only.
type User struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	Avatar   string  `json:"avatar,omitempty"`
	Location string  `json:"location,omitempty"`
	Bio      string  `json:"bio,omitempty"`
	Rating   float64 `json:"rating,omitempty"`
	Role     string  `json:"role"`
}
