package session

import "time"

// Role is the platform role carried by an authenticated session. The backend
// is the authority on what a principal may do; the role is used here only to
// pick which views and actions to render.
type Role string

const (
	RoleStudent Role = "student"
	RoleMentor  Role = "mentor"
	RoleAdmin   Role = "admin"
)

// Valid reports whether the role is one the portal knows how to render.
func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleMentor, RoleAdmin:
		return true
	}
	return false
}

// Session is the locally held record of an authenticated principal. It is
// created on login/signup/OAuth callback, mirrored to the durable
// side-channel, and destroyed on logout or token invalidation. The backend
// remains the authority for token validity.
type Session struct {
	PrincipalID string    `json:"principal_id"`
	Role        Role      `json:"role"`
	BearerToken string    `json:"bearer_token"`
	DisplayName string    `json:"display_name"`
	Email       string    `json:"email,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// Expired reports whether the session itself has lapsed. A zero ExpiresAt
// means the session lives until the backend rejects its token.
func (s Session) Expired() bool {
	return !s.ExpiresAt.IsZero() && s.ExpiresAt.Before(time.Now())
}
