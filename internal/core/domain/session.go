package domain

import "time"

// Role is the platform-wide role carried by a user profile.
type Role string

const (
	RoleSuperAdmin Role = "SUPER_ADMIN"
	RoleOwner      Role = "OWNER"
	RoleAdmin      Role = "ADMIN"
	RoleMember     Role = "MEMBER"
)

// CurrentUser is the profile of the operator behind the session.
type CurrentUser struct {
	ID         string `json:"id"`
	Identifier string `json:"identifier"` // login phone number
	Name       string `json:"name,omitempty"`
	Role       Role   `json:"role"`
}

// Session holds the bearer credential and the operator profile.
// The zero value is a logged-out session.
type Session struct {
	Token       string       `json:"token,omitempty"`
	CurrentUser *CurrentUser `json:"currentUser,omitempty"`
	ExpiresAt   time.Time    `json:"expiresAt,omitempty"`
}

// Authenticated reports whether the session passes the console gate: a
// credential is present and the profile carries the super-admin role.
func (s Session) Authenticated() bool {
	return s.Token != "" && s.CurrentUser != nil && s.CurrentUser.Role == RoleSuperAdmin
}

// Expired reports whether the credential's expiry is known and already past.
func (s Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}
