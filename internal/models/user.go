package models

import "strings"

// Role is the closed set of user roles.
type Role string

const (
	RoleGuest  Role = "guest"
	RoleMember Role = "member"
	RoleAdmin  Role = "admin"
)

// ParseRole maps a raw role string onto the closed enum.
func ParseRole(s string) (Role, bool) {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case RoleGuest:
		return RoleGuest, true
	case RoleMember:
		return RoleMember, true
	case RoleAdmin:
		return RoleAdmin, true
	default:
		return "", false
	}
}

const (
	guestName  = "Pengunjung"
	guestEmail = "guest@temanikan.com"
)

type User struct {
	ID           int     `json:"id"`
	Name         string  `json:"name"`
	Email        string  `json:"email"`
	Role         Role    `json:"role"`
	Avatar       *string `json:"avatar,omitempty"`
	PasswordHash string  `json:"-"` // registered accounts only
}

// GuestUser is the identity every session starts with.
func GuestUser() User {
	return User{
		ID:    0,
		Name:  guestName,
		Email: guestEmail,
		Role:  RoleGuest,
	}
}

// IsGuest reports whether u browses without an account.
func (u User) IsGuest() bool {
	return u.Role == "" || u.Role == RoleGuest
}
