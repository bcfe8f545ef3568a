package entity

import (
	"strings"
	"time"
)

type Role string

const (
	RoleCustomer Role = "customer"
	RoleAdmin    Role = "admin"
)

// NormalizeRole folds a stored or claimed role into its canonical lowercase
// form. Comparisons against RoleAdmin/RoleCustomer must go through it.
func NormalizeRole(role string) Role {
	return Role(strings.ToLower(strings.TrimSpace(role)))
}

type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Actor is the authenticated identity a request acts as. It is resolved
// from a session token on every request and passed explicitly down to the
// workflows.
type Actor struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role Role   `json:"role"`
}

func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}

// UserRef is a user reference with the display name joined in.
type UserRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
