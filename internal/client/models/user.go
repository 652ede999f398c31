package models

import (
	"strings"

	"github.com/dmitrijs2005/teebay/internal/timex"
)

type User struct {
	ID        string     `json:"id"`
	Email     string     `json:"email"`
	FirstName string     `json:"firstName"`
	LastName  string     `json:"lastName"`
	Phone     string     `json:"phone"`
	Address   string     `json:"address"`
	CreatedAt timex.Time `json:"createdAt"`
	UpdatedAt timex.Time `json:"updatedAt"`
}

// FullName joins first and last name, falling back to the email.
func (u User) FullName() string {
	name := strings.TrimSpace(u.FirstName + " " + u.LastName)
	if name == "" {
		return u.Email
	}
	return name
}

// AuthPayload is returned by login and register.
type AuthPayload struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}
