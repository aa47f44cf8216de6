package models

import (
	"fmt"
	"strings"
)

// User is the account holder, not a passenger. Phone number and Aadhaar
// are optional at registration but both must be set before booking.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"passwordHash"`
	PhoneNumber  string    `json:"phoneNumber,omitempty"`
	AadhaarUID   string    `json:"aadhaarUid,omitempty"`
	Tickets      []*Ticket `json:"tickets"`
}

func NewUser(id, name, email, passwordHash string) (*User, error) {
	fields := []struct{ name, value string }{
		{"id", id}, {"name", name}, {"email", email}, {"password hash", passwordHash},
	}
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			return nil, fmt.Errorf("user %s cannot be empty", f.name)
		}
	}
	return &User{ID: id, Name: name, Email: email, PasswordHash: passwordHash}, nil
}

func (u *User) AddTicket(t *Ticket) {
	u.Tickets = append(u.Tickets, t)
}

func (u *User) FindTicket(ticketID string) (*Ticket, bool) {
	for _, t := range u.Tickets {
		if t.ID == ticketID {
			return t, true
		}
	}
	return nil, false
}

// HasVerified gates the booking flow: both optional identity fields must
// be populated.
func (u *User) HasVerified() bool {
	return strings.TrimSpace(u.PhoneNumber) != "" && strings.TrimSpace(u.AadhaarUID) != ""
}
