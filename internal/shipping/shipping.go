// Package shipping validates the address record submitted at checkout.
// Validation is purely structural: no I/O, no side effects, safe to run
// before any transaction begins.
package shipping

import (
	"fmt"
	"net/mail"
	"strings"
)

// Address is the shipping record captured at checkout. Address2 and Phone
// are optional; everything else is required.
type Address struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Address  string `json:"address"`
	Address2 string `json:"address2"`
	City     string `json:"city"`
	State    string `json:"state"`
	Zip      string `json:"zip"`
	Country  string `json:"country"`
	Phone    string `json:"phone"`
}

// ValidationError names the offending field so the client can highlight it.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("shipping %s: %s", e.Field, e.Reason)
}

// Validate checks the required fields and the email format. Returns nil when
// the record is acceptable.
func (a Address) Validate() error {
	required := []struct {
		field string
		value string
	}{
		{"name", a.Name},
		{"email", a.Email},
		{"address", a.Address},
		{"city", a.City},
		{"state", a.State},
		{"zip", a.Zip},
		{"country", a.Country},
	}

	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return &ValidationError{Field: r.field, Reason: "is required"}
		}
	}

	if _, err := mail.ParseAddress(a.Email); err != nil {
		return &ValidationError{Field: "email", Reason: "is not a valid email address"}
	}

	return nil
}
