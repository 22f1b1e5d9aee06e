package domain

import (
	"errors"
	"strings"
)

var (
	ErrMissingName  = errors.New("name is required")
	ErrMissingEmail = errors.New("email is required")
	ErrInvalidEmail = errors.New("email is invalid")
)

type Contact struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Message string `json:"message,omitempty"`
}

func (c Contact) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return ErrMissingName
	}
	email := strings.TrimSpace(c.Email)
	if email == "" {
		return ErrMissingEmail
	}
	at := strings.Index(email, "@")
	if at < 1 || at == len(email)-1 {
		return ErrInvalidEmail
	}
	return nil
}

// Lead is what gets handed to the form backend once a visitor asks to be
// contacted. VehicleInfo and InterestLevel ride along as hidden fields.
type Lead struct {
	Contact
	VehicleInfo   string        `json:"vehicle_info"`
	InterestLevel InterestLevel `json:"interest_level"`
}
