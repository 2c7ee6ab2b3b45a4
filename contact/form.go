// Package contact validates, delivers and tracks contact form submissions.
package contact

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"
)

var (
	// ErrSubmissionFailed wraps every delivery failure.
	ErrSubmissionFailed = errors.New("contact submission failed")
	// ErrInvalid wraps validation failures.
	ErrInvalid = errors.New("invalid contact form")
	// ErrBusy rejects a submit while another is in progress.
	ErrBusy = errors.New("a submission is already in progress")
)

// Form is what a visitor submits.
type Form struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// Trimmed returns f with surrounding whitespace removed from every field.
func (f Form) Trimmed() Form {
	return Form{
		Name:    strings.TrimSpace(f.Name),
		Email:   strings.TrimSpace(f.Email),
		Message: strings.TrimSpace(f.Message),
	}
}

// IsZero reports whether every field is empty.
func (f Form) IsZero() bool {
	return f == Form{}
}

// Validate requires all fields and a parseable address.
func (f Form) Validate() error {
	f = f.Trimmed()

	var missing []string
	if f.Name == "" {
		missing = append(missing, "name")
	}
	if f.Email == "" {
		missing = append(missing, "email")
	}
	if f.Message == "" {
		missing = append(missing, "message")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing %s", ErrInvalid, strings.Join(missing, ", "))
	}

	addr, err := mail.ParseAddress(f.Email)
	if err != nil || addr.Address != f.Email {
		return fmt.Errorf("%w: %q is not an email address", ErrInvalid, f.Email)
	}

	return nil
}
