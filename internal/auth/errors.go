package auth

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidInput means a required registration field is missing
	// entirely; it is reported before any shape validation runs.
	ErrInvalidInput = errors.New("invalid data")

	ErrAlreadyExists      = errors.New("user already exists")
	ErrNotFound           = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid password")

	// ErrNoEmail means a federated profile carried no email and none
	// could be synthesized from the provider username.
	ErrNoEmail = errors.New("no email found")
)

// FieldError is one violated validation rule.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError enumerates every violated rule of a registration
// payload.
type ValidationError struct {
	Fields []FieldError `json:"fields"`
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		msgs[i] = f.Message
	}
	return strings.Join(msgs, "; ")
}

func wrapStore(op string, err error) error {
	return fmt.Errorf("auth: %s: %w", op, err)
}
