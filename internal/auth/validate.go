package auth

import (
	"github.com/go-playground/validator/v10"
)

// RegisterInput is the raw local-registration payload. All four fields
// are mandatory; presence is checked before shape.
type RegisterInput struct {
	Name     string `json:"name" validate:"required,min=3"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Phone    string `json:"phone" validate:"required,len=10,number"`
}

var validate = validator.New()

var fieldMessages = map[string]string{
	"Name":     "Name must be at least 3 characters long",
	"Email":    "Invalid email address",
	"Password": "Password must be at least 8 characters long",
	"Phone":    "Phone number must be exactly 10 digits",
}

// ValidateRegisterInput runs the two-tier check: a generic
// ErrInvalidInput when any field is absent, then per-rule validation
// reporting every violation at once. Pure; no store access.
func ValidateRegisterInput(in RegisterInput) error {
	if in.Name == "" || in.Email == "" || in.Password == "" || in.Phone == "" {
		return ErrInvalidInput
	}

	err := validate.Struct(in)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	ve := &ValidationError{}
	for _, fe := range verrs {
		ve.Fields = append(ve.Fields, FieldError{
			Field:   fe.Field(),
			Message: fieldMessages[fe.Field()],
		})
	}
	return ve
}
