package auth

import (
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Credentials of the backend service account the bot logs in with.
// The backend decides whether the email is acceptable, only presence is checked here.
type Credentials struct {
	Email    string `validate:"required"`
	Password string `validate:"required"`
}

func ValidateCredentials(c Credentials) error {
	return validate.Struct(c)
}
