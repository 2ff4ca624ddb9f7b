package validators

import (
	"context"
	"strings"

	"github.com/mlevkov/go-auth-keeper/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate to restrict validation to a subset
// of fields (field-level scoping).
const (
	FieldEmail    = "email"
	FieldPassword = "password"
)

type CredentialsValidator struct {
}

func NewCredentialsValidator() Validator {
	return &CredentialsValidator{}
}

func (v *CredentialsValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.CredentialsRequest:
		return v.validateCredentials(ctx, value, fields...)
	case *models.CredentialsRequest:
		return v.validateCredentials(ctx, *value, fields...)
	}

	return ErrUnsupportedType
}

func (v *CredentialsValidator) validateCredentials(_ context.Context, creds models.CredentialsRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	for _, field := range fields {
		switch field {
		case FieldEmail:
			if strings.TrimSpace(creds.Email) == "" {
				return ErrEmptyEmail
			}
		case FieldPassword:
			if creds.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
