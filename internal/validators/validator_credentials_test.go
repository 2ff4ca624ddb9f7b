package validators

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mlevkov/go-auth-keeper/models"
)

func TestCredentialsValidator_AllFields(t *testing.T) {
	v := NewCredentialsValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		creds   models.CredentialsRequest
		wantErr error
	}{
		{
			name:  "valid credentials",
			creds: models.CredentialsRequest{Email: "bob@example.com", Password: "secret"},
		},
		{
			name:    "empty email",
			creds:   models.CredentialsRequest{Password: "secret"},
			wantErr: ErrEmptyEmail,
		},
		{
			name:    "whitespace email",
			creds:   models.CredentialsRequest{Email: "   ", Password: "secret"},
			wantErr: ErrEmptyEmail,
		},
		{
			name:    "empty password",
			creds:   models.CredentialsRequest{Email: "bob@example.com"},
			wantErr: ErrEmptyPassword,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.creds)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestCredentialsValidator_FieldScoping(t *testing.T) {
	v := NewCredentialsValidator()
	ctx := context.Background()

	// only the email field is checked
	err := v.Validate(ctx, models.CredentialsRequest{Email: "bob@example.com"}, FieldEmail)
	assert.NoError(t, err)

	// only the password field is checked
	err = v.Validate(ctx, models.CredentialsRequest{Password: "secret"}, FieldPassword)
	assert.NoError(t, err)

	err = v.Validate(ctx, models.CredentialsRequest{}, FieldPassword)
	assert.ErrorIs(t, err, ErrEmptyPassword)
}

func TestCredentialsValidator_PointerInput(t *testing.T) {
	v := NewCredentialsValidator()

	err := v.Validate(context.Background(), &models.CredentialsRequest{Email: "bob@example.com", Password: "secret"})
	assert.NoError(t, err)
}

func TestCredentialsValidator_UnsupportedType(t *testing.T) {
	v := NewCredentialsValidator()

	err := v.Validate(context.Background(), 42)
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestCredentialsValidator_UnknownField(t *testing.T) {
	v := NewCredentialsValidator()

	err := v.Validate(context.Background(), models.CredentialsRequest{Email: "bob@example.com", Password: "secret"}, "session_token")
	assert.ErrorIs(t, err, ErrUnknownField)
}
