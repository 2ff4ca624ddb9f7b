package models

// MessageResponse is the generic JSON body returned by endpoints that
// only report an outcome (welcome page, registration, logout).
type MessageResponse struct {
	// Email echoes the email the operation was performed for.
	// Omitted when the endpoint is not tied to a specific identity.
	Email string `json:"email,omitempty"`

	// Message is a short human-readable outcome description.
	Message string `json:"message"`
}

// ProfileResponse is the body of GET /profile for an authenticated session.
type ProfileResponse struct {
	// Email is the identity of the resolved session's user.
	Email string `json:"email"`
}

// ResetTokenResponse is the body of POST /reset_password.
// The reset token is returned to the caller; delivering it to the user
// (e.g. by email) is the transport collaborator's concern.
type ResetTokenResponse struct {
	Email      string `json:"email"`
	ResetToken string `json:"reset_token"`
}

// CredentialsRequest is the JSON body accepted by the registration and
// login endpoints. Both fields arrive raw and un-normalized; the service
// layer owns trimming and case-folding.
type CredentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ResetRequest is the JSON body of POST /reset_password.
type ResetRequest struct {
	Email string `json:"email"`
}

// ResetConfirmRequest is the JSON body of PUT /reset_password.
type ResetConfirmRequest struct {
	Email       string `json:"email"`
	ResetToken  string `json:"reset_token"`
	NewPassword string `json:"new_password"`
}
