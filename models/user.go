package models

import "time"

// User represents an identity record of the authentication service.
// It is uniquely keyed by Email and carries credential and token state.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	// It is assigned by the storage layer at creation time and is stable
	// for the lifetime of the record.
	UserID int64 `json:"-"`

	// Email is the unique identity key. The service layer stores it in
	// normalized form (trimmed, lower-cased); uniqueness is enforced on
	// the normalized value by a database constraint.
	Email string `json:"email"`

	// HashedPassword is the bcrypt hash of the user's password.
	// It MUST never hold plaintext and changes only at registration or
	// through the password-reset flow.
	HashedPassword []byte `json:"-"`

	// SessionToken is the opaque token of the user's active session.
	// nil means no active session. A user holds at most one session
	// token; a new login overwrites the previous one.
	SessionToken *string `json:"-"`

	// ResetToken is the opaque single-use password-reset token.
	// nil means no reset request is outstanding. A new reset request
	// overwrites the previous token; a successful reset clears it.
	ResetToken *string `json:"-"`

	// CreatedAt is the timestamp when the account was created.
	// Used for auditing only.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// HasSession reports whether the user currently holds a session token.
func (u User) HasSession() bool {
	return u.SessionToken != nil && *u.SessionToken != ""
}

// NullableString is an optional string column of a partial update.
// The zero value means "leave the column untouched"; a set value with a
// nil Value means "write SQL NULL". The two states are deliberately
// distinct so that clearing a token is expressible.
type NullableString struct {
	// Set indicates the field takes part in the update at all.
	Set bool

	// Value is the value to write when Set is true; nil writes NULL.
	Value *string
}

// SetString returns a NullableString that writes the given value.
func SetString(s string) NullableString {
	return NullableString{Set: true, Value: &s}
}

// SetNull returns a NullableString that writes SQL NULL.
func SetNull() NullableString {
	return NullableString{Set: true}
}

// UserUpdate is an explicit partial update of a User record.
// Each field is independently optional; fields left at their zero value
// are not touched by the update.
type UserUpdate struct {
	// HashedPassword replaces the stored password hash when non-nil.
	HashedPassword []byte

	// SessionToken sets or clears the session token when Set.
	SessionToken NullableString

	// ResetToken sets or clears the reset token when Set.
	ResetToken NullableString
}

// IsEmpty reports whether the update would touch no columns.
func (u UserUpdate) IsEmpty() bool {
	return u.HashedPassword == nil && !u.SessionToken.Set && !u.ResetToken.Set
}
