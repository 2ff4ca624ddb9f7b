package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyRegistered is returned when an attempt to create a new
	// user fails because a user with the same email already exists. The
	// uniqueness check happens inside the database constraint, so two
	// concurrent creates for one email can never both succeed.
	ErrEmailAlreadyRegistered = errors.New("email already registered")

	// ErrUserNotFound is returned when a lookup by email, session token, or
	// reset token matches no user, or when an update targets a missing id.
	ErrUserNotFound = errors.New("no user was found")

	// ErrNoFieldsToUpdate is returned when an Update call carries an empty
	// partial update. Building a SET clause with no columns would be a
	// caller bug, so it is rejected instead of silently ignored.
	ErrNoFieldsToUpdate = errors.New("no fields to update")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied. They signal infrastructure failure, never a domain outcome.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails for driver-level reasons.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning column values from a result
	// row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan user row")
)
