package services

import "errors"

// Error taxonomy shared by all use cases. Handlers map these with errors.Is;
// messages wrapped around them are safe to surface to the caller.
var (
	// ErrValidation marks caller-fixable input problems (malformed email,
	// weak password, unknown status value).
	ErrValidation = errors.New("validation failed")

	// ErrNotFound marks a referenced entity that does not exist.
	ErrNotFound = errors.New("not found")

	// ErrConflict marks a uniqueness conflict, e.g. a duplicate email.
	ErrConflict = errors.New("conflict")

	// ErrUnauthorized marks a login credential mismatch. The same generic
	// error covers unknown user and wrong password so callers cannot
	// enumerate accounts; the distinction goes to logs only.
	ErrUnauthorized = errors.New("invalid credentials")

	// ErrStorage wraps opaque repository failures. The raw detail is logged,
	// never returned.
	ErrStorage = errors.New("storage error")
)
