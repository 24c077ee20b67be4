package services

import "errors"

// Sentinel errors shared across services. Handlers map these onto flash
// messages and HTTP statuses.
var (
	// ErrNotFound indicates an entity was not located.
	ErrNotFound = errors.New("services: not found")

	// ErrEmailTaken indicates a registration attempt with an email that
	// already belongs to another user.
	ErrEmailTaken = errors.New("services: email already registered")

	// ErrInvalidCredentials indicates a failed login attempt. Unknown email
	// and wrong password are deliberately indistinguishable.
	ErrInvalidCredentials = errors.New("services: invalid credentials")
)

// ValidationError reports a missing or blank required field. The message is
// shown to the user verbatim.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }
