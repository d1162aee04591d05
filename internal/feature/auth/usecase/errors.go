// Package usecase implements the business logic for the auth feature.
package usecase

import "errors"

var (
	// ErrUserNotFound is returned when a user cannot be found by email,
	// username or ID.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailTaken is returned when the email unique constraint rejects
	// a registration.
	ErrEmailTaken = errors.New("user already exists with this email")

	// ErrUsernameTaken is returned when the username unique constraint
	// rejects an insert. Registration treats it as retryable.
	ErrUsernameTaken = errors.New("username already exists")

	// ErrInvalidCredentials is returned for an unknown email or a wrong
	// password. The two cases are indistinguishable on purpose.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUsernameExhausted is returned when every username candidate in
	// the retry budget collided.
	ErrUsernameExhausted = errors.New("unable to generate unique username after multiple attempts")
)

// ValidationError reports a rejected request field. Message is written
// for the client and returned verbatim.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }
