package domain

import "errors"

// Sentinel errors shared by services and the HTTP boundary. Anything not in
// this list is treated as unexpected and rendered as a generic 500.
var (
	// ErrInvalidInput marks malformed or missing request data.
	ErrInvalidInput = errors.New("invalid input")
	// ErrUserExists is returned when registering an email that is taken.
	ErrUserExists = errors.New("user already exists")
	// ErrUserNotFound is internal to the persistence layer; the auth service
	// folds it into ErrInvalidCredentials so callers cannot probe for
	// registered emails.
	ErrUserNotFound = errors.New("user not found")
	// ErrInvalidCredentials covers both unknown email and wrong password.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrUnauthorized marks a gated operation attempted without a session.
	ErrUnauthorized = errors.New("authentication required")
)
