package models

import "errors"

// Domain errors shared by the handler packages. Handlers match these
// with errors.Is and map each one to its own HTTP status.
var (
	ErrDuplicateEmail = errors.New("email already registered")
	ErrUnknownRole    = errors.New("invalid role")

	// ErrInvalidCredentials covers every login failure (unknown email,
	// wrong password, role mismatch) so the response never reveals
	// which check failed.
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrMissingActor  = errors.New("teacher email and role are required")
	ErrActorNotFound = errors.New("teacher not found")
	ErrNotATeacher   = errors.New("user is not a teacher")
)
