package domain

import "errors"

// Sentinel errors shared by services and controllers.
var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")

	// ErrNoValidRows is returned when a guest import yields zero usable rows.
	ErrNoValidRows = errors.New("no valid rows")

	ErrDuplicateEmail     = errors.New("email already in use")
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrGenerationFailed is returned by single-artifact generation (programme,
	// single invitation) when the generative-text call does not produce text.
	ErrGenerationFailed = errors.New("content generation failed")

	// ErrJobNotFound is returned when cancelling a dispatch job that is not pending.
	ErrJobNotFound = errors.New("dispatch job not found")
)
