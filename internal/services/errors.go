package services

import "errors"

// Define common service errors
var (
	ErrNotFound           = errors.New("resource not found")
	ErrForbidden          = errors.New("forbidden")
	ErrConflict           = errors.New("conflict") // e.g., duplicate email, concurrent status change
	ErrValidation         = errors.New("validation failed")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidTransition  = errors.New("invalid status transition")
	ErrAlreadyApplied     = errors.New("already applied to this job")
	ErrUnavailable        = errors.New("backing store unavailable")
)
