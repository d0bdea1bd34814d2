package domain

import "errors"

// Error kinds. Concrete errors wrap one of these so callers can classify them
// with errors.Is.
var (
	ErrNotFound          = errors.New("not found")
	ErrValidation        = errors.New("validation failed")
	ErrCapacity          = errors.New("capacity exceeded")
	ErrConflict          = errors.New("conflict")
	ErrInvalidTransition = errors.New("invalid transition")
	ErrForbidden         = errors.New("forbidden")
)
