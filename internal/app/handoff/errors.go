package handoff

import "errors"

// Errors as sentinel values
var (
	ErrNotFound         = errors.New("handoff not found")
	ErrAlreadyCompleted = errors.New("handoff already completed")

	ErrMissingName    = errors.New("contact name is required")
	ErrMissingPhone   = errors.New("contact phone is required")
	ErrMissingMessage = errors.New("contact message is required")
)
