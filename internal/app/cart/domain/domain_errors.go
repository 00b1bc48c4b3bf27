package domain

import "errors"

// Domain errors as sentinel values
var (
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
	ErrEmptyCartID     = errors.New("cart id cannot be empty")
)
