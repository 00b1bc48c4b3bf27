package domain

import "errors"

// Domain errors as sentinel values
var (
	ErrProductNotFound = errors.New("product not found")

	ErrEmptyID         = errors.New("product id cannot be empty")
	ErrEmptySKU        = errors.New("product sku cannot be empty")
	ErrEmptyName       = errors.New("product name cannot be empty")
	ErrInvalidCategory = errors.New("product category cannot be empty")
	ErrInvalidPrice    = errors.New("product price must be positive")
	ErrInvalidRating   = errors.New("product rating must be between 0 and 5")
	ErrInvalidStock    = errors.New("product stock cannot be negative")

	// ErrInvalidOriginalPrice guards the discount display: a strike-through
	// price below the selling price would render a negative discount.
	ErrInvalidOriginalPrice = errors.New("original price must be above the current price")
)
