package storefront

import "errors"

const (
	handoffTypeProduct = "product"
	handoffTypeContact = "contact"
)

type addItemRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

type updateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

type productMessageRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

type contactMessageRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
	Product string `json:"product"`
}

type createHandoffRequest struct {
	Type string `json:"type"`

	// product handoff
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`

	// contact handoff
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
	Product string `json:"product"`
}

// validateAddItemRequest validates the add item request.
func validateAddItemRequest(req *addItemRequest) error {
	if req.ProductID == "" {
		return errors.New("productId is required")
	}
	if req.Quantity < 0 {
		return errors.New("quantity cannot be negative")
	}
	return nil
}

// validateProductMessageRequest validates the product message request.
func validateProductMessageRequest(req *productMessageRequest) error {
	if req.ProductID == "" {
		return errors.New("productId is required")
	}
	if req.Quantity < 0 {
		return errors.New("quantity cannot be negative")
	}
	return nil
}

// validateContactMessageRequest validates the contact message request.
// Required-field validation happens here, before the formatting utility
// is ever invoked.
func validateContactMessageRequest(req *contactMessageRequest) error {
	if req.Name == "" {
		return errors.New("name is required")
	}
	if req.Phone == "" {
		return errors.New("phone is required")
	}
	if req.Message == "" {
		return errors.New("message is required")
	}
	return nil
}

// validateCreateHandoffRequest validates the create handoff request.
func validateCreateHandoffRequest(req *createHandoffRequest) error {
	switch req.Type {
	case handoffTypeProduct:
		if req.ProductID == "" {
			return errors.New("productId is required")
		}
		if req.Quantity < 0 {
			return errors.New("quantity cannot be negative")
		}
	case handoffTypeContact:
		if req.Name == "" {
			return errors.New("name is required")
		}
		if req.Phone == "" {
			return errors.New("phone is required")
		}
		if req.Message == "" {
			return errors.New("message is required")
		}
	default:
		return errors.New("type must be \"product\" or \"contact\"")
	}
	return nil
}
