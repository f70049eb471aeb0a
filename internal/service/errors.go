package service

import "errors"

// Validation failures. The HTTP layer maps every one of these to a client
// error; nothing below the service ever sees an invalid order.
var (
	ErrEmptyCart            = errors.New("cart is empty, nothing to order")
	ErrMissingCustomerField = errors.New("customer name, phone and address are required")
	ErrInvalidMode          = errors.New("mode must be pickup or delivery")
	ErrInvalidQuantity      = errors.New("item quantity must be at least 1")
	ErrUnknownProduct       = errors.New("order references an unknown product")
	ErrInactiveProduct      = errors.New("order references a product that is no longer available")
	ErrModeMismatch         = errors.New("product is not compatible with the selected mode")
)
