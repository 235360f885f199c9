package order

import "errors"

var (
	ErrInvalidDraft  = errors.New("invalid order")
	ErrCreateFailed  = errors.New("failed to create order")
	ErrOrderNotFound = errors.New("order not found")
	ErrInvalidStatus = errors.New("invalid order status")
	ErrInvalidItem   = errors.New("order items must have a positive quantity and a non-negative price")
	ErrInvalidTotal  = errors.New("order total must not be negative")
)
