package cart

import "errors"

var (
	ErrSessionNotFound = errors.New("cart session not found")
	ErrSessionRequired = errors.New("cart session is required")
)
