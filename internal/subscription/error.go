package subscription

import "errors"

var (
	ErrInvalidDraft = errors.New("invalid subscription inquiry")
	ErrCreateFailed = errors.New("failed to create subscription inquiry")
	ErrInvalidPrice = errors.New("price does not match the selected plan")
)
