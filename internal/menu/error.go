package menu

import "errors"

var (
	ErrItemNotFound = errors.New("menu item not found")
	ErrInvalidSize  = errors.New("size not offered for this item")
	ErrPlanNotFound = errors.New("subscription plan not found")
)
