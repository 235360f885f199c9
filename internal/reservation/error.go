package reservation

import "errors"

var (
	ErrInvalidDraft        = errors.New("invalid reservation")
	ErrCreateFailed        = errors.New("failed to create reservation")
	ErrReservationNotFound = errors.New("reservation not found")
	ErrInvalidStatus       = errors.New("invalid reservation status")
)
