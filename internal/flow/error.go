package flow

import "errors"

var (
	ErrSubmitting          = errors.New("submission already in progress")
	ErrAlreadySubmitted    = errors.New("form was already submitted")
	ErrDuplicateSubmission = errors.New("duplicate submission")
	ErrSubmitFailed        = errors.New("submission failed")
)

// User-facing messages. Store errors are never shown.
const (
	MsgOrderFailed        = "Failed to place order. Please try again."
	MsgReservationFailed  = "Failed to make a reservation. Please try again."
	MsgSubscriptionFailed = "Something went wrong. Please try again."
	MsgInvalidInput       = "Please check the highlighted fields."
	MsgDuplicate          = "This request was already received."
)
