package reservation

import "time"

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return true
	}
	return false
}

// Draft is an unpersisted table booking as submitted by the customer.
type Draft struct {
	CustomerName    string `form:"name" validate:"name"`
	CustomerContact string `form:"contact" validate:"contact"`
	Date            string `form:"date" validate:"notpast"`
	Time            string `form:"time" validate:"timeslot"`
	Guests          int    `form:"guests" validate:"min=1,max=20"`
	Notes           string `form:"notes"`
}

type Reservation struct {
	ID              int64     `json:"id"`
	CustomerName    string    `json:"customer_name"`
	CustomerContact string    `json:"customer_contact"`
	Date            string    `json:"date"`
	Time            string    `json:"time"`
	Guests          int       `json:"guests"`
	Notes           string    `json:"notes,omitempty"`
	Status          Status    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
}
