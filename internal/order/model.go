package order

import (
	"time"

	"vanta-be/internal/cart"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Draft is an unpersisted order built from a cart snapshot.
type Draft struct {
	CustomerName  string          `form:"name" validate:"name"`
	CustomerPhone string          `form:"phone" validate:"phone"`
	Items         []cart.LineItem `form:"items" validate:"min=1"`
	Total         float64         `form:"total"`
}

// Order is a persisted order. ID, Status and CreatedAt are assigned by the store.
type Order struct {
	ID            int64           `json:"id"`
	CustomerName  string          `json:"customer_name"`
	CustomerPhone string          `json:"customer_phone"`
	Items         []cart.LineItem `json:"items"`
	Total         float64         `json:"total"`
	Status        Status          `json:"status"`
	CreatedAt     time.Time       `json:"created_at"`
}
