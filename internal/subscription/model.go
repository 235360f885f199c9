package subscription

import "time"

type Status string

const (
	StatusNew       Status = "new"
	StatusContacted Status = "contacted"
)

// Draft is a subscription lead: who asked, for which plan, at what price.
type Draft struct {
	CustomerName  string  `form:"name" validate:"name"`
	CustomerPhone string  `form:"phone" validate:"phone"`
	Plan          string  `form:"plan" validate:"required,oneof=explorer connoisseur collector"`
	Price         float64 `form:"price"`
}

type Subscription struct {
	ID            int64     `json:"id"`
	CustomerName  string    `json:"customer_name"`
	CustomerPhone string    `json:"customer_phone"`
	Plan          string    `json:"plan"`
	Price         float64   `json:"price"`
	Status        Status    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}
