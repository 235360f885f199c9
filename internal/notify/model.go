package notify

import (
	"vanta-be/internal/order"
	"vanta-be/internal/reservation"
	"vanta-be/internal/subscription"
)

// Kind is the discriminator carried in every payload's "type" field.
type Kind string

const (
	KindOrder        Kind = "order"
	KindReservation  Kind = "reservation"
	KindSubscription Kind = "subscription"
)

type Payload interface {
	Kind() Kind
}

type OrderItem struct {
	Name     string  `json:"name"`
	Size     string  `json:"size,omitempty"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

type OrderPayload struct {
	Type          Kind        `json:"type"`
	ID            int64       `json:"id"`
	CustomerName  string      `json:"customer_name"`
	CustomerPhone string      `json:"customer_phone"`
	Items         []OrderItem `json:"items"`
	Total         float64     `json:"total"`
}

func (OrderPayload) Kind() Kind { return KindOrder }

type ReservationPayload struct {
	Type            Kind   `json:"type"`
	ID              int64  `json:"id"`
	CustomerName    string `json:"customer_name"`
	CustomerContact string `json:"customer_contact"`
	Date            string `json:"date"`
	Time            string `json:"time"`
	Guests          int    `json:"guests"`
	Notes           string `json:"notes,omitempty"`
}

func (ReservationPayload) Kind() Kind { return KindReservation }

type SubscriptionPayload struct {
	Type          Kind    `json:"type"`
	CustomerName  string  `json:"customer_name"`
	CustomerPhone string  `json:"customer_phone"`
	Plan          string  `json:"plan"`
	Price         float64 `json:"price"`
}

func (SubscriptionPayload) Kind() Kind { return KindSubscription }

func NewOrderPayload(o *order.Order) OrderPayload {
	items := make([]OrderItem, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, OrderItem{
			Name:     it.Name,
			Size:     string(it.Size),
			Quantity: it.Quantity,
			Price:    it.Price,
		})
	}
	return OrderPayload{
		Type:          KindOrder,
		ID:            o.ID,
		CustomerName:  o.CustomerName,
		CustomerPhone: o.CustomerPhone,
		Items:         items,
		Total:         o.Total,
	}
}

func NewReservationPayload(r *reservation.Reservation) ReservationPayload {
	return ReservationPayload{
		Type:            KindReservation,
		ID:              r.ID,
		CustomerName:    r.CustomerName,
		CustomerContact: r.CustomerContact,
		Date:            r.Date,
		Time:            r.Time,
		Guests:          r.Guests,
		Notes:           r.Notes,
	}
}

// NewSubscriptionPayload is built from the draft, not the stored row, since
// the lead is sent whether or not it was persisted. planName is the
// human-readable plan title.
func NewSubscriptionPayload(d subscription.Draft, planName string) SubscriptionPayload {
	return SubscriptionPayload{
		Type:          KindSubscription,
		CustomerName:  d.CustomerName,
		CustomerPhone: d.CustomerPhone,
		Plan:          planName,
		Price:         d.Price,
	}
}
