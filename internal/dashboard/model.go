package dashboard

import (
	"time"

	"vanta-be/internal/order"
	"vanta-be/internal/reservation"
)

type Stats struct {
	TodayOrders       int     `json:"today_orders"`
	TodayRevenue      float64 `json:"today_revenue"`
	PendingOrders     int     `json:"pending_orders"`
	TodayReservations int     `json:"today_reservations"`
}

// Snapshot is the admin read model as of the last successful refresh.
type Snapshot struct {
	Orders       []*order.Order             `json:"orders"`
	Reservations []*reservation.Reservation `json:"reservations"`
	Stats        Stats                      `json:"stats"`
	RefreshedAt  time.Time                  `json:"refreshed_at"`
}
