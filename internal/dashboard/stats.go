package dashboard

import (
	"time"

	"vanta-be/internal/cart"
	"vanta-be/internal/order"
	"vanta-be/internal/reservation"
	"vanta-be/internal/validate"
)

// ComputeStats derives the headline numbers from the fetched lists. Only the
// orders in the list count, so "today" is bounded by the recent-orders limit.
func ComputeStats(orders []*order.Order, reservations []*reservation.Reservation, now time.Time) Stats {
	today := now.Format(validate.DateLayout)

	var stats Stats
	var revenue int64
	for _, o := range orders {
		if o.CreatedAt.In(now.Location()).Format(validate.DateLayout) == today {
			stats.TodayOrders++
			revenue += cart.ToCents(o.Total)
		}
		if o.Status == order.StatusPending {
			stats.PendingOrders++
		}
	}
	stats.TodayRevenue = cart.FromCents(revenue)

	for _, r := range reservations {
		if r.Date == today {
			stats.TodayReservations++
		}
	}
	return stats
}
