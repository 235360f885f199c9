// Package api exposes the storefront pipeline over HTTP: menu, cart,
// the three submission flows and the admin dashboard.
package api

import (
	"net/http"

	"vanta-be/internal/admin"
	"vanta-be/internal/cart"
	"vanta-be/internal/dashboard"
	"vanta-be/internal/flow"
	"vanta-be/internal/logger"
	"vanta-be/internal/menu"
	"vanta-be/internal/metrics"
	"vanta-be/internal/middleware"
)

const IdempotencyHeader = "X-Idempotency-Key"

type Handler struct {
	Catalog       *menu.Catalog
	Sessions      *cart.Sessions
	Checkout      *flow.Checkout
	Reservations  *flow.Reservations
	Subscriptions *flow.Subscriptions
	Feed          *dashboard.Feed
	Gate          *admin.Gate
	Metrics       *metrics.Registry

	forms *forms
}

func NewHandler(h Handler) *Handler {
	h.forms = newForms()
	return &h
}

// Routes registers every endpoint on a fresh mux. Admin routes sit behind
// the passphrase gate.
func (h *Handler) Routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/menu", h.getMenu)
	mux.HandleFunc("GET /api/plans", h.getPlans)

	mux.HandleFunc("POST /api/cart", h.openCart)
	mux.HandleFunc("GET /api/cart", h.getCart)
	mux.HandleFunc("DELETE /api/cart", h.clearCart)
	mux.HandleFunc("POST /api/cart/items", h.addCartItem)
	mux.HandleFunc("PATCH /api/cart/items/{id}", h.updateCartItem)
	mux.HandleFunc("DELETE /api/cart/items/{id}", h.removeCartItem)

	mux.HandleFunc("POST /api/checkout", h.checkout)
	mux.HandleFunc("POST /api/reservations", h.reserve)
	mux.HandleFunc("GET /api/reservations/slots", h.getSlots)
	mux.HandleFunc("POST /api/subscriptions", h.subscribe)

	gated := func(fn http.HandlerFunc) http.Handler {
		return h.Gate.Middleware(fn)
	}
	mux.Handle("GET /api/admin/dashboard", gated(h.getDashboard))
	mux.Handle("POST /api/admin/refresh", gated(h.refreshDashboard))
	mux.Handle("PATCH /api/admin/orders/{id}", gated(h.updateOrderStatus))
	mux.Handle("PATCH /api/admin/reservations/{id}", gated(h.updateReservationStatus))
	mux.Handle("GET /api/admin/metrics", gated(h.getMetrics))

	return withCartSession(mux)
}

// withCartSession tags the request's logs with its cart session.
func withCartSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if session := r.Header.Get(middleware.CartSessionHeader); session != "" {
			r = r.WithContext(logger.WithCartSession(r.Context(), session))
		}
		next.ServeHTTP(w, r)
	})
}
