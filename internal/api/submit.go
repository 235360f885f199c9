package api

import (
	"net/http"

	"vanta-be/internal/cart"
	"vanta-be/internal/flow"
	"vanta-be/internal/menu"
	"vanta-be/internal/middleware"
	"vanta-be/internal/reservation"
	"vanta-be/internal/subscription"
	"vanta-be/internal/utils"
)

type checkoutRequest struct {
	CustomerName  string `json:"customer_name"`
	CustomerPhone string `json:"customer_phone"`
}

type reservationRequest struct {
	CustomerName    string `json:"customer_name"`
	CustomerContact string `json:"customer_contact"`
	Date            string `json:"date"`
	Time            string `json:"time"`
	Guests          int    `json:"guests"`
	Notes           string `json:"notes"`
}

type subscriptionRequest struct {
	CustomerName  string  `json:"customer_name"`
	CustomerPhone string  `json:"customer_phone"`
	Plan          string  `json:"plan"`
	Price         float64 `json:"price"`
}

// formKey scopes the in-flight form to the caller's cart session.
func formKey(r *http.Request, kind string) string {
	session := r.Header.Get(middleware.CartSessionHeader)
	if session == "" {
		return ""
	}
	return kind + ":" + session
}

func (h *Handler) checkout(w http.ResponseWriter, r *http.Request) {
	c, err := h.sessionCart(r)
	if err != nil {
		writeCartError(w, err)
		return
	}

	var req checkoutRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	key := formKey(r, "checkout")
	form := h.forms.acquire(key)
	defer h.forms.release(key, form)

	_, err = h.Checkout.Submit(r.Context(), form, c, flow.CheckoutInput{
		Name:  req.CustomerName,
		Phone: req.CustomerPhone,
		Token: r.Header.Get(IdempotencyHeader),
	})
	if err != nil {
		writeSubmitError(w, r, err, form.View())
		return
	}

	utils.WriteJSON(w, http.StatusCreated, form.View())
}

func (h *Handler) reserve(w http.ResponseWriter, r *http.Request) {
	var req reservationRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	key := formKey(r, "reservation")
	form := h.forms.acquire(key)
	defer h.forms.release(key, form)

	_, err := h.Reservations.Submit(r.Context(), form, reservation.Draft{
		CustomerName:    req.CustomerName,
		CustomerContact: req.CustomerContact,
		Date:            req.Date,
		Time:            req.Time,
		Guests:          req.Guests,
		Notes:           req.Notes,
	}, r.Header.Get(IdempotencyHeader))
	if err != nil {
		writeSubmitError(w, r, err, form.View())
		return
	}

	utils.WriteJSON(w, http.StatusCreated, form.View())
}

func (h *Handler) subscribe(w http.ResponseWriter, r *http.Request) {
	var req subscriptionRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	// The storefront may omit the price; the plan's listed price applies.
	price := req.Price
	if price == 0 {
		if p, err := menu.FindPlan(req.Plan); err == nil {
			price = p.Price
		}
	}

	key := formKey(r, "subscription")
	form := h.forms.acquire(key)
	defer h.forms.release(key, form)

	_, err := h.Subscriptions.Submit(r.Context(), form, subscription.Draft{
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		Plan:          req.Plan,
		Price:         cart.RoundMoney(price),
	}, r.Header.Get(IdempotencyHeader))
	if err != nil {
		writeSubmitError(w, r, err, form.View())
		return
	}

	utils.WriteJSON(w, http.StatusCreated, form.View())
}
