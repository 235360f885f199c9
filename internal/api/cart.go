package api

import (
	"net/http"

	"vanta-be/internal/cart"
	"vanta-be/internal/middleware"
	"vanta-be/internal/utils"
)

type addItemRequest struct {
	ItemID string    `json:"item_id"`
	Size   cart.Size `json:"size"`
}

type updateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

type openCartResponse struct {
	SessionID string `json:"session_id"`
}

func (h *Handler) sessionCart(r *http.Request) (*cart.Cart, error) {
	return h.Sessions.Get(r.Header.Get(middleware.CartSessionHeader))
}

func (h *Handler) openCart(w http.ResponseWriter, r *http.Request) {
	id, _ := h.Sessions.Open()
	utils.WriteJSON(w, http.StatusCreated, openCartResponse{SessionID: id})
}

func (h *Handler) getCart(w http.ResponseWriter, r *http.Request) {
	c, err := h.sessionCart(r)
	if err != nil {
		writeCartError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, cart.ToSummary(c))
}

func (h *Handler) clearCart(w http.ResponseWriter, r *http.Request) {
	c, err := h.sessionCart(r)
	if err != nil {
		writeCartError(w, err)
		return
	}
	c.Clear()
	utils.WriteJSON(w, http.StatusOK, cart.ToSummary(c))
}

// addCartItem resolves the line from the catalog, so the price is never
// taken from the client.
func (h *Handler) addCartItem(w http.ResponseWriter, r *http.Request) {
	c, err := h.sessionCart(r)
	if err != nil {
		writeCartError(w, err)
		return
	}

	var req addItemRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	line, err := h.Catalog.LineItem(req.ItemID, req.Size)
	if err != nil {
		writeCartError(w, err)
		return
	}

	c.AddItem(line)
	h.Metrics.Inc("cart.add")
	utils.WriteJSON(w, http.StatusOK, cart.ToSummary(c))
}

func (h *Handler) updateCartItem(w http.ResponseWriter, r *http.Request) {
	c, err := h.sessionCart(r)
	if err != nil {
		writeCartError(w, err)
		return
	}

	var req updateQuantityRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	c.UpdateQuantity(r.PathValue("id"), req.Quantity)
	utils.WriteJSON(w, http.StatusOK, cart.ToSummary(c))
}

func (h *Handler) removeCartItem(w http.ResponseWriter, r *http.Request) {
	c, err := h.sessionCart(r)
	if err != nil {
		writeCartError(w, err)
		return
	}

	c.RemoveItem(r.PathValue("id"))
	utils.WriteJSON(w, http.StatusOK, cart.ToSummary(c))
}
