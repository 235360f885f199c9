package api

import (
	"net/http"

	"vanta-be/internal/menu"
	"vanta-be/internal/utils"
	"vanta-be/internal/validate"
)

func (h *Handler) getMenu(w http.ResponseWriter, r *http.Request) {
	if cat := r.URL.Query().Get("category"); cat != "" {
		utils.WriteJSON(w, http.StatusOK, h.Catalog.ByCategory(menu.Category(cat)))
		return
	}
	utils.WriteJSON(w, http.StatusOK, h.Catalog.Items())
}

func (h *Handler) getPlans(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, http.StatusOK, menu.Plans())
}

func (h *Handler) getSlots(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, http.StatusOK, validate.TimeSlots)
}
