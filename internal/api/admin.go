package api

import (
	"net/http"

	"go.uber.org/zap"

	"vanta-be/internal/logger"
	"vanta-be/internal/order"
	"vanta-be/internal/reservation"
	"vanta-be/internal/utils"
)

type statusRequest struct {
	Status string `json:"status"`
}

func (h *Handler) getDashboard(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, http.StatusOK, h.Feed.Snapshot())
}

func (h *Handler) refreshDashboard(w http.ResponseWriter, r *http.Request) {
	if err := h.Feed.Refresh(r.Context()); err != nil {
		logger.FromCtx(r.Context()).Warn("manual refresh failed", zap.String("layer", "api"), zap.Error(err))
		utils.WriteJSONError(w, "Failed to refresh dashboard", http.StatusBadGateway)
		return
	}
	utils.WriteJSON(w, http.StatusOK, h.Feed.Snapshot())
}

func (h *Handler) updateOrderStatus(w http.ResponseWriter, r *http.Request) {
	id, status, ok := parseStatusUpdate(w, r)
	if !ok {
		return
	}

	if err := h.Feed.UpdateOrderStatus(r.Context(), id, order.Status(status)); err != nil {
		writeStatusError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, h.Feed.Snapshot())
}

func (h *Handler) updateReservationStatus(w http.ResponseWriter, r *http.Request) {
	id, status, ok := parseStatusUpdate(w, r)
	if !ok {
		return
	}

	if err := h.Feed.UpdateReservationStatus(r.Context(), id, reservation.Status(status)); err != nil {
		writeStatusError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, h.Feed.Snapshot())
}

func (h *Handler) getMetrics(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, http.StatusOK, h.Metrics.Snapshot())
}

func parseStatusUpdate(w http.ResponseWriter, r *http.Request) (int64, string, bool) {
	id, err := utils.ParseID(r.PathValue("id"))
	if err != nil {
		utils.WriteJSONError(w, "Invalid id", http.StatusBadRequest)
		return 0, "", false
	}

	var req statusRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return 0, "", false
	}
	return id, req.Status, true
}
