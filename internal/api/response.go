package api

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"vanta-be/internal/cart"
	"vanta-be/internal/flow"
	"vanta-be/internal/logger"
	"vanta-be/internal/menu"
	"vanta-be/internal/order"
	"vanta-be/internal/reservation"
	"vanta-be/internal/utils"
	"vanta-be/internal/validate"
)

type errorResponse struct {
	Error  string   `json:"error"`
	Fields []string `json:"fields,omitempty"`
}

// writeSubmitError maps a flow error to a status code. The form view carries
// the user-facing message; store details never reach the client.
func writeSubmitError(w http.ResponseWriter, r *http.Request, err error, view flow.View) {
	var errs validate.Errors

	switch {
	case errors.As(err, &errs):
		utils.WriteJSON(w, http.StatusBadRequest, errorResponse{Error: flow.MsgInvalidInput, Fields: errs.Fields()})
	case errors.Is(err, flow.ErrDuplicateSubmission):
		utils.WriteJSONError(w, flow.MsgDuplicate, http.StatusConflict)
	case errors.Is(err, flow.ErrSubmitting), errors.Is(err, flow.ErrAlreadySubmitted):
		utils.WriteJSONError(w, err.Error(), http.StatusConflict)
	case errors.Is(err, flow.ErrSubmitFailed):
		utils.WriteJSONError(w, view.Message, http.StatusBadGateway)
	default:
		logger.FromCtx(r.Context()).Error("unexpected submit error", zap.String("layer", "api"), zap.Error(err))
		utils.WriteJSONError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

func writeCartError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, cart.ErrSessionRequired):
		utils.WriteJSONError(w, "Missing cart session", http.StatusBadRequest)
	case errors.Is(err, cart.ErrSessionNotFound):
		utils.WriteJSONError(w, "Cart session not found", http.StatusNotFound)
	case errors.Is(err, menu.ErrItemNotFound):
		utils.WriteJSONError(w, "Menu item not found", http.StatusNotFound)
	case errors.Is(err, menu.ErrInvalidSize):
		utils.WriteJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error(), Fields: []string{"size"}})
	default:
		utils.WriteJSONError(w, err.Error(), http.StatusBadRequest)
	}
}

func writeStatusError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, order.ErrInvalidStatus), errors.Is(err, reservation.ErrInvalidStatus):
		utils.WriteJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error(), Fields: []string{"status"}})
	case errors.Is(err, order.ErrOrderNotFound), errors.Is(err, reservation.ErrReservationNotFound):
		utils.WriteJSONError(w, err.Error(), http.StatusNotFound)
	default:
		logger.FromCtx(r.Context()).Error("status update failed", zap.String("layer", "api"), zap.Error(err))
		utils.WriteJSONError(w, "Failed to update status", http.StatusBadGateway)
	}
}
