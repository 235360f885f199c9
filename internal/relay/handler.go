package relay

import (
	"crypto/subtle"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"vanta-be/internal/logger"
	"vanta-be/internal/notify"
	"vanta-be/internal/utils"
)

// Handler is the relay endpoint: it decodes a typed payload, formats it and
// forwards it through a Sender.
type Handler struct {
	Sender  Sender
	AnonKey string
}

func NewHandler(sender Sender, anonKey string) *Handler {
	return &Handler{Sender: sender, AnonKey: anonKey}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Headers", "authorization, x-client-info, apikey, content-type")
	w.Header().Set("Content-Type", "application/json")

	if r.Method == http.MethodOptions {
		w.Write([]byte("ok"))
		return
	}
	if r.Method != http.MethodPost {
		utils.WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if !h.authorized(r) {
		utils.WriteJSONError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	log := logger.FromCtx(r.Context()).With(zap.String("layer", "relay"))

	msg, err := decodeMessage(io.LimitReader(r.Body, utils.MaxBodyBytes))
	if errors.Is(err, errInvalidType) {
		utils.WriteJSONError(w, "Invalid payload type", http.StatusBadRequest)
		return
	}
	if err != nil {
		log.Warn("failed to decode notification", zap.Error(err))
		utils.WriteJSONError(w, "Failed to process request", http.StatusInternalServerError)
		return
	}

	success := h.Sender.SendMessage(r.Context(), msg)
	status := http.StatusOK
	if !success {
		status = http.StatusInternalServerError
	}
	utils.WriteJSON(w, status, map[string]bool{"success": success})
}

func (h *Handler) authorized(r *http.Request) bool {
	if h.AnonKey == "" {
		return true
	}
	token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
	return subtle.ConstantTimeCompare([]byte(token), []byte(h.AnonKey)) == 1
}

var errInvalidType = errors.New("invalid payload type")

// decodeMessage reads the discriminator first, then the matching payload.
func decodeMessage(body io.Reader) (string, error) {
	raw, err := io.ReadAll(body)
	if err != nil {
		return "", err
	}

	var head struct {
		Type notify.Kind `json:"type"`
	}
	if err := json.Unmarshal(raw, &head); err != nil {
		return "", err
	}

	switch head.Type {
	case notify.KindOrder:
		var p notify.OrderPayload
		if err := json.Unmarshal(raw, &p); err != nil {
			return "", err
		}
		return FormatOrder(p), nil
	case notify.KindReservation:
		var p notify.ReservationPayload
		if err := json.Unmarshal(raw, &p); err != nil {
			return "", err
		}
		return FormatReservation(p), nil
	case notify.KindSubscription:
		var p notify.SubscriptionPayload
		if err := json.Unmarshal(raw, &p); err != nil {
			return "", err
		}
		return FormatSubscription(p), nil
	default:
		return "", errInvalidType
	}
}
