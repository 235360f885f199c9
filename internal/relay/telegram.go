package relay

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	"vanta-be/internal/logger"
)

const telegramBaseURL = "https://api.telegram.org"

// Sender forwards a formatted message to the messaging channel.
type Sender interface {
	SendMessage(ctx context.Context, text string) bool
}

type Telegram struct {
	token      string
	chatID     string
	baseURL    string
	httpClient *http.Client
}

func NewTelegram(token, chatID string) *Telegram {
	if token == "" || chatID == "" {
		logger.L().Warn("telegram credentials not configured")
	}
	return &Telegram{
		token:   token,
		chatID:  chatID,
		baseURL: telegramBaseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type sendMessageRequest struct {
	ChatID    string `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode"`
}

type sendMessageResponse struct {
	OK          bool   `json:"ok"`
	Description string `json:"description,omitempty"`
}

// SendMessage calls the Bot API sendMessage method and reports its "ok" flag.
func (t *Telegram) SendMessage(ctx context.Context, text string) bool {
	log := logger.FromCtx(ctx).With(zap.String("layer", "telegram"))

	if t.token == "" || t.chatID == "" {
		log.Error("telegram credentials not configured")
		return false
	}

	body, err := json.Marshal(sendMessageRequest{ChatID: t.chatID, Text: text, ParseMode: "HTML"})
	if err != nil {
		log.Error("failed to marshal message", zap.Error(err))
		return false
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.baseURL+"/bot"+t.token+"/sendMessage", bytes.NewReader(body))
	if err != nil {
		log.Error("failed creating request", zap.Error(err))
		return false
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.httpClient.Do(req)
	if err != nil {
		// The request URL embeds the bot token; log only the cause.
		log.Error("telegram request failed", zap.String("cause", errCause(err)))
		return false
	}
	defer resp.Body.Close()

	var out sendMessageResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		log.Error("failed decoding telegram response", zap.Int("status", resp.StatusCode), zap.Error(err))
		return false
	}
	if !out.OK {
		log.Warn("telegram rejected message", zap.Int("status", resp.StatusCode), zap.String("description", out.Description))
	}
	return out.OK
}

func errCause(err error) string {
	var uerr *url.Error
	if errors.As(err, &uerr) {
		return uerr.Err.Error()
	}
	return err.Error()
}
