package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"vanta-be/internal/logger"
)

const Path = "/functions/v1/notify"

// maxResponseBytes bounds how much of a relay reply is read.
const maxResponseBytes = 64 << 10

// Notifier delivers a payload to the relay and reports whether the relay
// acknowledged it. Implementations never return errors.
type Notifier interface {
	Send(ctx context.Context, p Payload) bool
}

type Client struct {
	baseURL    string
	anonKey    string
	httpClient *http.Client
}

// NewClient targets baseURL + Path. An empty baseURL yields a client whose
// Send always reports false.
func NewClient(baseURL, anonKey string, timeout time.Duration) *Client {
	if baseURL == "" {
		logger.L().Warn("notification relay URL is empty, notifications disabled")
	}
	return &Client{
		baseURL: baseURL,
		anonKey: anonKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

type ack struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// Send posts p to the relay. Every failure, from marshalling to a malformed
// reply, is logged and reported as false.
func (c *Client) Send(ctx context.Context, p Payload) bool {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "notify"),
		zap.String("type", string(p.Kind())),
	)

	if c.baseURL == "" {
		log.Warn("notification skipped, relay not configured")
		return false
	}

	body, err := json.Marshal(p)
	if err != nil {
		log.Error("failed to marshal notification", zap.Error(err))
		return false
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+Path, bytes.NewReader(body))
	if err != nil {
		log.Error("failed creating request", zap.Error(err))
		return false
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.anonKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Warn("relay request failed", zap.Error(err))
		return false
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		log.Warn("failed to read relay response", zap.Error(err))
		return false
	}

	var a ack
	if err := json.Unmarshal(raw, &a); err != nil {
		log.Warn("relay returned malformed response",
			zap.Int("status", resp.StatusCode),
			zap.ByteString("response", raw),
		)
		return false
	}

	if !a.Success {
		log.Warn("relay did not deliver notification",
			zap.Int("status", resp.StatusCode),
			zap.String("relay_error", a.Error),
		)
		return false
	}

	log.Info("notification delivered")
	return true
}
