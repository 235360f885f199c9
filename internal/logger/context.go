package logger

import (
	"context"

	"go.uber.org/zap"
)

type ctxKey string

const (
	requestIDKey   ctxKey = "request_id"
	cartSessionKey ctxKey = "cart_session"
)

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

func RequestIDFrom(ctx context.Context) string {
	if v, ok := ctx.Value(requestIDKey).(string); ok {
		return v
	}
	return ""
}

func WithCartSession(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, cartSessionKey, sessionID)
}

func CartSessionFrom(ctx context.Context) string {
	if v, ok := ctx.Value(cartSessionKey).(string); ok {
		return v
	}
	return ""
}

// FromCtx returns the global logger annotated with the request id and cart
// session carried by ctx, when present.
func FromCtx(ctx context.Context) *zap.Logger {
	l := L()
	if reqID := RequestIDFrom(ctx); reqID != "" {
		l = l.With(zap.String("request_id", reqID))
	}
	if session := CartSessionFrom(ctx); session != "" {
		l = l.With(zap.String("cart_session", session))
	}
	return l
}
