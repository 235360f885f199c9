// Package flow holds the submission orchestrators. Each one validates, writes
// to the store, then hands a notification to the dispatcher; the notification
// outcome never changes the submission's result.
package flow

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"vanta-be/internal/idempotency"
	"vanta-be/internal/logger"
	"vanta-be/internal/metrics"
	"vanta-be/internal/notify"
	"vanta-be/internal/validate"
)

// Notifications starts best-effort delivery of a payload without blocking.
type Notifications interface {
	Go(ctx context.Context, p notify.Payload)
}

// Deps are shared by every orchestrator. Guard and Metrics may be nil.
type Deps struct {
	Notify  Notifications
	Guard   idempotency.Guard
	Metrics *metrics.Registry
}

func (d Deps) guard() idempotency.Guard {
	if d.Guard == nil {
		return idempotency.NopGuard{}
	}
	return d.Guard
}

// claim reports ErrDuplicateSubmission for a reused token. A guard that
// cannot be reached does not block the submission.
func (d Deps) claim(ctx context.Context, scope, token string) error {
	err := d.guard().Claim(ctx, scope, token)
	if err == nil {
		return nil
	}
	if errors.Is(err, idempotency.ErrDuplicate) {
		return ErrDuplicateSubmission
	}
	logger.FromCtx(ctx).Warn("idempotency guard unavailable",
		zap.String("layer", "flow"),
		zap.String("scope", scope),
		zap.Error(err),
	)
	return nil
}

func (d Deps) release(ctx context.Context, scope, token string) {
	if err := d.guard().Release(ctx, scope, token); err != nil {
		logger.FromCtx(ctx).Warn("failed to release submission token",
			zap.String("layer", "flow"),
			zap.String("scope", scope),
			zap.Error(err),
		)
	}
}

func fieldsOf(err error) []string {
	var errs validate.Errors
	if errors.As(err, &errs) {
		return errs.Fields()
	}
	return nil
}
