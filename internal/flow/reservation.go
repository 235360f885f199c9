package flow

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"vanta-be/internal/logger"
	"vanta-be/internal/metrics"
	"vanta-be/internal/notify"
	"vanta-be/internal/reservation"
)

const scopeReservation = "reservation"

type Reservations struct {
	reservations reservation.Service
	deps         Deps
	now          func() time.Time
}

func NewReservations(svc reservation.Service, deps Deps) *Reservations {
	return &Reservations{reservations: svc, deps: deps, now: time.Now}
}

// Submit books a table. Validation runs against today's date before the
// store is touched.
func (s *Reservations) Submit(ctx context.Context, form *Form, d reservation.Draft, token string) (*reservation.Reservation, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "flow"),
		zap.String("flow", "reservation"),
	)

	timer := metrics.StartTimer()

	prev, err := form.begin()
	if err != nil {
		return nil, err
	}

	if err := s.deps.claim(ctx, scopeReservation, token); err != nil {
		form.reject(prev, MsgDuplicate, nil)
		s.deps.Metrics.Inc("reservation.duplicate")
		return nil, err
	}

	if err := reservation.Check(d, s.now()); err != nil {
		s.deps.release(ctx, scopeReservation, token)
		form.reject(prev, MsgInvalidInput, fieldsOf(err))
		s.deps.Metrics.Inc("reservation.invalid")
		return nil, err
	}

	res, err := s.reservations.CreateReservation(ctx, d)
	if err != nil {
		s.deps.release(ctx, scopeReservation, token)
		form.fail(MsgReservationFailed)
		s.deps.Metrics.Inc("reservation.failed")
		log.Warn("reservation failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrSubmitFailed, err)
	}

	s.deps.Notify.Go(ctx, notify.NewReservationPayload(res))

	form.succeed(res)
	s.deps.Metrics.Inc("reservation.success")
	log.Info("reservation completed",
		zap.Int64("reservation_id", res.ID),
		zap.Duration("elapsed", timer.Duration()),
	)
	return res, nil
}
