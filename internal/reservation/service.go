package reservation

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"vanta-be/internal/db"
	"vanta-be/internal/logger"
	"vanta-be/internal/validate"
)

// UpcomingDays is how far ahead the admin reservation list looks.
const UpcomingDays = 7

type Service interface {
	CreateReservation(ctx context.Context, d Draft) (*Reservation, error)
	UpcomingReservations(ctx context.Context) ([]*Reservation, error)
	UpdateStatus(ctx context.Context, id int64, status Status) error
}

type service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) Service {
	return NewServiceWithClock(repo, time.Now)
}

// NewServiceWithClock is NewService with an injectable notion of today.
func NewServiceWithClock(repo Repository, now func() time.Time) Service {
	return &service{repo: repo, now: now}
}

// Check runs every reservation validator against d as of now.
func Check(d Draft, now time.Time) error {
	return validate.StructAt(d, now).Err()
}

func (s *service) CreateReservation(ctx context.Context, d Draft) (*Reservation, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "CreateReservation"),
		zap.String("date", d.Date),
		zap.String("time", d.Time),
	)

	if err := Check(d, s.now()); err != nil {
		log.Info("reservation draft rejected", zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrInvalidDraft, err)
	}

	clean := Draft{
		CustomerName:    validate.Sanitize(d.CustomerName),
		CustomerContact: validate.Sanitize(d.CustomerContact),
		Date:            strings.TrimSpace(d.Date),
		Time:            d.Time,
		Guests:          d.Guests,
		Notes:           validate.Sanitize(d.Notes),
	}

	res, err := s.repo.Insert(ctx, clean)
	if err != nil {
		log.Error("reservation not persisted", zap.Error(err))
		if db.IsConstraintViolation(err) {
			return nil, fmt.Errorf("%w: %w", ErrInvalidDraft, err)
		}
		return nil, fmt.Errorf("%w: %w", ErrCreateFailed, err)
	}

	log.Info("reservation created", zap.Int64("reservation_id", res.ID), zap.Int("guests", res.Guests))
	return res, nil
}

// UpcomingReservations lists bookings from today through today+7, soonest first.
func (s *service) UpcomingReservations(ctx context.Context) ([]*Reservation, error) {
	today := s.now()
	from := today.Format(validate.DateLayout)
	to := today.AddDate(0, 0, UpcomingDays).Format(validate.DateLayout)

	out, err := s.repo.ListBetween(ctx, from, to)
	if err != nil {
		logger.FromCtx(ctx).Error("fetch upcoming reservations failed",
			zap.String("layer", "service"),
			zap.String("method", "UpcomingReservations"),
			zap.Error(err),
		)
		return nil, err
	}
	return out, nil
}

func (s *service) UpdateStatus(ctx context.Context, id int64, status Status) error {
	if !status.Valid() {
		return ErrInvalidStatus
	}

	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		if !errors.Is(err, ErrReservationNotFound) {
			logger.FromCtx(ctx).Error("update reservation status failed",
				zap.String("layer", "service"),
				zap.String("method", "UpdateStatus"),
				zap.Int64("reservation_id", id),
				zap.Error(err),
			)
		}
		return err
	}
	return nil
}
