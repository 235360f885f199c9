package order

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"vanta-be/internal/cart"
	"vanta-be/internal/db"
	"vanta-be/internal/logger"
	"vanta-be/internal/validate"
)

// RecentLimit caps the admin order list.
const RecentLimit = 50

type Service interface {
	CreateOrder(ctx context.Context, d Draft) (*Order, error)
	RecentOrders(ctx context.Context) ([]*Order, error)
	UpdateStatus(ctx context.Context, id int64, status Status) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// CreateOrder re-validates and sanitizes d, then persists it with a single
// insert. On any failure the returned order is nil. Validation failures wrap
// ErrInvalidDraft and a validate.Errors; store failures wrap ErrCreateFailed.
func (s *service) CreateOrder(ctx context.Context, d Draft) (*Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "CreateOrder"),
		zap.Int("line_count", len(d.Items)),
	)

	if err := checkDraft(d); err != nil {
		log.Info("order draft rejected", zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrInvalidDraft, err)
	}

	clean := Draft{
		CustomerName:  validate.Sanitize(d.CustomerName),
		CustomerPhone: validate.Sanitize(d.CustomerPhone),
		Items:         snapshotItems(d.Items),
		Total:         cart.RoundMoney(d.Total),
	}
	for i := range clean.Items {
		clean.Items[i].Name = validate.Sanitize(clean.Items[i].Name)
	}

	o, err := s.repo.Insert(ctx, clean)
	if err != nil {
		log.Error("order not persisted", zap.Error(err))
		if db.IsConstraintViolation(err) {
			return nil, fmt.Errorf("%w: %w", ErrInvalidDraft, err)
		}
		return nil, fmt.Errorf("%w: %w", ErrCreateFailed, err)
	}

	log.Info("order created", zap.Int64("order_id", o.ID), zap.Float64("total", o.Total))
	return o, nil
}

func checkDraft(d Draft) error {
	errs := validate.Struct(d)

	itemsOK := true
	for _, it := range d.Items {
		if it.Quantity < 1 || it.Price < 0 {
			itemsOK = false
			break
		}
	}
	errs.Check("items", itemsOK, ErrInvalidItem)
	errs.Check("total", d.Total >= 0, ErrInvalidTotal)

	return errs.Err()
}

func (s *service) RecentOrders(ctx context.Context) ([]*Order, error) {
	orders, err := s.repo.ListRecent(ctx, RecentLimit)
	if err != nil {
		logger.FromCtx(ctx).Error("fetch recent orders failed",
			zap.String("layer", "service"),
			zap.String("method", "RecentOrders"),
			zap.Error(err),
		)
		return nil, err
	}
	return orders, nil
}

// UpdateStatus is the admin-only status mutation.
func (s *service) UpdateStatus(ctx context.Context, id int64, status Status) error {
	if !status.Valid() {
		return ErrInvalidStatus
	}

	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		if !errors.Is(err, ErrOrderNotFound) {
			logger.FromCtx(ctx).Error("update order status failed",
				zap.String("layer", "service"),
				zap.String("method", "UpdateStatus"),
				zap.Int64("order_id", id),
				zap.Error(err),
			)
		}
		return err
	}
	return nil
}
