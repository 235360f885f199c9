package subscription

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"vanta-be/internal/cart"
	"vanta-be/internal/logger"
	"vanta-be/internal/menu"
	"vanta-be/internal/validate"
)

const RecentLimit = 50

type Service interface {
	CreateSubscription(ctx context.Context, d Draft) (*Subscription, error)
	RecentSubscriptions(ctx context.Context) ([]*Subscription, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// Check validates a lead. The plan must exist in the catalog and the price
// snapshot must be that plan's current price.
func Check(d Draft) error {
	errs := validate.Struct(d)
	if plan, err := menu.FindPlan(d.Plan); err == nil {
		errs.Check("price", cart.ToCents(plan.Price) == cart.ToCents(d.Price), ErrInvalidPrice)
	}
	return errs.Err()
}

func (s *service) CreateSubscription(ctx context.Context, d Draft) (*Subscription, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "CreateSubscription"),
		zap.String("plan", d.Plan),
	)

	if err := Check(d); err != nil {
		log.Info("subscription draft rejected", zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrInvalidDraft, err)
	}

	clean := Draft{
		CustomerName:  validate.Sanitize(d.CustomerName),
		CustomerPhone: validate.Sanitize(d.CustomerPhone),
		Plan:          d.Plan,
		Price:         cart.RoundMoney(d.Price),
	}

	sub, err := s.repo.Insert(ctx, clean)
	if err != nil {
		log.Error("subscription not persisted", zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrCreateFailed, err)
	}

	log.Info("subscription inquiry created", zap.Int64("subscription_id", sub.ID))
	return sub, nil
}

func (s *service) RecentSubscriptions(ctx context.Context) ([]*Subscription, error) {
	return s.repo.ListRecent(ctx, RecentLimit)
}
