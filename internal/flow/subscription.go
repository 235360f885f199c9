package flow

import (
	"context"

	"go.uber.org/zap"

	"vanta-be/internal/logger"
	"vanta-be/internal/menu"
	"vanta-be/internal/notify"
	"vanta-be/internal/subscription"
	"vanta-be/internal/validate"
)

const scopeSubscription = "subscription"

type Subscriptions struct {
	subscriptions subscription.Service
	deps          Deps
}

func NewSubscriptions(svc subscription.Service, deps Deps) *Subscriptions {
	return &Subscriptions{subscriptions: svc, deps: deps}
}

// Submit records a subscription lead. A lead is never lost to a store
// failure: the notification goes out and the form succeeds either way, so
// the returned record may be nil with a nil error.
func (s *Subscriptions) Submit(ctx context.Context, form *Form, d subscription.Draft, token string) (*subscription.Subscription, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "flow"),
		zap.String("flow", "subscription"),
	)

	prev, err := form.begin()
	if err != nil {
		return nil, err
	}

	if err := s.deps.claim(ctx, scopeSubscription, token); err != nil {
		form.reject(prev, MsgDuplicate, nil)
		s.deps.Metrics.Inc("subscription.duplicate")
		return nil, err
	}

	if err := subscription.Check(d); err != nil {
		s.deps.release(ctx, scopeSubscription, token)
		form.reject(prev, MsgInvalidInput, fieldsOf(err))
		s.deps.Metrics.Inc("subscription.invalid")
		return nil, err
	}

	sub, err := s.subscriptions.CreateSubscription(ctx, d)
	if err != nil {
		log.Warn("subscription not persisted, notifying anyway", zap.Error(err))
		s.deps.Metrics.Inc("subscription.unpersisted")
	}

	lead := subscription.Draft{
		CustomerName:  validate.Sanitize(d.CustomerName),
		CustomerPhone: validate.Sanitize(d.CustomerPhone),
		Plan:          d.Plan,
		Price:         d.Price,
	}
	planName := d.Plan
	if p, err := menu.FindPlan(d.Plan); err == nil {
		planName = p.Name
	}
	s.deps.Notify.Go(ctx, notify.NewSubscriptionPayload(lead, planName))

	// A nil *Subscription in an interface would not read as "no result".
	var result any
	if sub != nil {
		result = sub
	}
	form.succeed(result)
	s.deps.Metrics.Inc("subscription.success")
	return sub, nil
}
