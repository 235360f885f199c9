package flow

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"vanta-be/internal/cart"
	"vanta-be/internal/logger"
	"vanta-be/internal/metrics"
	"vanta-be/internal/notify"
	"vanta-be/internal/order"
	"vanta-be/internal/validate"
)

const scopeOrder = "order"

type CheckoutInput struct {
	Name  string
	Phone string
	// Token is an optional client-generated idempotency key.
	Token string
}

type Checkout struct {
	orders order.Service
	deps   Deps
}

func NewCheckout(orders order.Service, deps Deps) *Checkout {
	return &Checkout{orders: orders, deps: deps}
}

// Submit places an order for the current contents of c. On success the
// ordered lines leave the cart and the form is terminal. Returned errors are validate.Errors,
// ErrSubmitFailed, or one of the form lock errors.
func (s *Checkout) Submit(ctx context.Context, form *Form, c *cart.Cart, in CheckoutInput) (*order.Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "flow"),
		zap.String("flow", "checkout"),
	)

	timer := metrics.StartTimer()

	prev, err := form.begin()
	if err != nil {
		return nil, err
	}

	if err := s.deps.claim(ctx, scopeOrder, in.Token); err != nil {
		form.reject(prev, MsgDuplicate, nil)
		s.deps.Metrics.Inc("checkout.duplicate")
		return nil, err
	}

	items, total := c.Snapshot()
	draft := order.Draft{
		CustomerName:  in.Name,
		CustomerPhone: in.Phone,
		Items:         items,
		Total:         total,
	}

	errs := validate.Struct(draft)
	if err := errs.Err(); err != nil {
		s.deps.release(ctx, scopeOrder, in.Token)
		form.reject(prev, MsgInvalidInput, errs.Fields())
		s.deps.Metrics.Inc("checkout.invalid")
		return nil, err
	}

	o, err := s.orders.CreateOrder(ctx, draft)
	if err != nil {
		s.deps.release(ctx, scopeOrder, in.Token)
		form.fail(MsgOrderFailed)
		s.deps.Metrics.Inc("checkout.failed")
		log.Warn("checkout failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrSubmitFailed, err)
	}

	s.deps.Notify.Go(ctx, notify.NewOrderPayload(o))

	c.ClearSnapshot(items)
	form.succeed(o)
	s.deps.Metrics.Inc("checkout.success")
	log.Info("checkout completed",
		zap.Int64("order_id", o.ID),
		zap.Float64("total", o.Total),
		zap.Duration("elapsed", timer.Duration()),
	)
	return o, nil
}
