// Package dashboard keeps the admin read model: recent orders, the coming
// week's reservations and a few headline stats. It re-fetches everything on
// each change event or manual refresh.
package dashboard

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"vanta-be/internal/changefeed"
	"vanta-be/internal/logger"
	"vanta-be/internal/order"
	"vanta-be/internal/reservation"
)

type Feed struct {
	orders       order.Service
	reservations reservation.Service
	now          func() time.Time

	// refreshMu serializes full re-fetches; mu guards snap.
	refreshMu sync.Mutex
	mu        sync.RWMutex
	snap      Snapshot

	kick chan struct{}
}

func NewFeed(orders order.Service, reservations reservation.Service) *Feed {
	return &Feed{
		orders:       orders,
		reservations: reservations,
		now:          time.Now,
		kick:         make(chan struct{}, 1),
	}
}

// Refresh re-reads both lists and replaces the snapshot. A failed refresh
// leaves the previous snapshot in place.
func (f *Feed) Refresh(ctx context.Context) error {
	f.refreshMu.Lock()
	defer f.refreshMu.Unlock()

	log := logger.FromCtx(ctx).With(
		zap.String("layer", "dashboard"),
		zap.String("method", "Refresh"),
	)

	orders, err := f.orders.RecentOrders(ctx)
	if err != nil {
		log.Error("fetch orders failed", zap.Error(err))
		return fmt.Errorf("%w: %w", ErrRefreshFailed, err)
	}

	reservations, err := f.reservations.UpcomingReservations(ctx)
	if err != nil {
		log.Error("fetch reservations failed", zap.Error(err))
		return fmt.Errorf("%w: %w", ErrRefreshFailed, err)
	}

	now := f.now()
	snap := Snapshot{
		Orders:       orders,
		Reservations: reservations,
		Stats:        ComputeStats(orders, reservations, now),
		RefreshedAt:  now,
	}

	f.mu.Lock()
	f.snap = snap
	f.mu.Unlock()

	log.Debug("dashboard refreshed",
		zap.Int("orders", len(orders)),
		zap.Int("reservations", len(reservations)),
	)
	return nil
}

// Snapshot returns the current read model. The slices are shared with the
// feed and must not be modified.
func (f *Feed) Snapshot() Snapshot {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.snap
}

// Notify asks for a refresh without waiting for it. Requests made while one
// is already queued are coalesced.
func (f *Feed) Notify() {
	select {
	case f.kick <- struct{}{}:
	default:
	}
}

// Run subscribes to order and reservation changes, loads the first snapshot
// and then refreshes on every event until ctx is done.
func (f *Feed) Run(ctx context.Context, src changefeed.Source) error {
	log := logger.FromCtx(ctx).With(zap.String("layer", "dashboard"))

	var unsubs []changefeed.Unsubscribe
	defer func() {
		for _, u := range unsubs {
			u()
		}
	}()

	for _, table := range []string{changefeed.TableOrders, changefeed.TableReservations} {
		unsub, err := src.Subscribe(ctx, table, func(ev changefeed.Event) {
			log.Debug("change event", zap.String("table", ev.Table), zap.String("op", ev.Op))
			f.Notify()
		})
		if err != nil {
			return fmt.Errorf("subscribe %s: %w", table, err)
		}
		unsubs = append(unsubs, unsub)
	}

	if err := f.Refresh(ctx); err != nil {
		log.Warn("initial dashboard load failed", zap.Error(err))
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-f.kick:
			if err := f.Refresh(ctx); err != nil && ctx.Err() == nil {
				log.Warn("dashboard refresh after change failed", zap.Error(err))
			}
		}
	}
}

// refreshAfterUpdate reloads the snapshot after a status change. The change
// itself is already stored, so a failed reload is only logged.
func (f *Feed) refreshAfterUpdate(ctx context.Context) {
	if err := f.Refresh(ctx); err != nil {
		logger.FromCtx(ctx).Warn("refresh after status change failed",
			zap.String("layer", "dashboard"),
			zap.Error(err),
		)
	}
}

// UpdateOrderStatus changes an order's status and refreshes the feed.
func (f *Feed) UpdateOrderStatus(ctx context.Context, id int64, status order.Status) error {
	if err := f.orders.UpdateStatus(ctx, id, status); err != nil {
		return err
	}
	f.refreshAfterUpdate(ctx)
	return nil
}

// UpdateReservationStatus changes a reservation's status and refreshes the feed.
func (f *Feed) UpdateReservationStatus(ctx context.Context, id int64, status reservation.Status) error {
	if err := f.reservations.UpdateStatus(ctx, id, status); err != nil {
		return err
	}
	f.refreshAfterUpdate(ctx)
	return nil
}
