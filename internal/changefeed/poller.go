package changefeed

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"vanta-be/internal/logger"
)

// Fingerprint summarises a table's current contents. Any change to the rows
// the dashboard shows must change the fingerprint.
type Fingerprint func(ctx context.Context, table string) (string, error)

// SQLFingerprint hashes id and status of every row, so inserts, deletes and
// status changes are all detected.
func SQLFingerprint(db *sql.DB) Fingerprint {
	return func(ctx context.Context, table string) (string, error) {
		if !knownTable(table) {
			return "", ErrUnknownTable
		}
		var fp string
		err := db.QueryRowContext(ctx, fmt.Sprintf(
			`SELECT COALESCE(md5(string_agg(id::text || ':' || status, ',' ORDER BY id)), '') FROM %s`, table,
		)).Scan(&fp)
		return fp, err
	}
}

// Poller is the interval-polling Source, for stores without push support.
type Poller struct {
	fingerprint Fingerprint
	interval    time.Duration
}

func NewPoller(fp Fingerprint, interval time.Duration) *Poller {
	return &Poller{fingerprint: fp, interval: interval}
}

// Subscribe polls table until ctx ends or the returned Unsubscribe is called.
// The first poll only records a baseline.
func (p *Poller) Subscribe(ctx context.Context, table string, fn Handler) (Unsubscribe, error) {
	if !knownTable(table) {
		return nil, ErrUnknownTable
	}

	ctx, cancel := context.WithCancel(ctx)
	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()
		p.watch(ctx, table, fn)
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			cancel()
			wg.Wait()
		})
	}, nil
}

func (p *Poller) watch(ctx context.Context, table string, fn Handler) {
	log := logger.FromCtx(ctx).With(
		zap.String("component", "changefeed"),
		zap.String("table", table),
	)

	last, err := p.fingerprint(ctx, table)
	if err != nil {
		log.Warn("baseline poll failed", zap.Error(err))
	}

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			fp, err := p.fingerprint(ctx, table)
			if err != nil {
				if ctx.Err() == nil {
					log.Warn("poll failed", zap.Error(err))
				}
				continue
			}
			if fp != last {
				last = fp
				fn(Event{Table: table, Op: OpUpdate})
			}
		}
	}
}
