package changefeed

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"time"

	"github.com/lib/pq"
	"go.uber.org/zap"

	"vanta-be/internal/logger"
)

const (
	minReconnectInterval = 10 * time.Second
	maxReconnectInterval = time.Minute
	pingInterval         = 90 * time.Second
)

// listener is the part of *pq.Listener used here.
type listener interface {
	Listen(channel string) error
	Unlisten(channel string) error
	NotificationChannel() <-chan *pq.Notification
	Ping() error
	Close() error
}

// PGSource delivers changes through Postgres LISTEN/NOTIFY. The migrations
// install triggers that publish {"op","id"} on "<table>_changes".
type PGSource struct {
	l    listener
	reg  *registry
	mu   sync.Mutex
	done chan struct{}
	once sync.Once
}

// NewPGSource opens a dedicated listener connection for dsn.
func NewPGSource(dsn string) *PGSource {
	log := logger.L().With(zap.String("component", "changefeed"))

	l := pq.NewListener(dsn, minReconnectInterval, maxReconnectInterval, func(ev pq.ListenerEventType, err error) {
		switch ev {
		case pq.ListenerEventConnectionAttemptFailed:
			log.Warn("listener connection attempt failed", zap.Error(err))
		case pq.ListenerEventDisconnected:
			log.Warn("listener disconnected", zap.Error(err))
		case pq.ListenerEventReconnected:
			log.Info("listener reconnected")
		}
	})
	return newPGSource(l)
}

func newPGSource(l listener) *PGSource {
	s := &PGSource{
		l:    l,
		reg:  newRegistry(),
		done: make(chan struct{}),
	}
	go s.loop()
	return s
}

func (s *PGSource) Subscribe(ctx context.Context, table string, fn Handler) (Unsubscribe, error) {
	if !knownTable(table) {
		return nil, ErrUnknownTable
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id, first := s.reg.add(table, fn)
	if first {
		if err := s.l.Listen(channelFor(table)); err != nil && err != pq.ErrChannelAlreadyOpen {
			s.reg.remove(table, id)
			return nil, err
		}
		logger.FromCtx(ctx).Info("listening for changes", zap.String("table", table))
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			if s.reg.remove(table, id) {
				_ = s.l.Unlisten(channelFor(table))
			}
		})
	}, nil
}

func (s *PGSource) loop() {
	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-s.done:
			return
		case n, ok := <-s.l.NotificationChannel():
			if !ok {
				return
			}
			s.dispatch(n)
		case <-ticker.C:
			go s.l.Ping()
		}
	}
}

// dispatch turns a notification into an Event. A nil notification means the
// connection was re-established and anything may have been missed.
func (s *PGSource) dispatch(n *pq.Notification) {
	if n == nil {
		for _, table := range s.reg.tables() {
			s.reg.emit(Event{Table: table, Op: OpResync})
		}
		return
	}

	ev := Event{Table: strings.TrimSuffix(n.Channel, "_changes")}
	if err := json.Unmarshal([]byte(n.Extra), &ev); err != nil {
		ev.Op = OpUpdate
	}
	s.reg.emit(ev)
}

func (s *PGSource) Close() error {
	var err error
	s.once.Do(func() {
		close(s.done)
		err = s.l.Close()
	})
	return err
}
