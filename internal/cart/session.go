package cart

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Sessions hosts one cart per browsing session. Session IDs are opaque
// tokens, not identities.
type Sessions struct {
	mu    sync.Mutex
	carts map[string]*Cart
	ack   func(sessionID, message string)
}

// NewSessions creates an empty registry. ack, when non-nil, receives every
// add-to-cart acknowledgment along with its session ID.
func NewSessions(ack func(sessionID, message string)) *Sessions {
	return &Sessions{
		carts: make(map[string]*Cart),
		ack:   ack,
	}
}

// Open starts a new session with an empty cart.
func (s *Sessions) Open() (string, *Cart) {
	id := uuid.New().String()

	var ack Acknowledger
	if s.ack != nil {
		notify := s.ack
		ack = func(message string) { notify(id, message) }
	}
	c := New(ack)

	s.mu.Lock()
	s.carts[id] = c
	s.mu.Unlock()

	return id, c
}

func (s *Sessions) Get(id string) (*Cart, error) {
	if id == "" {
		return nil, ErrSessionRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.carts[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return c, nil
}

func (s *Sessions) Drop(id string) {
	s.mu.Lock()
	delete(s.carts, id)
	s.mu.Unlock()
}

func (s *Sessions) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.carts)
}

// Sweep discards carts untouched for longer than maxIdle and reports how many
// were removed. An abandoned session is the server-side equivalent of a page
// reload.
func (s *Sessions) Sweep(maxIdle time.Duration) int {
	cutoff := time.Now().Add(-maxIdle)

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, c := range s.carts {
		if c.idleSince().Before(cutoff) {
			delete(s.carts, id)
			removed++
		}
	}
	return removed
}

// RunJanitor sweeps idle carts every interval until ctx is done.
func (s *Sessions) RunJanitor(ctx context.Context, interval, maxIdle time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Sweep(maxIdle)
		}
	}
}
