package notify

import (
	"context"
	"sync"
	"time"
)

// Dispatcher sends notifications off the caller's path. The submitting
// request never waits for the relay and never sees its outcome.
type Dispatcher struct {
	n        Notifier
	timeout  time.Duration
	onResult func(Kind, bool)
	wg       sync.WaitGroup
}

// NewDispatcher wraps n. onResult, when non-nil, observes every outcome.
func NewDispatcher(n Notifier, timeout time.Duration, onResult func(Kind, bool)) *Dispatcher {
	return &Dispatcher{n: n, timeout: timeout, onResult: onResult}
}

// Go starts delivery of p on its own goroutine. The send keeps ctx's values
// but not its cancellation, so it outlives the request that triggered it.
func (d *Dispatcher) Go(ctx context.Context, p Payload) {
	sendCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), d.timeout)

	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		defer cancel()

		ok := d.n.Send(sendCtx, p)
		if d.onResult != nil {
			d.onResult(p.Kind(), ok)
		}
	}()
}

// Wait blocks until in-flight notifications finish. Used on shutdown.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}
