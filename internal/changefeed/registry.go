package changefeed

import "sync"

// registry tracks handlers per table. It is shared by the sources.
type registry struct {
	mu       sync.Mutex
	next     int
	handlers map[string]map[int]Handler
}

func newRegistry() *registry {
	return &registry{handlers: make(map[string]map[int]Handler)}
}

// add registers fn and reports whether it is the first handler for table.
func (r *registry) add(table string, fn Handler) (id int, first bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	hs, ok := r.handlers[table]
	if !ok {
		hs = make(map[int]Handler)
		r.handlers[table] = hs
	}
	r.next++
	hs[r.next] = fn
	return r.next, len(hs) == 1
}

// remove drops a handler and reports whether table has none left.
func (r *registry) remove(table string, id int) (last bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	hs, ok := r.handlers[table]
	if !ok {
		return false
	}
	if _, ok := hs[id]; !ok {
		return false
	}
	delete(hs, id)
	if len(hs) == 0 {
		delete(r.handlers, table)
		return true
	}
	return false
}

func (r *registry) tables() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]string, 0, len(r.handlers))
	for t := range r.handlers {
		out = append(out, t)
	}
	return out
}

// emit calls every handler for ev.Table outside the lock.
func (r *registry) emit(ev Event) {
	r.mu.Lock()
	hs := make([]Handler, 0, len(r.handlers[ev.Table]))
	for _, h := range r.handlers[ev.Table] {
		hs = append(hs, h)
	}
	r.mu.Unlock()

	for _, h := range hs {
		h(ev)
	}
}
