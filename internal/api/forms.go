package api

import (
	"sync"

	"vanta-be/internal/flow"
)

// forms tracks the submission in flight per session and flow, so a second
// request for the same form while the first is running is rejected by the
// form lock.
type forms struct {
	mu sync.Mutex
	m  map[string]*flow.Form
}

func newForms() *forms {
	return &forms{m: make(map[string]*flow.Form)}
}

// acquire returns the form for key. Without a key every request gets its own
// form.
func (f *forms) acquire(key string) *flow.Form {
	if key == "" {
		return flow.NewForm()
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	form, ok := f.m[key]
	if !ok {
		form = flow.NewForm()
		f.m[key] = form
	}
	return form
}

// release forgets form once its request is done. A form another request
// is still submitting through stays registered.
func (f *forms) release(key string, form *flow.Form) {
	if key == "" {
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.m[key] == form && form.State() != flow.StateSubmitting {
		delete(f.m, key)
	}
}

func (f *forms) len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.m)
}
