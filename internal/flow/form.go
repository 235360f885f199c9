package flow

import "sync"

type State string

const (
	StateIdle       State = "idle"
	StateSubmitting State = "submitting"
	StateSuccess    State = "success"
	StateFailed     State = "failed"
)

// Form is one submission instance. It moves idle → submitting → success or
// failed; failed may be submitted again, success is terminal and a new Form
// is needed for another attempt.
type Form struct {
	mu      sync.Mutex
	state   State
	message string
	fields  []string
	result  any
}

func NewForm() *Form {
	return &Form{state: StateIdle}
}

// View is a consistent read of a Form.
type View struct {
	State   State    `json:"state"`
	Message string   `json:"message,omitempty"`
	Fields  []string `json:"fields,omitempty"`
	Result  any      `json:"result,omitempty"`
}

func (f *Form) View() View {
	f.mu.Lock()
	defer f.mu.Unlock()
	return View{State: f.state, Message: f.message, Fields: f.fields, Result: f.result}
}

func (f *Form) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

func (f *Form) Message() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.message
}

// begin locks the form for a submission and returns the state to restore if
// the attempt is abandoned before reaching the store.
func (f *Form) begin() (State, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch f.state {
	case StateSubmitting:
		return "", ErrSubmitting
	case StateSuccess:
		return "", ErrAlreadySubmitted
	}

	prev := f.state
	f.state = StateSubmitting
	f.message = ""
	f.fields = nil
	return prev, nil
}

// reject unlocks the form after local validation failed. No store call was
// made, so the form returns to where it was.
func (f *Form) reject(prev State, msg string, fields []string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.state = prev
	f.message = msg
	f.fields = fields
}

func (f *Form) fail(msg string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.state = StateFailed
	f.message = msg
}

func (f *Form) succeed(result any) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.state = StateSuccess
	f.result = result
}
