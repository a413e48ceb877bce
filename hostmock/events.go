package hostmock

import (
	"errors"
	"fmt"
	"sync"

	wapc "github.com/wapc/wapc-guest-tinygo"
)

// ErrNoSuchEvent is returned by Emit when the guest registered no function for the event.
var ErrNoSuchEvent = errors.New("no function registered for event")

// EventsConfig configures an Events instance.
type EventsConfig struct {
	// Error is returned from Register when Fail is set.
	Error error

	// Fail makes every Register call fail.
	Fail bool
}

// Events plays the host side of an event stream: it records the guest
// functions registered per event name and invokes them on Emit.
type Events struct {
	mu  sync.Mutex
	fns map[string]wapc.Function
	cfg EventsConfig
}

// NewEvents creates an Events host.
func NewEvents(cfg EventsConfig) *Events {
	return &Events{fns: make(map[string]wapc.Function), cfg: cfg}
}

// Register stores fn as the guest function for name, replacing any previous one.
func (e *Events) Register(name string, fn wapc.Function) error {
	if e.cfg.Fail {
		if e.cfg.Error != nil {
			return e.cfg.Error
		}
		return ErrOperationFailed
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.fns[name] = fn
	return nil
}

// Registered reports whether the guest registered a function for name.
func (e *Events) Registered(name string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	_, ok := e.fns[name]
	return ok
}

// Emit delivers payload to the guest function registered for name.
func (e *Events) Emit(name string, payload []byte) ([]byte, error) {
	e.mu.Lock()
	fn, ok := e.fns[name]
	e.mu.Unlock()

	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNoSuchEvent, name)
	}
	return fn(payload)
}
