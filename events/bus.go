package events

import (
	"errors"
	"sync"

	wapc "github.com/wapc/wapc-guest-tinygo"
)

var (
	// ErrEventNameEmpty is returned when subscribing to an empty event name.
	ErrEventNameEmpty = errors.New("event name cannot be empty")

	// ErrHandlerNil is returned when the provided event handler is nil.
	ErrHandlerNil = errors.New("event handler cannot be nil")

	// ErrSubscribe wraps failures while registering the event with the host.
	ErrSubscribe = errors.New("failed to subscribe to event")
)

// Handler processes one delivered event payload.
type Handler func(payload []byte) error

// Subscriber subscribes handlers to named events. The returned function
// cancels the subscription.
type Subscriber interface {
	Subscribe(event string, handler Handler) (func(), error)
}

// Register exposes a guest function to the host under name.
type Register func(name string, fn wapc.Function) error

// BusConfig configures a Bus.
type BusConfig struct {
	// Register overrides how event functions are exposed to the host.
	// Defaults to wapc.RegisterFunction.
	Register Register
}

type subscription struct {
	id      uint64
	handler Handler
}

// Bus is a Subscriber backed by waPC guest functions.
type Bus struct {
	mu       sync.Mutex
	register Register
	routes   map[string][]subscription
	nextID   uint64
}

// Ensure Bus satisfies the Subscriber interface at compile time.
var _ Subscriber = (*Bus)(nil)

var defaultBus = sync.OnceValue(func() *Bus { return NewBus(BusConfig{}) })

// DefaultBus returns the process-wide Bus bound to wapc.RegisterFunction.
// waPC keeps a single function per name, so every subscriber of the real
// host must share this Bus.
func DefaultBus() *Bus { return defaultBus() }

// NewBus creates a Bus.
func NewBus(cfg BusConfig) *Bus {
	register := cfg.Register
	if register == nil {
		register = func(name string, fn wapc.Function) error {
			wapc.RegisterFunction(name, fn)
			return nil
		}
	}

	return &Bus{
		register: register,
		routes:   make(map[string][]subscription),
	}
}

// Subscribe adds handler for event. The host-facing function is registered on
// the first subscription to event and stays registered afterwards.
func (b *Bus) Subscribe(event string, handler Handler) (func(), error) {
	if event == "" {
		return nil, ErrEventNameEmpty
	}
	if handler == nil {
		return nil, ErrHandlerNil
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	subs, registered := b.routes[event]
	if !registered {
		if err := b.register(event, b.dispatcher(event)); err != nil {
			return nil, errors.Join(ErrSubscribe, err)
		}
	}

	b.nextID++
	id := b.nextID
	b.routes[event] = append(subs, subscription{id: id, handler: handler})

	var once sync.Once
	return func() {
		once.Do(func() { b.unsubscribe(event, id) })
	}, nil
}

func (b *Bus) unsubscribe(event string, id uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	subs := b.routes[event]
	kept := make([]subscription, 0, len(subs))
	for _, s := range subs {
		if s.id != id {
			kept = append(kept, s)
		}
	}
	b.routes[event] = kept
}

// dispatcher returns the guest function the host invokes for event.
// Handler errors are returned to the host for that delivery only.
func (b *Bus) dispatcher(event string) wapc.Function {
	return func(payload []byte) ([]byte, error) {
		b.mu.Lock()
		subs := append([]subscription(nil), b.routes[event]...)
		b.mu.Unlock()

		var errs []error
		for _, s := range subs {
			if err := s.handler(payload); err != nil {
				errs = append(errs, err)
			}
		}
		return nil, errors.Join(errs...)
	}
}
