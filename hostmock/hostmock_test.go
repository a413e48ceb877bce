package hostmock

import (
	"bytes"
	"errors"
	"testing"
)

type TestCase struct {
	name       string
	cfg        Config
	payload    []byte
	namespace  string
	capability string
	function   string
	want       []byte
	wantErr    error
}

var ErrMockError = errors.New("Mock error")

func TestHostMock(t *testing.T) {
	logRoute := Config{
		ExpectedNamespace:  "logbridge",
		ExpectedCapability: "log",
		ExpectedFunction:   "log",
	}
	with := func(mod func(*Config)) Config {
		cfg := logRoute
		mod(&cfg)
		return cfg
	}

	tt := []TestCase{
		{
			name: "Scripted response",
			cfg: with(func(c *Config) {
				c.PayloadValidator = func(_ []byte) error { return nil }
				c.Response = func() []byte { return []byte("ack") }
			}),
			namespace:  "logbridge",
			capability: "log",
			function:   "log",
			payload:    []byte("record"),
			want:       []byte("ack"),
		},
		{
			name: "Custom fail error",
			cfg: with(func(c *Config) {
				c.Fail = true
				c.Error = ErrMockError
				c.Response = func() []byte { return []byte("ack") }
			}),
			namespace:  "logbridge",
			capability: "log",
			function:   "log",
			payload:    []byte("record"),
			wantErr:    ErrMockError,
		},
		{
			name:       "Default fail error",
			cfg:        with(func(c *Config) { c.Fail = true }),
			namespace:  "logbridge",
			capability: "log",
			function:   "log",
			payload:    []byte("record"),
			wantErr:    ErrOperationFailed,
		},
		{
			name:       "Nil response returns nil",
			cfg:        logRoute,
			namespace:  "logbridge",
			capability: "log",
			function:   "log",
			payload:    []byte("record"),
		},
		{
			name:       "Blank expectations act as wildcards",
			cfg:        Config{Response: func() []byte { return []byte("ack") }},
			namespace:  "anything",
			capability: "anything",
			function:   "anything",
			want:       []byte("ack"),
		},
		{
			name: "Invalid payload",
			cfg: with(func(c *Config) {
				c.PayloadValidator = func(payload []byte) error {
					if string(payload) != "valid" {
						return ErrMockError
					}
					return nil
				}
			}),
			namespace:  "logbridge",
			capability: "log",
			function:   "log",
			payload:    []byte("invalid"),
			wantErr:    ErrMockError,
		},
		{
			name:       "Unexpected Namespace",
			cfg:        logRoute,
			namespace:  "other",
			capability: "log",
			function:   "log",
			wantErr:    ErrUnexpectedNamespace,
		},
		{
			name:       "Unexpected Capability",
			cfg:        logRoute,
			namespace:  "logbridge",
			capability: "kv",
			function:   "log",
			wantErr:    ErrUnexpectedCapability,
		},
		{
			name:       "Unexpected Function",
			cfg:        logRoute,
			namespace:  "logbridge",
			capability: "log",
			function:   "flush",
			wantErr:    ErrUnexpectedFunction,
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			mock, err := New(tc.cfg)
			if err != nil {
				t.Fatalf("New Mock instance creation failed: %v", err)
			}

			got, err := mock.HostCall(tc.namespace, tc.capability, tc.function, tc.payload)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("Mock call returned unexpected error: got %v, want %v", err, tc.wantErr)
			}

			if !bytes.Equal(got, tc.want) {
				t.Fatalf("Mock call returned unexpected response: got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestHostMockRecordsCalls(t *testing.T) {
	mock, err := New(Config{ExpectedCapability: "log"})
	if err != nil {
		t.Fatalf("New Mock instance creation failed: %v", err)
	}

	payload := []byte("first")
	if _, err := mock.HostCall("ns", "log", "log", payload); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	payload[0] = 'F'

	if _, err := mock.HostCall("ns", "other", "log", []byte("second")); !errors.Is(err, ErrUnexpectedCapability) {
		t.Fatalf("expected ErrUnexpectedCapability, got %v", err)
	}

	calls := mock.Calls()
	if len(calls) != 2 {
		t.Fatalf("expected 2 recorded calls, got %d", len(calls))
	}
	if calls[0].Namespace != "ns" || calls[0].Capability != "log" || calls[0].Function != "log" {
		t.Fatalf("unexpected routing recorded: %+v", calls[0])
	}
	if string(calls[0].Payload) != "first" {
		t.Fatalf("recorded payload should be a copy, got %q", calls[0].Payload)
	}
	if calls[1].Capability != "other" {
		t.Fatalf("expected failed call to be recorded, got %+v", calls[1])
	}
}

func TestEvents(t *testing.T) {
	t.Run("Emit to registered function", func(t *testing.T) {
		ev := NewEvents(EventsConfig{})
		var got []byte
		if err := ev.Register("log://log", func(p []byte) ([]byte, error) {
			got = p
			return []byte("ack"), nil
		}); err != nil {
			t.Fatalf("Register returned error: %v", err)
		}

		if !ev.Registered("log://log") {
			t.Fatalf("expected event to be registered")
		}

		resp, err := ev.Emit("log://log", []byte("payload"))
		if err != nil {
			t.Fatalf("Emit returned error: %v", err)
		}
		if !bytes.Equal(resp, []byte("ack")) || !bytes.Equal(got, []byte("payload")) {
			t.Fatalf("unexpected delivery: resp %q payload %q", resp, got)
		}
	})

	t.Run("Emit without registration", func(t *testing.T) {
		ev := NewEvents(EventsConfig{})
		if _, err := ev.Emit("log://log", nil); !errors.Is(err, ErrNoSuchEvent) {
			t.Fatalf("expected ErrNoSuchEvent, got %v", err)
		}
	})

	t.Run("Register failure", func(t *testing.T) {
		ev := NewEvents(EventsConfig{Fail: true})
		if err := ev.Register("log://log", nil); !errors.Is(err, ErrOperationFailed) {
			t.Fatalf("expected ErrOperationFailed, got %v", err)
		}

		ev = NewEvents(EventsConfig{Fail: true, Error: ErrMockError})
		if err := ev.Register("log://log", nil); !errors.Is(err, ErrMockError) {
			t.Fatalf("expected ErrMockError, got %v", err)
		}
		if ev.Registered("log://log") {
			t.Fatalf("failed registration must not be recorded")
		}
	})
}
