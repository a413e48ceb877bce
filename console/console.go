package console

import (
	"errors"
	"fmt"
	"regexp"

	logbridge "github.com/hostlink/logbridge"
	"github.com/hostlink/logbridge/events"
)

var (
	// ErrAttach wraps failures while subscribing to the log event stream.
	ErrAttach = errors.New("failed to attach console")

	// ansiPattern matches ESC or single-byte CSI introduced control sequences.
	ansiPattern = regexp.MustCompile(`[\x1b\x{9b}][\[()#;?]*(?:[0-9]{1,4}(?:;[0-9]{0,4})*)?[0-9A-ORZcf-nqry=><]`)
)

// Console is the set of output channels events are routed to.
type Console interface {
	Debug(message string)
	Info(message string)
	Warn(message string)
	Error(message string)
}

// Config controls where events come from and where they are printed.
type Config struct {
	// Events supplies the log event stream. Defaults to events.DefaultBus().
	Events events.Subscriber

	// Console receives sanitized messages. Defaults to a zap console on stderr.
	Console Console
}

// Detach cancels the console subscription. It is safe to call more than once.
type Detach func()

// Attach subscribes to host log events and mirrors them to the console.
func Attach(cfg Config) (Detach, error) {
	sub := cfg.Events
	if sub == nil {
		sub = events.DefaultBus()
	}

	out := cfg.Console
	if out == nil {
		out = NewZapConsole(nil)
	}

	cancel, err := sub.Subscribe(events.LogEventName, Handler(out))
	if err != nil {
		return nil, errors.Join(ErrAttach, err)
	}
	return Detach(cancel), nil
}

// Handler returns the event handler that decodes, sanitizes and routes events to out.
func Handler(out Console) events.Handler {
	return func(payload []byte) error {
		ev, err := events.DecodeLogEvent(payload)
		if err != nil {
			return err
		}
		return Route(out, ev)
	}
}

// Route writes the sanitized event message to the channel for its level.
func Route(out Console, ev events.LogEvent) error {
	msg := Sanitize(ev.Message)

	switch ev.Level {
	case logbridge.LevelTrace, logbridge.LevelDebug:
		out.Debug(msg)
	case logbridge.LevelInfo:
		out.Info(msg)
	case logbridge.LevelWarn:
		out.Warn(msg)
	case logbridge.LevelError:
		out.Error(msg)
	default:
		return fmt.Errorf("%w: %d", logbridge.ErrUnknownLevel, uint8(ev.Level))
	}
	return nil
}

// Sanitize removes ANSI/VT escape sequences from s. s is treated as UTF-8 text:
// the single-byte CSI introducer is recognised as the rune U+009B, and a raw
// 0x9B byte (invalid UTF-8) is left in place.
func Sanitize(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}
