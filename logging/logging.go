package logging

import (
	"errors"
	"fmt"

	logbridge "github.com/hostlink/logbridge"
	"github.com/hostlink/logbridge/logging/location"
	sdkproto "github.com/tarmac-project/protobuf-go/sdk"
	wapc "github.com/wapc/wapc-guest-tinygo"
	pb "google.golang.org/protobuf/proto"
)

const (
	capabilityName = "log"
	fnWrite        = "log"

	hostStatusOK       = int32(200)
	hostStatusPartial  = int32(206)
	hostStatusBadInput = int32(400)
	hostStatusMissing  = int32(404)
	hostStatusError    = int32(500)
)

var (
	// ErrMarshalRequest wraps failures while encoding the record payload.
	ErrMarshalRequest = errors.New("failed to marshal log record")

	// ErrUnmarshalResponse wraps failures while decoding the host acknowledgement.
	ErrUnmarshalResponse = errors.New("failed to unmarshal response")
)

// Client exposes convenience helpers for sending log records to the host runtime.
type Client interface {
	// Log sends a record at the given level.
	Log(level logbridge.Level, message string, opts ...Option) error

	Trace(message string, opts ...Option) error
	Debug(message string, opts ...Option) error
	Info(message string, opts ...Option) error
	Warn(message string, opts ...Option) error
	Error(message string, opts ...Option) error
}

// Config controls how a Client instance interacts with the host runtime.
type Config struct {
	// SDKConfig provides the runtime namespace used for host calls.
	SDKConfig logbridge.RuntimeConfig

	// HostCall overrides the waPC host function used for logging operations.
	HostCall logbridge.HostCall

	// Stack overrides the source of call-stack frames. Defaults to location.Capture.
	Stack func() []string

	// UnknownLocation is recorded when no caller location can be derived.
	// Defaults to location.Unknown.
	UnknownLocation string
}

// client implements Client using the configured host call entrypoint.
type client struct {
	runtime  logbridge.RuntimeConfig
	hostCall logbridge.HostCall
	stack    func() []string
	unknown  string
}

// Ensure client satisfies the Client interface at compile time.
var _ Client = (*client)(nil)

// New creates a Client that emits logs through the configured host capability.
func New(cfg Config) (Client, error) {
	runtimeCfg := cfg.SDKConfig
	if runtimeCfg.Namespace == "" {
		runtimeCfg.Namespace = logbridge.DefaultNamespace
	}

	hostCall := cfg.HostCall
	if hostCall == nil {
		hostCall = wapc.HostCall
	}

	stack := cfg.Stack
	if stack == nil {
		stack = location.Capture
	}

	unknown := cfg.UnknownLocation
	if unknown == "" {
		unknown = location.Unknown
	}

	return &client{
		runtime:  runtimeCfg,
		hostCall: hostCall,
		stack:    stack,
		unknown:  unknown,
	}, nil
}

func (c *client) Trace(message string, opts ...Option) error {
	return c.Log(logbridge.LevelTrace, message, opts...)
}

func (c *client) Debug(message string, opts ...Option) error {
	return c.Log(logbridge.LevelDebug, message, opts...)
}

func (c *client) Info(message string, opts ...Option) error {
	return c.Log(logbridge.LevelInfo, message, opts...)
}

func (c *client) Warn(message string, opts ...Option) error {
	return c.Log(logbridge.LevelWarn, message, opts...)
}

func (c *client) Error(message string, opts ...Option) error {
	return c.Log(logbridge.LevelError, message, opts...)
}

// Log builds a Record for the caller and writes it to the host.
func (c *client) Log(level logbridge.Level, message string, opts ...Option) error {
	if !level.Valid() {
		return fmt.Errorf("%w: %d", logbridge.ErrUnknownLevel, uint8(level))
	}

	rec := Record{
		Level:    level,
		Message:  message,
		Location: location.Resolve(c.stack, c.unknown),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&rec)
		}
	}

	return c.write(rec)
}

func (c *client) write(rec Record) error {
	b, err := MarshalRecord(rec)
	if err != nil {
		return errors.Join(ErrMarshalRequest, err)
	}

	resp, err := c.hostCall(c.runtime.Namespace, capabilityName, fnWrite, b)
	if err != nil {
		return errors.Join(logbridge.ErrHostCall, err)
	}

	// Hosts that acknowledge without a body are treated as success.
	if len(resp) == 0 {
		return nil
	}

	var status sdkproto.Status
	if err := pb.Unmarshal(resp, &status); err != nil {
		return errors.Join(logbridge.ErrHostResponseInvalid, ErrUnmarshalResponse, err)
	}
	return validateStatus(&status)
}

func validateStatus(status *sdkproto.Status) error {
	code := status.GetCode()
	switch code {
	case hostStatusOK, hostStatusPartial:
		return nil
	case hostStatusBadInput, hostStatusMissing, hostStatusError:
		detail := fmt.Sprintf("host status %d", code)
		if msg := status.GetStatus(); msg != "" {
			detail = fmt.Sprintf("%s: %s", detail, msg)
		}
		return errors.Join(logbridge.ErrHostError, errors.New(detail))
	default:
		return errors.Join(
			logbridge.ErrHostResponseInvalid,
			fmt.Errorf("unexpected host status code %d", code),
		)
	}
}
