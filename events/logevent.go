package events

import (
	"errors"
	"fmt"

	logbridge "github.com/hostlink/logbridge"
	pb "google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

// LogEventName is the event the host publishes mirrored log records on.
const LogEventName = "log://log"

const (
	keyLevel   = "level"
	keyMessage = "message"
)

// ErrInvalidEvent indicates a payload that does not decode into a LogEvent.
var ErrInvalidEvent = errors.New("event payload is invalid")

// LogEvent is a log record published back to the guest.
type LogEvent struct {
	Level   logbridge.Level
	Message string
}

// EncodeLogEvent encodes ev as a protobuf Struct.
func EncodeLogEvent(ev LogEvent) ([]byte, error) {
	st, err := structpb.NewStruct(map[string]any{
		keyLevel:   int64(ev.Level),
		keyMessage: ev.Message,
	})
	if err != nil {
		return nil, err
	}
	return pb.MarshalOptions{Deterministic: true}.Marshal(st)
}

// DecodeLogEvent decodes a LogEvent payload. A level outside the known range
// yields an error wrapping logbridge.ErrUnknownLevel.
func DecodeLogEvent(b []byte) (LogEvent, error) {
	var st structpb.Struct
	if err := pb.Unmarshal(b, &st); err != nil {
		return LogEvent{}, errors.Join(ErrInvalidEvent, err)
	}
	f := st.GetFields()

	lv, ok := f[keyLevel].GetKind().(*structpb.Value_NumberValue)
	if !ok {
		return LogEvent{}, fmt.Errorf("%w: missing %s", ErrInvalidEvent, keyLevel)
	}
	msg, ok := f[keyMessage].GetKind().(*structpb.Value_StringValue)
	if !ok {
		return LogEvent{}, fmt.Errorf("%w: missing %s", ErrInvalidEvent, keyMessage)
	}

	level, err := logbridge.ParseLevel(lv.NumberValue)
	if err != nil {
		return LogEvent{}, err
	}
	return LogEvent{Level: level, Message: msg.StringValue}, nil
}
