package logging

import (
	"errors"
	"fmt"
	"maps"

	logbridge "github.com/hostlink/logbridge"
	pb "google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

// Payload keys shared with the host.
const (
	keyLevel     = "level"
	keyMessage   = "message"
	keyLocation  = "location"
	keyFile      = "file"
	keyLine      = "line"
	keyKeyValues = "keyValues"
)

// ErrInvalidRecord indicates a payload that does not decode into a Record.
var ErrInvalidRecord = errors.New("log record payload is invalid")

// Record is the payload of a single write request.
type Record struct {
	Level    logbridge.Level
	Message  string
	Location string

	// File, Line and KeyValues are nil when not supplied.
	File      *string
	Line      *uint32
	KeyValues map[string]string
}

// Option sets an optional Record field.
type Option func(*Record)

// WithFile sets the source file name of the record.
func WithFile(file string) Option {
	return func(r *Record) { r.File = &file }
}

// WithLine sets the source line number of the record.
func WithLine(line uint32) Option {
	return func(r *Record) { r.Line = &line }
}

// WithKeyValues attaches a copy of kv to the record. A nil map leaves the field absent.
// Each record the option is applied to gets its own map.
func WithKeyValues(kv map[string]string) Option {
	kv = maps.Clone(kv)
	return func(r *Record) { r.KeyValues = maps.Clone(kv) }
}

// MarshalRecord encodes r as a protobuf Struct.
func MarshalRecord(r Record) ([]byte, error) {
	fields := map[string]any{
		keyLevel:    int64(r.Level),
		keyMessage:  r.Message,
		keyLocation: r.Location,
	}
	if r.File != nil {
		fields[keyFile] = *r.File
	}
	if r.Line != nil {
		fields[keyLine] = *r.Line
	}
	if r.KeyValues != nil {
		kv := make(map[string]any, len(r.KeyValues))
		for k, v := range r.KeyValues {
			kv[k] = v
		}
		fields[keyKeyValues] = kv
	}

	st, err := structpb.NewStruct(fields)
	if err != nil {
		return nil, err
	}
	return pb.MarshalOptions{Deterministic: true}.Marshal(st)
}

// UnmarshalRecord decodes a payload produced by MarshalRecord.
func UnmarshalRecord(b []byte) (Record, error) {
	var st structpb.Struct
	if err := pb.Unmarshal(b, &st); err != nil {
		return Record{}, errors.Join(ErrInvalidRecord, err)
	}
	f := st.GetFields()

	lv, ok := f[keyLevel].GetKind().(*structpb.Value_NumberValue)
	if !ok {
		return Record{}, fmt.Errorf("%w: missing %s", ErrInvalidRecord, keyLevel)
	}
	level, err := logbridge.ParseLevel(lv.NumberValue)
	if err != nil {
		return Record{}, errors.Join(ErrInvalidRecord, err)
	}

	r := Record{
		Level:    level,
		Message:  f[keyMessage].GetStringValue(),
		Location: f[keyLocation].GetStringValue(),
	}
	if v, ok := f[keyFile]; ok {
		file := v.GetStringValue()
		r.File = &file
	}
	if v, ok := f[keyLine]; ok {
		line := uint32(v.GetNumberValue())
		r.Line = &line
	}
	if v, ok := f[keyKeyValues]; ok {
		r.KeyValues = make(map[string]string)
		for k, kv := range v.GetStructValue().GetFields() {
			r.KeyValues[k] = kv.GetStringValue()
		}
	}
	return r, nil
}
