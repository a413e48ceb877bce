package logbridge

import (
	"fmt"
	"math"
)

// Level is the severity of a log record. The numeric values are shared with
// the host and must not be renumbered.
type Level uint8

const (
	LevelTrace Level = iota + 1
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
)

var levelNames = map[Level]string{
	LevelTrace: "trace",
	LevelDebug: "debug",
	LevelInfo:  "info",
	LevelWarn:  "warn",
	LevelError: "error",
}

// String returns the lowercase level name.
func (l Level) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return fmt.Sprintf("Level(%d)", uint8(l))
}

// Valid reports whether l is one of the defined levels.
func (l Level) Valid() bool {
	_, ok := levelNames[l]
	return ok
}

// ParseLevel converts a wire value into a Level.
func ParseLevel(v float64) (Level, error) {
	if v != math.Trunc(v) || v < float64(LevelTrace) || v > float64(LevelError) {
		return 0, fmt.Errorf("%w: %v", ErrUnknownLevel, v)
	}
	return Level(v), nil
}
