// Package location derives a free-text call-site description for log records.
//
// Capture is best-effort: optimized or stripped builds (TinyGo in particular)
// may report no frames at all, in which case Resolve falls back to a fixed
// sentinel instead of failing.
package location

import (
	"runtime"
	"strconv"
	"strings"
)

const (
	// Unknown is the fallback location used when no caller frame can be derived.
	Unknown = "guest::unknown"

	// separator joins a frame's function name and its source location.
	separator = "@"

	// topLevelMarker is the frame every goroutine stack ends in; it names no caller.
	topLevelMarker = "runtime.goexit"

	maxDepth = 32
)

// skippedPrefixes lists the packages whose frames are never reported as the caller.
var skippedPrefixes = []string{
	"github.com/hostlink/logbridge/logging.",
	"github.com/hostlink/logbridge/logging/location.",
}

// syntheticLocations do not correspond to caller source.
var syntheticLocations = map[string]struct{}{
	"<autogenerated>": {},
	"[native code]":   {},
}

// Capture returns the current goroutine stack as "name@file:line" frames,
// innermost first, excluding frames from the logging packages. Frames from
// the runtime package carry their name only.
func Capture() (frames []string) {
	defer func() {
		if recover() != nil {
			frames = nil
		}
	}()

	pcs := make([]uintptr, maxDepth)
	n := runtime.Callers(2, pcs)
	if n == 0 {
		return nil
	}

	it := runtime.CallersFrames(pcs[:n])
	for {
		f, more := it.Next()
		if !skipped(f.Function) {
			frames = append(frames, format(f))
		}
		if !more {
			break
		}
	}
	return frames
}

// Derive picks the first usable frame and renders it as a location string.
// It reports false when no frame is usable.
func Derive(frames []string) (string, bool) {
	for _, frame := range frames {
		name, loc, _ := strings.Cut(frame, separator)
		if name == "" {
			continue
		}
		if _, ok := syntheticLocations[loc]; ok {
			continue
		}

		segments := make([]string, 0, 2)
		for _, s := range []string{name, loc} {
			if s != "" {
				segments = append(segments, s)
			}
		}

		derived := strings.Join(segments, separator)
		if derived == topLevelMarker {
			return "", false
		}
		return derived, true
	}
	return "", false
}

// Resolve derives a location from stack, returning fallback when stack is
// nil, panics, or yields no usable frame.
func Resolve(stack func() []string, fallback string) (loc string) {
	if stack == nil {
		return fallback
	}

	defer func() {
		if recover() != nil {
			loc = fallback
		}
	}()

	if derived, ok := Derive(stack()); ok {
		return derived
	}
	return fallback
}

func skipped(function string) bool {
	for _, prefix := range skippedPrefixes {
		if strings.HasPrefix(function, prefix) {
			return true
		}
	}
	return false
}

func format(f runtime.Frame) string {
	if f.Function == "" {
		return separator + f.File
	}
	if strings.HasPrefix(f.Function, "runtime.") {
		return f.Function
	}
	if _, ok := syntheticLocations[f.File]; ok || f.File == "" {
		return f.Function + separator + f.File
	}
	return f.Function + separator + f.File + ":" + strconv.Itoa(f.Line)
}
