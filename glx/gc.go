package glx

import (
	"log/slog"
	"reflect"
	"runtime"
)

type released interface{ isReleased() bool }

// registerWithGC logs a warning if value is garbage collected before its
// Release was called. The finalizer must not issue driver calls itself
// since the collector may run it off the context thread.
func registerWithGC[T released](value T) T {
	runtime.SetFinalizer(value, warnLeaked[T])

	return value
}

func warnLeaked[T released](value T) {
	if value.isReleased() {
		return
	}

	typ := reflect.TypeOf(value).String()
	slog.Warn("GPU object was garbage collected without Release", slog.String("type", typ))
}
