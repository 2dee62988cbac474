package ink

import (
	"fmt"
	"log"
	"os"
)

// globalDebug enables disposed-layer checks and verbose logging. ink is
// single-threaded, so a plain package variable is enough.
var globalDebug bool

// SetDebugMode enables or disables debug mode. When enabled, use of disposed
// layers panics, large child counts are reported, and scheduling and
// per-tick timeline stats are logged.
func SetDebugMode(enabled bool) {
	globalDebug = enabled
}

// DebugMode reports whether debug mode is enabled.
func DebugMode() bool {
	return globalDebug
}

// debugf logs a message when debug mode is on.
func debugf(format string, args ...any) {
	if !globalDebug {
		return
	}
	log.Printf("ink: "+format, args...)
}

// debugTimeline prints per-tick timeline stats to stderr.
func debugTimeline(t *Timeline, finished int) {
	_, _ = fmt.Fprintf(os.Stderr,
		"[ink] t=%.3fs | attached: %d | finished this tick: %d | finished total: %d\n",
		t.now, t.Len(), finished, t.completed)
}

// debugCheckDisposed panics with a descriptive message when a disposed layer
// is used in a tree operation. Only called in debug mode.
func debugCheckDisposed(l *Layer, op string) {
	if l.disposed {
		panic(fmt.Sprintf("ink debug: %s on disposed layer %q", op, l.Name))
	}
}

// debugMaxChildCount is the child count past which a warning is printed.
// Each ripple adds one child, so a large count means ripples are leaking.
const debugMaxChildCount = 64

func debugCheckChildCount(l *Layer) {
	if len(l.children) > debugMaxChildCount {
		_, _ = fmt.Fprintf(os.Stderr, "[ink] warning: layer %q has %d children (threshold %d)\n",
			l.Name, len(l.children), debugMaxChildCount)
	}
}
