package trace

import (
	"sync/atomic"
	"time"
)

// NoopLogger implements Logger by discarding every event and implementing
// only the timeout discipline. Concrete loggers embed one to inherit that
// discipline rather than reimplementing it.
type NoopLogger struct {
	iterationCap int // negative disables the cap
	deadline     atomic.Bool
}

// NewNoopLogger returns a NoopLogger with no iteration cap or wall-clock
// deadline configured.
func NewNoopLogger() *NoopLogger {
	return &NoopLogger{iterationCap: -1}
}

// Log discards the event.
func (n *NoopLogger) Log(ev Event) {}

// LogStrengthen discards the event.
func (n *NoopLogger) LogStrengthen(objectiveJSON string, ev Event) {}

// SetIterationCap sets the iteration bound. A negative value disables it.
func (n *NoopLogger) SetIterationCap(bound int) {
	n.iterationCap = bound
}

// SetWallTimeout arms a deadline that fires after d by spawning a single
// detached timer. A non-positive duration arms nothing. A timer armed by an
// earlier call is never cancelled: it still sets the deadline flag when it
// fires, so callers configure this once per search.
func (n *NoopLogger) SetWallTimeout(d time.Duration) {
	if d <= 0 {
		return
	}
	n.deadline.Store(false)
	time.AfterFunc(d, func() {
		n.deadline.Store(true)
	})
}

// Timeout fails with ErrTimeout once the deadline flag has been set by the
// timer goroutine, or once the iteration count reaches the configured cap.
func (n *NoopLogger) Timeout(ev Event) error {
	if n.deadline.Load() {
		return ErrTimeout
	}
	if n.iterationCap >= 0 && ev.Iter >= n.iterationCap {
		return ErrTimeout
	}
	return nil
}
