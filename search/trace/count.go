package trace

import (
	"io"
	"sync"
)

// CountLogger accumulates a repeat counter per event kind (plus an
// at-most-once iteration timestamp for Terminate and Timeout, and the
// maximum observed stack depth), and writes a structured JSON trace record
// to w whenever the configured Predicate fires or the event is
// Terminate/Timeout (which always fire, predicate notwithstanding).
//
// CountLogger embeds NoopLogger for timeout discipline and additionally
// emits a Timeout trace record immediately before propagating ErrTimeout.
type CountLogger struct {
	*NoopLogger

	predicate Predicate
	w         io.Writer

	mu            sync.Mutex
	counts        map[Kind]int
	maxStackDepth int
	totalEvents   int
	terminateAt   int
	timeoutAt     int
}

// NewCountLogger returns a CountLogger that writes JSONL trace records to w,
// emitting a record whenever predicate matches (in addition to the
// always-emitted Terminate/Timeout records).
func NewCountLogger(w io.Writer, predicate Predicate) *CountLogger {
	if predicate == nil {
		predicate = NewPredicate()
	}
	return &CountLogger{
		NoopLogger:  NewNoopLogger(),
		predicate:   predicate,
		w:           w,
		counts:      make(map[Kind]int),
		terminateAt: -1,
		timeoutAt:   -1,
	}
}

func (c *CountLogger) Log(ev Event) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.recordLocked(ev, "")
}

func (c *CountLogger) LogStrengthen(objectiveJSON string, ev Event) {
	ev.Kind = Strengthen
	c.mu.Lock()
	defer c.mu.Unlock()
	c.recordLocked(ev, objectiveJSON)
}

func (c *CountLogger) Timeout(ev Event) error {
	err := c.NoopLogger.Timeout(ev)
	if err != nil {
		ev.Kind = Timeout
		c.mu.Lock()
		c.recordLocked(ev, "")
		c.mu.Unlock()
	}
	return err
}

func (c *CountLogger) recordLocked(ev Event, objective string) {
	if ev.StackDepth > c.maxStackDepth {
		c.maxStackDepth = ev.StackDepth
	}
	c.totalEvents++

	alwaysEmit := false
	switch ev.Kind {
	case Terminate:
		if c.terminateAt < 0 {
			c.terminateAt = ev.Iter
		}
		alwaysEmit = true
	case Timeout:
		if c.timeoutAt < 0 {
			c.timeoutAt = ev.Iter
		}
		alwaysEmit = true
	case Expand, Backtrack, Prune, PruneBacktrack, Strengthen, ShortCircuit:
		c.counts[ev.Kind]++
	default:
		illegalEvent(ev.Kind)
	}

	if !alwaysEmit && !c.predicate(ev.Kind, c.totalEvents, ev.StackDepth) {
		return
	}

	rec := map[string]any{
		"iter":          ev.Iter,
		"event":         ev.Kind.String(),
		"stackDepth":    ev.StackDepth,
		"path":          ev.Path,
		"stack":         ev.Stack,
		"maxStackDepth": c.maxStackDepth,
		"evts":          c.totalEvents,
	}
	if objective != "" {
		rec["objective"] = objective
	}
	for _, k := range repeatKinds {
		rec[fieldName(k)] = c.counts[k]
	}
	if c.terminateAt >= 0 {
		rec["terminateAt"] = c.terminateAt
	}
	if c.timeoutAt >= 0 {
		rec["timeoutAt"] = c.timeoutAt
	}
	writeRecord(c.w, rec)
}
