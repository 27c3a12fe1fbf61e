package trace

import (
	"io"
	"sync"
)

// HistogramLogger is identical to CountLogger except that each repeat
// event kind's counter is replaced by a vector indexed by stack depth,
// grown lazily to maxStackDepth+1 as deeper levels are observed.
type HistogramLogger struct {
	*NoopLogger

	predicate Predicate
	w         io.Writer

	mu            sync.Mutex
	histograms    map[Kind][]int
	maxStackDepth int
	totalEvents   int
	terminateAt   int
	timeoutAt     int
}

// NewHistogramLogger returns a HistogramLogger that writes JSONL trace
// records to w under the same emission rule as CountLogger.
func NewHistogramLogger(w io.Writer, predicate Predicate) *HistogramLogger {
	if predicate == nil {
		predicate = NewPredicate()
	}
	return &HistogramLogger{
		NoopLogger:  NewNoopLogger(),
		predicate:   predicate,
		w:           w,
		histograms:  make(map[Kind][]int),
		terminateAt: -1,
		timeoutAt:   -1,
	}
}

func (h *HistogramLogger) Log(ev Event) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.recordLocked(ev, "")
}

func (h *HistogramLogger) LogStrengthen(objectiveJSON string, ev Event) {
	ev.Kind = Strengthen
	h.mu.Lock()
	defer h.mu.Unlock()
	h.recordLocked(ev, objectiveJSON)
}

func (h *HistogramLogger) Timeout(ev Event) error {
	err := h.NoopLogger.Timeout(ev)
	if err != nil {
		ev.Kind = Timeout
		h.mu.Lock()
		h.recordLocked(ev, "")
		h.mu.Unlock()
	}
	return err
}

func (h *HistogramLogger) bump(kind Kind, depth int) {
	bucket := h.histograms[kind]
	if depth >= len(bucket) {
		grown := make([]int, depth+1)
		copy(grown, bucket)
		bucket = grown
	}
	bucket[depth]++
	h.histograms[kind] = bucket
}

func (h *HistogramLogger) recordLocked(ev Event, objective string) {
	if ev.StackDepth > h.maxStackDepth {
		h.maxStackDepth = ev.StackDepth
	}
	h.totalEvents++

	alwaysEmit := false
	switch ev.Kind {
	case Terminate:
		if h.terminateAt < 0 {
			h.terminateAt = ev.Iter
		}
		alwaysEmit = true
	case Timeout:
		if h.timeoutAt < 0 {
			h.timeoutAt = ev.Iter
		}
		alwaysEmit = true
	case Expand, Backtrack, Prune, PruneBacktrack, Strengthen, ShortCircuit:
		h.bump(ev.Kind, ev.StackDepth)
	default:
		illegalEvent(ev.Kind)
	}

	if !alwaysEmit && !h.predicate(ev.Kind, h.totalEvents, ev.StackDepth) {
		return
	}

	rec := map[string]any{
		"iter":          ev.Iter,
		"event":         ev.Kind.String(),
		"stackDepth":    ev.StackDepth,
		"path":          ev.Path,
		"stack":         ev.Stack,
		"maxStackDepth": h.maxStackDepth,
		"evts":          h.totalEvents,
	}
	if objective != "" {
		rec["objective"] = objective
	}
	for _, k := range repeatKinds {
		rec[fieldName(k)] = h.histograms[k]
	}
	if h.terminateAt >= 0 {
		rec["terminateAt"] = h.terminateAt
	}
	if h.timeoutAt >= 0 {
		rec["timeoutAt"] = h.timeoutAt
	}
	writeRecord(h.w, rec)
}
