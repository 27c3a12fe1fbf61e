package search

import "github.com/Kirera-Wainaina/treesearch/search/trace"

// ErrTimeout is returned by Enumerate, Optimize, and Decide when the
// configured iteration cap or wall-clock deadline is reached. It is the only
// failure the engine itself may raise during a search; the caller is
// expected to recover from it. It is the same sentinel a trace.Logger's
// Timeout method returns, so callers can use errors.Is against either name.
var ErrTimeout = trace.ErrTimeout

// EngineError reports a contract violation discovered at construction time
// or, via panic, a programmer error discovered mid-search (an illegal prune
// verdict). It mirrors the teacher's EngineError{Message, Code} shape.
type EngineError struct {
	Message string
	Code    string
}

func (e *EngineError) Error() string {
	if e.Code != "" {
		return e.Code + ": " + e.Message
	}
	return e.Message
}

// illegalVerdict panics with an ILLEGAL_PRUNE_VERDICT error. It is only
// reachable when a PruneFunc implementation returns a Verdict value outside
// the closed three-value set, which the spec treats as a programmer bug
// that must abort the search rather than propagate as a recoverable error.
func illegalVerdict(v Verdict) {
	panic(&EngineError{
		Message: "prune function returned an illegal verdict: " + v.String(),
		Code:    "ILLEGAL_PRUNE_VERDICT",
	})
}
