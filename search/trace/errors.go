package trace

import "errors"

// ErrTimeout is returned by Logger.Timeout when the configured iteration
// cap or wall-clock deadline has been reached.
var ErrTimeout = errors.New("trace: timeout")

// illegalEvent panics with a contract-violation error. It is reachable only
// if a Kind value outside the closed event set ever reaches a concrete
// logger's Log/LogStrengthen method, which spec.md treats as a programmer
// bug (ILLEGAL_LOG_EVENT) rather than a recoverable condition.
func illegalEvent(k Kind) {
	panic(&Error{
		Message: "logger observed an event outside the closed set: " + k.String(),
		Code:    "ILLEGAL_LOG_EVENT",
	})
}

// Error reports a contract violation raised by a concrete logger. It
// mirrors search.EngineError's shape; the two packages each own their own
// type to avoid an import cycle (search consumes trace.Logger).
type Error struct {
	Message string
	Code    string
}

func (e *Error) Error() string {
	if e.Code != "" {
		return e.Code + ": " + e.Message
	}
	return e.Message
}
