package trace

import "time"

// Logger is the capability contract the search engine consumes for
// observability and timeout discipline. It is deliberately small and
// N/T-free so that concrete implementations never need to know the node or
// objective type of the search they are observing.
//
// Implementations should be cheap to call: Log and LogStrengthen are called
// at least once per search event, and Timeout is called once per iteration.
type Logger interface {
	// Log records a structural event (anything other than Strengthen).
	Log(ev Event)

	// LogStrengthen records a Strengthen event, carrying the JSON
	// rendering of the new incumbent's objective value. ev.Kind is
	// Strengthen.
	LogStrengthen(objectiveJSON string, ev Event)

	// SetIterationCap configures the maximum number of iterations the
	// search may take before Timeout starts failing. A negative bound
	// disables the cap.
	SetIterationCap(bound int)

	// SetWallTimeout configures a wall-clock deadline after which Timeout
	// starts failing. A non-positive duration disables the deadline.
	SetWallTimeout(d time.Duration)

	// Timeout is polled once per iteration, before the engine advances the
	// top generator. It returns ErrTimeout if the configured iteration cap
	// or wall-clock deadline has been reached.
	Timeout(ev Event) error
}
