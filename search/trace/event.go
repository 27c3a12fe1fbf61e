// Package trace defines the search engine's event model and the logger
// capability that consumes it: a closed set of search events, the trace
// record shape they produce, and the pure predicate used to decide which
// events are worth a structured record in addition to a counter bump.
package trace

// Kind identifies a search event. The closed set matches spec.md's event
// model exactly: Expand, Backtrack, Prune, PruneBacktrack, Strengthen,
// ShortCircuit, Terminate, Timeout. Unspecified is never itself a logged
// event; it exists only as the zero value for snapshots taken purely to
// check for timeout, where the logger does not need a Kind.
type Kind int

const (
	Unspecified Kind = iota
	Expand
	Backtrack
	Prune
	PruneBacktrack
	Strengthen
	ShortCircuit
	Terminate
	Timeout
)

// String renders a Kind using the same uppercase names spec.md's event set
// uses, which is also what ends up in a trace record's "event" field.
func (k Kind) String() string {
	switch k {
	case Expand:
		return "EXPAND"
	case Backtrack:
		return "BACKTRACK"
	case Prune:
		return "PRUNE"
	case PruneBacktrack:
		return "PRUNEBACKTRACK"
	case Strengthen:
		return "STRENGTHEN"
	case ShortCircuit:
		return "SHORTCIRCUIT"
	case Terminate:
		return "TERMINATE"
	case Timeout:
		return "TIMEOUT"
	default:
		return "UNSPECIFIED"
	}
}

// Event is a snapshot of the engine's state at the moment a search event
// occurred (or, for a Timeout check, the moment the check happened). Path
// and Stack both have length StackDepth: Path[i] is the i-th generator's
// advance count, Stack[i] is its residual. The engine builds these directly
// from its generator stack so that no Logger implementation ever needs to
// know anything about the node type N.
type Event struct {
	Kind       Kind
	Iter       int
	StackDepth int
	Path       []int
	Stack      []int
}
