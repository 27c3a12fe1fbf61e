package search

// Verdict is the result of a pruning decision for optimization and decision
// searches. It is a closed three-value set; any other value reaching the
// engine (only possible via an adversarial PruneFunc implementation) is a
// programmer error and aborts the search, per the ILLEGAL_PRUNE_VERDICT
// contract.
type Verdict int

const (
	// Below means the candidate did not strengthen the incumbent and was
	// not pruned: the engine descends into it normally.
	Below Verdict = iota
	// Prune means the candidate's subtree is dominated; the engine does not
	// descend into it but keeps evaluating its siblings.
	Prune
	// PruneBacktrack means the candidate's subtree and all its remaining,
	// not-yet-generated siblings are dominated; the engine discards the
	// rest of the current level and backtracks.
	PruneBacktrack
)

func (v Verdict) String() string {
	switch v {
	case Below:
		return "BELOW"
	case Prune:
		return "PRUNE"
	case PruneBacktrack:
		return "PRUNEBACKTRACK"
	default:
		return "INVALID"
	}
}

// PruneFunc is the admissible pruning predicate consumed by Optimize and
// Decide. Callers assert it never returns Prune or PruneBacktrack for a
// subtree that contains a node whose objective exceeds the incumbent's.
type PruneFunc[N any] func(candidate, incumbent N) Verdict
