package partition

import "github.com/Kirera-Wainaina/treesearch/search"

// Prune implements spec.md §4.4's admissibility contract for this domain.
// A partial assignment's MaxLoad only grows as more items are placed, so it
// is a valid lower bound on the max load of any completion. Once a real
// solution (a leaf incumbent) exists, a candidate whose MaxLoad already
// meets or exceeds it cannot be improved by placing the remaining items,
// and neither can any candidate tried after it: the generator enumerates
// bins in ascending current-sum order, so every later sibling's bound is
// at least as bad. That makes PruneBacktrack sound here, not just Prune.
func Prune(candidate, incumbent Node) search.Verdict {
	if !incumbent.IsLeaf() {
		return search.Below
	}
	if candidate.MaxLoad() >= incumbent.MaxLoad() {
		return search.PruneBacktrack
	}
	return search.Below
}
