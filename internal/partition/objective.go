package partition

import "math"

// negInf stands in for "no solution yet" for every partial (non-leaf)
// node: the engine only ever strengthens its incumbent on a value strictly
// greater than the current one, so a partial assignment can never itself
// become the incumbent, only a complete one can.
const negInf = math.MinInt

// Objective reports the search value for n: the negated max bin load for a
// complete assignment, or negInf for a partial one. Negating turns
// minimizing the max bin load into the engine's native maximization.
func Objective(n Node) int {
	if !n.IsLeaf() {
		return negInf
	}
	return -n.MaxLoad()
}
