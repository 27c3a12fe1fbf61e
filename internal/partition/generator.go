package partition

import (
	"sort"

	"github.com/Kirera-Wainaina/treesearch/search"
)

// generator assigns the next unplaced item to one bin per distinct current
// bin sum, in ascending-sum order. Trying two bins with an equal sum would
// only ever produce isomorphic partitions, so only the first is tried; this
// is the "dominance-based bulk pruning" this package's generator performs
// ahead of the prune function ever running (see prune.go for the
// complementary bound-based cut).
type generator struct {
	node  Node
	order []int
	idx   int
}

func newGenerator(node Node) *generator {
	if node.IsLeaf() {
		return &generator{node: node}
	}
	return &generator{node: node, order: distinctAscendingBins(node.bins)}
}

// NewGenerator is the exported root-generator constructor used by callers
// of the search engine (the CLI, tests).
func NewGenerator(root Node) search.Generator[Node] {
	return newGenerator(root)
}

func distinctAscendingBins(bins []int) []int {
	idx := make([]int, len(bins))
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(a, b int) bool {
		if bins[idx[a]] != bins[idx[b]] {
			return bins[idx[a]] < bins[idx[b]]
		}
		return idx[a] < idx[b]
	})

	order := make([]int, 0, len(idx))
	seen := false
	lastSum := 0
	for _, i := range idx {
		if seen && bins[i] == lastSum {
			continue
		}
		order = append(order, i)
		lastSum = bins[i]
		seen = true
	}
	return order
}

func (g *generator) Residual() int {
	if g.node.IsLeaf() {
		return 0
	}
	return len(g.order) - g.idx
}

func (g *generator) Advance() (Node, bool) {
	if g.idx >= len(g.order) {
		var zero Node
		return zero, false
	}
	binIdx := g.order[g.idx]
	g.idx++

	newBins := make([]int, len(g.node.bins))
	copy(newBins, g.node.bins)
	newBins[binIdx] += g.node.items[g.node.depth]

	return Node{
		items: g.node.items,
		k:     g.node.k,
		depth: g.node.depth + 1,
		bins:  newBins,
	}, true
}

func (g *generator) Children(node Node) search.Generator[Node] {
	return newGenerator(node)
}
