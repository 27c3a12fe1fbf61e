// Package search implements a generic, iterative depth-first search engine
// over implicitly defined trees. Nodes are opaque to the engine; callers
// supply a lazy child generator, an objective function, and (for
// optimization/decision searches) an admissible pruning predicate.
package search

// Generator is a stateful cursor over the children of a single parent node.
//
// Implementations must satisfy:
//   - Residual reports a non-negative upper bound on the number of children
//     still available. It must be zero if and only if no further children
//     remain; it may over-report but must never under-report zero.
//   - Advance is only called when Residual() > 0. It returns the next child
//     and decreases Residual() by at least one.
//   - Children returns a fresh generator for the given node's own children.
//     It must be pure with respect to the receiver's cursor state: calling it
//     does not observe or mutate the receiver, so it is safe to call on any
//     generator that happens to be at hand, not just one freshly constructed
//     for that node.
type Generator[N any] interface {
	Residual() int
	Advance() (N, bool)
	Children(node N) Generator[N]
}

// CountingGenerator decorates a Generator, preserving all of its semantics
// while additionally counting how many Advance calls have succeeded so far.
// The engine wraps every generator it pushes onto its stack in one of these,
// which is what lets trace records report a per-level advance count (the
// "path") alongside the per-level residual (the "stack") without ever
// looking at a node's contents.
type CountingGenerator[N any] struct {
	inner    Generator[N]
	advances int
}

// newCountingGenerator wraps g. The wrapper owns g for the lifetime of the
// stack frame it occupies; the engine releases it on backtrack or
// prune-backtrack.
func newCountingGenerator[N any](g Generator[N]) *CountingGenerator[N] {
	return &CountingGenerator[N]{inner: g}
}

// Residual forwards to the wrapped generator verbatim.
func (c *CountingGenerator[N]) Residual() int {
	return c.inner.Residual()
}

// Advance delegates to the wrapped generator and increments the internal
// counter when that advance succeeds, so the counter always reflects the
// number of successful advances, including the one that just happened.
func (c *CountingGenerator[N]) Advance() (N, bool) {
	child, ok := c.inner.Advance()
	if ok {
		c.advances++
	}
	return child, ok
}

// Children forwards to the wrapped generator and returns an unwrapped
// Generator[N]; the engine re-wraps it when it pushes a new stack frame.
func (c *CountingGenerator[N]) Children(node N) Generator[N] {
	return c.inner.Children(node)
}

// AdvanceCount returns the number of successful Advance calls performed so
// far on this generator.
func (c *CountingGenerator[N]) AdvanceCount() int {
	return c.advances
}
