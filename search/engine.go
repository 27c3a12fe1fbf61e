package search

import (
	"cmp"
	"fmt"

	"github.com/Kirera-Wainaina/treesearch/search/trace"
)

// Objective computes the value the engine maximizes (Optimize, Decide) or
// accumulates (Enumerate) for a node. T must be a totally ordered type with
// a strict less-than and equality, which cmp.Ordered captures directly for
// every built-in numeric and string type without inventing a bespoke
// comparison interface.
type Objective[N any, T cmp.Ordered] func(node N) T

// Accumulator folds objective values across an enumeration search. Add must
// behave as a commutative monoid operation; Value reports the current fold.
type Accumulator[T any] interface {
	Add(T)
	Value() T
}

// Engine is the DFS branch-and-bound search engine. A single value is
// reused across Enumerate/Optimize/Decide calls; per spec.md's "no global
// state" design note, every call is fully independent and safe to repeat.
type Engine[N any, T cmp.Ordered] struct {
	objective Objective[N, T]
	logger    trace.Logger
	render    func(T) string
}

// New constructs an Engine. If logger is nil, a NoopLogger is used (no
// observability, no timeout discipline).
func New[N any, T cmp.Ordered](objective Objective[N, T], logger trace.Logger, opts ...Option[N, T]) *Engine[N, T] {
	if logger == nil {
		logger = trace.NewNoopLogger()
	}
	e := &Engine[N, T]{objective: objective, logger: logger}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Engine[N, T]) renderObjective(v T) string {
	if e.render != nil {
		return e.render(v)
	}
	return fmt.Sprint(v)
}

// snapshot builds the trace event for kind from the current generator
// stack. Callers control exactly which stack state (pre-push, post-pop,
// post-pop-after-discard) is visible at the moment they call this, since
// that's what determines the recorded path/residual arrays.
func snapshot[N any](kind trace.Kind, iter int, stack []*CountingGenerator[N]) trace.Event {
	depth := len(stack)
	path := make([]int, depth)
	residual := make([]int, depth)
	for i, g := range stack {
		path[i] = g.AdvanceCount()
		residual[i] = g.Residual()
	}
	return trace.Event{Kind: kind, Iter: iter, StackDepth: depth, Path: path, Stack: residual}
}

// Enumerate performs unconstrained exhaustive enumeration: every node in the
// tree is visited exactly once, the objective of every node other than the
// root is folded into acc via commutative-monoid addition (the root's own
// objective is not added), and the final accumulated value is returned.
func (e *Engine[N, T]) Enumerate(root N, rootChildren Generator[N], acc Accumulator[T]) (T, error) {
	var zero T
	if rootChildren == nil {
		panic(&EngineError{Message: "root generator must not be nil", Code: "CONTRACT_VIOLATION"})
	}

	iter := 0
	stack := make([]*CountingGenerator[N], 0, 8)

	e.logger.Log(snapshot[N](trace.Expand, iter, stack))
	stack = append(stack, newCountingGenerator(rootChildren))

	for len(stack) > 0 {
		iter++
		if err := e.logger.Timeout(snapshot[N](trace.Unspecified, iter, stack)); err != nil {
			return zero, err
		}

		top := stack[len(stack)-1]
		if top.Residual() > 0 {
			child, ok := top.Advance()
			if !ok {
				panic(&EngineError{Message: "generator reported positive residual but advance failed", Code: "CONTRACT_VIOLATION"})
			}
			acc.Add(e.objective(child))
			e.logger.Log(snapshot[N](trace.Expand, iter, stack))
			stack = append(stack, newCountingGenerator(top.Children(child)))
			continue
		}

		stack = stack[:len(stack)-1]
		e.logger.Log(snapshot[N](trace.Backtrack, iter, stack))
	}

	e.logger.Log(snapshot[N](trace.Terminate, iter, stack))
	return acc.Value(), nil
}

// Optimize performs branch-and-bound maximization. The caller asserts the
// three admissibility preconditions from spec.md §4.4: objective(root) is a
// lower bound on any reachable value, prune never excludes a subtree
// containing an improving node, and shortCircuitAt (if non-nil) is a true
// upper bound on any reachable value.
func (e *Engine[N, T]) Optimize(root N, rootChildren Generator[N], prune PruneFunc[N], shortCircuitAt *T) (N, error) {
	if rootChildren == nil {
		panic(&EngineError{Message: "root generator must not be nil", Code: "CONTRACT_VIOLATION"})
	}

	iter := 0
	stack := make([]*CountingGenerator[N], 0, 8)

	incumbent := root
	objIncumbent := e.objective(root)

	e.logger.Log(snapshot[N](trace.Expand, iter, stack))
	stack = append(stack, newCountingGenerator(rootChildren))

	for len(stack) > 0 {
		iter++
		if err := e.logger.Timeout(snapshot[N](trace.Unspecified, iter, stack)); err != nil {
			var zero N
			return zero, err
		}

		top := stack[len(stack)-1]
		if top.Residual() > 0 {
			child, ok := top.Advance()
			if !ok {
				panic(&EngineError{Message: "generator reported positive residual but advance failed", Code: "CONTRACT_VIOLATION"})
			}
			objChild := e.objective(child)

			if objChild > objIncumbent {
				incumbent = child
				objIncumbent = objChild
				ev := snapshot[N](trace.Strengthen, iter, stack)
				e.logger.LogStrengthen(e.renderObjective(objChild), ev)

				if shortCircuitAt != nil && objChild == *shortCircuitAt {
					e.logger.Log(snapshot[N](trace.ShortCircuit, iter, stack))
					e.logger.Log(snapshot[N](trace.Terminate, iter, stack))
					return incumbent, nil
				}

				e.logger.Log(snapshot[N](trace.Expand, iter, stack))
				stack = append(stack, newCountingGenerator(top.Children(child)))
				continue
			}

			verdict := prune(child, incumbent)
			switch verdict {
			case Below:
				e.logger.Log(snapshot[N](trace.Expand, iter, stack))
				stack = append(stack, newCountingGenerator(top.Children(child)))
			case Prune:
				e.logger.Log(snapshot[N](trace.Prune, iter, stack))
			case PruneBacktrack:
				stack = stack[:len(stack)-1]
				e.logger.Log(snapshot[N](trace.PruneBacktrack, iter, stack))
			default:
				illegalVerdict(verdict)
			}
			continue
		}

		stack = stack[:len(stack)-1]
		e.logger.Log(snapshot[N](trace.Backtrack, iter, stack))
	}

	e.logger.Log(snapshot[N](trace.Terminate, iter, stack))
	return incumbent, nil
}

// Decide is a thin specialization of Optimize: it runs optimization with a
// required short-circuit target and reports whether the returned node's
// objective actually equals that target (found == false is the "none"
// sentinel from spec.md §4.5).
func (e *Engine[N, T]) Decide(root N, rootChildren Generator[N], prune PruneFunc[N], target T) (node N, found bool, err error) {
	result, err := e.Optimize(root, rootChildren, prune, &target)
	if err != nil {
		var zero N
		return zero, false, err
	}
	if e.objective(result) == target {
		return result, true, nil
	}
	var zero N
	return zero, false, nil
}
