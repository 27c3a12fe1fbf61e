package search

import "cmp"

// Option configures an Engine at construction time, mirroring the
// teacher's functional-option pattern (graph.Option / graph.WithMaxSteps)
// simplified for a domain with no fallible options.
type Option[N any, T cmp.Ordered] func(*Engine[N, T])

// WithRender overrides the default textual rendering (fmt.Sprint) used when
// a Strengthen event's objective value is serialized into a trace record.
func WithRender[N any, T cmp.Ordered](render func(T) string) Option[N, T] {
	return func(e *Engine[N, T]) {
		e.render = render
	}
}
