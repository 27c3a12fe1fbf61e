package trace

// Predicate is a pure function over (event kind, events observed so far,
// current stack depth) used by concrete loggers to decide whether to emit a
// structured trace record for an event, in addition to updating its
// counters. Terminate and Timeout always trigger emission regardless of
// what the predicate returns; that rule lives in each concrete logger, not
// here, so the predicate itself stays pure.
type Predicate func(kind Kind, eventsSoFar, stackDepth int) bool

// PredicateOption configures one optional criterion of a composed
// Predicate. Any criterion that matches causes emission (logical OR).
type PredicateOption func(*predicateConfig)

type predicateConfig struct {
	strengthenOnly   bool
	every            int
	stackDepth       int
	hasStackDepth    bool
	maxStackDepth    int
	hasMaxStackDepth bool
}

// WithStrengthenOnly emits iff the event is Strengthen.
func WithStrengthenOnly() PredicateOption {
	return func(c *predicateConfig) { c.strengthenOnly = true }
}

// WithEvery emits iff eventsSoFar is a positive multiple of n. n <= 0 is a
// no-op (the criterion is left disabled).
func WithEvery(n int) PredicateOption {
	return func(c *predicateConfig) {
		if n > 0 {
			c.every = n
		}
	}
}

// WithStackDepth emits iff the current stack depth equals d exactly.
func WithStackDepth(d int) PredicateOption {
	return func(c *predicateConfig) {
		c.hasStackDepth = true
		c.stackDepth = d
	}
}

// WithMaxStackDepth emits iff the current stack depth is at most d.
func WithMaxStackDepth(d int) PredicateOption {
	return func(c *predicateConfig) {
		c.hasMaxStackDepth = true
		c.maxStackDepth = d
	}
}

// NewPredicate composes zero or more criteria into a single Predicate. With
// no options, the returned predicate never fires (concrete loggers still
// always emit for Terminate/Timeout, independent of this return value).
func NewPredicate(opts ...PredicateOption) Predicate {
	cfg := &predicateConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	return func(kind Kind, eventsSoFar, stackDepth int) bool {
		if cfg.strengthenOnly && kind == Strengthen {
			return true
		}
		if cfg.every > 0 && eventsSoFar > 0 && eventsSoFar%cfg.every == 0 {
			return true
		}
		if cfg.hasStackDepth && stackDepth == cfg.stackDepth {
			return true
		}
		if cfg.hasMaxStackDepth && stackDepth <= cfg.maxStackDepth {
			return true
		}
		return false
	}
}
