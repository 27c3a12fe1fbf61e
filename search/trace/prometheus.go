package trace

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// PrometheusLogger exports search-event statistics as Prometheus metrics,
// grounded on the teacher's PrometheusMetrics: a CounterVec labeled by event
// kind and a gauge tracking the deepest stack depth observed. It embeds
// NoopLogger for timeout discipline and emits a "TIMEOUT" counter increment
// before propagating ErrTimeout, matching every other concrete logger's
// layering rule.
type PrometheusLogger struct {
	*NoopLogger

	events        *prometheus.CounterVec
	maxStackDepth prometheus.Gauge

	mu       sync.Mutex
	observed int
}

// NewPrometheusLogger registers treesearch_events_total and
// treesearch_max_stack_depth against reg and returns a logger that updates
// them as the search runs.
func NewPrometheusLogger(reg prometheus.Registerer) *PrometheusLogger {
	factory := promauto.With(reg)
	return &PrometheusLogger{
		NoopLogger: NewNoopLogger(),
		events: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "treesearch",
			Name:      "events_total",
			Help:      "Total search events observed, labeled by event kind.",
		}, []string{"event"}),
		maxStackDepth: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "treesearch",
			Name:      "max_stack_depth",
			Help:      "Deepest generator stack depth observed so far.",
		}),
	}
}

func (p *PrometheusLogger) Log(ev Event) {
	switch ev.Kind {
	case Expand, Backtrack, Prune, PruneBacktrack, Strengthen, ShortCircuit, Terminate, Timeout:
	default:
		illegalEvent(ev.Kind)
	}
	p.events.WithLabelValues(ev.Kind.String()).Inc()

	p.mu.Lock()
	if ev.StackDepth > p.observed {
		p.observed = ev.StackDepth
		p.maxStackDepth.Set(float64(p.observed))
	}
	p.mu.Unlock()
}

// EventsCounterFor returns the counter observing kind, for tests and
// callers that want to read back a specific event's count without scraping
// the registry.
func (p *PrometheusLogger) EventsCounterFor(kind Kind) prometheus.Counter {
	return p.events.WithLabelValues(kind.String())
}

// MaxStackDepthGauge returns the gauge tracking the deepest stack depth
// observed so far.
func (p *PrometheusLogger) MaxStackDepthGauge() prometheus.Gauge {
	return p.maxStackDepth
}

func (p *PrometheusLogger) LogStrengthen(objectiveJSON string, ev Event) {
	ev.Kind = Strengthen
	p.Log(ev)
}

func (p *PrometheusLogger) Timeout(ev Event) error {
	err := p.NoopLogger.Timeout(ev)
	if err != nil {
		ev.Kind = Timeout
		p.Log(ev)
	}
	return err
}
