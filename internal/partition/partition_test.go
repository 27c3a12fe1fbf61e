package partition_test

import (
	"strings"
	"testing"

	"github.com/Kirera-Wainaina/treesearch/internal/partition"
	"github.com/Kirera-Wainaina/treesearch/search"
	"github.com/Kirera-Wainaina/treesearch/search/trace"
)

// captureLogger records every event kind the engine logs, in order, so a
// test can assert a particular event was emitted without parsing a JSONL
// stream. It embeds NoopLogger for the timeout discipline.
type captureLogger struct {
	*trace.NoopLogger
	kinds []trace.Kind
}

func newCaptureLogger() *captureLogger {
	return &captureLogger{NoopLogger: trace.NewNoopLogger()}
}

func (c *captureLogger) Log(ev trace.Event) {
	c.kinds = append(c.kinds, ev.Kind)
}

func (c *captureLogger) LogStrengthen(_ string, ev trace.Event) {
	c.kinds = append(c.kinds, trace.Strengthen)
}

func (c *captureLogger) count(kind trace.Kind) int {
	n := 0
	for _, k := range c.kinds {
		if k == kind {
			n++
		}
	}
	return n
}

func TestParse_ValidInstance(t *testing.T) {
	src := strings.NewReader(`
# comment line, skipped
8
3
5
4
3
3
2
2
2
1
1
`)
	inst, err := partition.Parse(src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if inst.KnownOptimum != 8 || inst.K != 3 {
		t.Fatalf("got KnownOptimum=%d K=%d", inst.KnownOptimum, inst.K)
	}
	want := []int{5, 4, 3, 3, 2, 2, 2, 1, 1}
	if len(inst.Items) != len(want) {
		t.Fatalf("got %d items, want %d", len(inst.Items), len(want))
	}
	for i, v := range want {
		if inst.Items[i] != v {
			t.Fatalf("item %d: got %d, want %d", i, inst.Items[i], v)
		}
	}
}

func TestParse_UnknownOptimum(t *testing.T) {
	src := strings.NewReader("-1\n2\n3\n2\n1\n")
	inst, err := partition.Parse(src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if inst.KnownOptimum != -1 {
		t.Fatalf("want -1, got %d", inst.KnownOptimum)
	}
	if inst.ShortCircuitTarget() != nil {
		t.Fatal("want nil short-circuit target when optimum is unknown")
	}
}

func TestParse_RejectsIncreasingItems(t *testing.T) {
	src := strings.NewReader("-1\n2\n1\n2\n")
	if _, err := partition.Parse(src); err == nil {
		t.Fatal("want error for non-increasing violation")
	}
}

func TestParse_RejectsTooFewLines(t *testing.T) {
	if _, err := partition.Parse(strings.NewReader("-1\n")); err == nil {
		t.Fatal("want error for missing k line")
	}
}

func TestParse_RejectsBadK(t *testing.T) {
	if _, err := partition.Parse(strings.NewReader("-1\n1\n5\n")); err == nil {
		t.Fatal("want error for k < 2")
	}
}

// solveOptimally runs the full engine against a small instance and returns
// the best max bin load found.
func solveOptimally(t *testing.T, items []int, k int) int {
	t.Helper()
	inst := &partition.Instance{KnownOptimum: -1, K: k, Items: items}
	eng := search.New[partition.Node, int](partition.Objective, nil)
	root := inst.Root()
	result, err := eng.Optimize(root, partition.NewGenerator(root), partition.Prune, inst.ShortCircuitTarget())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return result.MaxLoad()
}

func TestOptimize_TwoEqualItemsTwoBins(t *testing.T) {
	if got := solveOptimally(t, []int{4, 4}, 2); got != 4 {
		t.Fatalf("want max load 4, got %d", got)
	}
}

func TestOptimize_KnownScenarioSix(t *testing.T) {
	items := []int{5, 4, 3, 3, 2, 2, 2, 1, 1}
	if got := solveOptimally(t, items, 3); got != 8 {
		t.Fatalf("want optimal max load 8, got %d", got)
	}
}

func TestOptimize_KnownScenarioSix_EmitsShortCircuit(t *testing.T) {
	inst := &partition.Instance{KnownOptimum: 8, K: 3, Items: []int{5, 4, 3, 3, 2, 2, 2, 1, 1}}
	logger := newCaptureLogger()
	eng := search.New[partition.Node, int](partition.Objective, logger)
	root := inst.Root()

	result, err := eng.Optimize(root, partition.NewGenerator(root), partition.Prune, inst.ShortCircuitTarget())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := result.MaxLoad(); got != 8 {
		t.Fatalf("want optimal max load 8, got %d", got)
	}
	if got := logger.count(trace.ShortCircuit); got != 1 {
		t.Fatalf("want exactly 1 SHORTCIRCUIT event when the best-case ceiling equals the known optimum, got %d", got)
	}
}

func TestOptimize_SingleBinTakesEverything(t *testing.T) {
	items := []int{5, 4, 3}
	if got := solveOptimally(t, items, 1); got != 12 {
		t.Fatalf("want max load 12 (the sum), got %d", got)
	}
}

func TestShortCircuitTarget_NegatesKnownOptimum(t *testing.T) {
	inst := &partition.Instance{KnownOptimum: 8, K: 3, Items: []int{5, 3}}
	target := inst.ShortCircuitTarget()
	if target == nil || *target != -8 {
		t.Fatalf("want -8, got %v", target)
	}
}

func TestGenerator_SkipsSymmetricBins(t *testing.T) {
	inst := &partition.Instance{KnownOptimum: -1, K: 3, Items: []int{5}}
	root := inst.Root()
	gen := partition.NewGenerator(root)
	if got := gen.Residual(); got != 1 {
		t.Fatalf("want residual 1 (all bins tied at 0, only one tried), got %d", got)
	}
}

func TestPrune_NoIncumbentYetNeverPrunes(t *testing.T) {
	inst := &partition.Instance{KnownOptimum: -1, K: 2, Items: []int{5, 3}}
	root := inst.Root()
	if v := partition.Prune(root, root); v != search.Below {
		t.Fatalf("want Below while incumbent is still the (non-leaf) root, got %v", v)
	}
}
