// Command partition is the reference CLI driver for the number-partitioning
// search demo: it parses a problem file, runs the engine in optimization
// mode, and prints the best partition found along with a run identifier.
package main

import (
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	flags "github.com/jessevdk/go-flags"

	"github.com/Kirera-Wainaina/treesearch/internal/partition"
	"github.com/Kirera-Wainaina/treesearch/search"
	"github.com/Kirera-Wainaina/treesearch/search/trace"
)

type options struct {
	Timeout       int  `long:"timeout" description:"iteration cap on the search (0 disables)"`
	TimeoutMillis int  `long:"timeoutMillis" description:"wall-clock search timeout, in milliseconds (0 disables)"`
	CountLogger   bool `long:"countlogger" description:"trace with a counting JSONL logger on stdout"`
	HistLogger    bool `long:"histlogger" description:"trace with a per-depth histogram JSONL logger on stdout"`
	Strengthen    bool `long:"strengthen" description:"trace predicate: emit on every STRENGTHEN event"`
	Evts          int  `long:"evts" description:"trace predicate: emit every N events (0 disables)"`
	StackDepth    int  `long:"stackdepth" default:"-1" description:"trace predicate: emit when stack depth equals this exactly (-1 disables)"`
	MaxStackDepth int  `long:"maxstackdepth" default:"-1" description:"trace predicate: emit when stack depth is at most this (-1 disables)"`

	Positional struct {
		ProblemFile string `positional-arg-name:"problem-file"`
	} `positional-args:"yes" required:"yes"`
}

func main() {
	var opts options
	parser := flags.NewParser(&opts, flags.IgnoreUnknown)
	if _, err := parser.Parse(); err != nil {
		log.Fatalf("partition: %v", err)
	}

	runID := uuid.New().String()

	f, err := os.Open(opts.Positional.ProblemFile)
	if err != nil {
		log.Fatalf("partition: %v", err)
	}
	defer f.Close()

	inst, err := partition.Parse(f)
	if err != nil {
		log.Fatalf("partition: %v", err)
	}

	logger := buildLogger(opts)

	if opts.Timeout > 0 {
		logger.SetIterationCap(opts.Timeout)
	}
	if opts.TimeoutMillis > 0 {
		logger.SetWallTimeout(time.Duration(opts.TimeoutMillis) * time.Millisecond)
	}

	engine := search.New[partition.Node, int](partition.Objective, logger)

	root := inst.Root()
	result, err := engine.Optimize(root, partition.NewGenerator(root), partition.Prune, inst.ShortCircuitTarget())
	if err != nil {
		log.Fatalf("partition: run %s: %v", runID, err)
	}

	log.Printf("run %s: max bin load %d, bins %v", runID, result.MaxLoad(), result.Bins())
}

func buildLogger(opts options) trace.Logger {
	var predOpts []trace.PredicateOption
	if opts.Strengthen {
		predOpts = append(predOpts, trace.WithStrengthenOnly())
	}
	if opts.Evts > 0 {
		predOpts = append(predOpts, trace.WithEvery(opts.Evts))
	}
	if opts.StackDepth >= 0 {
		predOpts = append(predOpts, trace.WithStackDepth(opts.StackDepth))
	}
	if opts.MaxStackDepth >= 0 {
		predOpts = append(predOpts, trace.WithMaxStackDepth(opts.MaxStackDepth))
	}
	predicate := trace.NewPredicate(predOpts...)

	switch {
	case opts.HistLogger:
		return trace.NewHistogramLogger(os.Stdout, predicate)
	case opts.CountLogger:
		return trace.NewCountLogger(os.Stdout, predicate)
	default:
		return trace.NewNoopLogger()
	}
}
