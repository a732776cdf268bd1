package fastbench

import (
	"runtime"
	"time"
)

// Index is the uniform operation the harness measures: predecessor
// lookup returning the 0-based position of the greatest key <= query,
// or a negative value when the query precedes every key.
type Index interface {
	Lookup(key int32) int64
}

// WarmupCap bounds the warm-up pass. Matches the other language ports.
const WarmupCap = 100_000

// Result is the outcome of one measured pass over a query sequence.
// Sink accumulates every lookup result (warm-up included) so the
// compiler cannot prove the lookups unused; it must be consumed by the
// caller (logged or folded into output) for that guarantee to hold.
type Result struct {
	Elapsed time.Duration
	Queries int
	Sink    int64
}

// Measure drives idx through the full query sequence: a warm-up pass of
// min(len(queries), WarmupCap) lookups to fault in memory and settle
// branch predictors, a GC to keep setup garbage out of the timed
// region, then the timed pass over every query in order. Wall time of
// the timed pass is the sole measured quantity.
//
// The caller must not mutate queries and must run Measure from a single
// goroutine per engine; timed passes of different engines must not
// overlap if results are to be comparable.
func Measure(idx Index, queries []int32) Result {
	warmup := len(queries)
	if warmup > WarmupCap {
		warmup = WarmupCap
	}

	var sink int64
	for i := 0; i < warmup; i++ {
		sink += idx.Lookup(queries[i])
	}

	runtime.GC()

	start := time.Now()
	for _, q := range queries {
		sink += idx.Lookup(q)
	}
	elapsed := time.Since(start)

	return Result{Elapsed: elapsed, Queries: len(queries), Sink: sink}
}
