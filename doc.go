// Package fastbench is a deterministic micro-benchmark harness for
// rank/predecessor search over a sorted set of 32-bit keys.
//
// The harness compares ordered-index engines — the cache-optimized FAST
// static search tree (consumed through its C library) against general
// purpose ordered stores (google/btree, a sorted slice, bbolt, mdbx,
// rocksdb, sqlite) — by driving every engine through the same realized
// query sequence and reporting throughput and mean latency per engine.
//
// Workloads are fully deterministic: the key set is keys[i] = i*3 + 1 and
// queries come from a fixed-seed LCG, so runs are byte-identical across
// processes and across the sibling harnesses written in other languages.
// Records are emitted one JSON object per line so outputs can be
// concatenated and compared by external tooling.
//
// Basic usage:
//
//	w, err := fastbench.NewWorkload(1_000_000, 5_000_000, fastbench.DefaultSeed)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	eng, err := engines.Open("btree", w.Keys, "")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer eng.Close()
//
//	res := fastbench.Measure(eng, w.Queries)
//	rec := fastbench.NewRecord("go", runtime.Version(), eng.Name(),
//	    len(w.Keys), res.Queries, res.Elapsed.Seconds())
//	fmt.Println(rec.JSONLine())
package fastbench
