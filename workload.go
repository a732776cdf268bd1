package fastbench

import (
	"github.com/fastbench/fastbench/internal/lcg"
)

// DefaultSeed is the query-stream seed shared by all language ports.
const DefaultSeed uint64 = 42

// Default workload dimensions, used when the process surface supplies
// nothing usable.
const (
	DefaultTreeSize   = 1_000_000
	DefaultNumQueries = 5_000_000
)

// Workload is the realized input for one benchmark run: the sorted key
// set every engine indexes and the query sequence every engine answers.
// Both slices are immutable after construction and are shared by
// reference across engines so all of them see identical inputs.
type Workload struct {
	Keys    []int32
	Queries []int32
}

// MaxKey returns the largest key in the set.
func (w *Workload) MaxKey() int32 {
	return w.Keys[len(w.Keys)-1]
}

// GenerateKeys builds the sorted key set keys[i] = i*3 + 1. The spacing
// is arbitrary but fixed: changing it would desynchronize this harness
// from the ports in other languages. treeSize must be >= 1 so a maximum
// key exists for query reduction.
func GenerateKeys(treeSize int) ([]int32, error) {
	if treeSize < 1 {
		return nil, Errorf(ErrInvalidConfig, "tree size %d, must be >= 1", treeSize)
	}
	keys := make([]int32, treeSize)
	for i := range keys {
		keys[i] = int32(i*3 + 1)
	}
	return keys, nil
}

// GenerateQueries draws numQueries values uniformly-ish from
// [0, maxKey] using the shared LCG: each draw takes the top 31 bits of
// the advanced state reduced by a Euclidean remainder. The stream is
// materialized eagerly so every engine iterates the same realized
// values in the same order.
func GenerateQueries(numQueries int, maxKey int32, seed uint64) ([]int32, error) {
	if numQueries < 1 {
		return nil, Errorf(ErrInvalidConfig, "query count %d, must be >= 1", numQueries)
	}
	src := lcg.New(seed)
	mod := maxKey + 1
	queries := make([]int32, numQueries)
	for i := range queries {
		q := src.Int31() % mod
		if q < 0 {
			q += mod
		}
		queries[i] = q
	}
	return queries, nil
}

// NewWorkload generates the key set and query sequence for one run.
func NewWorkload(treeSize, numQueries int, seed uint64) (*Workload, error) {
	keys, err := GenerateKeys(treeSize)
	if err != nil {
		return nil, err
	}
	queries, err := GenerateQueries(numQueries, keys[len(keys)-1], seed)
	if err != nil {
		return nil, err
	}
	return &Workload{Keys: keys, Queries: queries}, nil
}
