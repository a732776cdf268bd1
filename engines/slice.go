package engines

import "sort"

func init() {
	register("sorted_slice", newSliceEngine)
}

// sliceEngine is the stdlib baseline: binary search over the sorted
// key slice itself. It shares the workload's key slice by reference;
// the slice is immutable for the engine's lifetime.
type sliceEngine struct {
	keys []int32
}

func newSliceEngine(keys []int32, _ string) (Engine, error) {
	return &sliceEngine{keys: keys}, nil
}

func (e *sliceEngine) Name() string { return "sorted_slice" }

func (e *sliceEngine) Lookup(key int32) int64 {
	// First key > query, minus one, is the greatest key <= query.
	idx := sort.Search(len(e.keys), func(i int) bool { return e.keys[i] > key })
	return int64(idx) - 1
}

func (e *sliceEngine) Close() error {
	e.keys = nil
	return nil
}
