package engines

import "math/bits"

func init() {
	register("eytzinger", newEytzingerEngine)
}

// eytzingerEngine is a pure-Go rendition of the cache-optimized static
// tree idea: keys rearranged into BFS (Eytzinger) order so a descent
// touches one cache line per level near the root, with a parallel rank
// array mapping each slot back to its position in sorted order.
//
// Slot 0 is unused; children of slot k are 2k and 2k+1.
type eytzingerEngine struct {
	layout []int32
	rank   []int32
	n      uint
}

func newEytzingerEngine(keys []int32, _ string) (Engine, error) {
	n := len(keys)
	e := &eytzingerEngine{
		layout: make([]int32, n+1),
		rank:   make([]int32, n+1),
		n:      uint(n),
	}
	next := 0
	e.fill(keys, &next, 1)
	return e, nil
}

// fill places sorted keys into BFS order via in-order traversal of the
// implicit tree.
func (e *eytzingerEngine) fill(keys []int32, next *int, k int) {
	if k > len(keys) {
		return
	}
	e.fill(keys, next, 2*k)
	e.layout[k] = keys[*next]
	e.rank[k] = int32(*next)
	*next++
	e.fill(keys, next, 2*k+1)
}

func (e *eytzingerEngine) Name() string { return "eytzinger" }

func (e *eytzingerEngine) Lookup(key int32) int64 {
	// Branch-free-ish descent to the lower bound (first key >= query).
	k := uint(1)
	for k <= e.n {
		if e.layout[k] < key {
			k = 2*k + 1
		} else {
			k = 2 * k
		}
	}
	// Undo the final run of right turns to recover the lower-bound slot.
	k >>= uint(bits.TrailingZeros(^k) + 1)
	if k == 0 {
		// Every key < query: the predecessor is the last key.
		return int64(e.n) - 1
	}
	r := int64(e.rank[k])
	if e.layout[k] == key {
		return r
	}
	return r - 1
}

func (e *eytzingerEngine) Close() error {
	e.layout, e.rank = nil, nil
	return nil
}
