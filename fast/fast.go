// Package fast binds the FAST cache-optimized static search tree
// C library (libfast). The tree is built once from a sorted key set and
// answers predecessor and lower-bound queries; it is immutable after
// construction.
//
// Usage:
//
//	keys := []int32{1, 3, 5, 7, 9}
//	tree, err := fast.New(keys)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer tree.Close()
//	idx := tree.Search(5) // returns 2
//
// The C library is consumed through prototype declarations rather than
// its header so only -lfast is needed at link time.
package fast

/*
#cgo LDFLAGS: -lfast
#include <stddef.h>
#include <stdint.h>

typedef struct fast_tree fast_tree_t;

fast_tree_t *fast_create(const int32_t *keys, size_t n);
void fast_destroy(fast_tree_t *tree);
int64_t fast_search(const fast_tree_t *tree, int32_t key);
int64_t fast_search_lower_bound(const fast_tree_t *tree, int32_t key);
size_t fast_size(const fast_tree_t *tree);
int32_t fast_key_at(const fast_tree_t *tree, size_t index);
*/
import "C"

import (
	"errors"
	"runtime"
	"unsafe"
)

// ErrCreateFailed is returned when the library cannot allocate a tree.
var ErrCreateFailed = errors.New("fast: fast_create failed")

// ErrEmptyKeys is returned when New is given no keys.
var ErrEmptyKeys = errors.New("fast: keys must not be empty")

// Tree is an owned handle to a FAST search tree. It must be released
// with Close exactly once; a finalizer backstops leaked handles but
// callers should not rely on it. After construction the tree is safe
// for concurrent read-only queries until Close begins.
type Tree struct {
	ptr *C.fast_tree_t
}

// New builds a FAST tree from a sorted slice of int32 keys. The slice
// is copied into the library's own layout; the caller keeps ownership
// of keys.
func New(keys []int32) (*Tree, error) {
	if len(keys) == 0 {
		return nil, ErrEmptyKeys
	}
	ptr := C.fast_create((*C.int32_t)(unsafe.Pointer(&keys[0])), C.size_t(len(keys)))
	if ptr == nil {
		return nil, ErrCreateFailed
	}
	t := &Tree{ptr: ptr}
	runtime.SetFinalizer(t, (*Tree).Close)
	return t, nil
}

// Close releases all foreign-owned memory. Safe to call more than once;
// only the first call destroys the handle.
func (t *Tree) Close() {
	if t.ptr != nil {
		C.fast_destroy(t.ptr)
		t.ptr = nil
		runtime.SetFinalizer(t, nil)
	}
}

// Search returns the index of the largest key <= query, or -1 when the
// query precedes every key.
func (t *Tree) Search(key int32) int64 {
	return int64(C.fast_search(t.ptr, C.int32_t(key)))
}

// LowerBound returns the index of the first key >= query; the result
// equals Size() when the query exceeds every key.
func (t *Tree) LowerBound(key int32) int64 {
	return int64(C.fast_search_lower_bound(t.ptr, C.int32_t(key)))
}

// Size returns the number of keys in the tree.
func (t *Tree) Size() int {
	return int(C.fast_size(t.ptr))
}

// KeyAt returns the key at the given sorted index. The index must be
// less than Size; the library leaves anything else undefined.
func (t *Tree) KeyAt(index int) int32 {
	return int32(C.fast_key_at(t.ptr, C.size_t(index)))
}
