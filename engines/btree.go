package engines

import (
	"github.com/google/btree"

	"github.com/fastbench/fastbench"
)

func init() {
	register("btree", newBTreeEngine)
}

// btreeDegree matches the other language ports' B-tree fanout.
const btreeDegree = 32

type btreeItem struct {
	key int32
	idx int64
}

func (a btreeItem) Less(b btree.Item) bool {
	return a.key < b.(btreeItem).key
}

// btreeEngine answers predecessor queries with a bounded descending
// iteration: DescendLessOrEqual stopped at the first item, never a
// scan.
type btreeEngine struct {
	tree *btree.BTree
}

func newBTreeEngine(keys []int32, _ string) (Engine, error) {
	t := btree.New(btreeDegree)
	for i, k := range keys {
		if prev := t.ReplaceOrInsert(btreeItem{key: k, idx: int64(i)}); prev != nil {
			return nil, fastbench.Errorf(fastbench.ErrConstruction, "duplicate key %d", k)
		}
	}
	return &btreeEngine{tree: t}, nil
}

func (e *btreeEngine) Name() string { return "btree" }

func (e *btreeEngine) Lookup(key int32) int64 {
	found := int64(-1)
	e.tree.DescendLessOrEqual(btreeItem{key: key}, func(item btree.Item) bool {
		found = item.(btreeItem).idx
		return false // first item is the greatest key <= query
	})
	return found
}

func (e *btreeEngine) Close() error {
	e.tree = nil
	return nil
}
