//go:build cgo

package engines

import (
	"github.com/fastbench/fastbench"
	"github.com/fastbench/fastbench/fast"
)

func init() {
	register("fast_ffi", newFastEngine)
}

// fastEngine bridges the FAST C library. The tree handle is owned
// exclusively by this adapter: created here, destroyed in Close, never
// shared.
type fastEngine struct {
	tree *fast.Tree
}

func newFastEngine(keys []int32, _ string) (Engine, error) {
	tree, err := fast.New(keys)
	if err != nil {
		return nil, fastbench.WrapError(fastbench.ErrConstruction, err)
	}
	return &fastEngine{tree: tree}, nil
}

func (e *fastEngine) Name() string { return "fast_ffi" }

func (e *fastEngine) Lookup(key int32) int64 {
	return e.tree.Search(key)
}

func (e *fastEngine) Close() error {
	e.tree.Close()
	return nil
}
