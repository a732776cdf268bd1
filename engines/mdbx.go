//go:build cgo

package engines

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime"

	mdbxgo "github.com/erigontech/mdbx-go/mdbx"

	"github.com/fastbench/fastbench"
)

func init() {
	register("mdbx", newMdbxEngine)
}

// mdbxEngine keeps a read-only transaction and cursor open between
// lookups. mdbx transactions are pinned to an OS thread, so the engine
// locks its goroutine to the thread from construction to Close; the
// harness drives every engine from one goroutine, which satisfies
// that.
type mdbxEngine struct {
	env     *mdbxgo.Env
	txn     *mdbxgo.Txn
	cur     *mdbxgo.Cursor
	dir     string
	ownsDir bool
	locked  bool
	kbuf    [4]byte
}

func newMdbxEngine(keys []int32, dataDir string) (Engine, error) {
	dir, owns, err := scratchDir(dataDir, "mdbx")
	if err != nil {
		return nil, fastbench.WrapError(fastbench.ErrConstruction, err)
	}
	e := &mdbxEngine{dir: dir, ownsDir: owns}

	runtime.LockOSThread()
	e.locked = true

	e.env, err = mdbxgo.NewEnv(mdbxgo.Label("fastbench"))
	if err != nil {
		return nil, e.fail(err)
	}
	e.env.SetOption(mdbxgo.OptMaxDB, 1)
	e.env.SetGeometry(-1, -1, 1<<31, -1, -1, 4096)
	path := filepath.Join(dir, "bench.db")
	if err := e.env.Open(path, mdbxgo.NoSubdir|mdbxgo.NoMetaSync|mdbxgo.WriteMap, 0o644); err != nil {
		return nil, e.fail(err)
	}

	txn, err := e.env.BeginTxn(nil, 0)
	if err != nil {
		return nil, e.fail(err)
	}
	dbi, err := txn.OpenDBI("bench", mdbxgo.Create, nil, nil)
	if err != nil {
		txn.Abort()
		return nil, e.fail(err)
	}
	var kbuf [4]byte
	for i, k := range keys {
		if err := txn.Put(dbi, encodeKey(kbuf[:], k), encodeIndex(int64(i)), mdbxgo.Upsert); err != nil {
			txn.Abort()
			return nil, e.fail(err)
		}
	}
	if _, err := txn.Commit(); err != nil {
		return nil, e.fail(err)
	}

	e.txn, err = e.env.BeginTxn(nil, mdbxgo.Readonly)
	if err != nil {
		return nil, e.fail(err)
	}
	rdbi, err := e.txn.OpenDBI("bench", 0, nil, nil)
	if err != nil {
		return nil, e.fail(err)
	}
	e.cur, err = e.txn.OpenCursor(rdbi)
	if err != nil {
		return nil, e.fail(err)
	}
	return e, nil
}

func (e *mdbxEngine) fail(err error) error {
	e.release()
	return fastbench.WrapError(fastbench.ErrConstruction, err)
}

func (e *mdbxEngine) Name() string { return "mdbx" }

func (e *mdbxEngine) Lookup(key int32) int64 {
	q := encodeKey(e.kbuf[:], key)
	k, v, err := e.cur.Get(q, nil, mdbxgo.SetRange)
	switch {
	case mdbxgo.IsNotFound(err):
		// Past the end: the predecessor is the last key.
		k, v, err = e.cur.Get(nil, nil, mdbxgo.Last)
	case err == nil && !bytes.Equal(k, q):
		k, v, err = e.cur.Get(nil, nil, mdbxgo.Prev)
	}
	if err != nil || k == nil {
		return -1
	}
	return decodeIndex(v)
}

func (e *mdbxEngine) Close() error {
	e.release()
	return nil
}

func (e *mdbxEngine) release() {
	if e.cur != nil {
		e.cur.Close()
		e.cur = nil
	}
	if e.txn != nil {
		e.txn.Abort()
		e.txn = nil
	}
	if e.env != nil {
		e.env.Close()
		e.env = nil
	}
	if e.locked {
		runtime.UnlockOSThread()
		e.locked = false
	}
	if e.ownsDir && e.dir != "" {
		os.RemoveAll(e.dir)
		e.dir = ""
	}
}
