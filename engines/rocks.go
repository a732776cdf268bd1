//go:build cgo

package engines

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/tecbot/gorocksdb"

	"github.com/fastbench/fastbench"
)

func init() {
	register("rocksdb", newRocksEngine)
}

// rocksEngine keeps one iterator open for its lifetime and answers
// predecessor queries by seeking to the first key >= query and
// stepping back when the hit is not exact.
type rocksEngine struct {
	db      *gorocksdb.DB
	opts    *gorocksdb.Options
	ro      *gorocksdb.ReadOptions
	iter    *gorocksdb.Iterator
	dir     string
	ownsDir bool
	kbuf    [4]byte
}

func newRocksEngine(keys []int32, dataDir string) (Engine, error) {
	dir, owns, err := scratchDir(dataDir, "rocksdb")
	if err != nil {
		return nil, fastbench.WrapError(fastbench.ErrConstruction, err)
	}
	e := &rocksEngine{dir: dir, ownsDir: owns}

	e.opts = gorocksdb.NewDefaultOptions()
	e.opts.SetCreateIfMissing(true)
	e.db, err = gorocksdb.OpenDb(e.opts, filepath.Join(dir, "bench"))
	if err != nil {
		return nil, e.fail(err)
	}

	wo := gorocksdb.NewDefaultWriteOptions()
	defer wo.Destroy()
	batch := gorocksdb.NewWriteBatch()
	defer batch.Destroy()
	var kbuf [4]byte
	for i, k := range keys {
		batch.Put(encodeKey(kbuf[:], k), encodeIndex(int64(i)))
		if batch.Count() >= 100_000 {
			if err := e.db.Write(wo, batch); err != nil {
				return nil, e.fail(err)
			}
			batch.Clear()
		}
	}
	if err := e.db.Write(wo, batch); err != nil {
		return nil, e.fail(err)
	}

	e.ro = gorocksdb.NewDefaultReadOptions()
	e.iter = e.db.NewIterator(e.ro)
	return e, nil
}

func (e *rocksEngine) fail(err error) error {
	e.release()
	return fastbench.WrapError(fastbench.ErrConstruction, err)
}

func (e *rocksEngine) Name() string { return "rocksdb" }

func (e *rocksEngine) Lookup(key int32) int64 {
	q := encodeKey(e.kbuf[:], key)
	e.iter.Seek(q)
	if e.iter.Valid() {
		k := e.iter.Key()
		exact := bytes.Equal(k.Data(), q)
		k.Free()
		if !exact {
			e.iter.Prev()
		}
	} else {
		// Past the end: the predecessor is the last key.
		e.iter.SeekToLast()
	}
	if !e.iter.Valid() {
		return -1
	}
	v := e.iter.Value()
	idx := decodeIndex(v.Data())
	v.Free()
	return idx
}

func (e *rocksEngine) Close() error {
	e.release()
	return nil
}

func (e *rocksEngine) release() {
	if e.iter != nil {
		e.iter.Close()
		e.iter = nil
	}
	if e.ro != nil {
		e.ro.Destroy()
		e.ro = nil
	}
	if e.db != nil {
		e.db.Close()
		e.db = nil
	}
	if e.opts != nil {
		e.opts.Destroy()
		e.opts = nil
	}
	if e.ownsDir && e.dir != "" {
		os.RemoveAll(e.dir)
		e.dir = ""
	}
}
