package engines

import (
	"bytes"
	"os"
	"path/filepath"

	bolt "go.etcd.io/bbolt"

	"github.com/fastbench/fastbench"
)

func init() {
	register("bbolt", newBoltEngine)
}

var boltBucket = []byte("bench")

// boltEngine keeps a read transaction and cursor open for its whole
// lifetime; lookups are a cursor Seek (first key >= query) corrected
// one step back for the predecessor.
type boltEngine struct {
	db      *bolt.DB
	tx      *bolt.Tx
	cur     *bolt.Cursor
	dir     string
	ownsDir bool
	kbuf    [4]byte
}

func newBoltEngine(keys []int32, dataDir string) (Engine, error) {
	dir, owns, err := scratchDir(dataDir, "bbolt")
	if err != nil {
		return nil, fastbench.WrapError(fastbench.ErrConstruction, err)
	}
	e := &boltEngine{dir: dir, ownsDir: owns}

	e.db, err = bolt.Open(filepath.Join(dir, "bench.db"), 0o644, nil)
	if err != nil {
		e.cleanup()
		return nil, fastbench.WrapError(fastbench.ErrConstruction, err)
	}

	err = e.db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucket(boltBucket)
		if err != nil {
			return err
		}
		// Keys arrive in sorted order; pack pages tight.
		b.FillPercent = 1.0
		var kbuf [4]byte
		for i, k := range keys {
			if err := b.Put(encodeKey(kbuf[:], k), encodeIndex(int64(i))); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		e.cleanup()
		return nil, fastbench.WrapError(fastbench.ErrConstruction, err)
	}

	e.tx, err = e.db.Begin(false)
	if err != nil {
		e.cleanup()
		return nil, fastbench.WrapError(fastbench.ErrConstruction, err)
	}
	e.cur = e.tx.Bucket(boltBucket).Cursor()
	return e, nil
}

func (e *boltEngine) Name() string { return "bbolt" }

func (e *boltEngine) Lookup(key int32) int64 {
	q := encodeKey(e.kbuf[:], key)
	k, v := e.cur.Seek(q)
	switch {
	case k == nil:
		// Past the end: the predecessor is the last key.
		k, v = e.cur.Last()
	case !bytes.Equal(k, q):
		k, v = e.cur.Prev()
	}
	if k == nil {
		return -1
	}
	return decodeIndex(v)
}

func (e *boltEngine) Close() error {
	var err error
	if e.tx != nil {
		err = e.tx.Rollback()
		e.tx, e.cur = nil, nil
	}
	e.cleanup()
	return err
}

func (e *boltEngine) cleanup() {
	if e.db != nil {
		e.db.Close()
		e.db = nil
	}
	if e.ownsDir && e.dir != "" {
		os.RemoveAll(e.dir)
		e.dir = ""
	}
}
