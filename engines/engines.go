// Package engines provides the ordered-index engines the harness
// compares. Every engine answers the same question — the 0-based
// position in the sorted key set of the greatest key <= query, or -1
// when the query precedes every key — through whatever mechanism the
// underlying store offers: an index-returning foreign search, bounded
// map iteration, cursor seeks, or SQL.
//
// Engines are built once from the shared key set, queried read-only
// from a single goroutine, and closed exactly once. Disk-backed engines
// manage their own scratch directories.
package engines

import (
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/fastbench/fastbench"
)

// Engine is an ordered index over the shared key set.
type Engine interface {
	// Name is the method tag that appears in the output record.
	Name() string

	// Lookup returns the 0-based sorted position of the greatest
	// key <= query, or -1 if the query precedes every key.
	Lookup(key int32) int64

	// Close releases the engine's resources. Exactly once.
	Close() error
}

// Builder constructs an engine over the sorted key set. dataDir, when
// non-empty, is where disk-backed engines put their files; empty means
// a private temp directory removed on Close. In-memory engines ignore
// it.
type Builder func(keys []int32, dataDir string) (Engine, error)

var builders = map[string]Builder{}

func register(name string, b Builder) {
	if _, dup := builders[name]; dup {
		panic(fmt.Sprintf("engines: duplicate builder %q", name))
	}
	builders[name] = b
}

// Open builds the named engine over keys. The keys slice is retained
// by reference where possible and must not be mutated afterwards.
func Open(name string, keys []int32, dataDir string) (Engine, error) {
	b, ok := builders[name]
	if !ok {
		return nil, fastbench.Errorf(fastbench.ErrUnknownEngine, "%q", name)
	}
	if len(keys) == 0 {
		return nil, fastbench.Errorf(fastbench.ErrInvalidConfig, "empty key set")
	}
	return b(keys, dataDir)
}

// Names returns all registered engine names, sorted.
func Names() []string {
	names := make([]string, 0, len(builders))
	for n := range builders {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Key/value encoding for the KV-store engines: 4-byte big-endian key,
// 8-byte big-endian index. Keys are non-negative so byte order equals
// numeric order.

func encodeKey(dst []byte, key int32) []byte {
	binary.BigEndian.PutUint32(dst[:4], uint32(key))
	return dst[:4]
}

func encodeIndex(idx int64) []byte {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], uint64(idx))
	return b[:]
}

func decodeIndex(val []byte) int64 {
	return int64(binary.BigEndian.Uint64(val))
}

// scratchDir resolves the working directory for a disk-backed engine.
// Any leftover state is cleared: every run rebuilds its index from
// scratch. The second return value reports whether the engine owns the
// directory and must remove it on Close.
func scratchDir(dataDir, name string) (string, bool, error) {
	if dataDir != "" {
		dir := filepath.Join(dataDir, name)
		if err := os.RemoveAll(dir); err != nil {
			return "", false, err
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", false, err
		}
		return dir, false, nil
	}
	dir, err := os.MkdirTemp("", "fastbench-"+name+"-")
	if err != nil {
		return "", false, err
	}
	return dir, true, nil
}
