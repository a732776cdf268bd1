package engines

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fastbench/fastbench"
)

// Engines exercised by the equivalence tests. fast_ffi is covered in
// the fast package, next to its binding.
var testEngines = []string{
	"btree",
	"sorted_slice",
	"eytzinger",
	"bbolt",
	"mdbx",
	"rocksdb",
	"sqlite",
}

func TestPredecessorSemantics(t *testing.T) {
	keys := []int32{1, 4, 7, 10, 13}
	cases := []struct {
		query int32
		want  int64
	}{
		{0, -1},  // below all keys: absent
		{1, 0},   // exact first key
		{3, 0},   // between first and second
		{7, 2},   // exact middle key
		{8, 2},   // predecessor, not exact match
		{13, 4},  // exact last key
		{14, 4},  // above all keys
		{127, 4}, // far above all keys
	}

	for _, name := range testEngines {
		t.Run(name, func(t *testing.T) {
			eng, err := Open(name, keys, t.TempDir())
			require.NoError(t, err)
			defer eng.Close()

			require.Equal(t, name, eng.Name())
			for _, c := range cases {
				require.Equal(t, c.want, eng.Lookup(c.query),
					"Lookup(%d)", c.query)
			}
		})
	}
}

// Every adapter must agree with the sorted-slice reference on a
// realistic workload, including the boundary queries.
func TestCrossEngineEquivalence(t *testing.T) {
	w, err := fastbench.NewWorkload(1000, 2000, fastbench.DefaultSeed)
	require.NoError(t, err)

	queries := append([]int32{0, w.Keys[0], w.MaxKey()}, w.Queries...)

	ref, err := Open("sorted_slice", w.Keys, "")
	require.NoError(t, err)
	defer ref.Close()

	for _, name := range testEngines {
		if name == "sorted_slice" {
			continue
		}
		t.Run(name, func(t *testing.T) {
			eng, err := Open(name, w.Keys, t.TempDir())
			require.NoError(t, err)
			defer eng.Close()

			for _, q := range queries {
				require.Equal(t, ref.Lookup(q), eng.Lookup(q),
					"engines disagree on query %d", q)
			}
		})
	}
}

func TestSingleKeySet(t *testing.T) {
	keys := []int32{1}
	for _, name := range testEngines {
		t.Run(name, func(t *testing.T) {
			eng, err := Open(name, keys, t.TempDir())
			require.NoError(t, err)
			defer eng.Close()

			require.Equal(t, int64(-1), eng.Lookup(0))
			require.Equal(t, int64(0), eng.Lookup(1))
			require.Equal(t, int64(0), eng.Lookup(2))
		})
	}
}

func TestOpenUnknownEngine(t *testing.T) {
	_, err := Open("no-such-engine", []int32{1}, "")
	require.Error(t, err)
	require.True(t, fastbench.IsCode(err, fastbench.ErrUnknownEngine))
}

func TestOpenEmptyKeys(t *testing.T) {
	_, err := Open("btree", nil, "")
	require.Error(t, err)
	require.True(t, fastbench.IsInvalidConfig(err))
}

// Repeated build/close cycles: each engine must be usable until Close
// and release cleanly, run after run.
func TestBuildCloseCycles(t *testing.T) {
	keys := []int32{1, 4, 7, 10, 13}
	for _, name := range testEngines {
		t.Run(name, func(t *testing.T) {
			for i := 0; i < 5; i++ {
				eng, err := Open(name, keys, t.TempDir())
				require.NoError(t, err)
				require.Equal(t, int64(3), eng.Lookup(10))
				require.NoError(t, eng.Close())
			}
		})
	}
}

func TestNamesRegistered(t *testing.T) {
	names := Names()
	require.Contains(t, names, "fast_ffi")
	for _, name := range testEngines {
		require.Contains(t, names, name)
	}
}
