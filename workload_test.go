package fastbench

import (
	"testing"
)

func TestGenerateKeysFormula(t *testing.T) {
	keys, err := GenerateKeys(5)
	if err != nil {
		t.Fatal(err)
	}
	want := []int32{1, 4, 7, 10, 13}
	for i, w := range want {
		if keys[i] != w {
			t.Fatalf("keys[%d] = %d, want %d", i, keys[i], w)
		}
	}
}

func TestGenerateKeysMonotonic(t *testing.T) {
	keys, err := GenerateKeys(10_000)
	if err != nil {
		t.Fatal(err)
	}
	for i := 1; i < len(keys); i++ {
		if keys[i] <= keys[i-1] {
			t.Fatalf("keys not strictly increasing at %d: %d <= %d", i, keys[i], keys[i-1])
		}
	}
}

func TestGenerateKeysInvalidSize(t *testing.T) {
	for _, size := range []int{0, -1, -100} {
		_, err := GenerateKeys(size)
		if err == nil {
			t.Fatalf("GenerateKeys(%d): expected error", size)
		}
		if !IsInvalidConfig(err) {
			t.Fatalf("GenerateKeys(%d): error %v is not ErrInvalidConfig", size, err)
		}
	}
}

// Reference prefix of the query stream for tree_size=1000 (maxKey=2998),
// seed 42. Shared with the other language ports.
func TestGenerateQueriesKnownPrefix(t *testing.T) {
	queries, err := GenerateQueries(10, 2998, DefaultSeed)
	if err != nil {
		t.Fatal(err)
	}
	want := []int32{2224, 2472, 2157, 2909, 325, 1937, 551, 2877, 1553, 2882}
	for i, w := range want {
		if queries[i] != w {
			t.Fatalf("queries[%d] = %d, want %d", i, queries[i], w)
		}
	}
}

func TestWorkloadDeterminism(t *testing.T) {
	a, err := NewWorkload(1000, 5000, DefaultSeed)
	if err != nil {
		t.Fatal(err)
	}
	b, err := NewWorkload(1000, 5000, DefaultSeed)
	if err != nil {
		t.Fatal(err)
	}
	if len(a.Keys) != len(b.Keys) || len(a.Queries) != len(b.Queries) {
		t.Fatal("workload dimensions differ between runs")
	}
	for i := range a.Keys {
		if a.Keys[i] != b.Keys[i] {
			t.Fatalf("keys diverged at %d", i)
		}
	}
	for i := range a.Queries {
		if a.Queries[i] != b.Queries[i] {
			t.Fatalf("queries diverged at %d", i)
		}
	}
}

func TestQueryRange(t *testing.T) {
	for _, size := range []int{1, 2, 5, 1000} {
		w, err := NewWorkload(size, 10_000, DefaultSeed)
		if err != nil {
			t.Fatal(err)
		}
		maxKey := w.MaxKey()
		for i, q := range w.Queries {
			if q < 0 || q > maxKey {
				t.Fatalf("size %d: queries[%d] = %d out of [0, %d]", size, i, q, maxKey)
			}
		}
	}
}

func TestWorkloadQueryCountExact(t *testing.T) {
	w, err := NewWorkload(100, 777, DefaultSeed)
	if err != nil {
		t.Fatal(err)
	}
	if len(w.Queries) != 777 {
		t.Fatalf("len(Queries) = %d, want 777", len(w.Queries))
	}
	if len(w.Keys) != 100 {
		t.Fatalf("len(Keys) = %d, want 100", len(w.Keys))
	}
}
