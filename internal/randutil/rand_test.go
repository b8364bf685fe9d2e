package randutil

import (
	"testing"

	"github.com/lox/sfcrand/sfc"
)

// New is the single place an int64 seed becomes a *rand.Rand; callers that
// bypass it and seed sfc64 directly must still land on the same stream.
func TestNewMatchesSfc64Seed(t *testing.T) {
	r := New(42)
	g := sfc.New64Seed(42)
	for i := range 1000 {
		if a, b := r.Uint64(), g.Uint64(); a != b {
			t.Fatalf("derivation diverged from sfc64 at %d: %d != %d", i, a, b)
		}
	}
}

func TestNewDeterministic(t *testing.T) {
	r1 := New(42)
	r2 := New(42)
	for i := range 1000 {
		if a, b := r1.Uint64(), r2.Uint64(); a != b {
			t.Fatalf("sequences diverged at %d: %d != %d", i, a, b)
		}
	}
}

func TestNewSeedSeparation(t *testing.T) {
	r1 := New(1)
	r2 := New(2)
	same := 0
	for range 100 {
		if r1.Uint64() == r2.Uint64() {
			same++
		}
	}
	if same > 0 {
		t.Errorf("adjacent seeds produced %d identical outputs in 100 draws", same)
	}
}

func TestNewNegativeSeed(t *testing.T) {
	r1 := New(-1)
	r2 := New(-1)
	if r1.Uint64() != r2.Uint64() {
		t.Error("negative seed not deterministic")
	}
}
