// Package randutil centralises how deterministic *rand.Rand instances are
// derived from a single int64 seed.
package randutil

import (
	rand "math/rand/v2"

	"github.com/lox/sfcrand/sfc"
)

// New returns a *rand.Rand backed by an sfc64 generator seeded from the
// provided int64. The sfc warm-up rounds do the mixing, so call sites get
// well-separated sequences even for adjacent seeds.
func New(seed int64) *rand.Rand {
	return rand.New(sfc.New64Seed(uint64(seed)))
}
