// Package sfc implements version 4 of Chris Doty-Humphrey's Small Fast
// Chaotic (SFC) pseudo-random number generators in 32-bit and 64-bit
// variants.
//
// SFC combines three chaotically mixed words with an incrementing counter,
// which guarantees a minimum period of 2^W while keeping each round to a
// handful of adds, shifts and a rotate. The generators are fast and
// statistically strong but NOT cryptographically secure.
//
// Both generator types satisfy math/rand/v2's rand.Source, so they can back
// a *rand.Rand directly:
//
//	r := rand.New(sfc.New64Seed(42))
//
// A generator instance is single-owner mutable state. Sharing one instance
// across goroutines requires external locking; the usual pattern is one
// instance per goroutine.
package sfc

// word is the native unsigned unit of a generator, 32 or 64 bits.
type word interface {
	~uint32 | ~uint64
}

// state holds the four generator words: three mixing words and the counter.
type state[W word] struct {
	a, b, c, counter W
}

// params fixes the per-width shift and rotate amounts. The values come from
// the SFC v4 reference and are load-bearing: changing any of them silently
// produces a different (and possibly weaker) stream.
type params struct {
	rightShift uint
	leftShift  uint
	rotation   uint
	bits       uint
}

var (
	params32 = params{rightShift: 9, leftShift: 3, rotation: 21, bits: 32}
	params64 = params{rightShift: 11, leftShift: 3, rotation: 24, bits: 64}
)

const (
	// initialCounter is the counter value every seeding path starts from.
	initialCounter = 1

	// warmupRounds is the number of outputs discarded after seeding so a
	// low-entropy seed is fully mixed before the first real output.
	warmupRounds = 12
)

// next advances the state one round and returns the output word. The output
// reflects the pre-update a, b and counter; the new c folds the output back
// in. Unsigned arithmetic in Go wraps modulo 2^W, matching the reference.
func (s *state[W]) next(p params) W {
	out := s.a + s.b + s.counter
	s.counter++
	s.a = s.b ^ (s.b >> p.rightShift)
	s.b = s.c + (s.c << p.leftShift)
	s.c = rotl(s.c, p) + out
	return out
}

func rotl[W word](x W, p params) W {
	return x<<p.rotation | x>>(p.bits-p.rotation)
}

func (s *state[W]) warmup(p params) {
	for range warmupRounds {
		s.next(p)
	}
}

// fillWords writes the little-endian bytes of successive words into dst.
// When len(dst) is not a multiple of the word size, the final word
// contributes only its low-order bytes; its remaining bytes are discarded,
// never carried into a later call.
func fillWords[W word](dst []byte, next func() W, size int) {
	for len(dst) >= size {
		putWord(dst, next(), size)
		dst = dst[size:]
	}
	if len(dst) > 0 {
		var last [8]byte
		putWord(last[:], next(), size)
		copy(dst, last[:size])
	}
}

func putWord[W word](dst []byte, w W, size int) {
	for i := range size {
		dst[i] = byte(w >> (8 * i))
	}
}
