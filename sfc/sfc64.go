package sfc

import (
	"crypto/rand"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	randv2 "math/rand/v2"
)

// Sfc64 is the 64-bit SFC generator: 256 bits of state producing 64-bit
// words. The average period is about 2^255 and the minimum period is at
// least 2^64.
type Sfc64 struct {
	s state[uint64]
}

var _ randv2.Source = (*Sfc64)(nil)

// New64 creates a generator with the mixing words set directly from a, b and
// c, then runs the standard warm-up. All bit patterns are valid seeds,
// including all-zero.
func New64(a, b, c uint64) *Sfc64 {
	g := &Sfc64{s: state[uint64]{a: a, b: b, c: c, counter: initialCounter}}
	g.s.warmup(params64)
	return g
}

// New64Seed expands a single 64-bit seed the way PractRand does: all three
// mixing words start equal to the seed.
func New64Seed(seed uint64) *Sfc64 {
	return New64(seed, seed, seed)
}

// New64Random seeds a generator from src, or from crypto/rand when src is
// nil. An entropy read failure is returned to the caller; there is no
// fallback to a weaker seed.
func New64Random(src io.Reader) (*Sfc64, error) {
	if src == nil {
		src = rand.Reader
	}
	var buf [24]byte
	if _, err := io.ReadFull(src, buf[:]); err != nil {
		return nil, fmt.Errorf("sfc: reading seed entropy: %w", err)
	}
	return New64(
		binary.LittleEndian.Uint64(buf[0:8]),
		binary.LittleEndian.Uint64(buf[8:16]),
		binary.LittleEndian.Uint64(buf[16:24]),
	), nil
}

// Uint64 returns the next word of the stream.
func (g *Sfc64) Uint64() uint64 {
	return g.s.next(params64)
}

// Uint32 returns the low 32 bits of the next word.
func (g *Sfc64) Uint32() uint32 {
	return uint32(g.Uint64())
}

// Fill overwrites dst with the little-endian byte stream of successive
// words. len(dst) may be any length; see fillWords for the partial-word
// rule. No allocation is performed.
func (g *Sfc64) Fill(dst []byte) {
	fillWords(dst, g.Uint64, 8)
}

// state64 is the portable state record. Field names and order are shared
// with other SFC implementations and must not change.
type state64 struct {
	A       uint64 `json:"a"`
	B       uint64 `json:"b"`
	C       uint64 `json:"c"`
	Counter uint64 `json:"counter"`
}

// MarshalJSON encodes the raw four-word state.
func (g *Sfc64) MarshalJSON() ([]byte, error) {
	return json.Marshal(state64{A: g.s.a, B: g.s.b, C: g.s.c, Counter: g.s.counter})
}

// UnmarshalJSON restores a state written by MarshalJSON and resumes the
// stream exactly where it left off. Any four words form a valid state, so no
// validation is performed.
func (g *Sfc64) UnmarshalJSON(data []byte) error {
	var st state64
	if err := json.Unmarshal(data, &st); err != nil {
		return err
	}
	g.s = state[uint64]{a: st.A, b: st.B, c: st.C, counter: st.Counter}
	return nil
}
