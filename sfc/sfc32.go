package sfc

import (
	"crypto/rand"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	randv2 "math/rand/v2"
)

// Sfc32 is the 32-bit SFC generator: 128 bits of state producing 32-bit
// words. The average period is about 2^127 and the minimum period is at
// least 2^32.
type Sfc32 struct {
	s state[uint32]
}

var _ randv2.Source = (*Sfc32)(nil)

// New32 creates a generator with the mixing words set directly from a, b and
// c, then runs the standard warm-up. All bit patterns are valid seeds,
// including all-zero.
func New32(a, b, c uint32) *Sfc32 {
	g := &Sfc32{s: state[uint32]{a: a, b: b, c: c, counter: initialCounter}}
	g.s.warmup(params32)
	return g
}

// New32Seed expands a single 64-bit seed the way PractRand does: b gets the
// low half, c the high half, and a starts at zero so the warm-up mixes it in.
func New32Seed(seed uint64) *Sfc32 {
	return New32(0, uint32(seed), uint32(seed>>32))
}

// New32Random seeds a generator from src, or from crypto/rand when src is
// nil. An entropy read failure is returned to the caller; there is no
// fallback to a weaker seed.
func New32Random(src io.Reader) (*Sfc32, error) {
	if src == nil {
		src = rand.Reader
	}
	var buf [12]byte
	if _, err := io.ReadFull(src, buf[:]); err != nil {
		return nil, fmt.Errorf("sfc: reading seed entropy: %w", err)
	}
	return New32(
		binary.LittleEndian.Uint32(buf[0:4]),
		binary.LittleEndian.Uint32(buf[4:8]),
		binary.LittleEndian.Uint32(buf[8:12]),
	), nil
}

// Uint32 returns the next word of the stream.
func (g *Sfc32) Uint32() uint32 {
	return g.s.next(params32)
}

// Uint64 composes two consecutive 32-bit outputs, the first call supplying
// the low half and the second the high half.
func (g *Sfc32) Uint64() uint64 {
	lo := uint64(g.Uint32())
	hi := uint64(g.Uint32())
	return hi<<32 | lo
}

// Fill overwrites dst with the little-endian byte stream of successive
// words. len(dst) may be any length; see fillWords for the partial-word
// rule. No allocation is performed.
func (g *Sfc32) Fill(dst []byte) {
	fillWords(dst, g.Uint32, 4)
}

// state32 is the portable state record. Field names and order are shared
// with other SFC implementations and must not change.
type state32 struct {
	A       uint32 `json:"a"`
	B       uint32 `json:"b"`
	C       uint32 `json:"c"`
	Counter uint32 `json:"counter"`
}

// MarshalJSON encodes the raw four-word state.
func (g *Sfc32) MarshalJSON() ([]byte, error) {
	return json.Marshal(state32{A: g.s.a, B: g.s.b, C: g.s.c, Counter: g.s.counter})
}

// UnmarshalJSON restores a state written by MarshalJSON and resumes the
// stream exactly where it left off. Any four words form a valid state, so no
// validation is performed.
func (g *Sfc32) UnmarshalJSON(data []byte) error {
	var st state32
	if err := json.Unmarshal(data, &st); err != nil {
		return err
	}
	g.s = state[uint32]{a: st.A, b: st.B, c: st.C, counter: st.Counter}
	return nil
}
