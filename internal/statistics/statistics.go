// Package statistics summarises the empirical distribution of a generator's
// output stream. It is a sanity check for the CLI, not a substitute for a
// full statistical test battery like PractRand.
package statistics

import "fmt"

// Summary accumulates bucketed counts and running moments over a stream of
// output words normalised to [0, 1).
type Summary struct {
	counts  []int
	samples int
	sum     float64 // running sum for mean
	sum2    float64 // sum of squares for variance
	min     float64
	max     float64
}

// twoPow64 is 2^64 as a float64, exact since it is a power of two.
const twoPow64 float64 = 1 << 64

// New creates a Summary with the given number of equal-width buckets.
func New(buckets int) *Summary {
	if buckets < 1 {
		buckets = 1
	}
	return &Summary{counts: make([]int, buckets), min: 1}
}

// Add records one output word, normalised from the full uint64 range. 32-bit
// words should be passed shifted into the high bits (v << 32) so both widths
// map onto the same scale.
func (s *Summary) Add(v uint64) {
	u := float64(v) / twoPow64
	idx := int(u * float64(len(s.counts)))
	if idx == len(s.counts) {
		idx--
	}
	s.counts[idx]++
	s.samples++
	s.sum += u
	s.sum2 += u * u
	if u < s.min {
		s.min = u
	}
	if u > s.max {
		s.max = u
	}
}

// Samples returns the number of words recorded.
func (s *Summary) Samples() int {
	return s.samples
}

// Counts returns the per-bucket observation counts.
func (s *Summary) Counts() []int {
	return s.counts
}

// Mean returns the arithmetic mean of the normalised outputs. A uniform
// stream converges on 0.5.
func (s *Summary) Mean() float64 {
	if s.samples == 0 {
		return 0
	}
	return s.sum / float64(s.samples)
}

// Variance returns the sample variance of the normalised outputs. A uniform
// stream converges on 1/12.
func (s *Summary) Variance() float64 {
	if s.samples < 2 {
		return 0
	}
	n := float64(s.samples)
	mean := s.sum / n
	return (s.sum2 - n*mean*mean) / (n - 1)
}

// ChiSquare returns the chi-square statistic of the bucket counts against a
// uniform expectation. Degrees of freedom is len(Counts())-1.
func (s *Summary) ChiSquare() float64 {
	if s.samples == 0 {
		return 0
	}
	expected := float64(s.samples) / float64(len(s.counts))
	var chi float64
	for _, observed := range s.counts {
		d := float64(observed) - expected
		chi += d * d / expected
	}
	return chi
}

// Range returns the smallest and largest normalised outputs seen.
func (s *Summary) Range() (min, max float64) {
	if s.samples == 0 {
		return 0, 0
	}
	return s.min, s.max
}

// String renders a one-line summary.
func (s *Summary) String() string {
	return fmt.Sprintf("samples=%d mean=%.6f variance=%.6f chi2=%.2f",
		s.samples, s.Mean(), s.Variance(), s.ChiSquare())
}
