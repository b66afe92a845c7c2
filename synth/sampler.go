package synth

import (
	"math"

	"github.com/katalvlaran/lvwarp/warpelem"
)

// Sampler reads a Model the way one instrument run would see it.
//
// Sample(m, t):
//  1. t' = Distortion.Warp(t) (identity for the zero Distortion).
//  2. e  = m.Sample(t').Scale(Signal).
//  3. For every slot i < MaxPairs, add Noise·u to its intensity, where
//     u ∈ [0, 1) depends only on (round(t'·SamplesPerMinute), i, Seed).
//     Absent slots of keyed elements are left untouched.
//
// Sampling the same time twice yields the same element. A non-positive
// SamplesPerMinute is treated as 1.
type Sampler struct {
	Signal           float64
	Noise            float64
	SamplesPerMinute float64
	Seed             int64
	Distortion       Distortion
}

// Sample returns the noisy, scaled, distorted element of m at time t.
func (s Sampler) Sample(m *Model, t float64) warpelem.Element {
	t = s.Distortion.Warp(t)
	e := m.Sample(t).Scale(s.Signal)

	rate := s.SamplesPerMinute
	if rate <= 0 {
		rate = 1
	}
	position := int64(math.Round(t * rate))
	for i := 0; i < warpelem.MaxPairs; i++ {
		stream := uint64(position*warpelem.MaxPairs + int64(i))
		e = e.WithIntensityOffset(i, s.Noise*positionalUnit(s.Seed, stream))
	}

	return e
}

// Series samples m at n consecutive times 0, 1/rate, 2/rate, ….
func (s Sampler) Series(m *Model, n int) []warpelem.Element {
	rate := s.SamplesPerMinute
	if rate <= 0 {
		rate = 1
	}

	out := make([]warpelem.Element, max(n, 0))
	for i := range out {
		out[i] = s.Sample(m, float64(i)/rate)
	}

	return out
}
