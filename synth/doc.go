// SPDX-License-Identifier: MIT

// Package synth builds deterministic synthetic LC-MS signals for exercising
// and benchmarking the warp core.
//
// What it provides:
//   - UniformExpand: per-minute intensity lists expanded to any sampling
//     rate by linear interpolation (single-apex fixtures).
//   - Model: random peptides (apex time, apex intensity, m/z, duration);
//     Model.Sample(t) returns the dominant (m/z, intensity) pairs of the
//     simulated centroided scan at time t as a warpelem.Element.
//   - Distortion: a piecewise-linear retention-time distortion defined by
//     anchor pairs, plus PerturbKnots to draw a random one.
//   - Sampler: reads a Model through a Distortion, scales it and adds
//     positional noise that depends only on (time, slot, seed).
//
// Determinism:
//   - Every random draw flows from WithSeed / WithRand or an explicit
//     *rand.Rand argument; there is no time-based seeding anywhere.
//   - Sampler noise is a pure function of its inputs, so sampling the same
//     time twice returns the same element.
//
// Example:
//
//	m := synth.NewModel(synth.WithSeed(7))
//	s := synth.Sampler{Signal: 1000, Noise: 200, SamplesPerMinute: 10, Seed: 1}
//	e := s.Sample(m, 12.5)
package synth
