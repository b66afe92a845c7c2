// Package lvwarp aligns the retention-time axes of two LC-MS runs with a
// segment-based dynamic-programming time warp.
//
// 🚀 What is lvwarp?
//
//	A small, deterministic, pure-Go library that brings together:
//		• Elements: up to four dominant (m/z, intensity) pairs per time point,
//		  or a single key-blind intensity
//		• Scoring: ppm-tolerant pair matching and interpolation
//		• Warp core: knots of a reference run mapped onto a target run
//		• Synthetic runs: random peptide models, distortions and samplers
//
// ✨ Why choose lvwarp?
//
//   - Compressed table – memory grows with the search radius, not the run length
//   - Safe to share – Core snapshots its configuration per call
//   - Reproducible – every random draw is seeded explicitly
//
// Under the hood, everything is organized under three subpackages:
//
//	warpelem/ — Element, Pair, Score, Interpolate, timed lists
//	warpcore/ — SegmentMatchScore, ConstructWarp, Config, Core
//	synth/    — Model, Sampler, Distortion, UniformExpand
//
// Quick example:
//
//	core := warpcore.New()
//	knotsB, err := core.ConstructWarp(a, b, []int{0, 100, 200, 300})
//
//	go get github.com/katalvlaran/lvwarp/warpcore
package lvwarp
