// Package warpelem defines the per-time-point sample value consumed by the
// 2D time-warp engine, together with the small set of pure functions the
// engine needs from it.
//
// 🚀 What is an Element?
//
//	One time index of an LC-MS run reduced to at most MaxPairs dominant
//	(m/z, intensity) pairs. Where a plain 1D warp compares a single
//	intensity per time point (TIC, base peak), the 2D warp compares the
//	pairs channel by channel, matching m/z values within a ppm tolerance.
//
// ✨ Key features:
//   - explicit presence: pairs are packed at the front and counted, so a
//     feature at m/z 0 is still a feature
//   - legacy (key-blind) elements: no keyed pairs, only the slot-0
//     intensity participates in scoring and interpolation
//   - the engine contract: Scale, AverageIntensity, Interpolate, Score
//   - FromScan / ExtractMaxima: dominant pairs of a centroided scan, with an
//     m/z exclusion window around each kept maximum
//   - TimedList: time-stamped elements with evaluation, uniform resampling
//     and uniformity checks
//
// ⚙️ Usage:
//
//	a := warpelem.New(
//	  warpelem.Pair{Mz: 445.12, Intensity: 1200},
//	  warpelem.Pair{Mz: 301.07, Intensity: 300},
//	)
//	b := warpelem.Legacy(900) // intensity only
//	s := warpelem.Score(a, b, 100) // legacy path: -(1500-900)^2
//
// Elements are small values (no pointers); copying is cheap and every
// function here is pure.
package warpelem
