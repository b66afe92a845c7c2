// Package warpcore constructs segment-based 2D time warps between two
// LC-MS signals: given knots partitioning a reference signal A, it finds the
// corresponding knots in a target signal B.
//
// 🚀 What is the 2D warp core?
//
//	A dynamic program over segments rather than samples. Each segment
//	[knotsA[i], knotsA[i+1]) of A is matched against candidate ranges of B
//	by resampling B's range onto A's length and summing a per-sample
//	similarity (warpelem.Score). A quadratic stretch penalty discourages
//	segments whose length in B drifts from their length in A.
//	"2D" means each time point carries several (m/z, intensity) pairs
//	(warpelem.Element) instead of one intensity.
//
// ✨ Key features:
//   - compressed table: only a band of end positions around the
//     unstretched position is materialized per segment, so memory is
//     O(segments × GlobalSkew) rather than O(segments × len(B))
//   - segment stretch limited to [0.49, 1.51] of the reference duration
//   - m/z-aware scoring with a ppm tolerance; legacy (intensity-only)
//     elements fall back to squared intensity differences
//   - Core: a concurrency-safe holder of Config with setters
//   - YAML configuration files (ParseConfig, LoadConfig)
//
// ⚙️ Usage:
//
//	core := warpcore.New()
//	knotsB, err := core.ConstructWarp(a, b, []int{0, 100, 200, 300})
//	if err != nil {
//	  // ErrEmptySequence or ErrBadKnots
//	}
//
// or, with an explicit immutable configuration:
//
//	cfg := warpcore.DefaultConfig()
//	cfg.GlobalSkew = 500
//	knotsB, err := warpcore.ConstructWarp(cfg, a, b, knotsA)
//
// Performance:
//
//   - Time:   O(Σ band(i) · stretch(i) · duration(i)) segment-score samples
//   - Memory: O(segments · GlobalSkew) table cells
//
// The computation is synchronous and single-threaded; callers needing
// cancellation bound their inputs or run the call on their own goroutine.
package warpcore
