// SPDX-License-Identifier: MIT
// Package: lvwarp/synth
//
// options.go — functional options and resolved configuration for Model.
//
// Contract:
//   • Option constructors validate and panic on meaningless inputs.
//     Generators themselves never panic.
//   • Options apply in order; later ones override earlier ones.
//   • Without WithSeed/WithRand the model is seeded with defaultSeed.

package synth

import (
	"math/rand"

	"github.com/katalvlaran/lvwarp/warpelem"
)

// defaultSeed seeds models built without WithSeed/WithRand.
const defaultSeed int64 = 1

// Deterministic defaults for Model.
const (
	defaultPeptides     = 50
	defaultDuration     = 60.0 // minutes
	defaultDynamicRange = 1e6  // largest / smallest apex intensity
	defaultMinMz        = 100
	defaultMaxMz        = 500
	defaultMinFeature   = 5.0 // minutes
	defaultMaxFeature   = 10.0
	defaultMzWindow     = 20.0 // Da excluded around an extracted maximum
	defaultPairCount    = warpelem.MaxPairs
)

// ModelOption customizes NewModel.
type ModelOption func(*modelConfig)

// modelConfig aggregates all Model knobs.
type modelConfig struct {
	rng          *rand.Rand
	peptides     int
	duration     float64
	dynamicRange float64
	minMz, maxMz int
	minFeature   float64
	maxFeature   float64
	mzWindow     float64
	pairCount    int
}

// newModelConfig resolves defaults and applies opts in order.
func newModelConfig(opts ...ModelOption) modelConfig {
	cfg := modelConfig{
		peptides:     defaultPeptides,
		duration:     defaultDuration,
		dynamicRange: defaultDynamicRange,
		minMz:        defaultMinMz,
		maxMz:        defaultMaxMz,
		minFeature:   defaultMinFeature,
		maxFeature:   defaultMaxFeature,
		mzWindow:     defaultMzWindow,
		pairCount:    defaultPairCount,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rngFromSeed(defaultSeed)
	}

	return cfg
}

// WithSeed seeds the model's random stream. Seed 0 selects defaultSeed.
func WithSeed(seed int64) ModelOption {
	return func(c *modelConfig) { c.rng = rngFromSeed(seed) }
}

// WithRand uses r as the model's random stream. Panics on nil.
func WithRand(r *rand.Rand) ModelOption {
	if r == nil {
		panic("synth: WithRand(nil)")
	}

	return func(c *modelConfig) { c.rng = r }
}

// WithPeptides sets the number of simulated peptides. Panics if n < 0.
func WithPeptides(n int) ModelOption {
	if n < 0 {
		panic("synth: WithPeptides(n<0)")
	}

	return func(c *modelConfig) { c.peptides = n }
}

// WithDuration sets the run length in minutes. Panics if d <= 0.
func WithDuration(d float64) ModelOption {
	if d <= 0 {
		panic("synth: WithDuration(d<=0)")
	}

	return func(c *modelConfig) { c.duration = d }
}

// WithDynamicRange sets the ratio of the largest to the smallest apex
// intensity. Panics if r < 1.
func WithDynamicRange(r float64) ModelOption {
	if r < 1 {
		panic("synth: WithDynamicRange(r<1)")
	}

	return func(c *modelConfig) { c.dynamicRange = r }
}

// WithMzRange sets the integer m/z range [lo, hi]. Panics if lo <= 0 or hi < lo.
func WithMzRange(lo, hi int) ModelOption {
	if lo <= 0 || hi < lo {
		panic("synth: WithMzRange(lo<=0 || hi<lo)")
	}

	return func(c *modelConfig) { c.minMz, c.maxMz = lo, hi }
}

// WithFeatureDuration sets the range of elution widths in minutes.
// Panics if lo <= 0 or hi < lo.
func WithFeatureDuration(lo, hi float64) ModelOption {
	if lo <= 0 || hi < lo {
		panic("synth: WithFeatureDuration(lo<=0 || hi<lo)")
	}

	return func(c *modelConfig) { c.minFeature, c.maxFeature = lo, hi }
}

// WithPairCount sets how many dominant pairs a sample keeps (0 = legacy
// base-peak intensity). Panics outside [0, warpelem.MaxPairs].
func WithPairCount(n int) ModelOption {
	if n < 0 || n > warpelem.MaxPairs {
		panic("synth: WithPairCount out of [0, MaxPairs]")
	}

	return func(c *modelConfig) { c.pairCount = n }
}

// WithMzWindow sets the m/z half-width excluded around each extracted
// maximum. Panics if w < 0.
func WithMzWindow(w float64) ModelOption {
	if w < 0 {
		panic("synth: WithMzWindow(w<0)")
	}

	return func(c *modelConfig) { c.mzWindow = w }
}
