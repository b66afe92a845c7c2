// SPDX-License-Identifier: MIT
// Package: lvwarp/synth
//
// model.go — a random LC-MS run made of eluting peptides.
//
// Each peptide has an apex time, an apex intensity, an integer m/z and an
// elution width. At time t a peptide contributes
//
//	I(t) = apex · cos(π·(t − apexTime)/width)   for |t − apexTime| < width/2
//
// and nothing otherwise, so profiles are non-negative bells that vanish at
// the window edges. Model.Sample collects the contributions into a
// centroided scan and reduces it with warpelem.FromScan.
//
// Draws (in peptide order, one peptide at a time):
//   apexTime  ∈ [maxFeature/2, duration − maxFeature/2)
//   apex      ∈ [1/dynamicRange, 1)
//   m/z       ∈ {minMz … maxMz}
//   width     ∈ [minFeature, maxFeature)

package synth

import (
	"math"

	"github.com/katalvlaran/lvwarp/warpelem"
)

// Peptide is one simulated analyte.
type Peptide struct {
	ApexTime      float64 // minutes
	ApexIntensity float64
	Mz            float64
	Width         float64 // elution width in minutes
}

// Intensity returns the peptide's signal at time t (minutes).
func (p Peptide) Intensity(t float64) float64 {
	d := math.Abs(t - p.ApexTime)
	if d >= p.Width/2 {
		return 0
	}

	return p.ApexIntensity * math.Cos(math.Pi*d/p.Width)
}

// Model is an immutable random run. Safe for concurrent Sample calls.
type Model struct {
	peptides  []Peptide
	pairCount int
	mzWindow  float64
	duration  float64
}

// NewModel draws a run according to opts. Identical options (including the
// seed) yield identical models.
func NewModel(opts ...ModelOption) *Model {
	cfg := newModelConfig(opts...)

	apexLo := cfg.maxFeature / 2
	apexHi := max(cfg.duration-cfg.maxFeature/2, apexLo)
	minApex := 1 / cfg.dynamicRange

	m := &Model{
		peptides:  make([]Peptide, cfg.peptides),
		pairCount: cfg.pairCount,
		mzWindow:  cfg.mzWindow,
		duration:  cfg.duration,
	}
	for i := range m.peptides {
		m.peptides[i] = Peptide{
			ApexTime:      uniform(cfg.rng.Float64(), apexLo, apexHi),
			ApexIntensity: uniform(cfg.rng.Float64(), minApex, 1),
			Mz:            float64(cfg.minMz + cfg.rng.Intn(cfg.maxMz-cfg.minMz+1)),
			Width:         uniform(cfg.rng.Float64(), cfg.minFeature, cfg.maxFeature),
		}
	}

	return m
}

// uniform maps u ∈ [0, 1) onto [lo, hi).
func uniform(u, lo, hi float64) float64 { return lo + u*(hi-lo) }

// Peptides returns a copy of the simulated peptides.
func (m *Model) Peptides() []Peptide {
	out := make([]Peptide, len(m.peptides))
	copy(out, m.peptides)

	return out
}

// Duration returns the run length in minutes.
func (m *Model) Duration() float64 { return m.duration }

// Scan returns the centroided scan at time t: one point per eluting peptide.
func (m *Model) Scan(t float64) []warpelem.Pair {
	var scan []warpelem.Pair
	for _, p := range m.peptides {
		if i := p.Intensity(t); i > 0 {
			scan = append(scan, warpelem.Pair{Mz: p.Mz, Intensity: i})
		}
	}

	return scan
}

// Sample returns the dominant pairs of the scan at time t.
func (m *Model) Sample(t float64) warpelem.Element {
	return warpelem.FromScan(m.Scan(t), m.pairCount, m.mzWindow)
}
