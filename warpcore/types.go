// Package warpcore defines configuration values and tuning constants.
package warpcore

// Stretch limits: a segment of duration d in A may span between
// floor(minStretch·d) and ceil(maxStretch·d) samples in B.
const (
	stretch    = 0.51
	minStretch = 1.0 - stretch
	maxStretch = 1.0 + stretch
)

// Defaults and limits for Config.
const (
	// DefaultStretchPenalty disables the stretch penalty.
	DefaultStretchPenalty = 0.0

	// DefaultGlobalSkew is the default search radius in target samples.
	DefaultGlobalSkew = 100

	// DefaultMzMatchPPM is the default m/z matching tolerance.
	DefaultMzMatchPPM = 100.0

	// MinGlobalSkew is the smallest skew considered safe.
	MinGlobalSkew = 10
)

// Config holds the three tunables of the warp core.
//
//   - StretchPenalty — weight of the quadratic stretch cost, ≥ 0. It is
//     multiplied by the reference's average intensity, so a small value
//     (e.g. 0.01) behaves the same for signals of any intensity scale.
//     Stretch is measured in samples, so results depend on sampling rate.
//   - GlobalSkew — maximum expected offset, in target samples, between a
//     knot's unstretched position and its aligned position. Larger values
//     search more and may produce better warps.
//   - MzMatchPPM — relative m/z tolerance used to pair features of two
//     elements. Only relevant for keyed (non-legacy) elements.
//
// Config is a plain value: copies are independent and ConstructWarp never
// modifies it.
type Config struct {
	StretchPenalty float64 `yaml:"stretch_penalty"`
	GlobalSkew     int     `yaml:"global_skew"`
	MzMatchPPM     float64 `yaml:"mz_match_ppm"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		StretchPenalty: DefaultStretchPenalty,
		GlobalSkew:     DefaultGlobalSkew,
		MzMatchPPM:     DefaultMzMatchPPM,
	}
}
