package synth

import "math"

// UniformExpand resamples a per-minute intensity list at samplesPerMinute,
// linearly interpolating between neighbouring minutes.
//
// The output covers t = 0 … len(perMinute) minutes inclusive, i.e.
// floor(len·rate)+1 samples. Past the last minute the last value is held.
// Rates below 1 are raised to 1. An empty input yields nil.
//
// Example: UniformExpand([]float64{0, 1}, 2) = [0, 0.5, 1, 1, 1].
func UniformExpand(perMinute []float64, samplesPerMinute float64) []float64 {
	if len(perMinute) == 0 {
		return nil
	}

	rate := max(1.0, samplesPerMinute)
	last := len(perMinute) - 1
	n := int(math.Floor(float64(len(perMinute))*rate)) + 1

	out := make([]float64, n)
	for s := range out {
		t := float64(s) / rate
		lo := min(int(math.Floor(t)), last)
		hi := min(int(math.Ceil(t)), last)
		f := t - float64(lo)
		out[s] = perMinute[lo]*(1-f) + perMinute[hi]*f
	}

	return out
}
