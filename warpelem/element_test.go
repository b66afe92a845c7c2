package warpelem_test

import (
	"testing"

	"github.com/katalvlaran/lvwarp/warpelem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNew_OrdersByIntensityAndCaps checks that New keeps the MaxPairs most
// intense pairs, dominant first.
func TestNew_OrdersByIntensityAndCaps(t *testing.T) {
	e := warpelem.New(
		warpelem.Pair{Mz: 100, Intensity: 1},
		warpelem.Pair{Mz: 200, Intensity: 5},
		warpelem.Pair{Mz: 300, Intensity: 3},
		warpelem.Pair{Mz: 400, Intensity: 4},
		warpelem.Pair{Mz: 500, Intensity: 2},
	)

	require.Equal(t, warpelem.MaxPairs, e.Len())
	assert.False(t, e.IsLegacy())
	assert.Equal(t, []warpelem.Pair{
		{Mz: 200, Intensity: 5},
		{Mz: 400, Intensity: 4},
		{Mz: 300, Intensity: 3},
		{Mz: 500, Intensity: 2},
	}, e.Pairs())
	assert.Equal(t, 200.0, e.DominantMz())
	assert.Equal(t, 5.0, e.DominantIntensity())
	assert.Equal(t, 14.0, e.Intensity())
	assert.Equal(t, 200.0, e.MinMz())
	assert.Equal(t, 500.0, e.MaxMz())
}

// TestNew_ZeroMzIsPresent ensures a feature at m/z 0 is not mistaken for an
// empty slot.
func TestNew_ZeroMzIsPresent(t *testing.T) {
	e := warpelem.New(warpelem.Pair{Mz: 0, Intensity: 7})

	assert.False(t, e.IsLegacy(), "explicit pair at m/z 0 is a keyed element")
	assert.Equal(t, 1, e.Len())
	assert.Equal(t, 7.0, e.Intensity())
}

// TestLegacy_AndBlind covers key-blind elements.
func TestLegacy_AndBlind(t *testing.T) {
	l := warpelem.Legacy(42)
	assert.True(t, l.IsLegacy())
	assert.Equal(t, 0, l.Len())
	assert.Equal(t, 42.0, l.Intensity())
	assert.Equal(t, 0.0, l.MinMz())
	assert.Empty(t, l.Pairs())

	keyed := warpelem.New(
		warpelem.Pair{Mz: 150, Intensity: 9},
		warpelem.Pair{Mz: 250, Intensity: 3},
	)
	blind := keyed.Blind()
	assert.True(t, blind.IsLegacy())
	assert.Equal(t, 9.0, blind.Intensity(), "blind keeps the dominant intensity only")
	assert.Equal(t, l, l.Blind())

	var zero warpelem.Element
	assert.True(t, zero.IsLegacy(), "zero Element is legacy")
	assert.Equal(t, zero, warpelem.New())
}

// TestPair_OutOfRangePanics verifies bounds-checked access to slots.
func TestPair_OutOfRangePanics(t *testing.T) {
	e := warpelem.New(warpelem.Pair{Mz: 1, Intensity: 1})
	assert.Equal(t, warpelem.Pair{Mz: 1, Intensity: 1}, e.Pair(0))
	assert.Panics(t, func() { e.Pair(1) })
	assert.Panics(t, func() { e.Pair(-1) })
}

// TestScale multiplies only participating intensities and leaves the
// receiver untouched.
func TestScale(t *testing.T) {
	e := warpelem.New(
		warpelem.Pair{Mz: 100, Intensity: 2},
		warpelem.Pair{Mz: 200, Intensity: 1},
	)
	s := e.Scale(10)
	assert.Equal(t, 30.0, s.Intensity())
	assert.Equal(t, 3.0, e.Intensity(), "value receiver must not mutate the original")
	assert.Equal(t, e.DominantMz(), s.DominantMz())

	assert.Equal(t, 5.0, warpelem.Legacy(0.5).Scale(10).Intensity())
}

// TestWithIntensityOffset adds offsets to present slots and slot 0 only.
func TestWithIntensityOffset(t *testing.T) {
	e := warpelem.New(warpelem.Pair{Mz: 100, Intensity: 2})
	assert.Equal(t, 3.5, e.WithIntensityOffset(0, 1.5).Intensity())
	assert.Equal(t, e, e.WithIntensityOffset(2, 1.5), "absent slot is ignored")
	assert.Equal(t, 1.0, warpelem.Legacy(0).WithIntensityOffset(0, 1).Intensity())
}

// TestCSV checks CSV labels and value rows.
func TestCSV(t *testing.T) {
	assert.Equal(t, "mz 0,int 0,mz 1,int 1", warpelem.CSVLabels(2))
	assert.Equal(t, "", warpelem.CSVLabels(0))

	e := warpelem.New(
		warpelem.Pair{Mz: 445.5, Intensity: 10},
		warpelem.Pair{Mz: 100, Intensity: 2.25},
	)
	assert.Equal(t, "445.5,10,100,2.25", e.CSVValues())
	assert.Equal(t, "", warpelem.Legacy(3).CSVValues())
}
