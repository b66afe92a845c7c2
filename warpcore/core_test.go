package warpcore_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvwarp/warpcore"
)

// TestCore_Defaults verifies the getters of a fresh Core.
func TestCore_Defaults(t *testing.T) {
	c := warpcore.New()

	assert.Equal(t, warpcore.DefaultConfig(), c.Config())
	assert.Equal(t, 0.0, c.StretchPenalty())
	assert.Equal(t, 100, c.GlobalSkew())
	assert.Equal(t, 100.0, c.MzMatchPPM())
}

// TestCore_Setters verifies the unconditional setters.
func TestCore_Setters(t *testing.T) {
	c := warpcore.New()

	c.SetStretchPenalty(0.25)
	c.SetMzMatchPPM(20)
	assert.Equal(t, 0.25, c.StretchPenalty())
	assert.Equal(t, 20.0, c.MzMatchPPM())

	// no validation on these two
	c.SetStretchPenalty(-1)
	assert.Equal(t, -1.0, c.StretchPenalty())
}

// TestCore_SetGlobalSkew verifies that the guard inspects the stored skew:
// a small value is accepted once, after which every change is rejected.
func TestCore_SetGlobalSkew(t *testing.T) {
	c := warpcore.New()

	require.NoError(t, c.SetGlobalSkew(500))
	assert.Equal(t, 500, c.GlobalSkew())

	require.NoError(t, c.SetGlobalSkew(5))
	assert.Equal(t, 5, c.GlobalSkew())

	err := c.SetGlobalSkew(50)
	require.ErrorIs(t, err, warpcore.ErrParameter)
	assert.Equal(t, 5, c.GlobalSkew(), "rejected change leaves state untouched")
}

// TestNewFromConfig verifies validation of proposed values.
func TestNewFromConfig(t *testing.T) {
	cfg := warpcore.Config{StretchPenalty: 0.01, GlobalSkew: 250, MzMatchPPM: 10}
	c, err := warpcore.NewFromConfig(cfg)
	require.NoError(t, err)
	assert.Equal(t, cfg, c.Config())

	_, err = warpcore.NewFromConfig(warpcore.Config{GlobalSkew: 5, MzMatchPPM: 10})
	assert.ErrorIs(t, err, warpcore.ErrParameter)
}

// TestCore_ConstructWarp verifies delegation, error wrapping and the debug record.
func TestCore_ConstructWarp(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	c := warpcore.New(warpcore.WithLogger(logger))

	a := ramp(101)
	knotsA := []int{0, 25, 50, 75, 100}
	got, err := c.ConstructWarp(a, a, knotsA)
	require.NoError(t, err)

	want, err := warpcore.ConstructWarp(warpcore.DefaultConfig(), a, a, knotsA)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	out := buf.String()
	assert.Contains(t, out, "warp constructed")
	assert.Contains(t, out, "segments=4")
	assert.Contains(t, out, "len_b=101")

	_, err = c.ConstructWarp(nil, a, knotsA)
	require.ErrorIs(t, err, warpcore.ErrEmptySequence)
	assert.Contains(t, err.Error(), "warpcore:")

	assert.Panics(t, func() { warpcore.WithLogger(nil) })
}

// TestCore_ConcurrentUse runs warps while another goroutine flips a setter
// that cannot change the result for legacy elements.
func TestCore_ConcurrentUse(t *testing.T) {
	c := warpcore.New()
	a := ramp(151)
	knotsA := []int{0, 30, 60, 90, 120, 150}

	want, err := c.ConstructWarp(a, a, knotsA)
	require.NoError(t, err)

	var g errgroup.Group
	g.Go(func() error {
		for i := 0; i < 200; i++ {
			c.SetMzMatchPPM(float64(i))
		}
		return nil
	})
	results := make([][]int, 8)
	for w := range results {
		g.Go(func() error {
			knotsB, err := c.ConstructWarp(a, a, knotsA)
			results[w] = knotsB
			return err
		})
	}
	require.NoError(t, g.Wait())

	for w, got := range results {
		assert.Equal(t, want, got, "worker %d", w)
	}
}
