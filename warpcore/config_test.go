package warpcore_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvwarp/warpcore"
)

// TestParseConfig covers defaults, partial documents and rejections.
func TestParseConfig(t *testing.T) {
	cfg, err := warpcore.ParseConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, warpcore.DefaultConfig(), cfg, "empty document yields defaults")

	cfg, err = warpcore.ParseConfig([]byte("global_skew: 500\n"))
	require.NoError(t, err)
	assert.Equal(t, 500, cfg.GlobalSkew)
	assert.Equal(t, warpcore.DefaultStretchPenalty, cfg.StretchPenalty)
	assert.Equal(t, warpcore.DefaultMzMatchPPM, cfg.MzMatchPPM)

	cfg, err = warpcore.ParseConfig([]byte("stretch_penalty: 0.01\nglobal_skew: 20\nmz_match_ppm: 5\n"))
	require.NoError(t, err)
	assert.Equal(t, warpcore.Config{StretchPenalty: 0.01, GlobalSkew: 20, MzMatchPPM: 5}, cfg)

	_, err = warpcore.ParseConfig([]byte("globl_skew: 500\n"))
	assert.Error(t, err, "unknown keys are rejected")

	_, err = warpcore.ParseConfig([]byte("global_skew: 5\n"))
	assert.ErrorIs(t, err, warpcore.ErrParameter)

	_, err = warpcore.ParseConfig([]byte("stretch_penalty: -1\n"))
	assert.ErrorIs(t, err, warpcore.ErrParameter)

	_, err = warpcore.ParseConfig([]byte("mz_match_ppm: .nan\n"))
	assert.ErrorIs(t, err, warpcore.ErrParameter)

	_, err = warpcore.ParseConfig([]byte("global_skew: [1, 2]\n"))
	assert.Error(t, err)
}

// TestLoadConfig covers the file checks in front of ParseConfig.
func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()

	good := filepath.Join(dir, "warp.yaml")
	require.NoError(t, os.WriteFile(good, []byte("global_skew: 300\n"), 0o600))
	cfg, err := warpcore.LoadConfig(good)
	require.NoError(t, err)
	assert.Equal(t, 300, cfg.GlobalSkew)

	yml := filepath.Join(dir, "warp.yml")
	require.NoError(t, os.WriteFile(yml, []byte("mz_match_ppm: 15\n"), 0o600))
	cfg, err = warpcore.LoadConfig(yml)
	require.NoError(t, err)
	assert.Equal(t, 15.0, cfg.MzMatchPPM)

	badExt := filepath.Join(dir, "warp.json")
	require.NoError(t, os.WriteFile(badExt, []byte("{}"), 0o600))
	_, err = warpcore.LoadConfig(badExt)
	assert.ErrorContains(t, err, "extension")

	_, err = warpcore.LoadConfig(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	big := filepath.Join(dir, "big.yaml")
	require.NoError(t, os.WriteFile(big, []byte("# "+strings.Repeat("x", 1<<20)+"\n"), 0o600))
	_, err = warpcore.LoadConfig(big)
	assert.ErrorContains(t, err, "too large")
}
