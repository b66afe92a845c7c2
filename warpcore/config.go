// SPDX-License-Identifier: MIT
// Package: lvwarp/warpcore
//
// config.go — validation and YAML loading of Config.
//
// Policy:
//   • Keys omitted from a file keep their DefaultConfig values.
//   • Unknown keys are rejected so typos do not silently fall back to defaults.
//   • Validate checks the proposed values; see Core.SetGlobalSkew for the
//     setter's (different) guard.

package warpcore

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// maxConfigFileSize bounds LoadConfig reads.
const maxConfigFileSize = 1 << 20

// Validate reports whether every field of c is usable. Errors wrap
// ErrParameter.
func (c Config) Validate() error {
	if math.IsNaN(c.StretchPenalty) || math.IsInf(c.StretchPenalty, 0) || c.StretchPenalty < 0 {
		return fmt.Errorf("stretch_penalty %v must be finite and ≥ 0: %w", c.StretchPenalty, ErrParameter)
	}
	if c.GlobalSkew < MinGlobalSkew {
		return fmt.Errorf("global_skew %d must be ≥ %d: %w", c.GlobalSkew, MinGlobalSkew, ErrParameter)
	}
	if math.IsNaN(c.MzMatchPPM) || math.IsInf(c.MzMatchPPM, 0) || c.MzMatchPPM < 0 {
		return fmt.Errorf("mz_match_ppm %v must be finite and ≥ 0: %w", c.MzMatchPPM, ErrParameter)
	}

	return nil
}

// ParseConfig decodes a YAML document on top of DefaultConfig and validates
// the result. An empty document yields the defaults.
//
// Example:
//
//	stretch_penalty: 0.01
//	global_skew: 500
//	mz_match_ppm: 20
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("warpcore: decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("warpcore: %w", err)
	}

	return cfg, nil
}

// LoadConfig reads and parses a YAML configuration file. The path must end
// in .yaml or .yml and the file must not exceed 1 MiB.
func LoadConfig(path string) (Config, error) {
	clean := filepath.Clean(path)
	if ext := filepath.Ext(clean); ext != ".yaml" && ext != ".yml" {
		return Config{}, fmt.Errorf("warpcore: config file must have .yaml or .yml extension, got %q", ext)
	}

	info, err := os.Stat(clean)
	if err != nil {
		return Config{}, fmt.Errorf("warpcore: stat config file: %w", err)
	}
	if info.Size() > maxConfigFileSize {
		return Config{}, fmt.Errorf("warpcore: config file too large: %d bytes (max %d)", info.Size(), maxConfigFileSize)
	}

	data, err := os.ReadFile(clean)
	if err != nil {
		return Config{}, fmt.Errorf("warpcore: read config file: %w", err)
	}

	return ParseConfig(data)
}
