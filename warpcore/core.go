// SPDX-License-Identifier: MIT
// Package: lvwarp/warpcore
//
// core.go — Core, a concurrency-safe holder of Config.
//
// Concurrency:
//   • Setters take the write lock; ConstructWarp snapshots Config under the
//     read lock once and then runs without holding it.
//   • The DP table is call-local, so concurrent ConstructWarp calls share nothing.

package warpcore

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/katalvlaran/lvwarp/warpelem"
)

// Core constructs time warps with a mutable, lock-protected Config.
type Core struct {
	mu     sync.RWMutex
	cfg    Config
	logger *slog.Logger
}

// Option customizes a Core at construction.
type Option func(*Core)

// WithLogger sets the structured logger used for debug records.
// Panics if l is nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("warpcore: WithLogger(nil)")
	}

	return func(c *Core) { c.logger = l }
}

// WithConfig replaces the default configuration. The value is stored as
// given; use NewFromConfig to validate it first.
func WithConfig(cfg Config) Option {
	return func(c *Core) { c.cfg = cfg }
}

// New returns a Core with DefaultConfig and a discarding logger, then
// applies opts in order.
func New(opts ...Option) *Core {
	c := &Core{
		cfg:    DefaultConfig(),
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// NewFromConfig validates cfg and returns a Core using it.
func NewFromConfig(cfg Config, opts ...Option) (*Core, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("warpcore: %w", err)
	}

	return New(append([]Option{WithConfig(cfg)}, opts...)...), nil
}

// Config returns a snapshot of the current configuration.
func (c *Core) Config() Config {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.cfg
}

// StretchPenalty returns the stretch penalty.
func (c *Core) StretchPenalty() float64 { return c.Config().StretchPenalty }

// GlobalSkew returns the global skew.
func (c *Core) GlobalSkew() int { return c.Config().GlobalSkew }

// MzMatchPPM returns the m/z matching tolerance in ppm.
func (c *Core) MzMatchPPM() float64 { return c.Config().MzMatchPPM }

// SetStretchPenalty sets the stretch penalty. Always succeeds.
func (c *Core) SetStretchPenalty(p float64) {
	c.mu.Lock()
	c.cfg.StretchPenalty = p
	c.mu.Unlock()
}

// SetMzMatchPPM sets the m/z matching tolerance. Always succeeds.
func (c *Core) SetMzMatchPPM(ppm float64) {
	c.mu.Lock()
	c.cfg.MzMatchPPM = ppm
	c.mu.Unlock()
}

// SetGlobalSkew stores s as the global skew.
//
// The guard checks the skew that is currently stored, not s: once a value
// below MinGlobalSkew has been stored, every further call fails with
// ErrParameter and leaves the stored value unchanged.
func (c *Core) SetGlobalSkew(s int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	// TODO: validate s instead of the stored value once callers that rely
	// on storing small skews have been migrated.
	if c.cfg.GlobalSkew < MinGlobalSkew {
		return fmt.Errorf("SetGlobalSkew(%d): stored skew %d < %d: %w", s, c.cfg.GlobalSkew, MinGlobalSkew, ErrParameter)
	}
	c.cfg.GlobalSkew = s

	return nil
}

// ConstructWarp maps knotsA onto b using the current configuration.
// See the package-level ConstructWarp for the algorithm and errors.
func (c *Core) ConstructWarp(a, b []warpelem.Element, knotsA []int) ([]int, error) {
	cfg := c.Config()

	knotsB, t, err := construct(cfg, a, b, knotsA)
	if err != nil {
		return nil, fmt.Errorf("warpcore: %w", err)
	}
	if t != nil {
		c.logger.Debug("warpcore: warp constructed",
			slog.Int("segments", len(t.rows)),
			slog.Int("cells", t.cellCount()),
			slog.Int("len_a", len(a)),
			slog.Int("len_b", len(b)),
			slog.Int("global_skew", cfg.GlobalSkew),
		)
	}

	return knotsB, nil
}
