// Package cooldown rate-limits AI-backed commands per category.
//
// A Gate is shared by every session in the process. The check and the
// timestamp update happen under one lock so two concurrent callers can never
// both pass within the same interval.
package cooldown

import (
	"context"
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"
)

// ErrActive is matched by every *Error.
var ErrActive = errors.New("cooldown active")

// Error reports a rejected call and how long the caller must wait.
type Error struct {
	Category         string
	RemainingSeconds int
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s for %q: retry in %d seconds", ErrActive, e.Category, e.RemainingSeconds)
}

func (e *Error) Is(target error) bool {
	return target == ErrActive
}

// Clock abstracts the current time.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// DefaultInterval applies to every category without an override.
const DefaultInterval = 10 * time.Second

// Config holds the minimum interval between calls per category.
type Config struct {
	Default    time.Duration
	Categories map[string]time.Duration
}

// DefaultConfig returns a Config using DefaultInterval everywhere.
func DefaultConfig() Config {
	return Config{Default: DefaultInterval, Categories: map[string]time.Duration{}}
}

// Interval returns the minimum interval for category.
func (c Config) Interval(category string) time.Duration {
	if d, ok := c.Categories[category]; ok && d > 0 {
		return d
	}
	if c.Default > 0 {
		return c.Default
	}
	return DefaultInterval
}

// LoadConfig reads DEVTERM_COOLDOWN_SECONDS and, for each named category,
// DEVTERM_COOLDOWN_<CATEGORY>_SECONDS (dashes become underscores).
func LoadConfig(categories ...string) Config {
	cfg := DefaultConfig()
	if d, ok := secondsEnv("DEVTERM_COOLDOWN_SECONDS"); ok {
		cfg.Default = d
	}
	for _, cat := range categories {
		name := "DEVTERM_COOLDOWN_" + strings.ToUpper(strings.ReplaceAll(cat, "-", "_")) + "_SECONDS"
		if d, ok := secondsEnv(name); ok {
			cfg.Categories[cat] = d
		}
	}
	return cfg
}

func secondsEnv(name string) (time.Duration, bool) {
	v := os.Getenv(name)
	if v == "" {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return 0, false
	}
	return time.Duration(n) * time.Second, true
}

// Gate tracks the last admitted call per category.
type Gate struct {
	mu    sync.Mutex
	cfg   Config
	clock Clock
	last  map[string]time.Time
}

// NewGate creates an isolated Gate. A nil clock uses SystemClock.
func NewGate(cfg Config, clock Clock) *Gate {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Gate{cfg: cfg, clock: clock, last: make(map[string]time.Time)}
}

// Enforce admits the call and records its time, or returns *Error when the
// category was admitted less than its interval ago. An admitted call keeps
// its slot even if the work it guards later fails.
func (g *Gate) Enforce(ctx context.Context, category string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.clock.Now()
	interval := g.cfg.Interval(category)
	if last, ok := g.last[category]; ok {
		elapsed := now.Sub(last)
		if elapsed < interval {
			return &Error{Category: category, RemainingSeconds: remainingSeconds(interval-elapsed, interval)}
		}
	}
	g.last[category] = now
	return nil
}

// Remaining reports how long category must wait, zero if it may run now.
func (g *Gate) Remaining(category string) time.Duration {
	g.mu.Lock()
	defer g.mu.Unlock()

	last, ok := g.last[category]
	if !ok {
		return 0
	}
	left := g.cfg.Interval(category) - g.clock.Now().Sub(last)
	if left < 0 {
		return 0
	}
	return left
}

func remainingSeconds(left, interval time.Duration) int {
	secs := int(math.Ceil(left.Seconds()))
	maxSecs := int(math.Ceil(interval.Seconds()))
	if secs < 1 {
		secs = 1
	}
	if secs > maxSecs {
		secs = maxSecs
	}
	return secs
}
