package cooldown_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alexanderramin/devterm/internal/cooldown"
	"github.com/alexanderramin/devterm/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var epoch = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newGate(interval time.Duration) (*cooldown.Gate, *testutil.FakeClock) {
	clock := testutil.NewFakeClock(epoch)
	return cooldown.NewGate(cooldown.Config{Default: interval}, clock), clock
}

func TestEnforce_SecondCallWithinIntervalRejected(t *testing.T) {
	gate, clock := newGate(10 * time.Second)
	ctx := context.Background()

	require.NoError(t, gate.Enforce(ctx, "ask"))

	clock.Advance(3 * time.Second)
	err := gate.Enforce(ctx, "ask")
	require.ErrorIs(t, err, cooldown.ErrActive)

	var cdErr *cooldown.Error
	require.ErrorAs(t, err, &cdErr)
	assert.Equal(t, "ask", cdErr.Category)
	assert.Equal(t, 7, cdErr.RemainingSeconds)
}

func TestEnforce_AllowedAfterInterval(t *testing.T) {
	gate, clock := newGate(10 * time.Second)
	ctx := context.Background()

	require.NoError(t, gate.Enforce(ctx, "ask"))
	clock.Advance(10 * time.Second)
	assert.NoError(t, gate.Enforce(ctx, "ask"))
}

func TestEnforce_RejectionDoesNotResetTimestamp(t *testing.T) {
	gate, clock := newGate(10 * time.Second)
	ctx := context.Background()

	require.NoError(t, gate.Enforce(ctx, "skills"))
	clock.Advance(6 * time.Second)
	require.Error(t, gate.Enforce(ctx, "skills"))
	clock.Advance(4 * time.Second)
	assert.NoError(t, gate.Enforce(ctx, "skills"))
}

func TestEnforce_RemainingSecondsRoundsUpWithinBounds(t *testing.T) {
	tests := []struct {
		name    string
		advance time.Duration
		want    int
	}{
		{"immediately", 0, 10},
		{"sub-second elapsed", 200 * time.Millisecond, 10},
		{"fractional remainder", 9*time.Second + 100*time.Millisecond, 1},
		{"almost done", 9*time.Second + 999*time.Millisecond, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gate, clock := newGate(10 * time.Second)
			require.NoError(t, gate.Enforce(context.Background(), "project"))
			clock.Advance(tt.advance)

			var cdErr *cooldown.Error
			require.ErrorAs(t, gate.Enforce(context.Background(), "project"), &cdErr)
			assert.Equal(t, tt.want, cdErr.RemainingSeconds)
			assert.Greater(t, cdErr.RemainingSeconds, 0)
			assert.LessOrEqual(t, cdErr.RemainingSeconds, 10)
		})
	}
}

func TestEnforce_CategoriesAreIndependent(t *testing.T) {
	gate, _ := newGate(10 * time.Second)
	ctx := context.Background()

	require.NoError(t, gate.Enforce(ctx, "ask"))
	assert.NoError(t, gate.Enforce(ctx, "skills"))
	assert.NoError(t, gate.Enforce(ctx, "prompt-suggestions"))
	assert.Error(t, gate.Enforce(ctx, "ask"))
}

func TestEnforce_PerCategoryInterval(t *testing.T) {
	clock := testutil.NewFakeClock(epoch)
	gate := cooldown.NewGate(cooldown.Config{
		Default:    10 * time.Second,
		Categories: map[string]time.Duration{"prompt-suggestions": 2 * time.Second},
	}, clock)
	ctx := context.Background()

	require.NoError(t, gate.Enforce(ctx, "prompt-suggestions"))
	require.NoError(t, gate.Enforce(ctx, "ask"))
	clock.Advance(2 * time.Second)
	assert.NoError(t, gate.Enforce(ctx, "prompt-suggestions"))
	assert.Error(t, gate.Enforce(ctx, "ask"))
}

func TestEnforce_CanceledContext(t *testing.T) {
	gate, _ := newGate(10 * time.Second)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := gate.Enforce(ctx, "ask")
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, gate.Remaining("ask"))
}

func TestEnforce_ConcurrentCallsAdmitExactlyOne(t *testing.T) {
	gate, _ := newGate(10 * time.Second)

	var admitted, rejected atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := gate.Enforce(context.Background(), "ask")
			switch {
			case err == nil:
				admitted.Add(1)
			case errors.Is(err, cooldown.ErrActive):
				rejected.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), admitted.Load())
	assert.Equal(t, int32(49), rejected.Load())
}

func TestRemaining(t *testing.T) {
	gate, clock := newGate(10 * time.Second)
	assert.Zero(t, gate.Remaining("ask"))

	require.NoError(t, gate.Enforce(context.Background(), "ask"))
	clock.Advance(4 * time.Second)
	assert.Equal(t, 6*time.Second, gate.Remaining("ask"))

	clock.Advance(20 * time.Second)
	assert.Zero(t, gate.Remaining("ask"))
}

func TestError_Message(t *testing.T) {
	err := &cooldown.Error{Category: "ask", RemainingSeconds: 4}
	assert.Equal(t, `cooldown active for "ask": retry in 4 seconds`, err.Error())
}

func TestLoadConfig(t *testing.T) {
	t.Setenv("DEVTERM_COOLDOWN_SECONDS", "30")
	t.Setenv("DEVTERM_COOLDOWN_PROMPT_SUGGESTIONS_SECONDS", "5")
	t.Setenv("DEVTERM_COOLDOWN_ASK_SECONDS", "bogus")

	cfg := cooldown.LoadConfig("ask", "prompt-suggestions")

	assert.Equal(t, 30*time.Second, cfg.Interval("ask"))
	assert.Equal(t, 5*time.Second, cfg.Interval("prompt-suggestions"))
	assert.Equal(t, 30*time.Second, cfg.Interval("skills"))
}

func TestConfigInterval_ZeroValueFallsBackToDefault(t *testing.T) {
	assert.Equal(t, cooldown.DefaultInterval, cooldown.Config{}.Interval("anything"))
}
