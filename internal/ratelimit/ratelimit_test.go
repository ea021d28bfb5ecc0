package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBurstThenThrottle(t *testing.T) {
	t.Parallel()

	l := New(1, 3)
	for i := 0; i < 3; i++ {
		assert.Zero(t, l.reserve(), "token %d should be available", i)
	}
	assert.Positive(t, l.reserve())
}

func TestWaitRefills(t *testing.T) {
	t.Parallel()

	l := New(50, 1)
	require.Zero(t, l.reserve())

	start := time.Now()
	require.NoError(t, l.Wait(context.Background()))
	assert.GreaterOrEqual(t, time.Since(start), 10*time.Millisecond)
}

func TestWaitHonoursCancellation(t *testing.T) {
	t.Parallel()

	l := New(0.01, 1)
	require.Zero(t, l.reserve())

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, l.Wait(ctx), context.DeadlineExceeded)
}

func TestNilLimiterNeverBlocks(t *testing.T) {
	t.Parallel()

	l := Unlimited()
	for i := 0; i < 100; i++ {
		require.NoError(t, l.Wait(context.Background()))
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, l.Wait(ctx), context.Canceled)
}

func TestDefaults(t *testing.T) {
	t.Parallel()

	l := New(-1, 0)
	assert.Zero(t, l.reserve())
	assert.Positive(t, l.reserve())
}
