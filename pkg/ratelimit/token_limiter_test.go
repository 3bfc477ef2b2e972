package ratelimit

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenLimiter_WithinBudget(t *testing.T) {
	l := NewTokenLimiter(1000)

	require.NoError(t, l.Wait(context.Background(), 400))
	require.NoError(t, l.Wait(context.Background(), 400))
	assert.Equal(t, 200, l.GetRemaining())
}

func TestTokenLimiter_OversizedRequestAdmittedOnFreshWindow(t *testing.T) {
	l := NewTokenLimiter(100)

	// Larger than the whole budget, but the window is empty.
	require.NoError(t, l.Wait(context.Background(), 500))
	assert.Equal(t, 0, l.GetRemaining())
}

func TestTokenLimiter_BlockedWaitHonorsContext(t *testing.T) {
	l := NewTokenLimiter(100)
	require.NoError(t, l.Wait(context.Background(), 90))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := l.Wait(ctx, 50)
	require.ErrorIs(t, err, context.Canceled)
}
