package httpserver

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimiterEvictsIdleClients(t *testing.T) {
	l := newRateLimiter(1, 1, 20*time.Millisecond)

	first := l.limiter("10.0.0.1")
	require.True(t, first.Allow())
	assert.False(t, l.limiter("10.0.0.1").Allow())
	l.limiter("10.0.0.2")
	assert.Equal(t, 2, l.clients.ItemCount())

	time.Sleep(50 * time.Millisecond)
	l.clients.DeleteExpired()
	assert.Equal(t, 0, l.clients.ItemCount())

	// an evicted client starts over with a full bucket
	assert.NotSame(t, first, l.limiter("10.0.0.1"))
	assert.Equal(t, 1, l.clients.ItemCount())
}

func TestRateLimiterKeepsActiveClients(t *testing.T) {
	l := newRateLimiter(1, 1, time.Hour)
	a := l.limiter("10.0.0.1")
	assert.Same(t, a, l.limiter("10.0.0.1"))
}
