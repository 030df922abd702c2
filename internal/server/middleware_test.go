package server

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRateLimiter_AllowsWithinLimit(t *testing.T) {
	rl := NewRateLimiter(5, time.Second)

	for i := 0; i < 5; i++ {
		assert.True(t, rl.Allow("conn-1"), "message %d should be allowed", i)
	}
}

func TestRateLimiter_BlocksOverLimit(t *testing.T) {
	assert := assert.New(t)
	rl := NewRateLimiter(3, time.Second)

	for i := 0; i < 3; i++ {
		assert.True(rl.Allow("conn-1"))
	}
	assert.False(rl.Allow("conn-1"))
}

func TestRateLimiter_PerConnectionWindows(t *testing.T) {
	assert := assert.New(t)
	rl := NewRateLimiter(1, time.Second)

	assert.True(rl.Allow("conn-1"))
	assert.False(rl.Allow("conn-1"))
	assert.True(rl.Allow("conn-2"), "one abusive connection must not affect others")
}

func TestRateLimiter_WindowSlides(t *testing.T) {
	assert := assert.New(t)
	rl := NewRateLimiter(1, 20*time.Millisecond)

	assert.True(rl.Allow("conn-1"))
	assert.False(rl.Allow("conn-1"))

	time.Sleep(30 * time.Millisecond)
	assert.True(rl.Allow("conn-1"), "old timestamps should fall out of the window")
}

func TestRateLimiter_RemoveConnectionResets(t *testing.T) {
	assert := assert.New(t)
	rl := NewRateLimiter(1, time.Second)

	assert.True(rl.Allow("conn-1"))
	rl.RemoveConnection("conn-1")
	assert.True(rl.Allow("conn-1"))
}

func TestRateLimiter_CleanupDropsIdleEntries(t *testing.T) {
	assert := assert.New(t)
	rl := NewRateLimiter(5, 20*time.Millisecond)

	rl.Allow("conn-1")
	time.Sleep(30 * time.Millisecond)
	rl.Cleanup()

	rl.mu.Lock()
	_, exists := rl.requests["conn-1"]
	rl.mu.Unlock()
	assert.False(exists)
}
