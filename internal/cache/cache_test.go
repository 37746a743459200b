package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSetGetDelete(t *testing.T) {
	c := NewInMemoryCache(time.Minute, time.Minute)
	ctx := context.Background()

	c.Set(ctx, "key", "value")

	got, found := c.Get(ctx, "key")
	assert.True(t, found)
	assert.Equal(t, "value", got)

	c.Delete(ctx, "key")
	_, found = c.Get(ctx, "key")
	assert.False(t, found)
}

func TestExpiry(t *testing.T) {
	c := NewInMemoryCache(10*time.Millisecond, time.Minute)
	ctx := context.Background()

	c.Set(ctx, "key", "value")
	time.Sleep(20 * time.Millisecond)

	_, found := c.Get(ctx, "key")
	assert.False(t, found, "expired entries read as absent")
}

func TestSweepRemovesExpiredEntries(t *testing.T) {
	c := NewInMemoryCache(10*time.Millisecond, time.Minute)
	ctx := context.Background()

	c.Set(ctx, "old", "value")
	time.Sleep(20 * time.Millisecond)
	c.sweep()

	c.mu.RLock()
	_, present := c.entries["old"]
	c.mu.RUnlock()
	assert.False(t, present)
}

func TestStopCleanupIsIdempotent(t *testing.T) {
	c := NewInMemoryCache(time.Minute, time.Millisecond)
	c.StartCleanup(context.Background())

	c.StopCleanup()
	c.StopCleanup()
}
