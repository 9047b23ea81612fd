package chi

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRateLimiter(t *testing.T) {
	t.Run("success - buckets are per key", func(t *testing.T) {
		l := NewRateLimiter(0.001, 2)
		assert.True(t, l.Allow("a"))
		assert.True(t, l.Allow("a"))
		assert.False(t, l.Allow("a"))
		assert.True(t, l.Allow("b"))
	})

	t.Run("success - cleanup drops idle buckets", func(t *testing.T) {
		l := NewRateLimiter(0.001, 1)
		l.idleTTL = time.Millisecond
		assert.True(t, l.Allow("a"))
		time.Sleep(5 * time.Millisecond)
		l.Cleanup()
		assert.Empty(t, l.entries)
		assert.True(t, l.Allow("a"))
	})
}
