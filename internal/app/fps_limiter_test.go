package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFPSLimiterUnlimited(t *testing.T) {
	f := &FPSLimiter{limit: func() int { return 0 }}
	start := time.Now()
	for i := 0; i < 100; i++ {
		f.Wait()
	}
	assert.Less(t, time.Since(start), 50*time.Millisecond)
	assert.True(t, f.next.IsZero())
}

func TestFPSLimiterPaces(t *testing.T) {
	f := &FPSLimiter{limit: func() int { return 100 }}
	start := time.Now()
	for i := 0; i < 5; i++ {
		f.Wait()
	}
	// five 10ms slots
	assert.GreaterOrEqual(t, time.Since(start), 45*time.Millisecond)
}

func TestFPSLimiterResyncsAfterHitch(t *testing.T) {
	f := &FPSLimiter{limit: func() int { return 1000 }}
	f.Wait()
	time.Sleep(20 * time.Millisecond)
	f.Wait()
	// the schedule restarts from now rather than trying to catch up
	assert.Greater(t, time.Until(f.next), -time.Millisecond)
}
