//go:build unit

package flow_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"runes-gateway/internal/pkg/flow"
)

func TestDebouncer(t *testing.T) {
	t.Run("only the last scheduled call fires", func(t *testing.T) {
		var calls atomic.Int32
		var last atomic.Int32

		b := flow.NewDebouncer(20 * time.Millisecond)
		for i := 1; i <= 5; i++ {
			v := int32(i)
			b.Do(func() {
				calls.Add(1)
				last.Store(v)
			})
			time.Sleep(2 * time.Millisecond)
		}

		assert.Eventually(t, func() bool { return calls.Load() == 1 }, time.Second, 5*time.Millisecond)
		assert.Equal(t, int32(5), last.Load())
	})

	t.Run("cancel drops the pending call", func(t *testing.T) {
		var calls atomic.Int32

		b := flow.NewDebouncer(20 * time.Millisecond)
		b.Do(func() { calls.Add(1) })
		b.Cancel()

		time.Sleep(60 * time.Millisecond)
		assert.Equal(t, int32(0), calls.Load())
	})
}

func TestThrottle(t *testing.T) {
	t.Run("second attempt inside the interval is rejected", func(t *testing.T) {
		th := flow.NewThrottle(time.Hour)
		assert.True(t, th.Allow())
		assert.False(t, th.Allow())
	})

	t.Run("attempt after the interval is permitted", func(t *testing.T) {
		th := flow.NewThrottle(10 * time.Millisecond)
		assert.True(t, th.Allow())
		assert.Eventually(t, th.Allow, time.Second, 5*time.Millisecond)
	})
}

func TestSequencer(t *testing.T) {
	s := flow.NewSequencer()

	first := s.Next()
	assert.True(t, s.Current(first))

	second := s.Next()
	assert.False(t, s.Current(first), "superseded sequence must be stale")
	assert.True(t, s.Current(second))
}
