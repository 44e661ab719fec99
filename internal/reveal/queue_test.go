package reveal_test

import (
	"testing"
	"time"

	"github.com/leighmacdonald/zodiac-tui/internal/reveal"
	"github.com/stretchr/testify/require"
)

func TestQueueOrdering(t *testing.T) {
	clock := newFakeClock()
	queue := reveal.NewQueue(clock)

	var order []string
	queue.Schedule(300*time.Millisecond, func() { order = append(order, "c") })
	queue.Schedule(100*time.Millisecond, func() { order = append(order, "a") })
	queue.Schedule(100*time.Millisecond, func() { order = append(order, "b") })

	require.Zero(t, queue.Advance(clock.advance(99*time.Millisecond)))
	require.Equal(t, 3, queue.Len())

	require.Equal(t, 2, queue.Advance(clock.advance(200*time.Millisecond)))
	require.Equal(t, []string{"a", "b"}, order)
	require.Equal(t, 1, queue.Len())

	require.Equal(t, 1, queue.Advance(clock.advance(time.Second)))
	require.Equal(t, []string{"a", "b", "c"}, order)
	require.Zero(t, queue.Len())
}

func TestQueueCancel(t *testing.T) {
	clock := newFakeClock()
	queue := reveal.NewQueue(clock)

	ran := 0
	cancel := queue.Schedule(time.Millisecond, func() { ran++ })
	keep := queue.Schedule(2*time.Millisecond, func() { ran += 10 })

	cancel()
	cancel()
	require.Equal(t, 1, queue.Len())

	queue.Advance(clock.advance(time.Second))
	require.Equal(t, 10, ran)

	keep()
	require.Zero(t, queue.Len())
}

func TestQueueNegativeDelayRunsOnNextAdvance(t *testing.T) {
	clock := newFakeClock()
	queue := reveal.NewQueue(clock)

	ran := false
	queue.Schedule(-time.Second, func() { ran = true })
	require.False(t, ran)

	require.Equal(t, 1, queue.Advance(clock.Now()))
	require.True(t, ran)
}
