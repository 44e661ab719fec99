package reveal_test

import (
	"testing"
	"time"

	"github.com/leighmacdonald/zodiac-tui/internal/reveal"
	"github.com/stretchr/testify/require"
)

type fadeFixture struct {
	fader    *reveal.FadeInScheduler
	observer *fakeObserver
	sink     *fakeSink
	queue    *reveal.Queue
	clock    *fakeClock
}

func newFadeFixture(t *testing.T, opts ...reveal.FadeOption) fadeFixture {
	t.Helper()

	clock := newFakeClock()
	queue := reveal.NewQueue(clock)
	observer := newFakeObserver()
	sink := newFakeSink()
	fader, err := reveal.NewFadeInScheduler(observer, sink, queue, opts...)
	require.NoError(t, err)

	return fadeFixture{fader: fader, observer: observer, sink: sink, queue: queue, clock: clock}
}

func TestFadeRegisterHides(t *testing.T) {
	fix := newFadeFixture(t)

	require.NoError(t, fix.fader.Register(reveal.FadeElement{ID: "up", Direction: reveal.Up}))
	require.NoError(t, fix.fader.Register(reveal.FadeElement{ID: "left", Direction: reveal.Left}))
	require.NoError(t, fix.fader.Register(reveal.FadeElement{ID: "right", Direction: reveal.Right}))

	require.Equal(t, reveal.Presentation{OffsetY: 30}, fix.sink.state["up"])
	require.Equal(t, reveal.Presentation{OffsetX: -30}, fix.sink.state["left"])
	require.Equal(t, reveal.Presentation{OffsetX: 30}, fix.sink.state["right"])
	require.True(t, fix.observer.isObserved("left"))
}

func TestFadeRegisterErrors(t *testing.T) {
	fix := newFadeFixture(t)

	require.NoError(t, fix.fader.Register(reveal.FadeElement{ID: "x", Direction: reveal.Up}))
	require.ErrorIs(t, fix.fader.Register(reveal.FadeElement{ID: "x", Direction: reveal.Left}), reveal.ErrDuplicateElement)
	require.Equal(t, reveal.Presentation{OffsetY: 30}, fix.sink.state["x"])

	require.ErrorIs(t, fix.fader.Register(reveal.FadeElement{ID: "y", Direction: "down"}), reveal.ErrConfig)
	require.ErrorIs(t, fix.fader.Register(reveal.FadeElement{ID: "z", Direction: reveal.Up, Delay: -time.Second}), reveal.ErrConfig)
}

func TestFadeDelayedReveal(t *testing.T) {
	fix := newFadeFixture(t)

	require.NoError(t, fix.fader.Register(reveal.FadeElement{ID: "X", Direction: reveal.Up, Delay: 500 * time.Millisecond}))
	require.Equal(t, reveal.Presentation{Opacity: 0, OffsetY: 30}, fix.sink.state["X"])

	require.NoError(t, fix.fader.OnBecameVisible("X"))
	require.False(t, fix.observer.isObserved("X"), "unobserved at schedule time")
	require.Equal(t, 1, fix.fader.Pending())

	require.Zero(t, fix.queue.Advance(fix.clock.advance(499*time.Millisecond)))
	require.Equal(t, reveal.Presentation{Opacity: 0, OffsetY: 30}, fix.sink.state["X"])

	require.Equal(t, 1, fix.queue.Advance(fix.clock.advance(time.Millisecond)))
	require.Equal(t, reveal.Presentation{Opacity: 1}, fix.sink.state["X"])
	require.Zero(t, fix.fader.Pending())
}

func TestFadeZeroDelayLeft(t *testing.T) {
	fix := newFadeFixture(t)

	require.NoError(t, fix.fader.Register(reveal.FadeElement{ID: "L", Direction: reveal.Left}))
	require.NoError(t, fix.fader.OnBecameVisible("L"))
	fix.queue.Advance(fix.clock.Now())

	require.Equal(t, reveal.Presentation{Opacity: 1, OffsetX: 0, OffsetY: 0}, fix.sink.state["L"])
}

func TestFadeIdempotent(t *testing.T) {
	fix := newFadeFixture(t)

	require.NoError(t, fix.fader.Register(reveal.FadeElement{ID: "X", Direction: reveal.Right, Delay: 100 * time.Millisecond}))
	require.NoError(t, fix.fader.OnBecameVisible("X"))
	require.NoError(t, fix.fader.OnBecameVisible("X"))
	require.Equal(t, 1, fix.queue.Len())

	fix.queue.Advance(fix.clock.advance(time.Second))
	require.NoError(t, fix.fader.OnBecameVisible("X"))
	require.Zero(t, fix.queue.Len())

	unobserved := 0
	for _, id := range fix.observer.unobserved {
		if id == "X" {
			unobserved++
		}
	}
	require.Equal(t, 1, unobserved)
	require.Equal(t, reveal.Shown, fix.sink.state["X"])

	fired, err := fix.fader.Fired("X")
	require.NoError(t, err)
	require.True(t, fired)
}

func TestFadeVisibilityAdapter(t *testing.T) {
	fix := newFadeFixture(t, reveal.WithThreshold(0.1))

	require.NoError(t, fix.fader.Register(reveal.FadeElement{ID: "card", Direction: reveal.Up}))
	require.Equal(t, []float64{0.1}, fix.observer.observed["card"])

	require.NoError(t, fix.fader.OnVisibilityUpdate("card", 0))
	require.NoError(t, fix.fader.OnVisibilityUpdate("card", 0.05))
	fired, _ := fix.fader.Fired("card")
	require.False(t, fired)

	require.NoError(t, fix.fader.OnVisibilityUpdate("card", 0.2))
	fired, _ = fix.fader.Fired("card")
	require.True(t, fired)

	require.ErrorIs(t, fix.fader.OnVisibilityUpdate("nope", 0), reveal.ErrUnknownElement)
	require.ErrorIs(t, fix.fader.OnVisibilityUpdate("card", 2), reveal.ErrInvalidRatio)
}

func TestFadeUnknownElement(t *testing.T) {
	fix := newFadeFixture(t)

	require.ErrorIs(t, fix.fader.OnBecameVisible("ghost"), reveal.ErrUnknownElement)
	_, err := fix.fader.Fired("ghost")
	require.ErrorIs(t, err, reveal.ErrUnknownElement)
}

func TestFadeDisposeDropsPending(t *testing.T) {
	fix := newFadeFixture(t)

	require.NoError(t, fix.fader.Register(reveal.FadeElement{ID: "waiting", Direction: reveal.Up, Delay: time.Second}))
	require.NoError(t, fix.fader.Register(reveal.FadeElement{ID: "unseen", Direction: reveal.Left}))
	require.NoError(t, fix.fader.OnBecameVisible("waiting"))

	calls := fix.sink.calls
	require.NoError(t, fix.fader.Dispose())
	require.Zero(t, fix.queue.Len())
	require.False(t, fix.observer.isObserved("unseen"))

	fix.queue.Advance(fix.clock.advance(time.Hour))
	require.Equal(t, calls, fix.sink.calls)
	require.Equal(t, reveal.Hidden(reveal.Up), fix.sink.state["waiting"])

	require.ErrorIs(t, fix.fader.OnBecameVisible("unseen"), reveal.ErrDisposed)
	require.ErrorIs(t, fix.fader.OnVisibilityUpdate("unseen", 1), reveal.ErrDisposed)
	require.ErrorIs(t, fix.fader.Register(reveal.FadeElement{ID: "late", Direction: reveal.Up}), reveal.ErrDisposed)
	require.ErrorIs(t, fix.fader.Dispose(), reveal.ErrDisposed)
	require.Equal(t, calls, fix.sink.calls)
}

func TestFadeConstructorErrors(t *testing.T) {
	_, err := reveal.NewFadeInScheduler(newFakeObserver(), newFakeSink(), nil)
	require.ErrorIs(t, err, reveal.ErrConfig)

	_, errThreshold := reveal.NewFadeInScheduler(newFakeObserver(), newFakeSink(), reveal.NewQueue(nil), reveal.WithThreshold(3))
	require.ErrorIs(t, errThreshold, reveal.ErrConfig)
}

func TestParseDirection(t *testing.T) {
	for input, want := range map[string]reveal.Direction{
		"up":          reveal.Up,
		"fade-left":   reveal.Left,
		" Fade-Right": reveal.Right,
	} {
		got, err := reveal.ParseDirection(input)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}

	_, err := reveal.ParseDirection("fade-down")
	require.ErrorIs(t, err, reveal.ErrConfig)
}
