package reveal_test

import (
	"slices"
	"time"

	"github.com/leighmacdonald/zodiac-tui/internal/reveal"
)

type fakeObserver struct {
	observed   map[string][]float64
	unobserved []string
}

func newFakeObserver() *fakeObserver {
	return &fakeObserver{observed: map[string][]float64{}}
}

func (o *fakeObserver) Observe(id string, thresholds []float64) {
	o.observed[id] = slices.Clone(thresholds)
}

func (o *fakeObserver) Unobserve(id string) {
	delete(o.observed, id)
	o.unobserved = append(o.unobserved, id)
}

func (o *fakeObserver) isObserved(id string) bool {
	_, found := o.observed[id]

	return found
}

type fakeSink struct {
	state  map[string]reveal.Presentation
	panels []reveal.PanelKind
	calls  int
}

func newFakeSink() *fakeSink {
	return &fakeSink{state: map[string]reveal.Presentation{}}
}

func (s *fakeSink) SetHidden(id string, dir reveal.Direction) {
	s.calls++
	s.state[id] = reveal.Hidden(dir)
}

func (s *fakeSink) Reveal(id string) {
	s.calls++
	s.state[id] = reveal.Shown
}

func (s *fakeSink) SetActivePanel(kind reveal.PanelKind) {
	s.calls++
	s.panels = append(s.panels, kind)
}

type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2025, 1, 20, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) advance(d time.Duration) time.Time {
	c.now = c.now.Add(d)

	return c.now
}
