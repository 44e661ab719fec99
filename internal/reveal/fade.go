package reveal

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// FadeElement is an animatable unit that transitions once from hidden to shown.
type FadeElement struct {
	ID        string
	Direction Direction
	Delay     time.Duration
}

type fadeState struct {
	element  FadeElement
	fired    bool
	revealed bool
	cancel   func()
}

// FadeInScheduler reveals each registered element the first time it becomes visible. Elements stop
// being observed at the moment their reveal is scheduled, so a duplicate report during the delay
// window cannot arrive.
type FadeInScheduler struct {
	observer  VisibilityObserver
	sink      PresentationSink
	scheduler Scheduler
	threshold float64
	elements  map[string]*fadeState
	order     []string
	disposed  bool
}

// FadeOption customises a FadeInScheduler.
type FadeOption func(*FadeInScheduler)

// WithThreshold sets the ratio an element must exceed before it counts as visible. Zero means any
// intersection at all.
func WithThreshold(threshold float64) FadeOption {
	return func(s *FadeInScheduler) {
		s.threshold = threshold
	}
}

func NewFadeInScheduler(observer VisibilityObserver, sink PresentationSink, scheduler Scheduler, opts ...FadeOption) (*FadeInScheduler, error) {
	if observer == nil || sink == nil || scheduler == nil {
		return nil, errors.Join(errors.New("observer, sink and scheduler are required"), ErrConfig)
	}

	fader := &FadeInScheduler{
		observer:  observer,
		sink:      sink,
		scheduler: scheduler,
		elements:  map[string]*fadeState{},
	}

	for _, opt := range opts {
		opt(fader)
	}

	if math.IsNaN(fader.threshold) || fader.threshold < 0 || fader.threshold > 1 {
		return nil, errors.Join(fmt.Errorf("threshold %f", fader.threshold), ErrConfig)
	}

	return fader, nil
}

// Register hides the element immediately and starts observing it.
func (s *FadeInScheduler) Register(element FadeElement) error {
	if s.disposed {
		return ErrDisposed
	}

	if _, found := s.elements[element.ID]; found {
		return errors.Join(fmt.Errorf("element %q", element.ID), ErrDuplicateElement)
	}

	if !element.Direction.valid() {
		return errors.Join(fmt.Errorf("element %q has direction %q", element.ID, element.Direction), ErrConfig)
	}

	if element.Delay < 0 {
		return errors.Join(fmt.Errorf("element %q has negative delay", element.ID), ErrConfig)
	}

	s.elements[element.ID] = &fadeState{element: element}
	s.order = append(s.order, element.ID)
	s.sink.SetHidden(element.ID, element.Direction)
	s.observer.Observe(element.ID, []float64{s.threshold})

	return nil
}

// OnVisibilityUpdate adapts raw observer reports into OnBecameVisible calls.
func (s *FadeInScheduler) OnVisibilityUpdate(elementID string, visibleRatio float64) error {
	if s.disposed {
		return ErrDisposed
	}

	if math.IsNaN(visibleRatio) || visibleRatio < 0 || visibleRatio > 1 {
		return errors.Join(fmt.Errorf("element %q reported %f", elementID, visibleRatio), ErrInvalidRatio)
	}

	if visibleRatio <= s.threshold {
		if _, found := s.elements[elementID]; !found {
			return errors.Join(fmt.Errorf("element %q", elementID), ErrUnknownElement)
		}

		return nil
	}

	return s.OnBecameVisible(elementID)
}

// OnBecameVisible schedules the reveal of an element after its delay. Repeated calls for an
// element that has already fired are ignored.
func (s *FadeInScheduler) OnBecameVisible(elementID string) error {
	if s.disposed {
		return ErrDisposed
	}

	state, found := s.elements[elementID]
	if !found {
		return errors.Join(fmt.Errorf("element %q", elementID), ErrUnknownElement)
	}

	if state.fired {
		return nil
	}

	state.fired = true
	s.observer.Unobserve(elementID)
	state.cancel = s.scheduler.Schedule(state.element.Delay, func() {
		if s.disposed || state.revealed {
			return
		}

		state.revealed = true
		state.cancel = nil
		s.sink.Reveal(elementID)
	})

	return nil
}

// Fired reports whether the element has been scheduled for reveal.
func (s *FadeInScheduler) Fired(elementID string) (bool, error) {
	state, found := s.elements[elementID]
	if !found {
		return false, errors.Join(fmt.Errorf("element %q", elementID), ErrUnknownElement)
	}

	return state.fired, nil
}

// Pending returns the number of elements whose reveal is scheduled but has not run yet.
func (s *FadeInScheduler) Pending() int {
	pending := 0
	for _, state := range s.elements {
		if state.fired && !state.revealed {
			pending++
		}
	}

	return pending
}

// Dispose unobserves every element that has not fired and drops any reveal still waiting on its
// delay. Dropped reveals never reach the sink.
func (s *FadeInScheduler) Dispose() error {
	if s.disposed {
		return errors.Join(ErrDisposed, errAlreadyDisposed)
	}

	s.disposed = true

	for _, elementID := range s.order {
		state := s.elements[elementID]
		switch {
		case !state.fired:
			s.observer.Unobserve(elementID)
		case state.cancel != nil:
			state.cancel()
			state.cancel = nil
		}
	}

	return nil
}
