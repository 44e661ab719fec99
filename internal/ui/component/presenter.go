package component

import (
	"math"
	"time"

	"github.com/charmbracelet/harmonica"
	"github.com/leighmacdonald/zodiac-tui/internal/reveal"
)

const (
	// settleEpsilon is how close a value has to be to its target, with a near zero velocity, before
	// it snaps into place.
	settleEpsilon = 0.005
	// springCycles is the angular frequency multiplier that makes a critically damped spring land
	// at roughly the configured transition length.
	springCycles = 6.0
)

type motion struct {
	current  reveal.Presentation
	velocity reveal.Presentation
	target   reveal.Presentation
}

// Presenter is the terminal PresentationSink. It remembers the target presentation of every
// element, eases the current values toward it with a spring, and keeps track of the active panel.
type Presenter struct {
	motions map[string]*motion
	active  reveal.PanelKind
	spring  harmonica.Spring
	instant bool
}

// NewPresenter creates a presenter stepping fps times per second. A zero transition disables
// easing and every change is applied immediately.
func NewPresenter(fps int, transition time.Duration) *Presenter {
	presenter := &Presenter{motions: map[string]*motion{}}
	presenter.Configure(fps, transition)

	return presenter
}

// Configure replaces the spring, keeping current positions.
func (p *Presenter) Configure(fps int, transition time.Duration) {
	if transition <= 0 || fps <= 0 {
		p.instant = true

		return
	}

	p.instant = false
	p.spring = harmonica.NewSpring(harmonica.FPS(fps), springCycles/transition.Seconds(), 1.0)
}

// SetHidden implements reveal.PresentationSink. Hidden is applied without easing.
func (p *Presenter) SetHidden(id string, dir reveal.Direction) {
	hidden := reveal.Hidden(dir)
	p.motions[id] = &motion{current: hidden, target: hidden}
}

// Reveal implements reveal.PresentationSink.
func (p *Presenter) Reveal(id string) {
	current, found := p.motions[id]
	if !found {
		current = &motion{current: reveal.Shown}
		p.motions[id] = current
	}

	current.target = reveal.Shown
	if p.instant {
		current.current = reveal.Shown
		current.velocity = reveal.Presentation{}
	}
}

// SetActivePanel implements reveal.PresentationSink.
func (p *Presenter) SetActivePanel(kind reveal.PanelKind) {
	p.active = kind
}

func (p *Presenter) ActivePanel() reveal.PanelKind {
	return p.active
}

// State returns the current, possibly mid transition, presentation of id. Elements the presenter
// has never seen are shown.
func (p *Presenter) State(id string) reveal.Presentation {
	if current, found := p.motions[id]; found {
		return current.current
	}

	return reveal.Shown
}

// Target returns the presentation id is moving toward.
func (p *Presenter) Target(id string) (reveal.Presentation, bool) {
	current, found := p.motions[id]
	if !found {
		return reveal.Presentation{}, false
	}

	return current.target, true
}

// Step advances every moving element by one frame. It returns true while anything is still moving.
func (p *Presenter) Step() bool {
	moving := false

	for _, current := range p.motions {
		if current.current == current.target {
			continue
		}

		if p.instant {
			current.current = current.target
			current.velocity = reveal.Presentation{}

			continue
		}

		current.current.Opacity, current.velocity.Opacity = p.ease(current.current.Opacity, current.velocity.Opacity, current.target.Opacity)
		current.current.OffsetX, current.velocity.OffsetX = p.ease(current.current.OffsetX, current.velocity.OffsetX, current.target.OffsetX)
		current.current.OffsetY, current.velocity.OffsetY = p.ease(current.current.OffsetY, current.velocity.OffsetY, current.target.OffsetY)

		if current.current != current.target {
			moving = true
		}
	}

	return moving
}

// Animating reports whether any element has not reached its target.
func (p *Presenter) Animating() bool {
	for _, current := range p.motions {
		if current.current != current.target {
			return true
		}
	}

	return false
}

// Settle jumps every element straight to its target.
func (p *Presenter) Settle() {
	for _, current := range p.motions {
		current.current = current.target
		current.velocity = reveal.Presentation{}
	}
}

// Reset forgets every element and the active panel.
func (p *Presenter) Reset() {
	p.motions = map[string]*motion{}
	p.active = ""
}

func (p *Presenter) ease(position float64, velocity float64, target float64) (float64, float64) {
	position, velocity = p.spring.Update(position, velocity, target)
	if math.Abs(position-target) < settleEpsilon && math.Abs(velocity) < settleEpsilon {
		return target, 0
	}

	return position, velocity
}
