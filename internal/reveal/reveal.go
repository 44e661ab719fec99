// Package reveal holds the scroll driven presentation logic for the home page: a selector that keeps
// exactly one story panel active, and a scheduler that plays one-shot fade-in transitions.
//
// Neither component renders anything. Visibility arrives from a VisibilityObserver and decisions are
// sent to a PresentationSink. Both components are meant to be driven from a single event loop, so
// none of their methods are safe for concurrent use.
package reveal

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// PanelKind names one of a set of mutually exclusive panels.
type PanelKind string

const (
	PanelTitle  PanelKind = "title"
	PanelName   PanelKind = "name"
	PanelStory  PanelKind = "story"
	PanelSkills PanelKind = "skills"
	PanelQuote  PanelKind = "quote"
)

// DefaultKinds is the panel set used by the home page story section.
var DefaultKinds = []PanelKind{PanelTitle, PanelName, PanelStory, PanelSkills, PanelQuote}

// Direction is the side a fade element slides in from.
type Direction string

const (
	Up    Direction = "up"
	Left  Direction = "left"
	Right Direction = "right"
)

// HiddenOffset is the distance, in element local units, a hidden element is pushed away from its
// resting position.
const HiddenOffset = 30.0

// ParseDirection accepts both the bare direction and the fade-* animation names.
func ParseDirection(value string) (Direction, error) {
	switch Direction(strings.TrimPrefix(strings.ToLower(strings.TrimSpace(value)), "fade-")) {
	case Up:
		return Up, nil
	case Left:
		return Left, nil
	case Right:
		return Right, nil
	default:
		return "", errors.Join(fmt.Errorf("unknown direction %q", value), ErrConfig)
	}
}

func (d Direction) valid() bool {
	return d == Up || d == Left || d == Right
}

// Presentation is the visual state of a single element.
type Presentation struct {
	Opacity float64
	OffsetX float64
	OffsetY float64
}

// Shown is the resting state every direction converges to.
var Shown = Presentation{Opacity: 1}

// Hidden returns the initial state for an element fading in from the given direction.
func Hidden(dir Direction) Presentation {
	switch dir {
	case Left:
		return Presentation{OffsetX: -HiddenOffset}
	case Right:
		return Presentation{OffsetX: HiddenOffset}
	case Up:
		fallthrough
	default:
		return Presentation{OffsetY: HiddenOffset}
	}
}

// VisibilityObserver abstracts the intersection detection mechanism. Notifications flow back to the
// components through their OnVisibilityUpdate methods.
type VisibilityObserver interface {
	// Observe starts reporting the visible ratio of id whenever it crosses one of thresholds.
	Observe(id string, thresholds []float64)
	// Unobserve stops all reports for id.
	Unobserve(id string)
}

// PresentationSink applies visual state commands. Commands are fire and forget.
type PresentationSink interface {
	SetHidden(id string, dir Direction)
	Reveal(id string)
	SetActivePanel(kind PanelKind)
}

// Scheduler runs fn once after at least delay has elapsed. The returned function cancels the
// timer if it has not yet fired and is safe to call more than once.
type Scheduler interface {
	Schedule(delay time.Duration, fn func()) (cancel func())
}
