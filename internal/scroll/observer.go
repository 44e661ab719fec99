// Package scroll tracks how much of each block in a scrolling document is inside the viewport and
// reports threshold crossings, much like a browser IntersectionObserver.
package scroll

import (
	"log/slog"
	"slices"

	"golang.org/x/exp/constraints"
)

// Span is the vertical extent of a block, in document lines.
type Span struct {
	Top    int
	Height int
}

func (s Span) Bottom() int {
	return s.Top + s.Height
}

// Layout maps block ids to their position in the document.
type Layout map[string]Span

// Handler receives a visibility report for a block.
type Handler func(id string, ratio float64) error

type target struct {
	thresholds []float64
	ratio      float64
	bucket     int
	reported   bool
}

// Observer reports visible ratios for observed ids. Reports are delivered synchronously from
// Observe, SetLayout and Update, in the order ids were first observed.
type Observer struct {
	name         string
	bottomMargin int
	layout       Layout
	offset       int
	height       int
	targets      map[string]*target
	order        []string
	handler      Handler
}

// NewObserver creates an observer. bottomMargin shrinks the bottom edge of the viewport, so a block
// must scroll that many lines past the bottom before it counts as visible.
func NewObserver(name string, bottomMargin int) *Observer {
	return &Observer{
		name:         name,
		bottomMargin: max(bottomMargin, 0),
		layout:       Layout{},
		targets:      map[string]*target{},
	}
}

// Subscribe sets the function that receives reports.
func (o *Observer) Subscribe(handler Handler) {
	o.handler = handler
}

// Observe implements reveal.VisibilityObserver. If the viewport is already known the current
// ratio is reported right away.
func (o *Observer) Observe(id string, thresholds []float64) {
	if _, found := o.targets[id]; !found {
		o.order = append(o.order, id)
	}

	sorted := slices.Clone(thresholds)
	if len(sorted) == 0 {
		sorted = []float64{0}
	}
	slices.Sort(sorted)

	o.targets[id] = &target{thresholds: sorted}

	if o.height > 0 {
		o.check(id)
	}
}

// Unobserve implements reveal.VisibilityObserver.
func (o *Observer) Unobserve(id string) {
	if _, found := o.targets[id]; !found {
		return
	}

	delete(o.targets, id)
	o.order = slices.DeleteFunc(o.order, func(value string) bool { return value == id })
}

// Observed reports whether id is still being observed.
func (o *Observer) Observed(id string) bool {
	_, found := o.targets[id]

	return found
}

// Len is the number of observed ids.
func (o *Observer) Len() int {
	return len(o.targets)
}

// SetLayout replaces the document layout and re-checks every observed id.
func (o *Observer) SetLayout(layout Layout) {
	o.layout = layout
	o.checkAll()
}

// Update moves the viewport and re-checks every observed id.
func (o *Observer) Update(offset int, height int) {
	o.offset = max(offset, 0)
	o.height = max(height, 0)
	o.checkAll()
}

// Ratio is the last computed ratio for id.
func (o *Observer) Ratio(id string) float64 {
	if t, found := o.targets[id]; found {
		return t.ratio
	}

	return 0
}

func (o *Observer) checkAll() {
	if o.height <= 0 {
		return
	}

	// Handlers commonly unobserve while being notified.
	for _, id := range slices.Clone(o.order) {
		if _, found := o.targets[id]; found {
			o.check(id)
		}
	}
}

func (o *Observer) check(id string) {
	current := o.targets[id]

	span, found := o.layout[id]
	ratio := 0.0
	if found {
		ratio = Visibility(span, o.offset, o.offset+o.height-o.bottomMargin)
	}

	bucket := bucketOf(ratio, current.thresholds)
	if current.reported && bucket == current.bucket {
		current.ratio = ratio

		return
	}

	current.ratio = ratio
	current.bucket = bucket
	current.reported = true

	if o.handler == nil {
		return
	}

	if err := o.handler(id, ratio); err != nil {
		slog.Error("Visibility handler failed", slog.String("observer", o.name),
			slog.String("id", id), slog.Float64("ratio", ratio), slog.String("error", err.Error()))
	}
}

// Visibility returns the fraction of span that lies inside the [top, bottom) window.
func Visibility(span Span, top int, bottom int) float64 {
	if bottom <= top {
		return 0
	}

	if span.Height <= 0 {
		if span.Top >= top && span.Top < bottom {
			return 1
		}

		return 0
	}

	visible := min(span.Bottom(), bottom) - max(span.Top, top)
	if visible <= 0 {
		return 0
	}

	return clamp(float64(visible)/float64(span.Height), 0, 1)
}

// bucketOf counts how many thresholds the ratio is strictly above. A ratio sitting exactly on a
// threshold has not crossed it yet, matching the strict comparison of PanelSelector.
func bucketOf(ratio float64, thresholds []float64) int {
	bucket := 0
	for _, threshold := range thresholds {
		if ratio > threshold {
			bucket++
		}
	}

	return bucket
}

type number interface {
	constraints.Integer | constraints.Float
}

func clamp[T number](v, low, high T) T {
	if high < low {
		low, high = high, low
	}

	return min(high, max(low, v))
}
