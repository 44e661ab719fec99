package component

import (
	"math"

	"github.com/charmbracelet/lipgloss"
	"github.com/leighmacdonald/zodiac-tui/internal/reveal"
	"github.com/leighmacdonald/zodiac-tui/internal/ui/styles"
	"github.com/lucasb-eyer/go-colorful"
)

const (
	// UnitsPerCell converts presentation offsets into terminal cells and lines.
	UnitsPerCell = 10.0
	// MaxShift is the largest offset, in cells, an element can be pushed from its resting place.
	MaxShift = int(reveal.HiddenOffset / UnitsPerCell)
)

// Shift converts an offset into whole cells, limited to MaxShift either way.
func Shift(offset float64) int {
	cells := int(math.Round(offset / UnitsPerCell))

	return min(max(cells, -MaxShift), MaxShift)
}

// Fade blends fg toward the background by opacity. Colours that cannot be parsed switch over at
// half opacity instead of blending.
func Fade(fg lipgloss.Color, bg lipgloss.Color, opacity float64) lipgloss.Color {
	opacity = min(max(opacity, 0), 1)

	from, errFrom := colorful.Hex(string(bg))
	to, errTo := colorful.Hex(string(fg))
	if errFrom != nil || errTo != nil {
		if opacity < 0.5 {
			return bg
		}

		return fg
	}

	return lipgloss.Color(from.BlendLab(to, opacity).Clamped().Hex())
}

// Transform renders block inside a frame MaxShift cells wider on each side and MaxShift lines
// taller, with the block offset inside it. The frame never changes size, so the document layout
// is stable while elements move.
func Transform(block string, pres reveal.Presentation) string {
	shiftX := Shift(pres.OffsetX)
	shiftY := min(max(Shift(pres.OffsetY), 0), MaxShift)

	return lipgloss.NewStyle().
		PaddingLeft(MaxShift + shiftX).
		PaddingRight(MaxShift - shiftX).
		PaddingTop(shiftY).
		PaddingBottom(MaxShift - shiftY).
		Render(block)
}

// Faded renders content with style, its foreground and border colours faded by the presentation
// opacity, then offset by Transform.
func Faded(style lipgloss.Style, fg lipgloss.Color, content string, pres reveal.Presentation) string {
	colour := Fade(fg, styles.Background, pres.Opacity)

	return Transform(style.Foreground(colour).BorderForeground(colour).Render(content), pres)
}
