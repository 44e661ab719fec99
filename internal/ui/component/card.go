package component

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/leighmacdonald/zodiac-tui/internal/reveal"
	"github.com/leighmacdonald/zodiac-tui/internal/ui/styles"
	"github.com/leighmacdonald/zodiac-tui/internal/zodiac"
)

const (
	// CardWidth is the inner width of a sign card.
	CardWidth = 18
	// CardOuterWidth includes the border and the Transform frame.
	CardOuterWidth = CardWidth + 2 + 2*MaxShift
)

// Card renders a sign card at its current presentation. Selected cards get a heavier border.
func Card(sign zodiac.Sign, selected bool, pres reveal.Presentation) string {
	border := styles.CardBorder
	if selected {
		border = styles.CardSelectedBorder
	}

	// Plain text only, nested styles would reset the faded foreground.
	content := lipgloss.JoinVertical(lipgloss.Center, sign.Emoji+" "+sign.Name, sign.EnglishName, sign.Dates)

	fg := styles.White
	if selected {
		fg = styles.Star
	}

	style := lipgloss.NewStyle().Border(border).Width(CardWidth).Align(lipgloss.Center).Bold(selected)

	return Faded(style, fg, content, pres)
}
