package component

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/leighmacdonald/zodiac-tui/internal/reveal"
	"github.com/leighmacdonald/zodiac-tui/internal/ui/styles"
	zone "github.com/lrstanley/bubblezone"
)

// PanelTabs is the sticky strip above the home page document showing which story panel is active.
// Clicking a tab reports its panel so the page can scroll to it.
type PanelTabs struct {
	kinds  []reveal.PanelKind
	labels map[reveal.PanelKind]string
	active reveal.PanelKind
	id     string
}

func NewPanelTabs(kinds []reveal.PanelKind, labels map[reveal.PanelKind]string) PanelTabs {
	return PanelTabs{kinds: kinds, labels: labels, id: zone.NewPrefix()}
}

func (m PanelTabs) SetActive(kind reveal.PanelKind) PanelTabs {
	m.active = kind

	return m
}

func (m PanelTabs) Active() reveal.PanelKind {
	return m.active
}

// Clicked returns the panel under a left click release, if any.
func (m PanelTabs) Clicked(msg tea.MouseMsg) (reveal.PanelKind, bool) {
	if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
		return "", false
	}

	for _, kind := range m.kinds {
		if zone.Get(m.id + string(kind)).InBounds(msg) {
			return kind, true
		}
	}

	return "", false
}

func (m PanelTabs) View(width int) string {
	if width <= 0 {
		return ""
	}

	tabs := make([]string, 0, len(m.kinds))
	for _, kind := range m.kinds {
		label, found := m.labels[kind]
		if !found {
			label = string(kind)
		}

		if kind == m.active {
			tabs = append(tabs, zone.Mark(m.id+string(kind), styles.PanelTabActive.Render(label)))
		} else {
			tabs = append(tabs, zone.Mark(m.id+string(kind), styles.PanelTab.Render(label)))
		}
	}

	return lipgloss.PlaceHorizontal(width, lipgloss.Center, lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
}
