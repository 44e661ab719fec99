package pages

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/leighmacdonald/zodiac-tui/internal/nav"
	"github.com/leighmacdonald/zodiac-tui/internal/store"
	"github.com/leighmacdonald/zodiac-tui/internal/ui/command"
	"github.com/leighmacdonald/zodiac-tui/internal/ui/input"
	"github.com/leighmacdonald/zodiac-tui/internal/ui/model"
	"github.com/leighmacdonald/zodiac-tui/internal/ui/styles"
	"github.com/leighmacdonald/zodiac-tui/internal/zodiac"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"
)

const detailMaxWidth = 72

// Detail shows a single sign.
type Detail struct {
	catalog   zodiac.Lookup
	router    nav.Router
	sign      zodiac.Sign
	stats     store.SignStats
	viewState model.ViewState
	now       func() time.Time
}

func NewDetail(catalog zodiac.Lookup, router nav.Router) *Detail {
	return &Detail{catalog: catalog, router: router, now: time.Now}
}

// Show switches to sign, clearing the stats of the previous one.
func (m *Detail) Show(sign zodiac.Sign) {
	m.sign = sign
	m.stats = store.SignStats{Sign: sign.EnglishName}
}

func (m *Detail) Sign() zodiac.Sign {
	return m.sign
}

func (m *Detail) Init() tea.Cmd {
	return nil
}

func (m *Detail) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case model.ViewState:
		m.viewState = msg
	case command.SignStatsMsg:
		if msg.Stats.Sign == m.sign.EnglishName {
			m.stats = msg.Stats
		}
	case tea.KeyMsg:
		if m.viewState.Page != nav.PageDetail {
			return nil
		}

		switch {
		case key.Matches(msg, input.Default.Back):
			return command.Navigate(nav.Home)
		case key.Matches(msg, input.Default.Left):
			return m.step(-1)
		case key.Matches(msg, input.Default.Right):
			return m.step(1)
		}
	}

	return nil
}

// step navigates to the neighbouring sign, wrapping around the zodiac.
func (m *Detail) step(delta int) tea.Cmd {
	signs := m.catalog.All()
	index := m.catalog.Index(m.sign.EnglishName)
	if index < 0 || len(signs) == 0 {
		return command.Navigate(nav.Home)
	}

	next := signs[(index+delta+len(signs))%len(signs)]

	return command.Navigate(m.router.Resolve(next.EnglishName))
}

func (m *Detail) View() string {
	if m.sign.EnglishName == "" {
		return ""
	}

	width := min(max(m.viewState.Width-8, 20), detailMaxWidth)
	textWidth := width - 6

	header := lipgloss.JoinHorizontal(lipgloss.Center,
		styles.DetailEmoji.Render(m.sign.Emoji),
		styles.DetailName.Render(m.sign.Name+"  "+m.sign.EnglishName))

	content := lipgloss.JoinVertical(lipgloss.Left,
		header,
		styles.HelpStyle.Render(m.sign.Dates),
		"",
		styles.StoryHeading.Render(styles.IconTraits+" 性格特質"),
		fill(m.catalog.Personality(m.sign.EnglishName), textWidth),
		"",
		styles.StoryHeading.Render(styles.IconMatch+" 最佳配對"),
		fill(m.catalog.BestMatch(m.sign.EnglishName), textWidth),
		"",
		styles.RecentLabel.Render(m.visits()),
		"",
		styles.HelpStyle.Render(fmt.Sprintf("%s back  %s/%s prev/next",
			input.Default.Back.Help().Key, input.Default.Left.Help().Key, input.Default.Right.Help().Key)),
	)

	box := styles.DetailBox.Width(width).Render(content)

	return lipgloss.Place(m.viewState.Width, m.viewState.Content, lipgloss.Center, lipgloss.Center, box)
}

func (m *Detail) visits() string {
	if m.stats.Count <= 1 {
		return styles.IconHistory + " 第一次瀏覽 First visit"
	}

	return fmt.Sprintf("%s %s visit, first viewed %s", styles.IconHistory,
		humanize.Ordinal(m.stats.Count), humanize.RelTime(m.stats.FirstVisited, m.now(), "ago", "from now"))
}

// fill word wraps text, then hard wraps runs without spaces such as chinese sentences.
func fill(text string, width int) string {
	width = max(width, 1)

	return wrap.String(wordwrap.String(text, width), width)
}
