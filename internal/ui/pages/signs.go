package pages

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/leighmacdonald/zodiac-tui/internal/nav"
	"github.com/leighmacdonald/zodiac-tui/internal/ui/command"
	"github.com/leighmacdonald/zodiac-tui/internal/ui/input"
	"github.com/leighmacdonald/zodiac-tui/internal/ui/model"
	"github.com/leighmacdonald/zodiac-tui/internal/zodiac"
)

// Signs is a filterable list of every sign.
type Signs struct {
	list      list.Model
	router    nav.Router
	viewState model.ViewState
}

func NewSigns(catalog zodiac.Lookup, router nav.Router) *Signs {
	return &Signs{list: model.NewSignList("十二星座 Signs", catalog.All()), router: router}
}

func (m *Signs) Init() tea.Cmd {
	return nil
}

func (m *Signs) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case model.ViewState:
		m.viewState = msg
		m.list.SetSize(msg.Width, msg.Content)

		return nil
	case tea.KeyMsg:
		if m.viewState.Page != nav.PageSigns {
			return nil
		}

		// Keys belong to the filter input while it is open.
		if m.list.FilterState() != list.Filtering {
			switch {
			case key.Matches(msg, input.Default.Back):
				if m.list.FilterState() == list.FilterApplied {
					m.list.ResetFilter()

					return nil
				}

				return command.Navigate(nav.Home)
			case key.Matches(msg, input.Default.Accept):
				item, ok := m.list.SelectedItem().(model.SignItem)
				if !ok {
					return nil
				}

				return command.Navigate(m.router.Resolve(item.Sign.EnglishName))
			}
		}
	default:
		if m.viewState.Page != nav.PageSigns {
			return nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)

	return cmd
}

// Filtering reports whether the filter input has focus, in which case global keys must not fire.
func (m *Signs) Filtering() bool {
	return m.list.FilterState() == list.Filtering
}

func (m *Signs) View() string {
	return m.list.View()
}
