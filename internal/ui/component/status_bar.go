package component

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/leighmacdonald/zodiac-tui/internal/reveal"
	"github.com/leighmacdonald/zodiac-tui/internal/ui/command"
	"github.com/leighmacdonald/zodiac-tui/internal/ui/input"
	"github.com/leighmacdonald/zodiac-tui/internal/ui/model"
	"github.com/leighmacdonald/zodiac-tui/internal/ui/styles"
)

// PanelChangedMsg is broadcast when the home page story panel changes.
type PanelChangedMsg struct {
	Change reveal.ActivePanelChanged
}

type StatusBarModel struct {
	viewState   model.ViewState
	statusMsg   string
	statusError bool
	panel       reveal.PanelKind
	path        string
	version     string
}

func NewStatusBarModel(version string) *StatusBarModel {
	return &StatusBarModel{version: version, path: "/"}
}

func (m StatusBarModel) Init() tea.Cmd {
	return nil
}

func (m StatusBarModel) Update(msg tea.Msg) (StatusBarModel, tea.Cmd) {
	switch msg := msg.(type) {
	case command.StatusMsg:
		m.statusMsg = msg.Message
		m.statusError = msg.Err

		return m, command.ClearErrorAfter(command.ClearMessageTimeout)
	case command.ClearStatusMessageMsg:
		m.statusError = false
		m.statusMsg = ""
	case model.ViewState:
		m.viewState = msg
	case PanelChangedMsg:
		m.panel = msg.Change.Current
	}

	return m, nil
}

// SetPath sets the route path shown on the left of the bar.
func (m *StatusBarModel) SetPath(path string) {
	m.path = path
}

func (m StatusBarModel) View() string {
	args := []string{
		styles.StatusVersion.Render(m.version),
		styles.StatusHelp.Render(fmt.Sprintf("%s %s", input.Default.Help.Help().Key, input.Default.Help.Help().Desc)),
		styles.StatusPage.Render(m.path),
		m.status(),
	}

	return lipgloss.NewStyle().Width(m.viewState.Width).Render(lipgloss.JoinHorizontal(lipgloss.Top, args...))
}

func (m StatusBarModel) status() string {
	if m.statusMsg != "" {
		if m.statusError {
			return styles.StatusError.Render(m.statusMsg)
		}

		return styles.StatusMessage.Render(m.statusMsg)
	}

	if m.panel == "" {
		return ""
	}

	return styles.StatusPanel.Render(string(m.panel))
}
