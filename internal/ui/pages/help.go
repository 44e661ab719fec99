package pages

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/leighmacdonald/zodiac-tui/internal/nav"
	"github.com/leighmacdonald/zodiac-tui/internal/ui/command"
	"github.com/leighmacdonald/zodiac-tui/internal/ui/input"
	"github.com/leighmacdonald/zodiac-tui/internal/ui/model"
	"github.com/leighmacdonald/zodiac-tui/internal/ui/styles"
)

// BuildInfo describes the running binary.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// Paths are the files the app reads and writes.
type Paths struct {
	Config   string
	Log      string
	Database string
}

func NewHelp(build BuildInfo, paths Paths) *Help {
	return &Help{build: build, paths: paths, helpView: help.New()}
}

type Help struct {
	helpView  help.Model
	viewState model.ViewState
	build     BuildInfo
	paths     Paths
}

func (m *Help) Init() tea.Cmd {
	return nil
}

func (m *Help) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.viewState.Page == nav.PageHelp && key.Matches(msg, input.Default.Back) {
			return command.Navigate(nav.Home)
		}
	case model.ViewState:
		m.viewState = msg
	}

	return nil
}

func (m *Help) View() string {
	left := m.helpView.FullHelpView([][]key.Binding{
		{
			input.Default.Signs,
			input.Default.Home,
			input.Default.Settings,
			input.Default.Help,
			input.Default.Quit,
		},
	})

	middle := m.helpView.FullHelpView([][]key.Binding{
		{
			input.Default.Up,
			input.Default.Down,
			input.Default.PageUp,
			input.Default.PageDown,
			input.Default.Top,
			input.Default.Bottom,
		},
	})

	right := m.helpView.FullHelpView([][]key.Binding{
		{
			input.Default.Left,
			input.Default.Right,
			input.Default.NextCard,
			input.Default.PrevCard,
			input.Default.Accept,
			input.Default.Back,
		},
	})

	helpContent := lipgloss.JoinHorizontal(lipgloss.Top,
		styles.HelpBox.Render(left), styles.HelpBox.Render(middle), styles.HelpBox.Render(right))

	commit := m.build.Commit
	//goland:noinspection GoBoolExpressions
	if len(commit) > 8 {
		commit = m.build.Commit[0:8]
	}

	content := lipgloss.JoinVertical(lipgloss.Center, helpContent,
		styles.DetailRow("Version", m.build.Version),
		styles.DetailRow("Commit", commit),
		styles.DetailRow("Date", m.build.Date),
		styles.DetailRow("Config Path", m.paths.Config),
		styles.DetailRow("Log Path", m.paths.Log),
		styles.DetailRow("History DB", m.paths.Database),
	)

	return lipgloss.Place(max(m.viewState.Width, lipgloss.Width(content)), max(m.viewState.Content, lipgloss.Height(content)),
		lipgloss.Center, lipgloss.Center, content)
}
