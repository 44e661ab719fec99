package ui

import (
	"context"
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/leighmacdonald/zodiac-tui/internal/config"
	"github.com/leighmacdonald/zodiac-tui/internal/nav"
	"github.com/leighmacdonald/zodiac-tui/internal/reveal"
	"github.com/leighmacdonald/zodiac-tui/internal/ui/command"
	"github.com/leighmacdonald/zodiac-tui/internal/ui/component"
	"github.com/leighmacdonald/zodiac-tui/internal/ui/input"
	"github.com/leighmacdonald/zodiac-tui/internal/ui/model"
	"github.com/leighmacdonald/zodiac-tui/internal/ui/pages"
	"github.com/leighmacdonald/zodiac-tui/internal/ui/styles"
	zone "github.com/lrstanley/bubblezone"
)

// rootModel is the top level model for the ui side of the app. It owns the route, the frame
// clock that drives reveal timers and transitions, and routes messages to the pages.
type rootModel struct {
	ctx          context.Context //nolint:containedctx
	config       config.Config
	router       nav.Router
	route        nav.Route
	previous     nav.Route
	history      command.History
	presenter    *component.Presenter
	queue        *reveal.Queue
	home         *pages.Home
	detail       *pages.Detail
	signs        *pages.Signs
	help         *pages.Help
	settings     *pages.Settings
	status       component.StatusBarModel
	viewState    model.ViewState
	footerHeight int
}

func newRootModel(ctx context.Context, opts Options) *rootModel {
	router := nav.NewRouter(opts.Catalog)
	presenter := component.NewPresenter(opts.Config.FPS, opts.Config.Transition())
	queue := reveal.NewQueue(opts.Clock)

	app := &rootModel{
		ctx:          ctx,
		config:       opts.Config,
		router:       router,
		route:        router.Resolve(opts.Config.StartSign),
		previous:     nav.Home,
		history:      opts.History,
		presenter:    presenter,
		queue:        queue,
		home:         pages.NewHome(opts.Config, opts.Catalog, router, presenter, queue),
		detail:       pages.NewDetail(opts.Catalog, router),
		signs:        pages.NewSigns(opts.Catalog, router),
		help:         pages.NewHelp(opts.Build, opts.Paths),
		settings:     pages.NewSettings(opts.Config, opts.Loader),
		status:       *component.NewStatusBarModel(opts.Build.Version),
		footerHeight: 1,
	}

	app.viewState.Page = app.route.Page
	app.status.SetPath(app.path(app.route))
	if app.route.Page == nav.PageDetail {
		app.detail.Show(app.route.Sign)
	}

	return app
}

func (m rootModel) Init() tea.Cmd {
	cmds := []tea.Cmd{
		tea.SetWindowTitle("zodiac-tui"),
		command.NextFrame(m.config.FrameInterval()),
		m.settings.Init(),
		command.LoadRecent(m.ctx, m.history, m.historyLimit()),
	}

	if m.route.Page == nav.PageDetail {
		cmds = append(cmds, command.RecordVisit(m.ctx, m.history, m.route.Sign.EnglishName))
	}

	return tea.Batch(cmds...)
}

func (m rootModel) Update(inMsg tea.Msg) (tea.Model, tea.Cmd) {
	logMsg(inMsg)

	// Frames keep ticking before the first resize so the clock never stops.
	if msg, ok := inMsg.(command.FrameMsg); ok {
		return m.onFrame(msg)
	}

	if !m.isInitialized() {
		if _, ok := inMsg.(tea.WindowSizeMsg); !ok {
			return m, nil
		}
	}

	switch msg := inMsg.(type) {
	case tea.WindowSizeMsg:
		m.viewState.Height = msg.Height
		m.viewState.Width = msg.Width
		m.viewState.Content = max(msg.Height-m.footerHeight, 1)

		cmd := m.propagate(m.viewState)
		if m.route.Page == nav.PageHome && !m.home.Mounted() {
			return m, tea.Batch(cmd, m.mountHome())
		}

		return m, cmd
	case command.NavigateMsg:
		return m.navigate(msg.Route)
	case config.Config:
		m.config = msg
		m.presenter.Configure(msg.FPS, msg.Transition())
		m.home.SetConfig(msg)
		slog.Info("Config applied")
	case tea.KeyMsg:
		if m.capturingInput() {
			if msg.Type == tea.KeyCtrlC {
				return m, tea.Quit
			}

			break
		}

		switch {
		case key.Matches(msg, input.Default.Quit):
			return m, tea.Quit
		case key.Matches(msg, input.Default.Help):
			return m.toggle(nav.PageHelp)
		case key.Matches(msg, input.Default.Settings):
			return m.toggle(nav.PageSettings)
		case key.Matches(msg, input.Default.Signs):
			return m.toggle(nav.PageSigns)
		case key.Matches(msg, input.Default.Home):
			return m.navigate(nav.Home)
		}
	}

	cmd := m.propagate(inMsg)

	return m, cmd
}

func (m rootModel) onFrame(msg command.FrameMsg) (tea.Model, tea.Cmd) {
	fired := m.queue.Advance(msg.Time)
	moving := m.presenter.Step()

	if m.route.Page == nav.PageHome && (fired > 0 || moving) {
		m.home.Refresh()
	}

	return m, command.NextFrame(m.config.FrameInterval())
}

// toggle opens page, or returns to the previous route when page is already open.
func (m rootModel) toggle(page nav.Page) (tea.Model, tea.Cmd) {
	if m.route.Page == page {
		return m.navigate(m.previous)
	}

	return m.navigate(nav.Route{Page: page})
}

func (m rootModel) navigate(route nav.Route) (tea.Model, tea.Cmd) {
	if route.Page == m.route.Page && route.Sign == m.route.Sign {
		return m, nil
	}

	var cmds []tea.Cmd

	if m.route.Page == nav.PageHome && route.Page != nav.PageHome {
		if err := m.home.Unmount(); err != nil {
			slog.Error("Failed to dispose home page", slog.String("error", err.Error()))
		}
	}

	slog.Debug("Navigate", slog.String("from", m.path(m.route)), slog.String("to", m.path(route)))

	if m.route.Page != route.Page {
		m.previous = m.route
	}

	m.route = route
	m.viewState.Page = route.Page
	m.status.SetPath(m.path(route))

	switch route.Page {
	case nav.PageHome:
		cmds = append(cmds, m.mountHome(), command.LoadRecent(m.ctx, m.history, m.historyLimit()))
	case nav.PageDetail:
		m.detail.Show(route.Sign)
		cmds = append(cmds, command.RecordVisit(m.ctx, m.history, route.Sign.EnglishName))
	case nav.PageSigns, nav.PageHelp, nav.PageSettings:
	}

	cmds = append(cmds, m.propagate(m.viewState))

	return m, tea.Batch(cmds...)
}

func (m rootModel) mountHome() tea.Cmd {
	if err := m.home.Mount(); err != nil {
		slog.Error("Failed to mount home page", slog.String("error", err.Error()))

		return command.SetStatusMessage(err.Error(), true)
	}

	return nil
}

func (m rootModel) path(route nav.Route) string {
	switch route.Page {
	case nav.PageHome, nav.PageDetail:
		return m.router.Path(route)
	default:
		return route.Page.String()
	}
}

func (m rootModel) historyLimit() int {
	if !m.config.HistoryEnabled {
		return 0
	}

	return m.config.HistoryLimit
}

// capturingInput is true while a text input has focus.
func (m rootModel) capturingInput() bool {
	switch m.route.Page {
	case nav.PageSigns:
		return m.signs.Filtering()
	case nav.PageSettings:
		return m.settings.Editing()
	case nav.PageHome, nav.PageDetail, nav.PageHelp:
		fallthrough
	default:
		return false
	}
}

func (m rootModel) View() string {
	if !m.isInitialized() {
		return ""
	}

	footer := styles.FooterContainerStyle.
		Width(m.viewState.Width).
		Render(m.status.View())

	var content string
	switch m.route.Page {
	case nav.PageHome:
		content = m.home.View()
	case nav.PageDetail:
		content = m.detail.View()
	case nav.PageSigns:
		content = m.signs.View()
	case nav.PageHelp:
		content = m.help.View()
	case nav.PageSettings:
		content = m.settings.View()
	}

	ctr := styles.ContentContainerStyle.
		Width(m.viewState.Width).
		Height(m.viewState.Content).
		MaxHeight(m.viewState.Content).
		Render(content)

	return zone.Scan(lipgloss.JoinVertical(lipgloss.Left, ctr, footer))
}

func (m rootModel) isInitialized() bool {
	return m.viewState.Height != 0 && m.viewState.Width != 0
}

// propagate sends msg to every page and the status bar.
func (m *rootModel) propagate(msg tea.Msg) tea.Cmd {
	cmds := make([]tea.Cmd, 6)

	cmds[0] = m.home.Update(msg)
	cmds[1] = m.detail.Update(msg)
	cmds[2] = m.signs.Update(msg)
	cmds[3] = m.help.Update(msg)
	cmds[4] = m.settings.Update(msg)
	m.status, cmds[5] = m.status.Update(msg)

	return tea.Batch(cmds...)
}

// logMsg is useful for debugging events. Tail the log file ~/.config/zodiac-tui/zodiac-tui.log
func logMsg(inMsg tea.Msg) {
	// Filter out very noisy stuff
	switch inMsg.(type) {
	case command.FrameMsg:
		break
	case tea.MouseMsg:
		break
	default:
		slog.Debug("tea.Msg", slog.Any("msg", inMsg))
	}
}
