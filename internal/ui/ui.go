package ui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/leighmacdonald/zodiac-tui/internal/config"
	"github.com/leighmacdonald/zodiac-tui/internal/reveal"
	"github.com/leighmacdonald/zodiac-tui/internal/ui/command"
	"github.com/leighmacdonald/zodiac-tui/internal/ui/pages"
	"github.com/leighmacdonald/zodiac-tui/internal/zodiac"
	zone "github.com/lrstanley/bubblezone"
)

var ErrUIExit = errors.New("ui error returned")

// Options are the dependencies of the ui.
type Options struct {
	Config  config.Config
	Catalog zodiac.Lookup
	// History may be nil to disable view history.
	History command.History
	Loader  config.Writer
	// Clock drives reveal delays. The wall clock is used when nil.
	Clock reveal.Clock
	Build pages.BuildInfo
	Paths pages.Paths
}

type UI struct {
	program *tea.Program
}

func New(ctx context.Context, opts Options) *UI {
	zone.NewGlobal()

	programOpts := []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithContext(ctx),
		tea.WithFPS(opts.Config.FPS),
	}

	if opts.Config.MouseEnabled {
		programOpts = append(programOpts, tea.WithMouseCellMotion())
	}

	return &UI{program: tea.NewProgram(newRootModel(ctx, opts), programOpts...)}
}

func (t UI) Run() error {
	if _, err := t.program.Run(); err != nil {
		return errors.Join(err, ErrUIExit)
	}

	return nil
}

func (t UI) Send(msg tea.Msg) {
	t.program.Send(msg)
}

// Quit asks the program to exit.
func (t UI) Quit() {
	t.program.Quit()
}
