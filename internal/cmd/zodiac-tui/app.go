package main

import (
	"context"
	"errors"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/leighmacdonald/zodiac-tui/internal/config"
	"github.com/leighmacdonald/zodiac-tui/internal/ui"
	"golang.org/x/sync/errgroup"
)

type UI interface {
	Send(msg tea.Msg)
	Run() error
	Quit()
}

// App is the main application container. Very little logic is contained within this struct. Its mostly
// responsible for routing messages between different systems.
type App struct {
	opts          ui.Options
	configUpdates chan config.Config
}

// NewApp returns a new application instance. To actually start the app you must call
// Start().
func NewApp(opts ui.Options, configUpdates chan config.Config) *App {
	return &App{opts: opts, configUpdates: configUpdates}
}

// Start runs the ui until it exits, forwarding config reloads to it in the meantime.
func (app *App) Start(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	program := app.createUI(ctx)
	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		// Stop the forwarder once the ui is gone.
		defer cancel()

		if err := program.Run(); err != nil {
			if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
				return nil
			}

			slog.Error("Failed to run UI", slog.String("error", err.Error()))

			return err
		}

		return nil
	})

	group.Go(func() error {
		app.configForwarder(groupCtx, program)

		return nil
	})

	return group.Wait()
}

// configForwarder sends reloaded config files to the ui.
func (app *App) configForwarder(ctx context.Context, program UI) {
	for {
		select {
		case conf := <-app.configUpdates:
			slog.Info("Config reloaded, applying")
			program.Send(conf)
		case <-ctx.Done():
			return
		}
	}
}

func (app *App) createUI(ctx context.Context) UI {
	return ui.New(ctx, app.opts)
}
