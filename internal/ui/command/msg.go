package command

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/leighmacdonald/zodiac-tui/internal/config"
	"github.com/leighmacdonald/zodiac-tui/internal/nav"
	"github.com/leighmacdonald/zodiac-tui/internal/store"
)

// NavigateMsg asks the root model to switch to a resolved route.
type NavigateMsg struct {
	Route nav.Route
}

func Navigate(route nav.Route) tea.Cmd {
	return func() tea.Msg { return NavigateMsg{Route: route} }
}

// FrameMsg drives animations. It is sent once per frame while the program runs.
type FrameMsg struct {
	Time time.Time
}

func NextFrame(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FrameMsg{Time: t}
	})
}

const ClearMessageTimeout = time.Second * 10

type ClearStatusMessageMsg struct{}

func ClearErrorAfter(t time.Duration) tea.Cmd {
	return tea.Tick(t, func(_ time.Time) tea.Msg {
		return ClearStatusMessageMsg{}
	})
}

type StatusMsg struct {
	Message string
	Err     bool
}

func SetStatusMessage(msg string, err bool) tea.Cmd {
	return func() tea.Msg {
		return StatusMsg{Message: msg, Err: err}
	}
}

func SetConfig(config config.Config) tea.Cmd {
	return func() tea.Msg { return config }
}

// RecentVisitsMsg carries the latest recently viewed list.
type RecentVisitsMsg struct {
	Visits []store.Visit
}

// SignStatsMsg carries the view stats of the sign shown on the detail page.
type SignStatsMsg struct {
	Stats store.SignStats
}

// History is the view history the ui reads and writes. A nil History disables it.
type History interface {
	Record(ctx context.Context, sign string) error
	Recent(ctx context.Context, limit int) ([]store.Visit, error)
	Stats(ctx context.Context, sign string) (store.SignStats, error)
}

// RecordVisit stores a detail page view then reloads the stats of that sign.
func RecordVisit(ctx context.Context, history History, sign string) tea.Cmd {
	if history == nil {
		return nil
	}

	return func() tea.Msg {
		if err := history.Record(ctx, sign); err != nil {
			return StatusMsg{Message: "Failed to record visit: " + err.Error(), Err: true}
		}

		stats, errStats := history.Stats(ctx, sign)
		if errStats != nil {
			return StatusMsg{Message: "Failed to load visits: " + errStats.Error(), Err: true}
		}

		return SignStatsMsg{Stats: stats}
	}
}

// LoadRecent fetches the recently viewed signs.
func LoadRecent(ctx context.Context, history History, limit int) tea.Cmd {
	if history == nil || limit <= 0 {
		return nil
	}

	return func() tea.Msg {
		visits, err := history.Recent(ctx, limit)
		if err != nil {
			return StatusMsg{Message: "Failed to load history: " + err.Error(), Err: true}
		}

		return RecentVisitsMsg{Visits: visits}
	}
}
