package pages_test

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/leighmacdonald/zodiac-tui/internal/nav"
	"github.com/leighmacdonald/zodiac-tui/internal/store"
	"github.com/leighmacdonald/zodiac-tui/internal/ui/command"
	"github.com/leighmacdonald/zodiac-tui/internal/ui/model"
	"github.com/leighmacdonald/zodiac-tui/internal/ui/pages"
	"github.com/leighmacdonald/zodiac-tui/internal/zodiac"
	"github.com/stretchr/testify/require"
)

func newDetail(t *testing.T, name string) *pages.Detail {
	t.Helper()

	catalog := zodiac.New()
	sign, err := catalog.Find(name)
	require.NoError(t, err)

	detail := pages.NewDetail(catalog, nav.NewRouter(catalog))
	detail.Show(sign)
	detail.Update(model.ViewState{Page: nav.PageDetail, Width: 80, Height: 31, Content: 30})

	return detail
}

func navigated(t *testing.T, cmd tea.Cmd) nav.Route {
	t.Helper()

	require.NotNil(t, cmd)
	msg, ok := cmd().(command.NavigateMsg)
	require.True(t, ok)

	return msg.Route
}

func TestDetailView(t *testing.T) {
	detail := newDetail(t, "capricorn")

	view := detail.View()
	require.Contains(t, view, "摩羯座")
	require.Contains(t, view, "Capricorn")
	require.Contains(t, view, "12/22-1/19")
	require.Contains(t, view, "First visit")
}

func TestDetailStats(t *testing.T) {
	detail := newDetail(t, "Leo")

	// Stats of another sign are ignored.
	detail.Update(command.SignStatsMsg{Stats: store.SignStats{Sign: "Aries", Count: 9}})
	require.Contains(t, detail.View(), "First visit")

	detail.Update(command.SignStatsMsg{Stats: store.SignStats{
		Sign:         "Leo",
		Count:        3,
		FirstVisited: time.Now().Add(-2 * time.Hour),
		LastVisited:  time.Now(),
	}})

	view := detail.View()
	require.Contains(t, view, "3rd visit")
	require.Contains(t, view, "2 hours ago")
}

func TestDetailNavigation(t *testing.T) {
	detail := newDetail(t, "Capricorn")

	require.Equal(t, nav.Home, navigated(t, detail.Update(tea.KeyMsg{Type: tea.KeyEsc})))

	previous := navigated(t, detail.Update(tea.KeyMsg{Type: tea.KeyLeft}))
	require.Equal(t, nav.PageDetail, previous.Page)
	require.Equal(t, "Sagittarius", previous.Sign.EnglishName)

	next := navigated(t, detail.Update(tea.KeyMsg{Type: tea.KeyRight}))
	require.Equal(t, "Aquarius", next.Sign.EnglishName)
}

func TestDetailIgnoresKeysOnOtherPages(t *testing.T) {
	detail := newDetail(t, "Capricorn")
	detail.Update(model.ViewState{Page: nav.PageHome, Width: 80, Height: 31, Content: 30})

	require.Nil(t, detail.Update(tea.KeyMsg{Type: tea.KeyEsc}))
}
