package pages_test

import (
	"strconv"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/leighmacdonald/zodiac-tui/internal/config"
	"github.com/leighmacdonald/zodiac-tui/internal/nav"
	"github.com/leighmacdonald/zodiac-tui/internal/reveal"
	"github.com/leighmacdonald/zodiac-tui/internal/ui/command"
	"github.com/leighmacdonald/zodiac-tui/internal/ui/component"
	"github.com/leighmacdonald/zodiac-tui/internal/ui/model"
	"github.com/leighmacdonald/zodiac-tui/internal/ui/pages"
	"github.com/leighmacdonald/zodiac-tui/internal/zodiac"
	zone "github.com/lrstanley/bubblezone"
	"github.com/stretchr/testify/require"
)

type homeFixture struct {
	home      *pages.Home
	presenter *component.Presenter
	queue     *reveal.Queue
	start     time.Time
}

func testConfig() config.Config {
	return config.Config{
		LogLevel:      "info",
		FPS:           60,
		DefaultPanel:  string(reveal.PanelTitle),
		FadeThreshold: 0.1,
		StaggerMs:     100,
	}
}

func newHomeFixture(t *testing.T) homeFixture {
	t.Helper()

	return newSizedHomeFixture(t, 25)
}

// newSizedHomeFixture mounts a home page in an 80 column terminal of the given height, one line of
// which belongs to the status bar.
func newSizedHomeFixture(t *testing.T, height int) homeFixture {
	t.Helper()

	zone.NewGlobal()

	start := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	catalog := zodiac.New()
	// A zero transition applies every reveal without easing.
	presenter := component.NewPresenter(60, 0)
	queue := reveal.NewQueue(reveal.ClockFunc(func() time.Time { return start }))
	home := pages.NewHome(testConfig(), catalog, nav.NewRouter(catalog), presenter, queue)

	home.Update(model.ViewState{Page: nav.PageHome, Width: 80, Height: height, Content: height - 1})
	require.NoError(t, home.Mount())
	t.Cleanup(func() {
		require.NoError(t, home.Unmount())
	})

	return homeFixture{home: home, presenter: presenter, queue: queue, start: start}
}

func keyPress(value string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(value)}
}

// collect runs cmd and any batched children, returning every message produced.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}

	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var msgs []tea.Msg
		for _, child := range batch {
			msgs = append(msgs, collect(child)...)
		}

		return msgs
	}

	return []tea.Msg{msg}
}

func TestHomeMount(t *testing.T) {
	fixture := newHomeFixture(t)

	require.True(t, fixture.home.Mounted())
	require.Equal(t, reveal.PanelTitle, fixture.home.Current())
	require.Equal(t, reveal.PanelTitle, fixture.presenter.ActivePanel())

	// The hero is on screen so its reveal is queued, but nothing runs until the queue advances.
	target, found := fixture.presenter.Target("hero")
	require.True(t, found)
	require.InDelta(t, 0.0, target.Opacity, 0.0001)
	require.Positive(t, fixture.queue.Len())

	fixture.queue.Advance(fixture.start)

	require.Equal(t, reveal.Shown, fixture.presenter.State("hero"))

	// Story regions slide in from the side named by their fade animation.
	name, found := fixture.presenter.Target("story-name")
	require.True(t, found)
	require.Equal(t, reveal.Hidden(reveal.Left), name)
	require.InDelta(t, 0.0, fixture.presenter.State("card-sagittarius").Opacity, 0.0001)
	require.NotEmpty(t, fixture.home.View())
}

func TestHomeMountTwice(t *testing.T) {
	fixture := newHomeFixture(t)

	pending := fixture.queue.Len()
	require.NoError(t, fixture.home.Mount())
	require.Equal(t, pending, fixture.queue.Len())
}

func TestHomeScrollChangesPanel(t *testing.T) {
	fixture := newHomeFixture(t)

	var changes []component.PanelChangedMsg
	for range 200 {
		for _, msg := range collect(fixture.home.Update(keyPress("j"))) {
			if change, ok := msg.(component.PanelChangedMsg); ok {
				changes = append(changes, change)
			}
		}

		if len(changes) > 0 {
			break
		}
	}

	require.NotEmpty(t, changes)
	require.Equal(t, reveal.PanelTitle, changes[0].Change.Previous)
	require.Equal(t, reveal.PanelName, changes[0].Change.Current)
	require.Equal(t, reveal.PanelName, fixture.home.Current())
	require.Equal(t, reveal.PanelName, fixture.presenter.ActivePanel())
}

func TestHomeScrollVisitsEveryPanel(t *testing.T) {
	for _, height := range []int{20, 24, 25, 30, 40, 50} {
		t.Run(strconv.Itoa(height), func(t *testing.T) {
			fixture := newSizedHomeFixture(t, height)

			seen := map[reveal.PanelKind]bool{fixture.home.Current(): true}
			for range 500 {
				before := fixture.home.YOffset()
				fixture.home.Update(keyPress("j"))
				seen[fixture.presenter.ActivePanel()] = true

				if fixture.home.YOffset() == before {
					break
				}
			}

			for _, kind := range reveal.DefaultKinds {
				require.True(t, seen[kind], "panel %s never became active", kind)
			}
		})
	}
}

func TestHomeScrollBackKeepsLastPanel(t *testing.T) {
	fixture := newHomeFixture(t)

	for range 200 {
		before := fixture.home.YOffset()
		fixture.home.Update(keyPress("j"))

		if fixture.home.YOffset() == before {
			break
		}
	}

	require.Equal(t, reveal.PanelQuote, fixture.home.Current())

	// No story region is over half visible at the top, so the last panel stays active.
	fixture.home.Update(keyPress("g"))
	require.Equal(t, 0, fixture.home.YOffset())
	require.Equal(t, reveal.PanelQuote, fixture.home.Current())
}

func TestHomeCardStagger(t *testing.T) {
	fixture := newHomeFixture(t)

	fixture.home.Update(keyPress("G"))

	last := "card-sagittarius"
	span, found := fixture.home.Span(last)
	require.True(t, found)
	require.GreaterOrEqual(t, span.Top, fixture.home.YOffset())

	fixture.queue.Advance(fixture.start.Add(500 * time.Millisecond))
	require.InDelta(t, 0.0, fixture.presenter.State(last).Opacity, 0.0001)

	fixture.queue.Advance(fixture.start.Add(1100 * time.Millisecond))
	require.Equal(t, reveal.Shown, fixture.presenter.State(last))

	// Revealed elements stay revealed when they leave the screen.
	fixture.home.Update(keyPress("g"))
	fixture.queue.Advance(fixture.start.Add(time.Minute))
	require.Equal(t, reveal.Shown, fixture.presenter.State(last))
}

func TestHomeUnmountDropsPendingReveals(t *testing.T) {
	zone.NewGlobal()

	start := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	catalog := zodiac.New()
	presenter := component.NewPresenter(60, 0)
	queue := reveal.NewQueue(reveal.ClockFunc(func() time.Time { return start }))
	home := pages.NewHome(testConfig(), catalog, nav.NewRouter(catalog), presenter, queue)

	home.Update(model.ViewState{Page: nav.PageHome, Width: 80, Height: 25, Content: 24})
	require.NoError(t, home.Mount())
	home.Update(keyPress("G"))
	require.Positive(t, queue.Len())

	require.NoError(t, home.Unmount())
	require.False(t, home.Mounted())
	require.Equal(t, 0, queue.Len())
	require.InDelta(t, 0.0, presenter.State("card-sagittarius").Opacity, 0.0001)

	// A second unmount is a no-op.
	require.NoError(t, home.Unmount())

	// Remounting starts over with everything hidden.
	require.NoError(t, home.Mount())
	require.Equal(t, 0, home.YOffset())
	target, found := presenter.Target("card-sagittarius")
	require.True(t, found)
	require.InDelta(t, 0.0, target.Opacity, 0.0001)
	require.NoError(t, home.Unmount())
}

func TestHomeAcceptNavigates(t *testing.T) {
	fixture := newHomeFixture(t)

	fixture.home.Update(keyPress("l"))
	require.Equal(t, "Aquarius", fixture.home.Selected().EnglishName)

	msgs := collect(fixture.home.Update(tea.KeyMsg{Type: tea.KeyEnter}))
	require.Len(t, msgs, 1)

	navigate, ok := msgs[0].(command.NavigateMsg)
	require.True(t, ok)
	require.Equal(t, nav.PageDetail, navigate.Route.Page)
	require.Equal(t, "Aquarius", navigate.Route.Sign.EnglishName)
}

func TestHomeIgnoresKeysOnOtherPages(t *testing.T) {
	fixture := newHomeFixture(t)

	fixture.home.Update(model.ViewState{Page: nav.PageSigns, Width: 80, Height: 25, Content: 24})
	require.Nil(t, fixture.home.Update(keyPress("G")))
	require.Equal(t, 0, fixture.home.YOffset())
}
