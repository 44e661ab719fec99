package pages

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/leighmacdonald/zodiac-tui/internal/config"
	"github.com/leighmacdonald/zodiac-tui/internal/nav"
	"github.com/leighmacdonald/zodiac-tui/internal/reveal"
	"github.com/leighmacdonald/zodiac-tui/internal/scroll"
	"github.com/leighmacdonald/zodiac-tui/internal/store"
	"github.com/leighmacdonald/zodiac-tui/internal/ui/command"
	"github.com/leighmacdonald/zodiac-tui/internal/ui/component"
	"github.com/leighmacdonald/zodiac-tui/internal/ui/input"
	"github.com/leighmacdonald/zodiac-tui/internal/ui/model"
	"github.com/leighmacdonald/zodiac-tui/internal/ui/styles"
	"github.com/leighmacdonald/zodiac-tui/internal/zodiac"
	zone "github.com/lrstanley/bubblezone"
)

var errMount = errors.New("failed to mount home page")

const (
	heroID   = "hero"
	recentID = "recent"
	// tabsHeight is the sticky panel strip and the blank line under it.
	tabsHeight = 2
	minHero    = 5
)

type storyRegion struct {
	id   string
	kind reveal.PanelKind
	// fade is the animation name the region slides in with.
	fade    string
	heading string
	body    string
}

var storyRegions = []storyRegion{
	{id: "story-title", kind: reveal.PanelTitle, fade: "fade-up", heading: "星座物語 Zodiac Stories",
		body: "仰望夜空，十二個星座各自守護著一段時光。向下捲動，認識它們的故事。"},
	{id: "story-name", kind: reveal.PanelName, fade: "fade-left", heading: "十二星座 The Twelve Signs",
		body: "從摩羯到射手，每個星座都有屬於自己的日期、符號與性格。"},
	{id: "story-story", kind: reveal.PanelStory, fade: "fade-right", heading: "星空的故事 Written in the Stars",
		body: "古人把星星連成圖像，用來記錄季節、航行與命運，星座的傳說因此流傳至今。"},
	{id: "story-skills", kind: reveal.PanelSkills, fade: "fade-left", heading: "星座的天賦 Gifts of the Signs",
		body: "務實、創意、溫柔、勇敢，每個星座都帶著獨特的天賦，等待被發現。"},
	{id: "story-quote", kind: reveal.PanelQuote, fade: "fade-up", heading: "星語 A Quote",
		body: "「我們都是星塵，也都在尋找屬於自己的那顆星。」"},
}

var panelLabels = map[reveal.PanelKind]string{
	reveal.PanelTitle:  "Title",
	reveal.PanelName:   "Name",
	reveal.PanelStory:  "Story",
	reveal.PanelSkills: "Skills",
	reveal.PanelQuote:  "Quote",
}

func cardID(sign zodiac.Sign) string {
	return "card-" + sign.Slug()
}

// Home is the scrolling landing page. While mounted it owns a PanelSelector that drives the sticky
// story strip and a FadeInScheduler that reveals each block the first time it scrolls into view.
type Home struct {
	config    config.Config
	catalog   zodiac.Lookup
	router    nav.Router
	presenter *component.Presenter
	queue     *reveal.Queue
	viewport  viewport.Model
	tabs      component.PanelTabs
	panels    *scroll.Observer
	fades     *scroll.Observer
	selector  *reveal.PanelSelector
	fader     *reveal.FadeInScheduler
	layout    scroll.Layout
	grid      model.Grid
	selected  int
	recent    []store.Visit
	changes   []reveal.ActivePanelChanged
	zoneID    string
	viewState model.ViewState
	mounted   bool
}

func NewHome(cfg config.Config, catalog zodiac.Lookup, router nav.Router, presenter *component.Presenter, queue *reveal.Queue) *Home {
	return &Home{
		config:    cfg,
		catalog:   catalog,
		router:    router,
		presenter: presenter,
		queue:     queue,
		viewport:  viewport.New(0, 0),
		tabs:      component.NewPanelTabs(reveal.DefaultKinds, panelLabels),
		layout:    scroll.Layout{},
		zoneID:    zone.NewPrefix(),
	}
}

// Mount creates fresh core components, hides every fade element and starts observing. Mounting
// an already mounted page does nothing.
func (m *Home) Mount() error {
	if m.mounted {
		return nil
	}

	m.presenter.Reset()
	m.viewport.GotoTop()
	// Observers get their viewport after the handlers are subscribed so the initial reports reach them.
	m.panels = scroll.NewObserver("panels", 0)
	m.fades = scroll.NewObserver("fades", m.config.FadeMarginRows)

	regions := make([]reveal.Region, len(storyRegions))
	mapping := make(map[string]reveal.PanelKind, len(storyRegions))
	for index, region := range storyRegions {
		regions[index] = reveal.Region{ID: region.id}
		mapping[region.id] = region.kind
	}

	selector, errSelector := reveal.NewPanelSelector(reveal.PanelConfig{
		Regions: regions,
		Panels:  mapping,
		Kinds:   reveal.DefaultKinds,
		Default: reveal.PanelKind(m.config.DefaultPanel),
	}, m.panels, m.presenter)
	if errSelector != nil {
		return errors.Join(errSelector, errMount)
	}

	fader, errFader := reveal.NewFadeInScheduler(m.fades, m.presenter, m.queue, reveal.WithThreshold(m.config.FadeThreshold))
	if errFader != nil {
		return errors.Join(errFader, errMount)
	}

	elements, errElements := m.fadeElements()
	if errElements != nil {
		return errors.Join(errElements, errMount)
	}

	for _, element := range elements {
		if err := fader.Register(element); err != nil {
			return errors.Join(err, errMount)
		}
	}

	selector.OnChange(func(change reveal.ActivePanelChanged) {
		m.changes = append(m.changes, change)
	})
	m.panels.Subscribe(selector.OnVisibilityUpdate)
	m.fades.Subscribe(fader.OnVisibilityUpdate)

	m.selector = selector
	m.fader = fader
	m.mounted = true
	m.relayout()

	return nil
}

// Unmount disposes the core components. Reveals still waiting on their delay are dropped.
func (m *Home) Unmount() error {
	if !m.mounted {
		return nil
	}

	m.mounted = false
	m.changes = nil

	return errors.Join(m.selector.Dispose(), m.fader.Dispose())
}

func (m *Home) Mounted() bool {
	return m.mounted
}

// Current is the active story panel.
func (m *Home) Current() reveal.PanelKind {
	if m.selector == nil {
		return reveal.PanelKind(m.config.DefaultPanel)
	}

	return m.selector.Current()
}

// Selected is the sign under the card cursor.
func (m *Home) Selected() zodiac.Sign {
	signs := m.catalog.All()

	return signs[min(max(m.selected, 0), len(signs)-1)]
}

// SetConfig stores a new config. It is applied the next time the page mounts.
func (m *Home) SetConfig(cfg config.Config) {
	m.config = cfg
}

// Span returns the document position of a block.
func (m *Home) Span(id string) (scroll.Span, bool) {
	span, found := m.layout[id]

	return span, found
}

func (m *Home) YOffset() int {
	return m.viewport.YOffset
}

// Refresh re-renders the document at the current presentation.
func (m *Home) Refresh() {
	if m.viewState.Width <= 0 {
		return
	}

	content, _ := m.render()
	m.viewport.SetContent(content)
}

func (m *Home) Init() tea.Cmd {
	return nil
}

func (m *Home) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case model.ViewState:
		resized := msg.Width != m.viewState.Width || msg.Content != m.viewState.Content
		m.viewState = msg
		if resized {
			m.relayout()
		}
	case command.RecentVisitsMsg:
		m.recent = msg.Visits
		m.Refresh()
	case tea.MouseMsg:
		if m.viewState.Page != nav.PageHome {
			return nil
		}

		return m.onMouse(msg)
	case tea.KeyMsg:
		if m.viewState.Page != nav.PageHome {
			return nil
		}

		return m.onKey(msg)
	}

	return nil
}

func (m *Home) onKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, input.Default.Up):
		m.scrollTo(m.viewport.YOffset - 1)
	case key.Matches(msg, input.Default.Down):
		m.scrollTo(m.viewport.YOffset + 1)
	case key.Matches(msg, input.Default.PageUp):
		m.scrollTo(m.viewport.YOffset - m.viewport.Height)
	case key.Matches(msg, input.Default.PageDown):
		m.scrollTo(m.viewport.YOffset + m.viewport.Height)
	case key.Matches(msg, input.Default.Top):
		m.scrollTo(0)
	case key.Matches(msg, input.Default.Bottom):
		m.scrollTo(m.viewport.TotalLineCount())
	case key.Matches(msg, input.Default.Left):
		m.moveSelection(input.Left)
	case key.Matches(msg, input.Default.Right), key.Matches(msg, input.Default.NextCard):
		m.moveSelection(input.Right)
	case key.Matches(msg, input.Default.PrevCard):
		m.moveSelection(input.Left)
	case key.Matches(msg, input.Default.Accept):
		return command.Navigate(m.router.Resolve(m.Selected().EnglishName))
	}

	return m.flushChanges()
}

func (m *Home) onMouse(msg tea.MouseMsg) tea.Cmd {
	if kind, found := m.tabs.Clicked(msg); found {
		for _, region := range storyRegions {
			if region.kind == kind {
				m.scrollTo(m.layout[region.id].Top)

				break
			}
		}

		return m.flushChanges()
	}

	if msg.Action == tea.MouseActionRelease && msg.Button == tea.MouseButtonLeft {
		for index, sign := range m.catalog.All() {
			if zone.Get(m.zoneID + sign.Slug()).InBounds(msg) {
				m.selected = index

				return command.Navigate(m.router.Resolve(sign.EnglishName))
			}
		}

		return nil
	}

	before := m.viewport.YOffset
	m.viewport, _ = m.viewport.Update(msg)
	if m.viewport.YOffset != before {
		m.observe()
	}

	return m.flushChanges()
}

func (m *Home) moveSelection(dir input.Direction) {
	m.selected = m.grid.Next(m.selected, dir)
	m.Refresh()

	// Keep the selected card on screen.
	span, found := m.layout[cardID(m.Selected())]
	if !found {
		return
	}

	switch {
	case span.Top < m.viewport.YOffset:
		m.scrollTo(span.Top)
	case span.Bottom() > m.viewport.YOffset+m.viewport.Height:
		m.scrollTo(span.Bottom() - m.viewport.Height)
	}
}

func (m *Home) scrollTo(offset int) {
	before := m.viewport.YOffset
	m.viewport.SetYOffset(offset)

	if m.viewport.YOffset != before {
		m.observe()
	}
}

// observe pushes the current viewport into both observers.
func (m *Home) observe() {
	if !m.mounted {
		return
	}

	m.panels.Update(m.viewport.YOffset, m.viewport.Height)
	m.fades.Update(m.viewport.YOffset, m.viewport.Height)
}

// flushChanges turns panel changes collected during the last update into messages.
func (m *Home) flushChanges() tea.Cmd {
	if len(m.changes) == 0 {
		return nil
	}

	cmds := make([]tea.Cmd, len(m.changes))
	for index, change := range m.changes {
		cmds[index] = func() tea.Msg { return component.PanelChangedMsg{Change: change} }
	}

	m.changes = nil

	return tea.Batch(cmds...)
}

// relayout resizes the viewport, renders the document and hands the new layout to the observers.
func (m *Home) relayout() {
	if m.viewState.Width <= 0 || m.viewState.Content <= 0 {
		return
	}

	m.viewport.Width = m.viewState.Width
	m.viewport.Height = max(m.viewState.Content-tabsHeight, 1)
	m.grid = model.Grid{Columns: max(m.viewState.Width/component.CardOuterWidth, 1), Count: len(m.catalog.All())}

	content, layout := m.render()
	m.layout = layout
	m.viewport.SetContent(content)

	if !m.mounted {
		return
	}

	m.panels.SetLayout(layout)
	m.fades.SetLayout(layout)
	m.observe()
}

func (m *Home) fadeElements() ([]reveal.FadeElement, error) {
	elements := []reveal.FadeElement{{ID: heroID, Direction: reveal.Up}}

	for _, region := range storyRegions {
		direction, errDirection := reveal.ParseDirection(region.fade)
		if errDirection != nil {
			return nil, errDirection
		}

		elements = append(elements, reveal.FadeElement{ID: region.id, Direction: direction})
	}

	columns := max(m.viewState.Width/component.CardOuterWidth, 1)
	for index, sign := range m.catalog.All() {
		elements = append(elements, reveal.FadeElement{
			ID:        cardID(sign),
			Direction: cardDirection(index%columns, columns),
			Delay:     time.Duration(index) * m.config.Stagger(),
		})
	}

	if m.config.HistoryEnabled && m.config.HistoryLimit > 0 {
		elements = append(elements, reveal.FadeElement{ID: recentID, Direction: reveal.Up})
	}

	return elements, nil
}

// cardDirection slides the outer columns in from their own side.
func cardDirection(column int, columns int) reveal.Direction {
	switch {
	case columns < 3:
		return reveal.Up
	case column == 0:
		return reveal.Left
	case column == columns-1:
		return reveal.Right
	default:
		return reveal.Up
	}
}

// render builds the document and the line span of every block in it.
func (m *Home) render() (string, scroll.Layout) {
	var (
		width  = m.viewState.Width
		inner  = max(width-2*component.MaxShift, 1)
		height = max(m.viewport.Height, 1)
		layout = scroll.Layout{}
		blocks []string
		line   int
	)

	add := func(block string, ids ...string) {
		span := scroll.Span{Top: line, Height: lipgloss.Height(block)}
		for _, id := range ids {
			layout[id] = span
		}

		blocks = append(blocks, block)
		line += span.Height
	}

	hero := lipgloss.NewStyle().Width(inner).Height(max(height-component.MaxShift-1, minHero)).
		Align(lipgloss.Center, lipgloss.Center).Bold(true)
	add(component.Faded(hero, styles.Star, "✨ 星座探索 ✨\nZodiac Explorer\n\n↓ scroll ↓", m.presenter.State(heroID)), heroID)

	for _, region := range storyRegions {
		text := region.heading + "\n\n" + fill(region.body, inner-4)
		regionHeight := min(max(lipgloss.Height(text)+2, height*3/4), max(height-component.MaxShift, lipgloss.Height(text)))
		style := lipgloss.NewStyle().Width(inner).Height(regionHeight).Padding(0, 2).AlignVertical(lipgloss.Center)
		add(component.Faded(style, styles.White, text, m.presenter.State(region.id)), region.id)
	}

	add(lipgloss.PlaceHorizontal(width, lipgloss.Center, styles.SectionTitle.Render("十二星座 · The Twelve Signs")))

	signs := m.catalog.All()
	columns := max(m.grid.Columns, 1)
	for start := 0; start < len(signs); start += columns {
		row := signs[start:min(start+columns, len(signs))]
		cards := make([]string, len(row))
		ids := make([]string, len(row))

		for offset, sign := range row {
			index := start + offset
			cards[offset] = zone.Mark(m.zoneID+sign.Slug(),
				component.Card(sign, index == m.selected, m.presenter.State(cardID(sign))))
			ids[offset] = cardID(sign)
		}

		add(lipgloss.PlaceHorizontal(width, lipgloss.Center, lipgloss.JoinHorizontal(lipgloss.Top, cards...)), ids...)
	}

	if m.config.HistoryEnabled && m.config.HistoryLimit > 0 {
		add(component.Faded(lipgloss.NewStyle().Width(inner), styles.Sky, m.recentLine(), m.presenter.State(recentID)), recentID)
	}

	return strings.Join(blocks, "\n"), layout
}

func (m *Home) recentLine() string {
	if len(m.recent) == 0 {
		return styles.IconHistory + " 最近瀏覽: 尚未瀏覽任何星座"
	}

	names := make([]string, 0, len(m.recent))
	for _, visit := range m.recent {
		sign, err := m.catalog.Find(visit.Sign)
		if err != nil {
			continue
		}

		names = append(names, sign.Emoji+" "+sign.Name)
	}

	return fmt.Sprintf("%s 最近瀏覽: %s", styles.IconHistory, strings.Join(names, "  "))
}

func (m *Home) View() string {
	if m.viewState.Width <= 0 {
		return ""
	}

	m.tabs = m.tabs.SetActive(m.presenter.ActivePanel())

	return lipgloss.JoinVertical(lipgloss.Left, m.tabs.View(m.viewState.Width), "", m.viewport.View())
}
