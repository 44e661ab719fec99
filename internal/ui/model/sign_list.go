package model

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/leighmacdonald/zodiac-tui/internal/ui/styles"
	"github.com/leighmacdonald/zodiac-tui/internal/zodiac"
)

func NewSignList(title string, signs []zodiac.Sign) list.Model {
	items := make([]list.Item, len(signs))
	for index, sign := range signs {
		items[index] = SignItem{Sign: sign}
	}

	newList := list.New(items, SignDelegate{}, 2, 2)
	newList.SetStatusBarItemName("sign", "signs")
	setListDefaults(&newList, title)

	return newList
}

func setListDefaults(newList *list.Model, title string) {
	newList.Title = title
	newList.DisableQuitKeybindings()
	newList.SetShowHelp(false)
	newList.SetFilteringEnabled(true)
	newList.Styles.Title = styles.ListTitle
	newList.Styles.TitleBar = lipgloss.NewStyle().Padding(0).Align(lipgloss.Center)
}

type SignItem struct {
	Sign zodiac.Sign
}

// FilterValue matches on both names so either can be typed.
func (i SignItem) FilterValue() string { return i.Sign.EnglishName + " " + i.Sign.Name }

type SignDelegate struct{}

func (d SignDelegate) Height() int                             { return 1 }
func (d SignDelegate) Spacing() int                            { return 0 }
func (d SignDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }
func (d SignDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	i, ok := listItem.(SignItem)
	if !ok {
		return
	}

	str := fmt.Sprintf("%s %-12s %s  %s", i.Sign.Emoji, i.Sign.EnglishName, i.Sign.Name, i.Sign.Dates)
	var err error
	if index == m.Index() {
		_, err = fmt.Fprint(w, styles.ListSelectedRow.Render("> "+str))
	} else {
		_, err = fmt.Fprint(w, styles.ListUnselectedRow.Render("  "+str))
	}

	if err != nil {
		slog.Error("Failed to render item delegate", slog.String("error", err.Error()))
	}
}
