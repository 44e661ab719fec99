package main

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"
	"github.com/leighmacdonald/zodiac-tui/internal/nav"
	"github.com/leighmacdonald/zodiac-tui/internal/store"
	"github.com/leighmacdonald/zodiac-tui/internal/ui/command"
	"github.com/leighmacdonald/zodiac-tui/internal/ui/model"
	"github.com/leighmacdonald/zodiac-tui/internal/ui/pages"
	"github.com/leighmacdonald/zodiac-tui/internal/ui/styles"
	"github.com/leighmacdonald/zodiac-tui/internal/zodiac"
	"github.com/spf13/cobra"
)

const (
	printWidth  = 80
	printHeight = 30
)

var errHistoryDisabled = errors.New("history is disabled, set history_enabled: true")

func signTable() *table.Table {
	catalog := zodiac.New()
	rows := make([][]string, 0, len(catalog.All()))
	for idx, sign := range catalog.All() {
		rows = append(rows, []string{strconv.Itoa(idx + 1), sign.Emoji, sign.Name, sign.EnglishName, sign.Dates})
	}

	return newTable().
		Headers("#", "", "星座", "Sign", "Dates").
		Rows(rows...)
}

func newTable() *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(styles.Nebula)).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return lipgloss.NewStyle().Bold(true).Foreground(styles.Star).Padding(0, 1)
			}

			return lipgloss.NewStyle().Foreground(styles.White).Padding(0, 1)
		})
}

func list(_ *cobra.Command, _ []string) {
	fmt.Println(signTable().Render()) //nolint:forbidigo
}

func completeSigns(_ *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	var names []string
	for _, sign := range zodiac.New().All() {
		if strings.HasPrefix(sign.Slug(), strings.ToLower(toComplete)) {
			names = append(names, sign.Slug())
		}
	}

	return names, cobra.ShellCompDirectiveNoFileComp
}

// show prints the detail page of a sign. Like the ui, unknown signs fall back to the home listing.
func show(cmd *cobra.Command, args []string) {
	catalog := zodiac.New()
	route := nav.NewRouter(catalog).Resolve(args[0])
	if route.Page != nav.PageDetail {
		fmt.Println(signTable().Render()) //nolint:forbidigo

		return
	}

	detail := pages.NewDetail(catalog, nav.NewRouter(catalog))
	detail.Show(route.Sign)
	detail.Update(model.ViewState{Page: nav.PageDetail, Width: printWidth, Content: printHeight})

	if _, userConfig, errConfig := readConfig(nil); errConfig == nil && userConfig.HistoryEnabled {
		if database, errDB := store.Open(cmd.Context(), userConfig.DatabasePath, true); errDB == nil {
			if stats, errStats := store.NewHistory(database).Stats(cmd.Context(), route.Sign.EnglishName); errStats == nil {
				detail.Update(command.SignStatsMsg{Stats: stats})
			}

			if err := database.Close(); err != nil {
				slog.Error("Error closing database", slog.String("error", err.Error()))
			}
		}
	}

	fmt.Println(detail.View()) //nolint:forbidigo
}

func history(cmd *cobra.Command, _ []string) error {
	_, userConfig, errConfig := readConfig(nil)
	if errConfig != nil {
		return errConfig
	}

	if !userConfig.HistoryEnabled {
		return errHistoryDisabled
	}

	database, errDB := store.Open(cmd.Context(), userConfig.DatabasePath, true)
	if errDB != nil {
		return errors.Join(errDB, errApp)
	}

	defer func() {
		if err := database.Close(); err != nil {
			slog.Error("Error closing database", slog.String("error", err.Error()))
		}
	}()

	visits := store.NewHistory(database)
	recent, errRecent := visits.Recent(cmd.Context(), max(userConfig.HistoryLimit, 1))
	if errRecent != nil {
		return errors.Join(errRecent, errApp)
	}

	if len(recent) == 0 {
		fmt.Println("No signs viewed yet") //nolint:forbidigo

		return nil
	}

	catalog := zodiac.New()
	rows := make([][]string, 0, len(recent))
	for _, visit := range recent {
		stats, errStats := visits.Stats(cmd.Context(), visit.Sign)
		if errStats != nil {
			return errors.Join(errStats, errApp)
		}

		title := visit.Sign
		if sign, errFind := catalog.Find(visit.Sign); errFind == nil {
			title = sign.Title()
		}

		rows = append(rows, []string{title, humanize.Comma(int64(stats.Count)), humanize.Time(visit.VisitedOn)})
	}

	fmt.Println(newTable().Headers("Sign", "Visits", "Last viewed").Rows(rows...).Render()) //nolint:forbidigo

	return nil
}
