package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path"
	"runtime"
	"runtime/pprof"
	"time"

	"github.com/adrg/xdg"
	"github.com/charmbracelet/fang"
	_ "github.com/joho/godotenv/autoload"
	"github.com/leighmacdonald/zodiac-tui/internal/config"
	"github.com/leighmacdonald/zodiac-tui/internal/store"
	"github.com/leighmacdonald/zodiac-tui/internal/ui"
	"github.com/leighmacdonald/zodiac-tui/internal/ui/pages"
	"github.com/leighmacdonald/zodiac-tui/internal/zodiac"
	"github.com/spf13/cobra"
	_ "modernc.org/sqlite"
)

var (
	BuildVersion   = "master"
	BuildCommit    = "00000000"
	BuildDate      = time.Now().Format("2006-01-02T15:04:05Z")
	BuildGoVersion = runtime.Version()
	cfgFile        string
	startSign      string
	rootCmd        = &cobra.Command{
		Use:   "zodiac-tui",
		Short: "Zodiac sign browser",
		Long:  `zodiac-tui - A scrolling terminal guide to the twelve zodiac signs`,
		Args:  cobra.NoArgs,
		RunE:  run,
	}

	versionCmd = &cobra.Command{
		Use:               "version",
		Short:             "Print version information",
		Long:              "Print detailed version information about zodiac-tui",
		Args:              cobra.NoArgs,
		ValidArgsFunction: cobra.NoFileCompletions,
		Run:               version,
	}

	listCmd = &cobra.Command{
		Use:               "list",
		Short:             "List the zodiac signs",
		Args:              cobra.NoArgs,
		ValidArgsFunction: cobra.NoFileCompletions,
		Run:               list,
	}

	showCmd = &cobra.Command{
		Use:               "show <sign>",
		Short:             "Print the details of a sign",
		Long:              "Print the details of a sign. Unknown signs print the sign listing instead.",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeSigns,
		Run:               show,
	}

	historyCmd = &cobra.Command{
		Use:               "history",
		Short:             "Print the recently viewed signs",
		Args:              cobra.NoArgs,
		ValidArgsFunction: cobra.NoFileCompletions,
		RunE:              history,
	}
)

var errApp = errors.New("application error")

func main() {
	configPath := config.Path("")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", configPath, "Config file directory")
	rootCmd.Flags().StringVar(&startSign, "sign", "", "Open the detail page of this sign")
	rootCmd.AddCommand(versionCmd, listCmd, showCmd, historyCmd)

	if err := fang.Execute(context.Background(), rootCmd); err != nil {
		slog.Error("Exited with error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func version(_ *cobra.Command, _ []string) {
	fmt.Printf("zodiac-tui - Zodiac Terminal UI\n\n") //nolint:forbidigo
	fmt.Printf("  Version: %s\n", BuildVersion)       //nolint:forbidigo
	fmt.Printf("  Commit:  %s\n", BuildCommit)        //nolint:forbidigo
	fmt.Printf("  Built:   %s\n", BuildDate)          //nolint:forbidigo
	fmt.Printf("  Runtime: %s\n\n", BuildGoVersion)   //nolint:forbidigo
}

// readConfig loads the user config without watching it.
func readConfig(changes chan<- config.Config) (*config.Loader, config.Config, error) {
	loader := config.NewLoader(changes, cfgFile, ".")
	userConfig, errConfig := loader.Read()
	if errConfig != nil {
		return nil, config.Config{}, errors.Join(errConfig, errApp)
	}

	return loader, userConfig, nil
}

// run is the main entry point of zodiac-tui.
func run(cmd *cobra.Command, _ []string) error {
	// If PROFILE is set, it will be used as the output file path for the profiler.
	if len(os.Getenv("PROFILE")) > 0 {
		f, err := os.Create(os.Getenv("PROFILE"))
		if err != nil {
			return errors.Join(err, errApp)
		}

		if errStart := pprof.StartCPUProfile(f); errStart != nil {
			return errors.Join(errStart, errApp)
		}
		defer pprof.StopCPUProfile()
	}

	// Make sure our config & data home exists.
	if err := os.MkdirAll(path.Join(xdg.ConfigHome, config.ConfigDirName), 0o750); err != nil {
		return errors.Join(err, errApp)
	}

	configUpdates := make(chan config.Config)
	configLoader, userConfig, errConfig := readConfig(configUpdates)
	if errConfig != nil {
		return errConfig
	}

	if startSign != "" {
		userConfig.StartSign = startSign
	}

	// Setup file based logger. This is very useful for us as our console is taken over by the ui.
	logPath := config.Path(config.DefaultLogName)
	logFile, errLogger := config.LoggerInit(logPath, userConfig.LogLevel)
	if errLogger != nil {
		return errors.Join(errLogger, errApp)
	}

	defer func(closer io.Closer) {
		if err := closer.Close(); err != nil {
			slog.Error("Failed to close log file", slog.String("error", err.Error()))
		}
	}(logFile)

	slog.Info("Starting zodiac-tui", slog.String("version", BuildVersion),
		slog.String("commit", BuildCommit), slog.String("date", BuildDate),
		slog.String("go", runtime.Version()))

	opts := ui.Options{
		Config:  userConfig,
		Catalog: zodiac.New(),
		Loader:  configLoader,
		Build:   pages.BuildInfo{Version: BuildVersion, Commit: BuildCommit, Date: BuildDate},
		Paths: pages.Paths{
			Config:   configLoader.Path(),
			Log:      logPath,
			Database: userConfig.DatabasePath,
		},
	}

	if userConfig.HistoryEnabled {
		// Setup the sqlite database system.
		database, errDB := store.Open(cmd.Context(), userConfig.DatabasePath, true)
		if errDB != nil {
			return errors.Join(errDB, errApp)
		}

		defer func() {
			if err := database.Close(); err != nil {
				slog.Error("Error closing database", slog.String("error", err.Error()))
			}
		}()

		opts.History = store.NewHistory(database)
	}

	configLoader.Watch()

	return NewApp(opts, configUpdates).Start(cmd.Context())
}
