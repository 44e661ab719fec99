package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path"
	"slices"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/leighmacdonald/zodiac-tui/internal/reveal"
)

var (
	errConfigWrite   = errors.New("failed to write config file")
	errConfigRead    = errors.New("failed to read config file")
	errLoggerInit    = errors.New("failed to initialize logger")
	ErrConfigInvalid = errors.New("invalid config value")
)

const (
	ConfigDirName     = "zodiac-tui"
	DefaultConfigName = "zodiac-tui"
	DefaultDBName     = "zodiac-tui.db"
	DefaultLogName    = "zodiac-tui.log"
	EnvPrefix         = "zodiac"

	// LevelTrace is more verbose than debug.
	LevelTrace  = slog.Level(-8)
	levelSilent = "silent"

	maxFPS = 120
)

type Config struct {
	// LogLevel is one of silent, error, warn, info, debug or trace.
	LogLevel     string `mapstructure:"log_level"`
	FPS          int    `mapstructure:"fps"`
	MouseEnabled bool   `mapstructure:"mouse_enabled"`
	// DefaultPanel is the story panel shown before any story region has scrolled into view.
	DefaultPanel string `mapstructure:"default_panel"`
	// FadeThreshold is the visible ratio a block needs before its fade in starts.
	FadeThreshold float64 `mapstructure:"fade_threshold"`
	// FadeMarginRows shrinks the bottom of the viewport for fade detection.
	FadeMarginRows int    `mapstructure:"fade_margin_rows"`
	TransitionMs   int    `mapstructure:"transition_ms"`
	StaggerMs      int    `mapstructure:"stagger_ms"`
	HistoryEnabled bool   `mapstructure:"history_enabled"`
	HistoryLimit   int    `mapstructure:"history_limit"`
	DatabasePath   string `mapstructure:"database_path"`
	// StartSign opens the detail page of this sign on launch when set.
	StartSign string `mapstructure:"start_sign"`
}

// Validate checks value ranges that viper cannot express.
func (c Config) Validate() error {
	var errs []error

	if c.FPS < 1 || c.FPS > maxFPS {
		errs = append(errs, fmt.Errorf("fps must be between 1 and %d, got %d", maxFPS, c.FPS))
	}

	if c.FadeThreshold < 0 || c.FadeThreshold > 1 {
		errs = append(errs, fmt.Errorf("fade_threshold must be within [0,1], got %f", c.FadeThreshold))
	}

	if c.FadeMarginRows < 0 {
		errs = append(errs, errors.New("fade_margin_rows cannot be negative"))
	}

	if c.TransitionMs < 0 || c.StaggerMs < 0 {
		errs = append(errs, errors.New("transition_ms and stagger_ms cannot be negative"))
	}

	if c.HistoryLimit < 0 {
		errs = append(errs, errors.New("history_limit cannot be negative"))
	}

	if !slices.Contains(reveal.DefaultKinds, reveal.PanelKind(c.DefaultPanel)) {
		errs = append(errs, fmt.Errorf("default_panel %q is not one of %v", c.DefaultPanel, reveal.DefaultKinds))
	}

	if _, _, err := ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return errors.Join(append(errs, ErrConfigInvalid)...)
	}

	return nil
}

func (c Config) Transition() time.Duration {
	return time.Duration(c.TransitionMs) * time.Millisecond
}

func (c Config) Stagger() time.Duration {
	return time.Duration(c.StaggerMs) * time.Millisecond
}

func (c Config) FrameInterval() time.Duration {
	return time.Second / time.Duration(max(c.FPS, 1))
}

// Path generates a path pointing to the filename under this apps defined $XDG_CONFIG_HOME.
func Path(name string) string {
	fullPath, errFullPath := xdg.ConfigFile(path.Join(ConfigDirName, name))
	if errFullPath != nil {
		panic(errFullPath)
	}

	return fullPath
}

// ParseLevel maps a level name onto a slog level. silent reports true for the second value.
func ParseLevel(name string) (slog.Level, bool, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case levelSilent:
		return slog.LevelError, true, nil
	case "error":
		return slog.LevelError, false, nil
	case "warn":
		return slog.LevelWarn, false, nil
	case "", "info":
		return slog.LevelInfo, false, nil
	case "debug":
		return slog.LevelDebug, false, nil
	case "trace":
		return LevelTrace, false, nil
	default:
		return slog.LevelInfo, false, fmt.Errorf("unknown log_level %q", name)
	}
}

// LoggerInit sets up the slog global handler to use a log file as we cant print to the console.
func LoggerInit(logPath string, levelName string) (io.Closer, error) {
	level, silent, errLevel := ParseLevel(levelName)
	if errLevel != nil {
		return nil, errors.Join(errLevel, errLoggerInit)
	}

	if silent {
		slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))

		return io.NopCloser(nil), nil
	}

	logFile, errLogFile := os.Create(logPath)
	if errLogFile != nil {
		return nil, errors.Join(errLogFile, errLoggerInit)
	}

	logger := slog.New(slog.NewTextHandler(logFile, &slog.HandlerOptions{
		AddSource: false,
		Level:     level,
	}))

	slog.SetDefault(logger)

	return logFile, nil
}
