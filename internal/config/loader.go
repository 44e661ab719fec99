package config

import (
	"errors"
	"log/slog"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// Writer persists config changes made from inside the UI.
type Writer interface {
	Write(config Config) error
	Path() string
}

// Loader handles setting up viper, loading configuration from files, and broadcasting configuration changes.
type Loader struct {
	*viper.Viper
	changes chan<- Config
}

// NewLoader creates a loader searching searchPaths for the config file. When none are given the
// XDG config dir and the working directory are searched.
func NewLoader(changes chan<- Config, searchPaths ...string) *Loader {
	loader := Loader{changes: changes, Viper: viper.New()}
	loader.SetDefault("log_level", "info")
	loader.SetDefault("fps", 60)
	loader.SetDefault("mouse_enabled", true)
	loader.SetDefault("default_panel", "title")
	loader.SetDefault("fade_threshold", 0.1)
	loader.SetDefault("fade_margin_rows", 2)
	loader.SetDefault("transition_ms", 800)
	loader.SetDefault("stagger_ms", 100)
	loader.SetDefault("history_enabled", true)
	loader.SetDefault("history_limit", 5)
	loader.SetDefault("database_path", "")
	loader.SetDefault("start_sign", "")
	loader.SetConfigName(DefaultConfigName)
	loader.SetConfigType("yaml")
	loader.SetEnvPrefix(EnvPrefix)

	if len(searchPaths) == 0 {
		searchPaths = []string{Path(""), "."}
	}

	for _, searchPath := range searchPaths {
		loader.AddConfigPath(searchPath)
	}

	loader.AutomaticEnv()

	return &loader
}

// Watch starts watching the config file, sending every successfully read change to the changes
// channel.
func (cl *Loader) Watch() {
	cl.OnConfigChange(cl.onConfigChange)
	cl.WatchConfig()
}

func (cl *Loader) Path() string {
	return cl.ConfigFileUsed()
}

func (cl *Loader) onConfigChange(in fsnotify.Event) {
	if !in.Has(fsnotify.Write) && !in.Has(fsnotify.Rename) && !in.Has(fsnotify.Create) {
		return
	}

	slog.Debug("External config reload triggered", slog.String("path", in.Name))
	config, err := cl.Read()
	if err != nil {
		slog.Error("Error reading config", slog.String("error", err.Error()))

		return
	}

	if cl.changes != nil {
		cl.changes <- config
	}
}

func (cl *Loader) Write(config Config) error {
	cl.Set("log_level", config.LogLevel)
	cl.Set("fps", config.FPS)
	cl.Set("mouse_enabled", config.MouseEnabled)
	cl.Set("default_panel", config.DefaultPanel)
	cl.Set("fade_threshold", config.FadeThreshold)
	cl.Set("fade_margin_rows", config.FadeMarginRows)
	cl.Set("transition_ms", config.TransitionMs)
	cl.Set("stagger_ms", config.StaggerMs)
	cl.Set("history_enabled", config.HistoryEnabled)
	cl.Set("history_limit", config.HistoryLimit)
	cl.Set("database_path", config.DatabasePath)
	cl.Set("start_sign", config.StartSign)

	if cl.ConfigFileUsed() == "" {
		if err := cl.SafeWriteConfig(); err != nil {
			return errors.Join(err, errConfigWrite)
		}

		return nil
	}

	if err := cl.WriteConfig(); err != nil {
		return errors.Join(err, errConfigWrite)
	}

	return nil
}

// Read loads the config file, if one exists, layered over the defaults and environment.
func (cl *Loader) Read() (Config, error) {
	if err := cl.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return Config{}, errors.Join(err, errConfigRead)
		}

		slog.Debug("No config file found, using defaults")
	}

	var config Config
	if err := cl.Unmarshal(&config); err != nil {
		return Config{}, errors.Join(err, errConfigRead)
	}

	if config.DatabasePath == "" {
		config.DatabasePath = Path(DefaultDBName)
	}

	if err := config.Validate(); err != nil {
		return Config{}, errors.Join(err, errConfigRead)
	}

	return config, nil
}
