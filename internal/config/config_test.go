package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/adrg/xdg"
	"github.com/leighmacdonald/zodiac-tui/internal/config"
	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	xdg.Reload()
	t.Cleanup(xdg.Reload)

	return dir
}

func TestLoaderDefaults(t *testing.T) {
	home := isolate(t)
	loader := config.NewLoader(nil, t.TempDir())

	conf, err := loader.Read()
	require.NoError(t, err)
	require.Equal(t, "info", conf.LogLevel)
	require.Equal(t, 60, conf.FPS)
	require.Equal(t, "title", conf.DefaultPanel)
	require.InDelta(t, 0.1, conf.FadeThreshold, 0.0001)
	require.Equal(t, 800*time.Millisecond, conf.Transition())
	require.Equal(t, 100*time.Millisecond, conf.Stagger())
	require.True(t, conf.HistoryEnabled)
	require.Equal(t, filepath.Join(home, config.ConfigDirName, config.DefaultDBName), conf.DatabasePath)
}

func TestLoaderFileAndEnv(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	body := []byte("fps: 30\ndefault_panel: quote\nstart_sign: leo\ndatabase_path: /tmp/zodiac-test.db\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.DefaultConfigName+".yaml"), body, 0o600))
	t.Setenv("ZODIAC_STAGGER_MS", "250")

	loader := config.NewLoader(nil, dir)
	conf, err := loader.Read()
	require.NoError(t, err)
	require.Equal(t, 30, conf.FPS)
	require.Equal(t, "quote", conf.DefaultPanel)
	require.Equal(t, "leo", conf.StartSign)
	require.Equal(t, 250, conf.StaggerMs)
	require.Equal(t, "/tmp/zodiac-test.db", conf.DatabasePath)
	require.Equal(t, time.Second/30, conf.FrameInterval())
}

func TestLoaderRejectsInvalid(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.DefaultConfigName+".yaml"),
		[]byte("default_panel: footer\nfps: 0\n"), 0o600))

	_, err := config.NewLoader(nil, dir).Read()
	require.ErrorIs(t, err, config.ErrConfigInvalid)
}

func TestLoaderWrite(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	loader := config.NewLoader(nil, dir)
	conf, err := loader.Read()
	require.NoError(t, err)

	conf.FPS = 24
	conf.LogLevel = "debug"
	require.NoError(t, loader.Write(conf))

	reread, errRead := config.NewLoader(nil, dir).Read()
	require.NoError(t, errRead)
	require.Equal(t, 24, reread.FPS)
	require.Equal(t, "debug", reread.LogLevel)
}

func TestValidate(t *testing.T) {
	valid := config.Config{FPS: 60, DefaultPanel: "story", LogLevel: "warn", FadeThreshold: 0.5}
	require.NoError(t, valid.Validate())

	for name, mutate := range map[string]func(*config.Config){
		"fps":       func(c *config.Config) { c.FPS = 500 },
		"threshold": func(c *config.Config) { c.FadeThreshold = 1.5 },
		"margin":    func(c *config.Config) { c.FadeMarginRows = -1 },
		"stagger":   func(c *config.Config) { c.StaggerMs = -1 },
		"panel":     func(c *config.Config) { c.DefaultPanel = "" },
		"level":     func(c *config.Config) { c.LogLevel = "loud" },
	} {
		conf := valid
		mutate(&conf)
		require.ErrorIs(t, conf.Validate(), config.ErrConfigInvalid, name)
	}
}

func TestParseLevel(t *testing.T) {
	level, silent, err := config.ParseLevel("TRACE")
	require.NoError(t, err)
	require.False(t, silent)
	require.Equal(t, config.LevelTrace, level)

	_, silent, err = config.ParseLevel("silent")
	require.NoError(t, err)
	require.True(t, silent)

	level, _, err = config.ParseLevel("")
	require.NoError(t, err)
	require.Equal(t, slog.LevelInfo, level)
}

func TestLoggerInit(t *testing.T) {
	previous := slog.Default()
	t.Cleanup(func() { slog.SetDefault(previous) })

	logPath := filepath.Join(t.TempDir(), config.DefaultLogName)
	closer, err := config.LoggerInit(logPath, "debug")
	require.NoError(t, err)

	slog.Debug("hello from test")
	require.NoError(t, closer.Close())

	body, errRead := os.ReadFile(logPath)
	require.NoError(t, errRead)
	require.Contains(t, string(body), "hello from test")

	_, errLevel := config.LoggerInit(logPath, "loud")
	require.Error(t, errLevel)
}
