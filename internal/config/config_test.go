package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lucid/internal/alerts"
	"lucid/internal/theme"
)

func TestLoad_MissingFileIsDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	f, path, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "config.toml", filepath.Base(path))
	assert.Equal(t, "lucid", filepath.Base(filepath.Dir(path)))
	assert.Equal(t, alerts.DefaultConfig(), f.Alerts())
	mode, ok := f.ThemeMode()
	assert.True(t, ok)
	assert.Equal(t, theme.ModeAuto, mode)
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
theme = "dark"
theme_watch_interval = "5s"

[dialogs]
confirm_button_text = "Yes"
allow_outside_click = false
position = "top"
width = 60

[notifications]
position = "bottom-left"
duration = "1500ms"

[animation]
dialog_close_delay = "150ms"
`), 0o644))

	f, got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, path, got)

	cfg := f.Alerts()
	assert.Equal(t, "Yes", cfg.ConfirmButtonText)
	assert.Equal(t, "Cancel", cfg.CancelButtonText)
	assert.Equal(t, alerts.Off, cfg.AllowOutsideClick)
	assert.Equal(t, alerts.On, cfg.AllowEscapeKey)
	assert.Equal(t, alerts.PositionTop, cfg.Position)
	assert.Equal(t, 60, cfg.DialogWidth)
	assert.Equal(t, alerts.BottomLeft, cfg.NotificationPosition)
	assert.Equal(t, 1500*time.Millisecond, cfg.NotificationDuration)
	assert.Equal(t, 150*time.Millisecond, cfg.DialogCloseDelay)
	assert.Equal(t, 400*time.Millisecond, cfg.NotificationCloseDelay)

	mode, ok := f.ThemeMode()
	assert.True(t, ok)
	assert.Equal(t, theme.ModeDark, mode)
	assert.Equal(t, 5*time.Second, f.WatchInterval())
}

func TestLoad_UnknownValuesFallBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
theme = "sepia"
[dialogs]
position = "left"
[notifications]
position = "middle"
[animation]
enabled = false
`), 0o644))

	f, _, err := Load(path)
	require.NoError(t, err)
	cfg := f.Alerts()
	assert.Equal(t, alerts.PositionCenter, cfg.Position)
	assert.Equal(t, alerts.TopRight, cfg.NotificationPosition)
	assert.Equal(t, alerts.Off, cfg.Animation)
	assert.Zero(t, cfg.DialogCloseDelay)
	assert.Zero(t, cfg.NotificationCloseDelay)

	mode, ok := f.ThemeMode()
	assert.False(t, ok)
	assert.Equal(t, theme.ModeAuto, mode)
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()

	bad := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte("theme = [unterminated"), 0o644))
	_, _, err := Load(bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config: parse")

	badDuration := filepath.Join(dir, "duration.toml")
	require.NoError(t, os.WriteFile(badDuration, []byte("[notifications]\nduration = \"soon\"\n"), 0o644))
	_, _, err = Load(badDuration)
	require.Error(t, err)
}

func TestSaveAndLoadDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	require.NoError(t, Save(path, Defaults()))

	f, _, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, alerts.DefaultConfig(), f.Alerts())
	assert.Equal(t, "auto", f.Theme)
	assert.Zero(t, f.WatchInterval())
}
