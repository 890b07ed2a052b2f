// Package config reads the lucid configuration file.
//
// The file is TOML and every key is optional; missing keys keep the values of
// alerts.DefaultConfig. A missing file is not an error.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"

	"lucid/internal/alerts"
	"lucid/internal/theme"
)

// File mirrors the configuration file.
type File struct {
	Theme              string    `toml:"theme,omitempty"`
	ThemeWatchInterval *Duration `toml:"theme_watch_interval,omitempty"`

	Dialogs       Dialogs       `toml:"dialogs"`
	Notifications Notifications `toml:"notifications"`
	Animation     Animation     `toml:"animation"`
}

// Dialogs holds the dialog defaults.
type Dialogs struct {
	ConfirmButtonText string `toml:"confirm_button_text,omitempty"`
	CancelButtonText  string `toml:"cancel_button_text,omitempty"`
	ShowCloseButton   *bool  `toml:"show_close_button,omitempty"`
	AllowOutsideClick *bool  `toml:"allow_outside_click,omitempty"`
	AllowEscapeKey    *bool  `toml:"allow_escape_key,omitempty"`
	Backdrop          *bool  `toml:"backdrop,omitempty"`
	Position          string `toml:"position,omitempty"`
	Width             int    `toml:"width,omitempty"`
}

// Notifications holds the toast defaults.
type Notifications struct {
	Position string    `toml:"position,omitempty"`
	Duration *Duration `toml:"duration,omitempty"`
	Width    int       `toml:"width,omitempty"`
}

// Animation holds the dismissal timing.
type Animation struct {
	Enabled                *bool     `toml:"enabled,omitempty"`
	DialogCloseDelay       *Duration `toml:"dialog_close_delay,omitempty"`
	NotificationCloseDelay *Duration `toml:"notification_close_delay,omitempty"`
	FrameInterval          *Duration `toml:"frame_interval,omitempty"`
}

// Duration is a time.Duration written as a string such as "300ms".
type Duration struct {
	time.Duration
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(b []byte) error {
	v, err := time.ParseDuration(string(b))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// DefaultPath returns $XDG_CONFIG_HOME/lucid/config.toml, falling back to the
// platform's user config directory.
func DefaultPath() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		var err error
		configHome, err = os.UserConfigDir()
		if err != nil {
			return "", err
		}
	}
	return filepath.Join(configHome, "lucid", "config.toml"), nil
}

// Load reads the file at path, or at DefaultPath when path is empty. It
// returns the path it used. A missing file yields a zero File.
func Load(path string) (File, string, error) {
	if path == "" {
		var err error
		path, err = DefaultPath()
		if err != nil {
			return File{}, "", fmt.Errorf("config: locate: %w", err)
		}
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return File{}, path, nil
	}
	if err != nil {
		return File{}, path, fmt.Errorf("config: read %s: %w", path, err)
	}
	var f File
	if err := toml.Unmarshal(data, &f); err != nil {
		return File{}, path, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return f, path, nil
}

// Save writes f to path, creating the directory if needed.
func Save(path string, f File) error {
	data, err := toml.Marshal(f)
	if err != nil {
		return fmt.Errorf("config: encode: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("config: create dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}
	return nil
}

// Defaults returns a File with every key set to the built-in default.
func Defaults() File {
	def := alerts.DefaultConfig()
	return File{
		Theme: string(theme.ModeAuto),
		Dialogs: Dialogs{
			ConfirmButtonText: def.ConfirmButtonText,
			CancelButtonText:  def.CancelButtonText,
			ShowCloseButton:   enabled(def.ShowCloseButton),
			AllowOutsideClick: enabled(def.AllowOutsideClick),
			AllowEscapeKey:    enabled(def.AllowEscapeKey),
			Backdrop:          enabled(def.Backdrop),
			Position:          string(def.Position),
			Width:             def.DialogWidth,
		},
		Notifications: Notifications{
			Position: string(def.NotificationPosition),
			Duration: &Duration{def.NotificationDuration},
			Width:    def.NotificationWidth,
		},
		Animation: Animation{
			Enabled:                enabled(def.Animation),
			DialogCloseDelay:       &Duration{def.DialogCloseDelay},
			NotificationCloseDelay: &Duration{def.NotificationCloseDelay},
			FrameInterval:          &Duration{def.FrameInterval},
		},
	}
}

// Alerts overlays the file on alerts.DefaultConfig and normalizes the result.
func (f File) Alerts() alerts.Config {
	cfg := alerts.DefaultConfig()

	d := f.Dialogs
	if d.ConfirmButtonText != "" {
		cfg.ConfirmButtonText = d.ConfirmButtonText
	}
	if d.CancelButtonText != "" {
		cfg.CancelButtonText = d.CancelButtonText
	}
	setToggle(&cfg.ShowCloseButton, d.ShowCloseButton)
	setToggle(&cfg.AllowOutsideClick, d.AllowOutsideClick)
	setToggle(&cfg.AllowEscapeKey, d.AllowEscapeKey)
	setToggle(&cfg.Backdrop, d.Backdrop)
	if d.Position != "" {
		cfg.Position = alerts.Position(d.Position)
	}
	if d.Width != 0 {
		cfg.DialogWidth = d.Width
	}

	n := f.Notifications
	if n.Position != "" {
		cfg.NotificationPosition = alerts.NotificationPosition(n.Position)
	}
	setDuration(&cfg.NotificationDuration, n.Duration)
	if n.Width != 0 {
		cfg.NotificationWidth = n.Width
	}

	a := f.Animation
	setToggle(&cfg.Animation, a.Enabled)
	setDuration(&cfg.DialogCloseDelay, a.DialogCloseDelay)
	setDuration(&cfg.NotificationCloseDelay, a.NotificationCloseDelay)
	setDuration(&cfg.FrameInterval, a.FrameInterval)

	return cfg.Normalize()
}

// ThemeMode returns the configured theme mode. ok is false when the file names
// an unknown mode; the mode is then ModeAuto.
func (f File) ThemeMode() (mode theme.Mode, ok bool) {
	if f.Theme == "" {
		return theme.ModeAuto, true
	}
	return theme.ParseMode(f.Theme)
}

// WatchInterval is how often to poll the system theme preference; 0 disables
// polling.
func (f File) WatchInterval() time.Duration {
	if f.ThemeWatchInterval == nil || f.ThemeWatchInterval.Duration < 0 {
		return 0
	}
	return f.ThemeWatchInterval.Duration
}

func setToggle(dst *alerts.Toggle, v *bool) {
	if v != nil {
		*dst = alerts.ToggleOf(*v)
	}
}

func enabled(t alerts.Toggle) *bool {
	b := t.Enabled()
	return &b
}

func setDuration(dst *time.Duration, v *Duration) {
	if v != nil {
		*dst = v.Duration
	}
}
