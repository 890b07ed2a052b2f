package alerts

import "time"

// Config holds the defaults every request is merged with. Empty texts, unset
// Toggles and out-of-range widths take the DefaultConfig value; a zero
// duration means none. New normalizes it once and never mutates it
// afterwards.
type Config struct {
	ConfirmButtonText string
	CancelButtonText  string
	ShowCloseButton   Toggle
	AllowOutsideClick Toggle
	AllowEscapeKey    Toggle
	Backdrop          Toggle
	Position          Position
	DialogWidth       int

	// Animation enables the dismissal delays below. When Off, results settle
	// synchronously with the dismissal.
	Animation              Toggle
	DialogCloseDelay       time.Duration
	NotificationCloseDelay time.Duration

	NotificationPosition NotificationPosition
	NotificationDuration time.Duration
	NotificationWidth    int
	// FrameInterval is how often countdown bars redraw.
	FrameInterval time.Duration
}

// DefaultConfig returns the stock defaults.
func DefaultConfig() Config {
	return Config{
		ConfirmButtonText:      "OK",
		CancelButtonText:       "Cancel",
		ShowCloseButton:        On,
		AllowOutsideClick:      On,
		AllowEscapeKey:         On,
		Backdrop:               On,
		Position:               PositionCenter,
		DialogWidth:            48,
		Animation:              On,
		DialogCloseDelay:       300 * time.Millisecond,
		NotificationCloseDelay: 400 * time.Millisecond,
		NotificationPosition:   TopRight,
		NotificationDuration:   4 * time.Second,
		NotificationWidth:      40,
		FrameInterval:          100 * time.Millisecond,
	}
}

// Normalize replaces missing or out-of-range values with safe defaults.
func (c Config) Normalize() Config {
	def := DefaultConfig()
	if c.ConfirmButtonText == "" {
		c.ConfirmButtonText = def.ConfirmButtonText
	}
	if c.CancelButtonText == "" {
		c.CancelButtonText = def.CancelButtonText
	}
	c.ShowCloseButton = c.ShowCloseButton.or(def.ShowCloseButton)
	c.AllowOutsideClick = c.AllowOutsideClick.or(def.AllowOutsideClick)
	c.AllowEscapeKey = c.AllowEscapeKey.or(def.AllowEscapeKey)
	c.Backdrop = c.Backdrop.or(def.Backdrop)
	c.Animation = c.Animation.or(def.Animation)
	c.Position, _ = ParsePosition(string(c.Position))
	if c.DialogWidth < 16 {
		c.DialogWidth = def.DialogWidth
	}
	if c.DialogCloseDelay < 0 {
		c.DialogCloseDelay = 0
	}
	if c.NotificationCloseDelay < 0 {
		c.NotificationCloseDelay = 0
	}
	if !c.Animation.Enabled() {
		c.DialogCloseDelay = 0
		c.NotificationCloseDelay = 0
	}
	c.NotificationPosition, _ = ParseNotificationPosition(string(c.NotificationPosition))
	if c.NotificationDuration < 0 {
		c.NotificationDuration = 0
	}
	if c.NotificationWidth < 20 {
		c.NotificationWidth = def.NotificationWidth
	}
	if c.FrameInterval <= 0 {
		c.FrameInterval = def.FrameInterval
	}
	return c
}
