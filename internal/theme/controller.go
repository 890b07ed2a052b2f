package theme

import (
	"io"
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Mode selects how the effective theme is chosen.
type Mode string

const (
	ModeLight Mode = "light"
	ModeDark  Mode = "dark"
	ModeAuto  Mode = "auto" // follow the system preference signal
)

// ParseMode maps a mode name to a Mode. ok is false for unknown names, in which
// case ModeAuto is returned.
func ParseMode(s string) (Mode, bool) {
	switch Mode(s) {
	case ModeLight, ModeDark, ModeAuto:
		return Mode(s), true
	}
	return ModeAuto, false
}

// SystemPreferenceMsg reports the system's dark-mode preference. Polled is
// set when the message comes from WatchCmd, so a host re-arms the watch only
// from its own tick.
type SystemPreferenceMsg struct {
	Dark   bool
	Polled bool
}

// Detector reports whether the system currently prefers a dark theme.
type Detector func() bool

// Controller owns the theme mode and the effective theme attribute
// ("light" or "dark"). It is not safe for concurrent use; drive it from the
// Bubble Tea event loop.
type Controller struct {
	mode       Mode
	systemDark bool
	attr       string
	styles     map[string]Styles
	detect     Detector
	logger     *log.Logger
}

// NewController creates a controller in the given mode. The system preference
// starts as light until a SystemPreferenceMsg arrives.
func NewController(mode Mode, logger *log.Logger) *Controller {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	c := &Controller{
		styles: make(map[string]Styles, 2),
		detect: lipgloss.HasDarkBackground,
		logger: logger,
	}
	c.SetMode(mode)
	return c
}

// SetDetector replaces the system preference check used by DetectCmd and WatchCmd.
func (c *Controller) SetDetector(d Detector) {
	if d != nil {
		c.detect = d
	}
}

// SetMode switches the theme mode and re-evaluates the attribute.
// Unknown modes fall back to ModeAuto.
func (c *Controller) SetMode(mode Mode) {
	m, ok := ParseMode(string(mode))
	if !ok {
		c.logger.Printf("theme.SetMode: unknown mode %q, using %q", mode, ModeAuto)
	}
	c.mode = m
	c.update()
}

// Mode returns the configured mode.
func (c *Controller) Mode() Mode {
	return c.mode
}

// Attribute returns the effective theme, "light" or "dark".
func (c *Controller) Attribute() string {
	return c.attr
}

// Dark reports whether the effective theme is dark.
func (c *Controller) Dark() bool {
	return c.attr == string(ModeDark)
}

// Update consumes SystemPreferenceMsg. It returns true when the message was a
// preference signal, whether or not the attribute changed.
func (c *Controller) Update(msg tea.Msg) bool {
	pref, ok := msg.(SystemPreferenceMsg)
	if !ok {
		return false
	}
	c.systemDark = pref.Dark
	c.update()
	return true
}

func (c *Controller) update() {
	switch c.mode {
	case ModeAuto:
		if c.systemDark {
			c.attr = string(ModeDark)
		} else {
			c.attr = string(ModeLight)
		}
	default:
		c.attr = string(c.mode)
	}
}

// Palette returns the palette for the effective theme.
func (c *Controller) Palette() Palette {
	if c.Dark() {
		return Dark
	}
	return Light
}

// Styles returns the styles for the effective theme.
func (c *Controller) Styles() Styles {
	s, ok := c.styles[c.attr]
	if !ok {
		s = NewStyles(c.Palette())
		c.styles[c.attr] = s
	}
	return s
}

// DetectCmd reads the system preference once.
func (c *Controller) DetectCmd() tea.Cmd {
	detect := c.detect
	return func() tea.Msg {
		return SystemPreferenceMsg{Dark: detect()}
	}
}

// WatchCmd reads the system preference after interval. Feed the resulting
// message back through Update and call WatchCmd again to keep polling.
func (c *Controller) WatchCmd(interval time.Duration) tea.Cmd {
	detect := c.detect
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return SystemPreferenceMsg{Dark: detect(), Polled: true}
	})
}
