package demo

import (
	"fmt"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"

	"lucid/internal/events"
	"lucid/internal/ui"
	"lucid/internal/ui/textutil"
)

// maxLogEvents bounds the scrollback kept by the event log.
const maxLogEvents = 500

// EventLog displays the manager's lifecycle events with scrollback.
type EventLog struct {
	events   []events.Event
	viewport viewport.Model
	width    int
	height   int
}

// Ensure EventLog implements View.
var _ ui.View = (*EventLog)(nil)

const (
	defaultLogWidth  = 70
	defaultLogHeight = 12
)

// eventMsg carries one lifecycle event from the emitter channel.
type eventMsg events.Event

// NewEventLog creates an empty event log.
func NewEventLog() *EventLog {
	vp := viewport.New(defaultLogWidth, defaultLogHeight)
	vp.Style = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.AdaptiveColor{Light: "#0d9488", Dark: "86"}).
		Padding(0, 1)
	l := &EventLog{
		viewport: vp,
		width:    defaultLogWidth,
		height:   defaultLogHeight,
	}
	l.refreshContent()
	return l
}

// Init implements View.
func (l *EventLog) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (l *EventLog) Update(msg tea.Msg) (ui.View, tea.Cmd) {
	switch msg := msg.(type) {
	case eventMsg:
		l.Append(events.Event(msg))
		return l, nil
	case tea.WindowSizeMsg:
		l.SetSize(msg.Width, msg.Height)
		return l, nil
	}

	var cmd tea.Cmd
	l.viewport, cmd = l.viewport.Update(msg)
	return l, cmd
}

// Append records ev and scrolls to the newest line.
func (l *EventLog) Append(ev events.Event) {
	l.events = append(l.events, ev)
	if n := len(l.events) - maxLogEvents; n > 0 {
		l.events = l.events[n:]
	}
	l.refreshContent()
}

// Len returns the number of events kept.
func (l *EventLog) Len() int {
	return len(l.events)
}

// SetSize fits the log, border included, into width×height cells.
func (l *EventLog) SetSize(width, height int) {
	l.width = max(width, 20)
	l.height = max(height, 3)
	l.viewport.Width = l.width
	l.viewport.Height = l.height
	l.refreshContent()
}

// View implements View.
func (l *EventLog) View() string {
	return l.viewport.View()
}

// refreshContent rebuilds the viewport content from accumulated events.
func (l *EventLog) refreshContent() {
	inner := l.width - l.viewport.Style.GetHorizontalFrameSize()
	lines := make([]string, 0, len(l.events))
	for _, ev := range l.events {
		// One line per event; long metadata is cut rather than wrapped.
		lines = append(lines, textutil.Truncate(formatEvent(ev), inner))
	}
	content := strings.Join(lines, "\n")
	if content == "" {
		content = "No events yet. Press SPC to open a dialog or a toast."
	}
	l.viewport.SetContent(content)
	l.viewport.GotoBottom()
}

func formatEvent(ev events.Event) string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%s] %s %s #%d %s",
		ev.Timestamp.Format("15:04:05"), kindIcon(ev.Kind), ev.Subject, ev.ID, ev.Kind)
	if ev.Outcome != "" {
		fmt.Fprintf(&b, " (%s)", ev.Outcome)
	}
	if ev.Title != "" {
		fmt.Fprintf(&b, " %q", ev.Title)
	}
	if len(ev.Metadata) > 0 {
		keys := make([]string, 0, len(ev.Metadata))
		for k := range ev.Metadata {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(&b, " %s=%s", k, ev.Metadata[k])
		}
	}
	return b.String()
}

func kindIcon(k events.Kind) string {
	switch k {
	case events.KindShown:
		return "●"
	case events.KindDismissing:
		return "…"
	case events.KindResolved:
		return "✓"
	case events.KindInvalid:
		return "✗"
	default:
		return "•"
	}
}
