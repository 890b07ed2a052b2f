package alerts

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/bubbles/key"
)

// DialogID identifies a dialog for the lifetime of a Manager.
type DialogID uint64

// NotificationID is the opaque handle of a toast.
type NotificationID uint64

// DialogClosedMsg is delivered to the host when a dialog's result settles.
type DialogClosedMsg struct {
	ID      DialogID
	Outcome Outcome
	Values  map[string]string // form values; nil for other dialogs
	Value   string            // input/select value
}

// NotificationClosedMsg is delivered to the host when a toast is removed.
type NotificationClosedMsg struct {
	ID NotificationID
}

// dialogActionMsg is a dialog asking the manager to dismiss it.
type dialogActionMsg struct {
	ID      DialogID
	Outcome Outcome
	payload payload
}

// dialogInvalidMsg reports a rejected form submission.
type dialogInvalidMsg struct {
	ID     DialogID
	Errors map[string]string
}

type dialogTimeoutMsg struct{ ID DialogID }

type dialogRemovedMsg struct{ ID DialogID }

type notificationTimeoutMsg struct{ ID NotificationID }

type notificationRemovedMsg struct{ ID NotificationID }

// frameMsg redraws countdown bars.
type frameMsg struct{}

// applyMsg runs fn on the event loop; Remote uses it to hand work to Update.
type applyMsg struct {
	fn func(m *Manager) tea.Cmd
}

// Scheduler delivers msg back to the event loop after d.
type Scheduler interface {
	After(d time.Duration, msg tea.Msg) tea.Cmd
}

type tickScheduler struct{}

func (tickScheduler) After(d time.Duration, msg tea.Msg) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return msg })
}

// DismissKey is the key that dismisses the topmost dialog when it allows it.
const DismissKey = "esc"

// KeyMap is the set of keys a dialog reacts to.
type KeyMap struct {
	Confirm key.Binding
	Next    key.Binding
	Prev    key.Binding
	Left    key.Binding
	Right   key.Binding
}

// DefaultKeyMap returns the stock dialog bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Confirm: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		Next:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next")),
		Prev:    key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous")),
		Left:    key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←", "previous button")),
		Right:   key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→", "next button")),
	}
}
