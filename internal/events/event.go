// Package events defines the lifecycle events emitted by the alert manager.
package events

import "time"

// Kind identifies a lifecycle transition.
type Kind string

const (
	KindShown      Kind = "shown"
	KindDismissing Kind = "dismissing"
	KindResolved   Kind = "resolved"
	KindInvalid    Kind = "invalid" // form confirm rejected by validation
)

// Subject is the widget family an event refers to.
type Subject string

const (
	SubjectDialog       Subject = "dialog"
	SubjectNotification Subject = "notification"
)

// Event describes one step in a dialog or notification lifecycle.
type Event struct {
	Kind      Kind
	Subject   Subject
	ID        uint64
	Outcome   string // set on dismissing/resolved
	Title     string
	Timestamp time.Time
	Metadata  map[string]string // optional: icon, position, field errors
}

// Emitter receives lifecycle events. Implementations must not block.
type Emitter interface {
	Emit(ev Event)
}

// ChanEmitter emits events to a channel.
type ChanEmitter struct {
	Ch chan<- Event
}

// Emit sends the event to the channel (non-blocking; drops if full).
func (e *ChanEmitter) Emit(ev Event) {
	if ev.Timestamp.IsZero() {
		ev.Timestamp = time.Now()
	}
	select {
	case e.Ch <- ev:
	default:
		// Channel full; the event loop must never wait on an observer
	}
}

// Discard drops every event.
type Discard struct{}

// Emit implements Emitter.
func (Discard) Emit(Event) {}
