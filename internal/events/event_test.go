package events

import (
	"testing"
	"time"
)

func TestKind_Constants(t *testing.T) {
	if KindShown != "shown" {
		t.Errorf("KindShown: expected 'shown', got %q", KindShown)
	}
	if KindDismissing != "dismissing" {
		t.Errorf("KindDismissing: expected 'dismissing', got %q", KindDismissing)
	}
	if KindResolved != "resolved" {
		t.Errorf("KindResolved: expected 'resolved', got %q", KindResolved)
	}
}

func TestChanEmitter_Emit_SetsTimestampWhenZero(t *testing.T) {
	ch := make(chan Event, 1)
	emitter := &ChanEmitter{Ch: ch}

	emitter.Emit(Event{Kind: KindShown, Subject: SubjectDialog, ID: 7})

	got := <-ch
	if got.Timestamp.IsZero() {
		t.Error("Emit: expected timestamp to be set when zero")
	}
	if got.ID != 7 || got.Kind != KindShown {
		t.Errorf("Emit: got ID=%d Kind=%q", got.ID, got.Kind)
	}
}

func TestChanEmitter_Emit_PreservesTimestamp(t *testing.T) {
	ch := make(chan Event, 1)
	emitter := &ChanEmitter{Ch: ch}

	ts := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)
	emitter.Emit(Event{Kind: KindResolved, Timestamp: ts})

	got := <-ch
	if !got.Timestamp.Equal(ts) {
		t.Errorf("Emit: expected preserved timestamp %v, got %v", ts, got.Timestamp)
	}
}

func TestChanEmitter_Emit_DropsWhenFull(t *testing.T) {
	ch := make(chan Event, 1)
	emitter := &ChanEmitter{Ch: ch}

	emitter.Emit(Event{Title: "first"})
	emitter.Emit(Event{Title: "dropped"})

	got := <-ch
	if got.Title != "first" {
		t.Errorf("Emit full: expected 'first', got %q", got.Title)
	}
	select {
	case <-ch:
		t.Error("Emit full: expected dropped event not to be sent")
	default:
	}
}

func TestDiscard_Emit(t *testing.T) {
	var e Emitter = Discard{}
	e.Emit(Event{Kind: KindShown})
}
