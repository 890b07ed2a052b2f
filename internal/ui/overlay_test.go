package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

type stubView struct {
	name    string
	updates int
}

func (v *stubView) Init() tea.Cmd { return nil }
func (v *stubView) Update(tea.Msg) (View, tea.Cmd) {
	v.updates++
	return v, nil
}
func (v *stubView) View() string { return v.name }

func TestOverlayStack_PushPeek(t *testing.T) {
	var s OverlayStack
	s.Push(Overlay{ID: 1, View: &stubView{name: "a"}, Dismiss: "esc"})
	s.Push(Overlay{ID: 2, View: &stubView{name: "b"}})

	top, ok := s.Peek()
	if !ok || top.ID != 2 {
		t.Fatalf("Peek: got %v %v", top.ID, ok)
	}
	if s.Len() != 2 {
		t.Errorf("Len = %d", s.Len())
	}
	s.Remove(2)
	if top, _ := s.Peek(); top.ID != 1 {
		t.Errorf("Peek after Remove: got %d", top.ID)
	}
	s.Remove(1)
	if _, ok := s.Peek(); ok {
		t.Error("Peek empty: expected !ok")
	}
}

func TestOverlayStack_RemoveMiddle(t *testing.T) {
	var s OverlayStack
	for id := uint64(1); id <= 3; id++ {
		s.Push(Overlay{ID: id})
	}
	if _, ok := s.Remove(2); !ok {
		t.Fatal("Remove(2): expected ok")
	}
	if _, ok := s.Remove(2); ok {
		t.Error("Remove(2) twice: expected no-op")
	}
	if s.Contains(2) {
		t.Error("expected 2 to be gone")
	}
	if s.Stack[0].ID != 1 || s.Stack[1].ID != 3 {
		t.Errorf("order not preserved: %+v", s.Stack)
	}
}

func TestOverlayStack_SnapshotIsIndependent(t *testing.T) {
	var s OverlayStack
	s.Push(Overlay{ID: 1})
	s.Push(Overlay{ID: 2})
	snap := s.Snapshot()
	s.Remove(1)
	s.Push(Overlay{ID: 3})
	if len(snap) != 2 || snap[0].ID != 1 || snap[1].ID != 2 {
		t.Errorf("snapshot mutated: %+v", snap)
	}
}

func TestOverlayStack_UpdateTop(t *testing.T) {
	var s OverlayStack
	if _, ok := s.UpdateTop(nil); ok {
		t.Error("UpdateTop on empty: expected !ok")
	}
	bottom, top := &stubView{}, &stubView{}
	s.Push(Overlay{ID: 1, View: bottom})
	s.Push(Overlay{ID: 2, View: top})
	s.UpdateTop(nil)
	if top.updates != 1 || bottom.updates != 0 {
		t.Errorf("updates: top=%d bottom=%d", top.updates, bottom.updates)
	}
}

func TestOverlay_IsDismissKey(t *testing.T) {
	o := Overlay{Dismiss: "esc"}
	if !o.IsDismissKey("esc") || o.IsDismissKey("q") {
		t.Error("IsDismissKey mismatch")
	}
	none := Overlay{}
	if none.IsDismissKey("") || none.IsDismissKey("esc") {
		t.Error("empty Dismiss must never match")
	}
}
