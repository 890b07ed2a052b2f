package ui

import tea "github.com/charmbracelet/bubbletea"

// Overlay is a modal view on the stack.
type Overlay struct {
	ID      uint64
	View    View
	Dismiss string // Key that dismisses (e.g. "esc"); empty means no key dismisses it
}

// IsDismissKey returns true if the given key string should dismiss this overlay.
func (o *Overlay) IsDismissKey(key string) bool {
	return o.Dismiss != "" && key == o.Dismiss
}

// OverlayStack keeps overlays in the order they were opened (topmost receives input first).
// Ids are unique within a stack; removing an id that is absent is a no-op.
type OverlayStack struct {
	Stack []Overlay
}

// Push adds an overlay to the top of the stack.
func (s *OverlayStack) Push(o Overlay) {
	s.Stack = append(s.Stack, o)
}

// Peek returns the top overlay without removing it.
func (s *OverlayStack) Peek() (Overlay, bool) {
	if len(s.Stack) == 0 {
		return Overlay{}, false
	}
	return s.Stack[len(s.Stack)-1], true
}

// Len returns the number of overlays in the stack.
func (s *OverlayStack) Len() int {
	return len(s.Stack)
}

// Contains reports whether an overlay with id is on the stack.
func (s *OverlayStack) Contains(id uint64) bool {
	return s.index(id) >= 0
}

// Get returns the overlay with id.
func (s *OverlayStack) Get(id uint64) (Overlay, bool) {
	i := s.index(id)
	if i < 0 {
		return Overlay{}, false
	}
	return s.Stack[i], true
}

// Remove deletes the overlay with id wherever it sits, preserving the order of the rest.
func (s *OverlayStack) Remove(id uint64) (Overlay, bool) {
	i := s.index(id)
	if i < 0 {
		return Overlay{}, false
	}
	o := s.Stack[i]
	s.Stack = append(s.Stack[:i:i], s.Stack[i+1:]...)
	return o, true
}

// Snapshot returns a copy of the stack, bottom first. Later mutations of the
// stack do not affect the returned slice.
func (s *OverlayStack) Snapshot() []Overlay {
	out := make([]Overlay, len(s.Stack))
	copy(out, s.Stack)
	return out
}

// UpdateTop passes msg to the top overlay's Update and replaces its View with the result.
// Returns the cmd from the overlay's Update. Caller must run the cmd.
func (s *OverlayStack) UpdateTop(msg tea.Msg) (tea.Cmd, bool) {
	if len(s.Stack) == 0 {
		return nil, false
	}
	top := &s.Stack[len(s.Stack)-1]
	newView, cmd := top.View.Update(msg)
	top.View = newView
	return cmd, true
}

func (s *OverlayStack) index(id uint64) int {
	for i := range s.Stack {
		if s.Stack[i].ID == id {
			return i
		}
	}
	return -1
}
