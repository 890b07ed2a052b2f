package ui

// FocusManager tracks and rotates focus across the controls of a view.
type FocusManager struct {
	Current string   // ID of the focused control
	Order   []string // Tab order for focus rotation
}

// Next advances focus to the next control in order, wrapping around.
// Returns the new current focus ID.
func (f *FocusManager) Next() string {
	return f.step(1)
}

// Prev moves focus to the previous control in order, wrapping around.
func (f *FocusManager) Prev() string {
	return f.step(-1)
}

// SetFocus sets focus to the given control ID.
// Returns true if the ID exists in order.
func (f *FocusManager) SetFocus(id string) bool {
	if f.indexOf(id) < 0 {
		return false
	}
	f.Current = id
	return true
}

// Is reports whether id currently has focus.
func (f *FocusManager) Is(id string) bool {
	return f.Current == id
}

func (f *FocusManager) step(delta int) string {
	n := len(f.Order)
	if n == 0 {
		return ""
	}
	idx := f.indexOf(f.Current)
	if idx < 0 {
		// Unknown current: Next lands on the first control, Prev on the last.
		if delta > 0 {
			idx = -1
		} else {
			idx = 0
		}
	}
	f.Current = f.Order[((idx+delta)%n+n)%n]
	return f.Current
}

func (f *FocusManager) indexOf(id string) int {
	for i, o := range f.Order {
		if o == id {
			return i
		}
	}
	return -1
}
