package ui

import "testing"

func TestFocusManager_Rotation(t *testing.T) {
	f := &FocusManager{Current: "a", Order: []string{"a", "b", "c"}}
	if got := f.Next(); got != "b" {
		t.Errorf("Next = %q", got)
	}
	f.Next()
	if got := f.Next(); got != "a" {
		t.Errorf("Next wrap = %q", got)
	}
	if got := f.Prev(); got != "c" {
		t.Errorf("Prev wrap = %q", got)
	}
}

func TestFocusManager_UnknownCurrent(t *testing.T) {
	f := &FocusManager{Order: []string{"a", "b"}}
	if got := f.Next(); got != "a" {
		t.Errorf("Next from unknown = %q", got)
	}
	f.Current = "zzz"
	if got := f.Prev(); got != "b" {
		t.Errorf("Prev from unknown = %q", got)
	}
}

func TestFocusManager_SetFocus(t *testing.T) {
	f := &FocusManager{Order: []string{"a", "b"}}
	if !f.SetFocus("b") || !f.Is("b") {
		t.Error("SetFocus(b) failed")
	}
	if f.SetFocus("x") {
		t.Error("SetFocus(x) should fail")
	}
	empty := &FocusManager{}
	if empty.Next() != "" {
		t.Error("Next on empty order should return empty")
	}
}
