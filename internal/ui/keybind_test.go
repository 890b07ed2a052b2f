package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func press(s string) tea.KeyMsg {
	switch s {
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// tag returns a command producing its own name so tests can tell which
// binding fired.
func tag(name string) tea.Cmd {
	return func() tea.Msg { return name }
}

func fired(t *testing.T, cmd tea.Cmd) string {
	t.Helper()
	require.NotNil(t, cmd)
	name, ok := cmd().(string)
	require.True(t, ok)
	return name
}

func TestKeybindRegistry_Canonical(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("space  n s", tag("notify"))
	reg.Bind("j", nil)

	assert.Equal(t, "notify", fired(t, reg.Lookup("SPC n s")))
	assert.Equal(t, "notify", fired(t, reg.Lookup(" SPC   n s ")))
	assert.Nil(t, reg.Lookup("j"))
	assert.Nil(t, reg.Lookup("SPC n"))
	assert.True(t, reg.HasPrefix("SPC n"))
	assert.True(t, reg.HasPrefix("SPC"))
	assert.False(t, reg.HasPrefix("SPC n s"))
	assert.Equal(t, map[string]string{"SPC n s": "SPC n s"}, reg.Hints())
}

func TestKeyHandler_Sequences(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("q", tag("quit"))
	reg.Bind("SPC c", tag("close"))
	reg.Bind("SPC n s", tag("success"))
	reg.Bind("SPC n e", tag("error"))

	tests := []struct {
		name     string
		keys     []string
		want     string
		consumed bool
		pending  bool
	}{
		{name: "single key", keys: []string{"q"}, want: "quit", consumed: true},
		{name: "unbound key falls through", keys: []string{"x"}},
		{name: "esc outside a sequence falls through", keys: []string{"esc"}},
		{name: "leader waits", keys: []string{" "}, consumed: true, pending: true},
		{name: "two key sequence", keys: []string{" ", "c"}, want: "close", consumed: true},
		{name: "three key sequence", keys: []string{" ", "n", "e"}, want: "error", consumed: true},
		{name: "partial sequence waits", keys: []string{" ", "n"}, consumed: true, pending: true},
		{name: "esc cancels", keys: []string{" ", "n", "esc"}, consumed: true},
		{name: "unknown key abandons the sequence", keys: []string{" ", "z"}, consumed: true},
		{name: "bound single key is swallowed inside a sequence", keys: []string{" ", "q"}, consumed: true},
		{name: "second leader restarts", keys: []string{" ", "n", " ", "c"}, want: "close", consumed: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewKeyHandler(reg)
			var consumed bool
			var cmd tea.Cmd
			for _, k := range tt.keys {
				consumed, cmd = h.Handle(press(k))
			}
			assert.Equal(t, tt.consumed, consumed)
			assert.Equal(t, tt.pending, h.Pending())
			if tt.want == "" {
				assert.Nil(t, cmd)
			} else {
				assert.Equal(t, tt.want, fired(t, cmd))
			}
			if !tt.pending {
				assert.Empty(t, h.CurrentSeq())
			}
		})
	}
}

func TestKeyHandler_CurrentSeq(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("SPC n s", tag("success"))
	h := NewKeyHandler(reg)

	h.Handle(press(" "))
	assert.Empty(t, h.CurrentSeq(), "the bare leader has no submenu yet")
	h.Handle(press("n"))
	assert.Equal(t, "SPC n", h.CurrentSeq())
}

func TestKeybindRegistry_LeaderHints(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.BindWithDesc("SPC a a", tag("alert"), "alert")
	reg.BindWithDesc("SPC a q", tag("question"), "question")
	reg.BindWithDesc("SPC n s", tag("success"), "success toast")
	reg.BindWithDesc("SPC c", tag("close"), "close all")
	reg.Bind("SPC q", tag("quit"))
	reg.Group("SPC a", "Dialog")

	assert.Equal(t, map[string]string{
		"a": "Dialog",
		"n": "n…",
		"c": "close all",
		"q": "SPC q",
	}, reg.LeaderHints(""))
	assert.Equal(t, map[string]string{
		"a": "alert",
		"q": "question",
	}, reg.LeaderHints("SPC a"))
}

func TestKeyMap_ShortHelpIsSorted(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.BindWithDesc("SPC q", tag("quit"), "quit")
	reg.BindWithDesc("SPC c", tag("close"), "close all")
	h := NewKeyHandler(reg)
	h.Handle(press(" "))

	var got []string
	for _, b := range NewKeyMap(h).ShortHelp() {
		got = append(got, b.Help().Key+"="+b.Help().Desc)
	}
	assert.Equal(t, []string{"c=close all", "q=quit", "esc=cancel"}, got)
	assert.Len(t, NewKeyMap(h).FullHelp(), 1)
	assert.Nil(t, NewKeyMap(nil).FullHelp())
}

func TestRenderKeybindHelp(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.BindWithDesc("SPC c", tag("close"), "close all")
	h := NewKeyHandler(reg)

	assert.Empty(t, RenderKeybindHelp(h))
	h.Handle(press(" "))
	out := RenderKeybindHelp(h)
	assert.True(t, strings.Contains(out, Leader))
	assert.Contains(t, out, "close all")
	assert.Contains(t, out, "cancel")
}
