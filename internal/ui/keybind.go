package ui

import (
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Leader is the canonical name of the space bar in key sequences.
const Leader = "SPC"

type binding struct {
	cmd  tea.Cmd
	desc string
}

// KeybindRegistry maps key sequences such as "q", "ctrl+c" or "SPC n s" to
// commands. Sequence parts are separated by spaces; a literal space key is
// written as SPC.
type KeybindRegistry struct {
	bindings map[string]binding
	groups   map[string]string
}

func NewKeybindRegistry() *KeybindRegistry {
	return &KeybindRegistry{
		bindings: map[string]binding{},
		groups:   map[string]string{},
	}
}

// Bind registers cmd for seq, replacing any earlier binding.
func (r *KeybindRegistry) Bind(seq string, cmd tea.Cmd) {
	r.BindWithDesc(seq, cmd, "")
}

// BindWithDesc is Bind with a label for the leader hint bar.
func (r *KeybindRegistry) BindWithDesc(seq string, cmd tea.Cmd, desc string) {
	r.bindings[canonical(seq)] = binding{cmd: cmd, desc: desc}
}

// Group names the submenu reached through prefix, e.g. Group("SPC n", "Notify").
func (r *KeybindRegistry) Group(prefix, label string) {
	r.groups[canonical(prefix)] = label
}

// Lookup returns the command bound to seq, or nil.
func (r *KeybindRegistry) Lookup(seq string) tea.Cmd {
	return r.bindings[canonical(seq)].cmd
}

// HasPrefix reports whether some binding extends seq by at least one key.
func (r *KeybindRegistry) HasPrefix(seq string) bool {
	stem := canonical(seq) + " "
	for s := range r.bindings {
		if strings.HasPrefix(s, stem) {
			return true
		}
	}
	return false
}

// Hints lists every bound sequence with its label, falling back to the
// sequence itself.
func (r *KeybindRegistry) Hints() map[string]string {
	out := map[string]string{}
	for s, b := range r.bindings {
		if b.cmd != nil {
			out[s] = labelOr(b.desc, s)
		}
	}
	return out
}

// LeaderHints lists the keys that may follow seq (Leader when empty). A key
// leading into a submenu is labelled with its group name, or "key…".
func (r *KeybindRegistry) LeaderHints(seq string) map[string]string {
	if seq == "" {
		seq = Leader
	}
	stem := canonical(seq) + " "
	out := map[string]string{}
	for s, b := range r.bindings {
		if b.cmd == nil || !strings.HasPrefix(s, stem) {
			continue
		}
		rest := strings.Fields(strings.TrimPrefix(s, stem))
		if len(rest) == 0 {
			continue
		}
		next := rest[0]
		if len(rest) > 1 {
			out[next] = labelOr(r.groups[stem+next], next+"…")
			continue
		}
		if _, sub := out[next]; !sub {
			out[next] = labelOr(b.desc, s)
		}
	}
	return out
}

func labelOr(label, fallback string) string {
	if label == "" {
		return fallback
	}
	return label
}

// canonical rewrites a sequence into registry form: single spaces between
// parts and SPC for the space bar.
func canonical(seq string) string {
	parts := strings.Fields(seq)
	for i := range parts {
		parts[i] = part(parts[i])
	}
	return strings.Join(parts, " ")
}

// part maps a tea.KeyMsg string onto a sequence part. Bubble Tea reports
// the space bar as " ".
func part(k string) string {
	switch k {
	case " ", "space":
		return Leader
	}
	return k
}

// KeyHandler feeds key presses through a KeybindRegistry, tracking the
// partial sequence typed after the leader.
type KeyHandler struct {
	Registry *KeybindRegistry
	typed    []string
}

func NewKeyHandler(reg *KeybindRegistry) *KeyHandler {
	return &KeyHandler{Registry: reg}
}

// Pending reports whether the leader was pressed and a sequence is in progress.
func (h *KeyHandler) Pending() bool { return len(h.typed) > 0 }

// CurrentSeq is the sequence typed after the leader, e.g. "SPC n". It is
// empty until at least one key follows the leader.
func (h *KeyHandler) CurrentSeq() string {
	if len(h.typed) < 2 {
		return ""
	}
	return strings.Join(h.typed, " ")
}

func (h *KeyHandler) reset() { h.typed = nil }

// Handle consumes msg when it starts, extends, cancels or completes a
// binding. Keys nothing is bound to are left for the caller.
func (h *KeyHandler) Handle(msg tea.KeyMsg) (consumed bool, cmd tea.Cmd) {
	k := part(msg.String())

	if !h.Pending() {
		switch k {
		case Leader:
			h.typed = []string{Leader}
			return true, nil
		case "esc":
			return false, nil
		}
		cmd = h.Registry.Lookup(k)
		return cmd != nil, cmd
	}

	if k == "esc" {
		h.reset()
		return true, nil
	}
	if k == Leader {
		// A second leader restarts the sequence.
		h.typed = []string{Leader}
		return true, nil
	}

	h.typed = append(h.typed, k)
	seq := strings.Join(h.typed, " ")
	if cmd = h.Registry.Lookup(seq); cmd != nil || !h.Registry.HasPrefix(seq) {
		h.reset()
	}
	return true, cmd
}

// KeyMap adapts a KeyHandler to help.KeyMap so bubbles/help can render the
// keys available at the current point of a leader sequence.
type KeyMap struct {
	handler *KeyHandler
}

func NewKeyMap(h *KeyHandler) help.KeyMap {
	return &KeyMap{handler: h}
}

func (km *KeyMap) ShortHelp() []key.Binding {
	if km.handler == nil || km.handler.Registry == nil {
		return nil
	}
	hints := km.handler.Registry.LeaderHints(km.handler.CurrentSeq())
	if len(hints) == 0 {
		return nil
	}
	ks := make([]string, 0, len(hints))
	for k := range hints {
		ks = append(ks, k)
	}
	sort.Strings(ks)

	out := make([]key.Binding, 0, len(ks)+1)
	for _, k := range ks {
		out = append(out, key.NewBinding(key.WithKeys(k), key.WithHelp(k, hints[k])))
	}
	return append(out, key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")))
}

func (km *KeyMap) FullHelp() [][]key.Binding {
	if short := km.ShortHelp(); len(short) > 0 {
		return [][]key.Binding{short}
	}
	return nil
}
