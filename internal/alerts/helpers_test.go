package alerts

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"lucid/internal/theme"
)

type scheduled struct {
	d   time.Duration
	msg tea.Msg
}

// fakeScheduler records timers instead of starting them; tests fire them by hand.
type fakeScheduler struct {
	timers []scheduled
}

func (f *fakeScheduler) After(d time.Duration, msg tea.Msg) tea.Cmd {
	f.timers = append(f.timers, scheduled{d: d, msg: msg})
	return nil
}

func (f *fakeScheduler) find(match func(tea.Msg) bool) (scheduled, bool) {
	for _, s := range f.timers {
		if match(s.msg) {
			return s, true
		}
	}
	return scheduled{}, false
}

// fire delivers every pending timer matching match and returns the messages
// the manager handed back to the host.
func (f *fakeScheduler) fire(m *Manager, match func(tea.Msg) bool) []tea.Msg {
	var due, keep []scheduled
	for _, s := range f.timers {
		if match(s.msg) {
			due = append(due, s)
		} else {
			keep = append(keep, s)
		}
	}
	f.timers = keep
	var out []tea.Msg
	for _, s := range due {
		out = append(out, send(m, s.msg)...)
	}
	return out
}

func msgIs[T any](msg tea.Msg) bool {
	_, ok := msg.(T)
	return ok
}

func anyRemoval(msg tea.Msg) bool {
	return msgIs[dialogRemovedMsg](msg) || msgIs[notificationRemovedMsg](msg)
}

type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time { return c.t }

func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestManager(t *testing.T, cfg Config, opts ...Option) (*Manager, *fakeScheduler) {
	t.Helper()
	sched := &fakeScheduler{}
	clock := &fakeClock{t: time.Date(2026, 1, 2, 15, 4, 5, 0, time.UTC)}
	opts = append([]Option{
		WithScheduler(sched),
		WithClock(clock.Now),
		WithTheme(theme.NewController(theme.ModeLight, nil)),
	}, opts...)
	m := New(cfg, opts...)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return m, sched
}

func noAnimation() Config {
	cfg := DefaultConfig()
	cfg.Animation = Off
	return cfg
}

// drain runs cmd and feeds the resulting messages back into m until nothing
// is left. Messages m does not consume are returned.
func drain(m *Manager, cmd tea.Cmd) []tea.Msg {
	var out []tea.Msg
	queue := []tea.Cmd{cmd}
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		if c == nil {
			continue
		}
		msg := c()
		if batch, ok := msg.(tea.BatchMsg); ok {
			queue = append(queue, batch...)
			continue
		}
		if msg == nil {
			continue
		}
		next, consumed := m.Update(msg)
		if !consumed {
			out = append(out, msg)
		}
		queue = append(queue, next)
	}
	return out
}

// send delivers msg to m and drains the result.
func send(m *Manager, msg tea.Msg) []tea.Msg {
	cmd, _ := m.Update(msg)
	return drain(m, cmd)
}

func press(k tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: k}
}

func typeText(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func click(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func screen(w, h int) string {
	line := strings.Repeat(".", w)
	lines := make([]string, h)
	for i := range lines {
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}
