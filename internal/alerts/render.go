package alerts

import (
	"cmp"
	"slices"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"lucid/internal/theme"
	"lucid/internal/ui"
)

const (
	dialogMargin = 1
	toastMargin  = 1
	toastGap     = 1
)

// View draws the manager's widgets over base, the host's rendered screen.
// Active dialogs with a backdrop dim everything below them; notifications
// are drawn last, above dialogs.
func (m *Manager) View(base string) string {
	w, h := m.screen(base)
	m.drawnW, m.drawnH = w, h
	if m.dialogs.Len() == 0 && len(m.closing) == 0 && len(m.notes) == 0 && len(m.closingNotes) == 0 {
		return base
	}
	s, p := m.theme.Styles(), m.theme.Palette()

	out := base
	for _, d := range m.closing {
		view := d.render(s, p)
		r := m.dialogRect(d, view, w, h)
		out = ui.Composite(out, view, r.X, r.Y)
	}
	for _, ov := range m.dialogs.Snapshot() {
		d := ov.View.(*dialog)
		if d.opts.backdrop {
			out = ui.Dim(out, w, h)
		}
		view := d.render(s, p)
		r := m.dialogRect(d, view, w, h)
		out = ui.Composite(out, view, r.X, r.Y)
	}
	for _, slot := range m.layoutToasts(s, p, w, h) {
		out = ui.Composite(out, slot.view, slot.rect.X, slot.rect.Y)
	}
	return out
}

// screen returns the terminal size, falling back to base's size before the
// first WindowSizeMsg.
func (m *Manager) screen(base string) (w, h int) {
	w, h = m.width, m.height
	if w == 0 {
		w = lipgloss.Width(base)
	}
	if h == 0 {
		h = lipgloss.Height(base)
	}
	return w, h
}

func (m *Manager) dialogRect(d *dialog, view string, w, h int) ui.Rect {
	return ui.Place(w, h, lipgloss.Width(view), lipgloss.Height(view),
		lipgloss.Center, d.opts.position.vertical(), dialogMargin)
}

type toastSlot struct {
	n    *notification
	view string
	rect ui.Rect
}

// layoutToasts stacks every visible notification inside its position's
// container, in creation order.
func (m *Manager) layoutToasts(s theme.Styles, p theme.Palette, w, h int) []toastSlot {
	visible := append(slices.Clone(m.notes), m.closingNotes...)
	if len(visible) == 0 {
		return nil
	}
	slices.SortFunc(visible, func(a, b *notification) int {
		return cmp.Compare(a.id, b.id)
	})

	now := m.now()
	cw := min(m.cfg.NotificationWidth, max(w-2*toastMargin, 1))
	var slots []toastSlot
	for _, pos := range m.containers {
		var column []toastSlot
		total := 0
		for _, n := range visible {
			if n.opts.position != pos {
				continue
			}
			view := n.render(s, p, cw, now)
			if len(column) > 0 {
				total += toastGap
			}
			total += lipgloss.Height(view)
			column = append(column, toastSlot{n: n, view: view})
		}
		if len(column) == 0 {
			continue
		}
		hpos, vpos := pos.anchors()
		box := ui.Place(w, h, cw, total, hpos, vpos, toastMargin)
		y := box.Y
		for i := range column {
			vh := lipgloss.Height(column[i].view)
			column[i].rect = ui.Rect{X: box.X, Y: y, W: cw, H: vh}
			y += vh + toastGap
		}
		slots = append(slots, column...)
	}
	return slots
}

// hitArea is the screen size clicks are tested against: the terminal size,
// or the size View last drew at before the first WindowSizeMsg.
func (m *Manager) hitArea() (w, h int) {
	w, h = m.width, m.height
	if w == 0 {
		w = m.drawnW
	}
	if h == 0 {
		h = m.drawnH
	}
	return w, h
}

// handleMouse routes left clicks: toast close controls first, then the
// topmost dialog. Every mouse event is consumed while a dialog is open.
func (m *Manager) handleMouse(msg tea.MouseMsg) (tea.Cmd, bool) {
	modal := m.dialogs.Len() > 0
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return nil, modal
	}
	s, p := m.theme.Styles(), m.theme.Palette()
	w, h := m.hitArea()

	for _, slot := range m.layoutToasts(s, p, w, h) {
		if slot.n.closing {
			continue
		}
		if x, y, ok := slot.n.closeCell(slot.rect, s); ok && x == msg.X && y == msg.Y {
			cmd, _ := m.CloseNotification(slot.n.id)
			return cmd, true
		}
	}

	top, ok := m.dialogs.Peek()
	if !ok {
		return nil, false
	}
	d := top.View.(*dialog)
	r := m.dialogRect(d, d.render(s, p), w, h)
	if x, y, ok := d.closeCell(r, s); ok && x == msg.X && y == msg.Y {
		return m.dismiss(d.id, d.payload(OutcomeCancelled)), true
	}
	if !r.Contains(msg.X, msg.Y) && d.opts.allowOutsideClick {
		m.logger.Printf("alerts.handleMouse: outside click dismisses dialog %d", d.id)
		return m.dismiss(d.id, d.payload(OutcomeCancelled)), true
	}
	return nil, true
}
