package alerts

import (
	tea "github.com/charmbracelet/bubbletea"

	"lucid/internal/theme"
)

// Sender delivers a message into a running program. *tea.Program implements it.
type Sender interface {
	Send(msg tea.Msg)
}

// Remote lets goroutines outside the event loop open and close widgets. Each
// call is handed to the program with Send and applied inside Manager.Update,
// so the event loop remains the only writer of manager state. Results are
// returned immediately as Pending values or handles.
type Remote struct {
	m    *Manager
	send Sender
}

// Remote returns a client that reaches m through s.
func (m *Manager) Remote(s Sender) *Remote {
	return &Remote{m: m, send: s}
}

func (r *Remote) apply(fn func(m *Manager) tea.Cmd) {
	r.send.Send(applyMsg{fn: fn})
}

// Alert opens an alert or confirmation dialog.
func (r *Remote) Alert(req DialogRequest) *Pending[Result] {
	id := r.m.allocDialog()
	p := newPending[Result](id)
	r.apply(func(m *Manager) tea.Cmd { return m.show(id, req, p) })
	return p
}

// Question opens a confirmation dialog with the question icon.
func (r *Remote) Question(req DialogRequest) *Pending[Result] {
	req.Icon = IconQuestion
	req.ShowCancelButton = On
	return r.Alert(req)
}

// Form opens a form dialog.
func (r *Remote) Form(req FormRequest) *Pending[FormResult] {
	id := r.m.allocDialog()
	p := newPending[FormResult](id)
	r.apply(func(m *Manager) tea.Cmd { return m.form(id, req, p) })
	return p
}

// Input opens a single line prompt.
func (r *Remote) Input(req InputRequest) *Pending[InputResult] {
	id := r.m.allocDialog()
	p := newPending[InputResult](id)
	r.apply(func(m *Manager) tea.Cmd { return m.input(id, req, p) })
	return p
}

// Select opens a choice list.
func (r *Remote) Select(req SelectRequest) *Pending[InputResult] {
	id := r.m.allocDialog()
	p := newPending[InputResult](id)
	r.apply(func(m *Manager) tea.Cmd { return m.selectOne(id, req, p) })
	return p
}

// Notify shows a toast. The handle is valid as soon as Notify returns.
func (r *Remote) Notify(req NotificationRequest) NotificationID {
	id := r.m.allocNotification()
	r.apply(func(m *Manager) tea.Cmd { return m.notify(id, req) })
	return id
}

// Close dismisses a dialog.
func (r *Remote) Close(id DialogID, outcome Outcome) {
	r.apply(func(m *Manager) tea.Cmd {
		cmd, _ := m.Close(id, outcome)
		return cmd
	})
}

// CloseNotification dismisses a toast.
func (r *Remote) CloseNotification(id NotificationID) {
	r.apply(func(m *Manager) tea.Cmd {
		cmd, _ := m.CloseNotification(id)
		return cmd
	})
}

// CloseAll cancels every dialog and dismisses every notification.
func (r *Remote) CloseAll() {
	r.apply(func(m *Manager) tea.Cmd { return m.CloseAll() })
}

// SetTheme switches the theme mode.
func (r *Remote) SetTheme(mode theme.Mode) {
	r.apply(func(m *Manager) tea.Cmd {
		m.SetTheme(mode)
		return nil
	})
}
