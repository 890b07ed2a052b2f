// Package demo is a host program that exercises every dialog and toast kind
// through leader-key bindings and shows the resulting lifecycle events.
package demo

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"lucid/internal/alerts"
	"lucid/internal/events"
	"lucid/internal/theme"
	"lucid/internal/ui"
)

// showMsg asks the host to open a dialog of the given kind (SPC a <key>).
type showMsg struct {
	kind string
}

// notifyMsg asks the host to raise a toast (SPC n <key>).
type notifyMsg struct {
	typ        alerts.NotificationType
	persistent bool
}

// themeMsg switches the theme mode (SPC t <key>).
type themeMsg struct {
	mode theme.Mode
}

// closeAllMsg dismisses every dialog and toast (SPC c).
type closeAllMsg struct{}

// askRemoteMsg starts a worker that asks a question through Remote (SPC a w).
type askRemoteMsg struct{}

// Dialog kinds opened by showMsg.
const (
	kindAlert    = "alert"
	kindQuestion = "question"
	kindForm     = "form"
	kindInput    = "input"
	kindSelect   = "select"
)

// Options configures the demo host.
type Options struct {
	Manager *alerts.Manager
	// Theme must be the controller the manager was built with.
	Theme *theme.Controller
	// Events is the channel the manager's ChanEmitter writes to; nil disables the log feed.
	Events <-chan events.Event
	// WatchInterval polls the system theme preference; 0 disables polling.
	WatchInterval time.Duration
}

// App is the root model: a header, the lifecycle event log, a status line and
// the leader-key help bar, with the manager's dialogs and toasts drawn on top.
type App struct {
	Alerts     *alerts.Manager
	Theme      *theme.Controller
	KeyHandler *ui.KeyHandler
	Log        *EventLog

	events   <-chan events.Event
	watch    time.Duration
	watching bool // a WatchCmd tick is outstanding
	remote   *alerts.Remote
	width    int
	height   int
	status   string
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// New creates the host with all keybinds registered.
func New(opts Options) *App {
	if opts.Theme == nil {
		opts.Theme = theme.NewController(theme.ModeAuto, nil)
	}
	if opts.Manager == nil {
		opts.Manager = alerts.New(alerts.DefaultConfig(), alerts.WithTheme(opts.Theme))
	}
	reg := ui.NewKeybindRegistry()
	registerKeybinds(reg)
	return &App{
		Alerts:     opts.Manager,
		Theme:      opts.Theme,
		KeyHandler: ui.NewKeyHandler(reg),
		Log:        NewEventLog(),
		events:     opts.Events,
		watch:      opts.WatchInterval,
		status:     "Ready",
	}
}

// Attach enables requests from worker goroutines (SPC a w). s is normally the
// *tea.Program running this model.
func (a *App) Attach(s alerts.Sender) {
	a.remote = a.Alerts.Remote(s)
}

func registerKeybinds(reg *ui.KeybindRegistry) {
	send := func(msg tea.Msg) tea.Cmd {
		return func() tea.Msg { return msg }
	}
	reg.Bind("q", tea.Quit)
	reg.Bind("ctrl+c", tea.Quit)
	reg.BindWithDesc("SPC q", tea.Quit, "Quit")
	reg.BindWithDesc("SPC c", send(closeAllMsg{}), "Close all")

	reg.Group("SPC a", "Dialog")
	reg.BindWithDesc("SPC a a", send(showMsg{kind: kindAlert}), "Alert")
	reg.BindWithDesc("SPC a q", send(showMsg{kind: kindQuestion}), "Question")
	reg.BindWithDesc("SPC a f", send(showMsg{kind: kindForm}), "Form")
	reg.BindWithDesc("SPC a i", send(showMsg{kind: kindInput}), "Input")
	reg.BindWithDesc("SPC a s", send(showMsg{kind: kindSelect}), "Select")
	reg.BindWithDesc("SPC a w", send(askRemoteMsg{}), "Ask from worker")

	reg.Group("SPC n", "Notify")
	reg.BindWithDesc("SPC n s", send(notifyMsg{typ: alerts.TypeSuccess}), "Success")
	reg.BindWithDesc("SPC n e", send(notifyMsg{typ: alerts.TypeError}), "Error")
	reg.BindWithDesc("SPC n w", send(notifyMsg{typ: alerts.TypeWarning}), "Warning")
	reg.BindWithDesc("SPC n i", send(notifyMsg{typ: alerts.TypeInfo}), "Info")
	reg.BindWithDesc("SPC n p", send(notifyMsg{typ: alerts.TypeInfo, persistent: true}), "Persistent")

	reg.Group("SPC t", "Theme")
	reg.BindWithDesc("SPC t l", send(themeMsg{mode: theme.ModeLight}), "Light")
	reg.BindWithDesc("SPC t d", send(themeMsg{mode: theme.ModeDark}), "Dark")
	reg.BindWithDesc("SPC t a", send(themeMsg{mode: theme.ModeAuto}), "Auto")
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	cmds := []tea.Cmd{a.Alerts.Init(), a.Log.Init(), a.listen()}
	cmds = append(cmds, a.startWatch())
	return tea.Batch(cmds...)
}

// startWatch begins polling the system preference unless a poll is already
// pending or the theme is not in auto mode.
func (a *App) startWatch() tea.Cmd {
	if a.watching || a.watch <= 0 || a.Theme.Mode() != theme.ModeAuto {
		return nil
	}
	a.watching = true
	return a.Theme.WatchCmd(a.watch)
}

// listen waits for the next lifecycle event.
func (a *App) listen() tea.Cmd {
	if a.events == nil {
		return nil
	}
	ch := a.events
	return func() tea.Msg {
		ev, ok := <-ch
		if !ok {
			return nil
		}
		return eventMsg(ev)
	}
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok && k.String() == "ctrl+c" {
		return a, tea.Quit
	}
	if cmd, consumed := a.Alerts.Update(msg); consumed {
		return a, cmd
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		a.Log.SetSize(msg.Width, a.logHeight())
		return a, nil
	case theme.SystemPreferenceMsg:
		// The manager already applied it. Only the watch tick re-arms.
		if !msg.Polled {
			return a, nil
		}
		a.watching = false
		return a, a.startWatch()
	case eventMsg:
		a.Log.Append(events.Event(msg))
		return a, a.listen()
	case alerts.DialogClosedMsg:
		return a, a.dialogClosed(msg)
	case alerts.NotificationClosedMsg:
		a.status = fmt.Sprintf("Toast #%d closed", msg.ID)
		return a, nil
	case showMsg:
		return a, a.show(msg.kind)
	case notifyMsg:
		return a, a.notify(msg)
	case themeMsg:
		a.Alerts.SetTheme(msg.mode)
		a.status = fmt.Sprintf("Theme %s (%s)", a.Alerts.Theme(), a.Alerts.ThemeAttribute())
		if msg.mode == theme.ModeAuto {
			return a, tea.Batch(a.Theme.DetectCmd(), a.startWatch())
		}
		return a, nil
	case closeAllMsg:
		a.status = "Closing everything"
		return a, a.Alerts.CloseAll()
	case askRemoteMsg:
		return a, a.askFromWorker()
	case tea.KeyMsg:
		if consumed, cmd := a.KeyHandler.Handle(msg); consumed {
			return a, cmd
		}
	}

	_, cmd := a.Log.Update(msg)
	return a, cmd
}

func (a *App) show(kind string) tea.Cmd {
	var cmd tea.Cmd
	switch kind {
	case kindAlert:
		_, cmd = a.Alerts.Success(alerts.DialogRequest{
			Title: "Saved",
			Text:  "Your changes were written to disk.",
		})
	case kindQuestion:
		_, cmd = a.Alerts.Question(alerts.DialogRequest{
			Title:             "Delete branch?",
			Text:              "The branch and its worktree will be removed.",
			ConfirmButtonText: "Delete",
			FocusCancel:       true,
			Timer:             15 * time.Second,
		})
	case kindForm:
		_, cmd = a.Alerts.Form(alerts.FormRequest{
			DialogRequest: alerts.DialogRequest{Title: "Sign up"},
			Fields: []alerts.FormField{
				{Name: "name", Label: "Name", Placeholder: "Ada Lovelace", Required: true},
				{Name: "email", Type: alerts.FieldEmail, Label: "Email", Placeholder: "ada@example.com", Required: true},
				{Name: "password", Type: alerts.FieldPassword, Label: "Password",
					Attributes: map[string]string{"maxlength": "64"}},
			},
		})
	case kindInput:
		_, cmd = a.Alerts.Input(alerts.InputRequest{
			DialogRequest: alerts.DialogRequest{Title: "Rename session"},
			Placeholder:   "session name",
			Required:      true,
		})
	case kindSelect:
		_, cmd = a.Alerts.Select(alerts.SelectRequest{
			DialogRequest: alerts.DialogRequest{Title: "Pick an environment"},
			Options: []alerts.SelectOption{
				{Value: "dev", Text: "Development"},
				{Value: "staging", Text: "Staging"},
				{Value: "prod", Text: "Production"},
			},
		})
	}
	return cmd
}

func (a *App) notify(msg notifyMsg) tea.Cmd {
	req := alerts.NotificationRequest{
		Type:    msg.typ,
		Title:   toastTitle(msg.typ),
		Message: toastMessage(msg.typ),
	}
	if msg.persistent {
		req.Title = "Pinned"
		req.Message = "This toast stays until you close it."
		req.Duration = alerts.Duration(0)
	}
	id, cmd := a.Alerts.Notify(req)
	a.status = fmt.Sprintf("Toast #%d shown", id)
	return cmd
}

func toastTitle(t alerts.NotificationType) string {
	switch t {
	case alerts.TypeSuccess:
		return "Deployed"
	case alerts.TypeError:
		return "Build failed"
	case alerts.TypeWarning:
		return "Disk almost full"
	}
	return "Heads up"
}

func toastMessage(t alerts.NotificationType) string {
	switch t {
	case alerts.TypeSuccess:
		return "api@4f2c1e is live."
	case alerts.TypeError:
		return "go test ./... exited with status 1."
	case alerts.TypeWarning:
		return "Only 2 GiB left on /var."
	}
	return "A new version is available."
}

// dialogClosed reports a settled dialog and follows up with a toast.
func (a *App) dialogClosed(msg alerts.DialogClosedMsg) tea.Cmd {
	a.status = fmt.Sprintf("Dialog #%d %s", msg.ID, msg.Outcome)
	if msg.Outcome != alerts.OutcomeConfirmed {
		return nil
	}
	switch {
	case len(msg.Values) > 0:
		a.status += " " + formatValues(msg.Values)
		_, cmd := a.Alerts.Notify(alerts.NotificationRequest{
			Type:    alerts.TypeSuccess,
			Title:   "Welcome",
			Message: fmt.Sprintf("Signed up as %s.", msg.Values["name"]),
		})
		return cmd
	case msg.Value != "":
		a.status += fmt.Sprintf(" value=%q", msg.Value)
	}
	return nil
}

func formatValues(values map[string]string) string {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		v := values[k]
		if k == "password" && v != "" {
			v = strings.Repeat("•", len([]rune(v)))
		}
		parts = append(parts, fmt.Sprintf("%s=%q", k, v))
	}
	return strings.Join(parts, " ")
}

// askFromWorker runs a goroutine that asks through Remote and reports the
// answer with a toast.
func (a *App) askFromWorker() tea.Cmd {
	r := a.remote
	if r == nil {
		_, cmd := a.Alerts.Notify(alerts.NotificationRequest{
			Type:    alerts.TypeWarning,
			Title:   "No program attached",
			Message: "Worker requests need a running program.",
		})
		return cmd
	}
	a.status = "Worker waiting for an answer"
	return func() tea.Msg {
		p := r.Question(alerts.DialogRequest{
			Title: "Background job",
			Text:  "A worker goroutine wants to continue. Allow it?",
		})
		res, err := p.Wait(context.Background())
		if err != nil {
			return nil
		}
		req := alerts.NotificationRequest{Type: alerts.TypeWarning, Title: "Worker", Message: "Worker stopped."}
		if res.Confirmed() {
			req = alerts.NotificationRequest{Type: alerts.TypeSuccess, Title: "Worker", Message: "Worker continued."}
		}
		r.Notify(req)
		return nil
	}
}

const (
	headerHeight = 2
	footerHeight = 4 // status line plus the help bar box
)

func (a *App) logHeight() int {
	return max(a.height-headerHeight-footerHeight, 3)
}

// View implements tea.Model.
func (a *App) View() string {
	styles := a.Theme.Styles()
	header := styles.Title.Render("lucid") + "  " +
		styles.Muted.Render(fmt.Sprintf("theme %s (%s)  dialogs %d  toasts %d",
			a.Alerts.Theme(), a.Alerts.ThemeAttribute(),
			len(a.Alerts.ActiveDialogs()), len(a.Alerts.ActiveNotifications())))

	footer := ui.RenderKeybindHelp(a.KeyHandler)
	if footer == "" {
		footer = styles.Hint.Render("SPC: menu  q: quit")
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		header,
		"",
		a.Log.View(),
		styles.Content.Render(a.status),
		footer,
	)
	if a.width > 0 && a.height > 0 {
		body = lipgloss.NewStyle().
			Width(a.width).
			Height(a.height).
			MaxWidth(a.width).
			MaxHeight(a.height).
			Render(body)
	}
	return a.Alerts.View(body)
}
