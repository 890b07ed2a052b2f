package alerts

import (
	"io"
	"log"
	"slices"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	oteltrace "go.opentelemetry.io/otel/trace"

	"lucid/internal/events"
	"lucid/internal/theme"
	"lucid/internal/ui"
)

// Manager owns every dialog and notification of a program. Embed it in the
// host model, forward messages to Update and wrap the host's view with View.
//
// All state is mutated on the Bubble Tea event loop. Other goroutines go
// through Remote.
type Manager struct {
	cfg     Config
	keys    KeyMap
	logger  *log.Logger
	theme   *theme.Controller
	emitter events.Emitter
	metrics *Metrics
	tracer  oteltrace.Tracer
	now     func() time.Time
	sched   Scheduler

	// nextID is shared by dialogs and notifications; Remote allocates from it
	// off the event loop.
	nextID atomic.Uint64

	dialogs ui.OverlayStack // active dialogs, bottom to top
	closing []*dialog       // dismissed dialogs waiting for their result

	notes        []*notification // active notifications, creation order
	closingNotes []*notification
	containers   []NotificationPosition

	width, height  int
	drawnW, drawnH int // size of the last View, for clicks before a WindowSizeMsg
	framing        bool
}

// Option configures a Manager.
type Option func(*Manager)

// WithLogger sets the logger. The default discards.
func WithLogger(l *log.Logger) Option {
	return func(m *Manager) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithTheme shares a theme controller with the host.
func WithTheme(c *theme.Controller) Option {
	return func(m *Manager) { m.theme = c }
}

// WithEmitter sets the receiver of lifecycle events.
func WithEmitter(e events.Emitter) Option {
	return func(m *Manager) {
		if e != nil {
			m.emitter = e
		}
	}
}

// WithMetrics enables Prometheus metrics.
func WithMetrics(mt *Metrics) Option {
	return func(m *Manager) { m.metrics = mt }
}

// WithTracerProvider sets where lifecycle spans go. The default is the global
// provider.
func WithTracerProvider(tp oteltrace.TracerProvider) Option {
	return func(m *Manager) {
		if tp != nil {
			m.tracer = tp.Tracer(tracerName)
		}
	}
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) {
		if now != nil {
			m.now = now
		}
	}
}

// WithScheduler replaces the tea.Tick based timer delivery.
func WithScheduler(s Scheduler) Option {
	return func(m *Manager) {
		if s != nil {
			m.sched = s
		}
	}
}

// WithKeyMap replaces the dialog key bindings.
func WithKeyMap(k KeyMap) Option {
	return func(m *Manager) { m.keys = k }
}

// New creates a Manager. cfg is normalized once and never changes.
func New(cfg Config, opts ...Option) *Manager {
	m := &Manager{
		cfg:     cfg.Normalize(),
		keys:    DefaultKeyMap(),
		logger:  log.New(io.Discard, "", 0),
		emitter: events.Discard{},
		tracer:  otel.GetTracerProvider().Tracer(tracerName),
		now:     time.Now,
		sched:   tickScheduler{},
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.theme == nil {
		m.theme = theme.NewController(theme.ModeAuto, m.logger)
	}
	return m
}

// Config returns the normalized configuration.
func (m *Manager) Config() Config {
	return m.cfg
}

// Init starts the countdown redraws for notifications created before the
// program started.
func (m *Manager) Init() tea.Cmd {
	return m.startFrames()
}

// Update handles msg. consumed is true when the host should not process msg
// itself: the manager's own messages, and every key or mouse event while a
// dialog is open.
func (m *Manager) Update(msg tea.Msg) (cmd tea.Cmd, consumed bool) {
	if m.theme.Update(msg) {
		return nil, false
	}
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return nil, false
	case applyMsg:
		return msg.fn(m), true
	case dialogActionMsg:
		return m.dismiss(msg.ID, msg.payload), true
	case dialogInvalidMsg:
		m.invalid(msg)
		return nil, true
	case dialogTimeoutMsg:
		d, ok := m.activeDialog(msg.ID)
		if !ok {
			return nil, true
		}
		return m.dismiss(msg.ID, d.payload(OutcomeTimedOut)), true
	case dialogRemovedMsg:
		return m.finishDialog(msg.ID), true
	case notificationTimeoutMsg:
		cmd, _ := m.CloseNotification(msg.ID)
		return cmd, true
	case notificationRemovedMsg:
		return m.removeNotification(msg.ID), true
	case frameMsg:
		return m.frame(), true
	case tea.KeyMsg:
		if m.dialogs.Len() == 0 {
			return nil, false
		}
		return m.handleKey(msg), true
	case tea.MouseMsg:
		return m.handleMouse(msg)
	}
	return nil, false
}

func (m *Manager) handleKey(msg tea.KeyMsg) tea.Cmd {
	top, _ := m.dialogs.Peek()
	if top.IsDismissKey(msg.String()) {
		d := top.View.(*dialog)
		m.logger.Printf("alerts.handleKey: escape dismisses dialog %d", d.id)
		return m.dismiss(d.id, d.payload(OutcomeCancelled))
	}
	cmd, _ := m.dialogs.UpdateTop(msg)
	return cmd
}

func (m *Manager) allocDialog() DialogID {
	return DialogID(m.nextID.Add(1))
}

func (m *Manager) allocNotification() NotificationID {
	return NotificationID(m.nextID.Add(1))
}

func (m *Manager) newDialog(id DialogID, kind dialogKind, opts dialogOptions) *dialog {
	return newDialog(id, kind, opts, m.keys, m.theme)
}

// open makes d the topmost active dialog.
func (m *Manager) open(d *dialog) tea.Cmd {
	d.initFocus()
	now := m.now()
	d.opened = now
	d.span = m.startSpan(spanDialog, uint64(d.id), now,
		attribute.String("lucid.kind", string(d.kind)),
		attribute.String("lucid.icon", string(d.opts.icon)),
	)

	ov := ui.Overlay{ID: uint64(d.id), View: d}
	if d.opts.allowEsc {
		ov.Dismiss = DismissKey
	}
	m.dialogs.Push(ov)
	m.metrics.dialogShown(d.kind, m.dialogs.Len())
	m.emit(events.Event{
		Kind:     events.KindShown,
		Subject:  events.SubjectDialog,
		ID:       uint64(d.id),
		Title:    d.opts.title,
		Metadata: map[string]string{"kind": string(d.kind), "icon": string(d.opts.icon)},
	})
	m.logger.Printf("alerts.open: %s dialog %d", d.kind, d.id)

	cmds := []tea.Cmd{d.Init()}
	if d.opts.timer > 0 {
		cmds = append(cmds, m.sched.After(d.opts.timer, dialogTimeoutMsg{ID: d.id}))
	}
	return tea.Batch(cmds...)
}

// Show opens an alert or confirmation dialog.
func (m *Manager) Show(req DialogRequest) (*Pending[Result], tea.Cmd) {
	id := m.allocDialog()
	p := newPending[Result](id)
	return p, m.show(id, req, p)
}

func (m *Manager) show(id DialogID, req DialogRequest, p *Pending[Result]) tea.Cmd {
	d := m.newDialog(id, kindAlert, req.withDefaults(m.cfg))
	d.settle = func(pl payload) {
		p.resolve(Result{ID: id, Outcome: pl.outcome})
	}
	return m.open(d)
}

// Alert is Show.
func (m *Manager) Alert(req DialogRequest) (*Pending[Result], tea.Cmd) {
	return m.Show(req)
}

// Success shows a dialog with the success icon.
func (m *Manager) Success(req DialogRequest) (*Pending[Result], tea.Cmd) {
	req.Icon = IconSuccess
	return m.Show(req)
}

// Error shows a dialog with the error icon.
func (m *Manager) Error(req DialogRequest) (*Pending[Result], tea.Cmd) {
	req.Icon = IconError
	return m.Show(req)
}

// Warning shows a dialog with the warning icon.
func (m *Manager) Warning(req DialogRequest) (*Pending[Result], tea.Cmd) {
	req.Icon = IconWarning
	return m.Show(req)
}

// Info shows a dialog with the info icon.
func (m *Manager) Info(req DialogRequest) (*Pending[Result], tea.Cmd) {
	req.Icon = IconInfo
	return m.Show(req)
}

// Question shows a confirmation dialog; the cancel button is always shown.
func (m *Manager) Question(req DialogRequest) (*Pending[Result], tea.Cmd) {
	req.Icon = IconQuestion
	req.ShowCancelButton = On
	return m.Show(req)
}

func (m *Manager) AlertText(text string) (*Pending[Result], tea.Cmd) {
	return m.Alert(DialogRequest{Text: text})
}

func (m *Manager) SuccessText(text string) (*Pending[Result], tea.Cmd) {
	return m.Success(DialogRequest{Text: text})
}

func (m *Manager) ErrorText(text string) (*Pending[Result], tea.Cmd) {
	return m.Error(DialogRequest{Text: text})
}

func (m *Manager) WarningText(text string) (*Pending[Result], tea.Cmd) {
	return m.Warning(DialogRequest{Text: text})
}

func (m *Manager) InfoText(text string) (*Pending[Result], tea.Cmd) {
	return m.Info(DialogRequest{Text: text})
}

func (m *Manager) QuestionText(text string) (*Pending[Result], tea.Cmd) {
	return m.Question(DialogRequest{Text: text})
}

// Form opens a dialog with input fields. Confirming validates every field;
// the result settles only once validation passes or the form is cancelled.
func (m *Manager) Form(req FormRequest) (*Pending[FormResult], tea.Cmd) {
	id := m.allocDialog()
	p := newPending[FormResult](id)
	return p, m.form(id, req, p)
}

func (m *Manager) form(id DialogID, req FormRequest, p *Pending[FormResult]) tea.Cmd {
	opts := req.withDefaults(m.cfg)
	opts.showConfirm, opts.showCancel = true, true
	d := m.newDialog(id, kindForm, opts)
	d.addFields(req.Fields)
	d.settle = func(pl payload) {
		p.resolve(FormResult{
			ID:        id,
			Confirmed: pl.outcome == OutcomeConfirmed,
			TimedOut:  pl.outcome == OutcomeTimedOut,
			Values:    pl.values,
		})
	}
	return m.open(d)
}

// Input asks for one line of text.
func (m *Manager) Input(req InputRequest) (*Pending[InputResult], tea.Cmd) {
	id := m.allocDialog()
	p := newPending[InputResult](id)
	return p, m.input(id, req, p)
}

func (m *Manager) input(id DialogID, req InputRequest, p *Pending[InputResult]) tea.Cmd {
	opts := req.withDefaults(m.cfg)
	opts.showConfirm = true
	opts.showCancel = req.ShowCancelButton.resolve(true)
	d := m.newDialog(id, kindInput, opts)
	d.addFields([]FormField{{
		Name:        "value",
		Type:        req.Type,
		Placeholder: req.Placeholder,
		Value:       req.Value,
		Required:    req.Required,
	}})
	d.settle = settleInput(id, p)
	return m.open(d)
}

// Select asks the user to pick one of req.Options. The result's Value is the
// chosen option's Value.
func (m *Manager) Select(req SelectRequest) (*Pending[InputResult], tea.Cmd) {
	id := m.allocDialog()
	p := newPending[InputResult](id)
	return p, m.selectOne(id, req, p)
}

func (m *Manager) selectOne(id DialogID, req SelectRequest, p *Pending[InputResult]) tea.Cmd {
	opts := req.withDefaults(m.cfg)
	opts.showConfirm = true
	opts.showCancel = req.ShowCancelButton.resolve(true)
	d := m.newDialog(id, kindSelect, opts)
	d.addChoices(req.Options, req.Height)
	d.settle = settleInput(id, p)
	return m.open(d)
}

func settleInput(id DialogID, p *Pending[InputResult]) func(payload) {
	return func(pl payload) {
		p.resolve(InputResult{
			ID:        id,
			Confirmed: pl.outcome == OutcomeConfirmed,
			TimedOut:  pl.outcome == OutcomeTimedOut,
			Value:     pl.value,
		})
	}
}

func (m *Manager) activeDialog(id DialogID) (*dialog, bool) {
	ov, ok := m.dialogs.Get(uint64(id))
	if !ok {
		return nil, false
	}
	return ov.View.(*dialog), true
}

// Close dismisses an active dialog with outcome. A confirmed form settles
// with its current values without validating them. It reports false when id
// is not active.
func (m *Manager) Close(id DialogID, outcome Outcome) (tea.Cmd, bool) {
	d, ok := m.activeDialog(id)
	if !ok {
		return nil, false
	}
	return m.dismiss(id, d.payload(outcome)), true
}

// dismiss removes the dialog from the active set and schedules its
// settlement. Removal is the single point that decides which trigger wins:
// once the dialog is gone every later trigger is a no-op.
func (m *Manager) dismiss(id DialogID, p payload) tea.Cmd {
	ov, ok := m.dialogs.Remove(uint64(id))
	if !ok {
		return nil
	}
	d := ov.View.(*dialog)
	d.closing = true
	d.result = p
	m.metrics.dialogDismissed(m.dialogs.Len())
	m.emit(events.Event{
		Kind:    events.KindDismissing,
		Subject: events.SubjectDialog,
		ID:      uint64(id),
		Outcome: p.outcome.String(),
		Title:   d.opts.title,
	})
	m.logger.Printf("alerts.dismiss: dialog %d %s", id, p.outcome)

	if m.cfg.DialogCloseDelay <= 0 {
		return m.settleDialog(d)
	}
	m.closing = append(m.closing, d)
	return m.sched.After(m.cfg.DialogCloseDelay, dialogRemovedMsg{ID: id})
}

func (m *Manager) finishDialog(id DialogID) tea.Cmd {
	i := slices.IndexFunc(m.closing, func(d *dialog) bool { return d.id == id })
	if i < 0 {
		return nil
	}
	d := m.closing[i]
	m.closing = slices.Delete(m.closing, i, i+1)
	return m.settleDialog(d)
}

func (m *Manager) settleDialog(d *dialog) tea.Cmd {
	now := m.now()
	if d.settle != nil {
		d.settle(d.result)
	}
	endSpan(d.span, d.result.outcome.String(), now)
	m.metrics.dialogResolved(d.result.outcome, now.Sub(d.opened))
	m.emit(events.Event{
		Kind:    events.KindResolved,
		Subject: events.SubjectDialog,
		ID:      uint64(d.id),
		Outcome: d.result.outcome.String(),
		Title:   d.opts.title,
	})

	closed := DialogClosedMsg{
		ID:      d.id,
		Outcome: d.result.outcome,
		Values:  d.result.values,
		Value:   d.result.value,
	}
	return func() tea.Msg { return closed }
}

func (m *Manager) invalid(msg dialogInvalidMsg) {
	d, ok := m.activeDialog(msg.ID)
	if !ok {
		return
	}
	m.metrics.validationFailed()
	m.emit(events.Event{
		Kind:     events.KindInvalid,
		Subject:  events.SubjectDialog,
		ID:       uint64(msg.ID),
		Title:    d.opts.title,
		Metadata: msg.Errors,
	})
	m.logger.Printf("alerts.invalid: dialog %d has %d invalid fields", msg.ID, len(msg.Errors))
}

// Notify shows a toast and returns its handle.
func (m *Manager) Notify(req NotificationRequest) (NotificationID, tea.Cmd) {
	id := m.allocNotification()
	return id, m.notify(id, req)
}

// Toast is Notify.
func (m *Manager) Toast(req NotificationRequest) (NotificationID, tea.Cmd) {
	return m.Notify(req)
}

func (m *Manager) notify(id NotificationID, req NotificationRequest) tea.Cmd {
	opts := req.withDefaults(m.cfg)
	now := m.now()
	n := newNotification(id, opts, now, m.cfg.NotificationWidth)
	n.span = m.startSpan(spanNotification, uint64(id), now,
		attribute.String("lucid.type", string(opts.typ)),
		attribute.String("lucid.position", string(opts.position)),
	)
	m.notes = append(m.notes, n)
	if !slices.Contains(m.containers, opts.position) {
		m.containers = append(m.containers, opts.position)
	}
	m.metrics.notificationShown(opts.typ, len(m.notes))
	m.emit(events.Event{
		Kind:     events.KindShown,
		Subject:  events.SubjectNotification,
		ID:       uint64(id),
		Title:    opts.title,
		Metadata: map[string]string{"type": string(opts.typ), "position": string(opts.position)},
	})
	m.logger.Printf("alerts.notify: %s notification %d at %s", opts.typ, id, opts.position)

	if !n.timed() {
		return nil
	}
	return tea.Batch(
		m.sched.After(opts.duration, notificationTimeoutMsg{ID: id}),
		m.startFrames(),
	)
}

// CloseNotification dismisses a toast. It reports false when id is not
// active.
func (m *Manager) CloseNotification(id NotificationID) (tea.Cmd, bool) {
	i := slices.IndexFunc(m.notes, func(n *notification) bool { return n.id == id })
	if i < 0 {
		return nil, false
	}
	n := m.notes[i]
	m.notes = slices.Delete(m.notes, i, i+1)
	n.closing = true
	m.metrics.notificationDismissed(len(m.notes))
	m.emit(events.Event{
		Kind:    events.KindDismissing,
		Subject: events.SubjectNotification,
		ID:      uint64(id),
		Title:   n.opts.title,
	})

	if m.cfg.NotificationCloseDelay <= 0 {
		return m.finishNotification(n), true
	}
	m.closingNotes = append(m.closingNotes, n)
	return m.sched.After(m.cfg.NotificationCloseDelay, notificationRemovedMsg{ID: id}), true
}

func (m *Manager) removeNotification(id NotificationID) tea.Cmd {
	i := slices.IndexFunc(m.closingNotes, func(n *notification) bool { return n.id == id })
	if i < 0 {
		return nil
	}
	n := m.closingNotes[i]
	m.closingNotes = slices.Delete(m.closingNotes, i, i+1)
	return m.finishNotification(n)
}

func (m *Manager) finishNotification(n *notification) tea.Cmd {
	endSpan(n.span, "closed", m.now())
	m.metrics.notificationRemoved()
	m.emit(events.Event{
		Kind:    events.KindResolved,
		Subject: events.SubjectNotification,
		ID:      uint64(n.id),
		Title:   n.opts.title,
	})
	closed := NotificationClosedMsg{ID: n.id}
	return func() tea.Msg { return closed }
}

// CloseAll cancels every active dialog and dismisses every notification.
func (m *Manager) CloseAll() tea.Cmd {
	dialogs := m.dialogs.Snapshot()
	cmds := make([]tea.Cmd, 0, len(dialogs)+len(m.notes))
	for _, ov := range dialogs {
		d := ov.View.(*dialog)
		cmds = append(cmds, m.dismiss(d.id, d.payload(OutcomeCancelled)))
	}
	cmds = append(cmds, m.CloseAllNotifications())
	m.logger.Printf("alerts.CloseAll: %d dialogs", len(dialogs))
	return tea.Batch(cmds...)
}

// CloseAllNotifications dismisses every notification and leaves dialogs open.
func (m *Manager) CloseAllNotifications() tea.Cmd {
	notes := slices.Clone(m.notes)
	cmds := make([]tea.Cmd, 0, len(notes))
	for _, n := range notes {
		cmd, _ := m.CloseNotification(n.id)
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

// ActiveDialogs returns the ids of the active dialogs, topmost last.
func (m *Manager) ActiveDialogs() []DialogID {
	snap := m.dialogs.Snapshot()
	ids := make([]DialogID, len(snap))
	for i, ov := range snap {
		ids[i] = DialogID(ov.ID)
	}
	return ids
}

// ActiveNotifications returns the ids of the active notifications in
// creation order.
func (m *Manager) ActiveNotifications() []NotificationID {
	ids := make([]NotificationID, len(m.notes))
	for i, n := range m.notes {
		ids[i] = n.id
	}
	return ids
}

// IsActive reports whether the dialog is in the active set.
func (m *Manager) IsActive(id DialogID) bool {
	return m.dialogs.Contains(uint64(id))
}

// NotificationActive reports whether the notification is in the active set.
func (m *Manager) NotificationActive(id NotificationID) bool {
	return slices.ContainsFunc(m.notes, func(n *notification) bool { return n.id == id })
}

// Containers returns the notification positions that have been used, in the
// order they were first used.
func (m *Manager) Containers() []NotificationPosition {
	return slices.Clone(m.containers)
}

// Theme returns the configured theme mode.
func (m *Manager) Theme() theme.Mode {
	return m.theme.Mode()
}

// ThemeAttribute returns the effective theme, "light" or "dark".
func (m *Manager) ThemeAttribute() string {
	return m.theme.Attribute()
}

// SetTheme switches the theme mode.
func (m *Manager) SetTheme(mode theme.Mode) {
	m.theme.SetMode(mode)
	m.logger.Printf("alerts.SetTheme: mode=%s attribute=%s", m.theme.Mode(), m.theme.Attribute())
}

// startFrames begins the countdown redraw chain if a bar needs it.
func (m *Manager) startFrames() tea.Cmd {
	if m.framing || !m.needsFrames() {
		return nil
	}
	m.framing = true
	return m.sched.After(m.cfg.FrameInterval, frameMsg{})
}

func (m *Manager) frame() tea.Cmd {
	if !m.needsFrames() {
		m.framing = false
		return nil
	}
	return m.sched.After(m.cfg.FrameInterval, frameMsg{})
}

func (m *Manager) needsFrames() bool {
	return slices.ContainsFunc(m.notes, func(n *notification) bool {
		return n.timed() && n.opts.showProgress
	})
}

func (m *Manager) emit(ev events.Event) {
	if ev.Timestamp.IsZero() {
		ev.Timestamp = m.now()
	}
	m.emitter.Emit(ev)
}
