package alerts

import (
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.opentelemetry.io/otel/trace"

	"lucid/internal/theme"
	"lucid/internal/ui"
	"lucid/internal/ui/textutil"
)

type dialogKind string

const (
	kindAlert  dialogKind = "alert"
	kindForm   dialogKind = "form"
	kindInput  dialogKind = "input"
	kindSelect dialogKind = "select"
)

// Focus ids for the non-field controls. The NUL prefix keeps them apart from
// field names.
const (
	focusConfirm = "\x00confirm"
	focusCancel  = "\x00cancel"
	focusList    = "\x00list"
	fieldPrefix  = "field:"
)

// payload is what a dialog settles with.
type payload struct {
	outcome Outcome
	values  map[string]string
	value   string
}

type field struct {
	name     string
	typ      FieldType
	label    string
	required bool
	input    textinput.Model
	err      string
}

// dialog is the model behind every modal: alerts, forms, inputs and selects.
type dialog struct {
	id      DialogID
	kind    dialogKind
	opts    dialogOptions
	fields  []*field
	choices *list.Model
	focus   ui.FocusManager
	keys    KeyMap
	theme   *theme.Controller
	settle  func(payload)
	span    trace.Span
	opened  time.Time
	result  payload
	closing bool
}

// Ensure dialog implements ui.View.
var _ ui.View = (*dialog)(nil)

func newDialog(id DialogID, kind dialogKind, opts dialogOptions, keys KeyMap, th *theme.Controller) *dialog {
	return &dialog{id: id, kind: kind, opts: opts, keys: keys, theme: th}
}

// innerWidth is the width of the dialog's content area.
func (d *dialog) innerWidth() int {
	return d.opts.width
}

func (d *dialog) addFields(fields []FormField) {
	w := d.innerWidth() - 4
	for i, f := range fields {
		ti := textinput.New()
		ti.Prompt = ""
		ti.Placeholder = f.Placeholder
		ti.SetValue(f.Value)
		ti.Width = w
		ti.Cursor.SetMode(cursor.CursorStatic)
		typ := f.Type
		if typ == "" {
			typ = FieldText
		}
		if typ == FieldPassword {
			ti.EchoMode = textinput.EchoPassword
			ti.EchoCharacter = '•'
		}
		if n, err := strconv.Atoi(f.Attributes["maxlength"]); err == nil && n > 0 {
			ti.CharLimit = n
		}
		if n, err := strconv.Atoi(f.Attributes["width"]); err == nil && n > 0 && n < w {
			ti.Width = n
		}
		d.fields = append(d.fields, &field{
			name:     fieldName(f, i),
			typ:      typ,
			label:    f.Label,
			required: f.Required,
			input:    ti,
		})
	}
}

type choice struct{ opt SelectOption }

func (c choice) Title() string {
	if c.opt.Text != "" {
		return c.opt.Text
	}
	return c.opt.Value
}
func (c choice) Description() string { return "" }
func (c choice) FilterValue() string { return c.Title() }

func (d *dialog) addChoices(opts []SelectOption, height int) {
	items := make([]list.Item, len(opts))
	for i, o := range opts {
		items[i] = choice{opt: o}
	}
	if height <= 0 {
		height = min(max(len(opts), 1), 8)
	}
	l := list.New(items, theme.NewCompactListDelegate(d.theme.Styles()), d.innerWidth(), height)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)
	l.SetShowPagination(len(opts) > height)
	l.KeyMap.Quit.SetEnabled(false)
	l.KeyMap.ForceQuit.SetEnabled(false)
	d.choices = &l
}

// initFocus builds the tab order and picks the starting control.
func (d *dialog) initFocus() {
	var order []string
	for _, f := range d.fields {
		order = append(order, fieldPrefix+f.name)
	}
	if d.choices != nil {
		order = append(order, focusList)
	}
	order = append(order, d.buttonOrder()...)
	d.focus = ui.FocusManager{Order: order}

	switch {
	case len(d.fields) > 0:
		d.focus.SetFocus(order[0])
	case d.choices != nil:
		d.focus.SetFocus(focusList)
	case d.opts.focusCancel && d.opts.showCancel:
		d.focus.SetFocus(focusCancel)
	case d.opts.showConfirm:
		d.focus.SetFocus(focusConfirm)
	case d.opts.showCancel:
		d.focus.SetFocus(focusCancel)
	}
	d.syncInputFocus()
}

// buttonOrder lists the visible buttons left to right.
func (d *dialog) buttonOrder() []string {
	var out []string
	if d.opts.showConfirm {
		out = append(out, focusConfirm)
	}
	if d.opts.showCancel {
		out = append(out, focusCancel)
	}
	if d.opts.reverseButtons && len(out) == 2 {
		out[0], out[1] = out[1], out[0]
	}
	return out
}

func (d *dialog) syncInputFocus() {
	for _, f := range d.fields {
		if d.focus.Is(fieldPrefix + f.name) {
			f.input.Focus()
		} else {
			f.input.Blur()
		}
	}
}

func (d *dialog) onButton() bool {
	return d.focus.Is(focusConfirm) || d.focus.Is(focusCancel)
}

// Init implements ui.View.
func (d *dialog) Init() tea.Cmd {
	return nil
}

// Update implements ui.View. Escape, mouse input and timers are handled by
// the Manager; the dialog sees only keys.
func (d *dialog) Update(msg tea.Msg) (ui.View, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok || d.closing {
		return d, nil
	}
	switch {
	case key.Matches(km, d.keys.Next):
		d.focus.Next()
		d.syncInputFocus()
		return d, nil
	case key.Matches(km, d.keys.Prev):
		d.focus.Prev()
		d.syncInputFocus()
		return d, nil
	case key.Matches(km, d.keys.Confirm):
		return d, d.activate()
	case d.onButton() && key.Matches(km, d.keys.Left, d.keys.Right):
		d.switchButton()
		return d, nil
	}
	return d, d.forward(km)
}

func (d *dialog) switchButton() {
	buttons := d.buttonOrder()
	if len(buttons) < 2 {
		return
	}
	if d.focus.Is(buttons[0]) {
		d.focus.SetFocus(buttons[1])
	} else {
		d.focus.SetFocus(buttons[0])
	}
}

func (d *dialog) forward(km tea.KeyMsg) tea.Cmd {
	if d.focus.Is(focusList) && d.choices != nil {
		l, cmd := d.choices.Update(km)
		d.choices = &l
		return cmd
	}
	for _, f := range d.fields {
		if d.focus.Is(fieldPrefix + f.name) {
			var cmd tea.Cmd
			f.input, cmd = f.input.Update(km)
			return cmd
		}
	}
	return nil
}

// activate handles Enter on the focused control.
func (d *dialog) activate() tea.Cmd {
	if d.focus.Is(focusCancel) {
		return d.action(d.payload(OutcomeCancelled))
	}
	if d.kind == kindAlert {
		if !d.opts.showConfirm {
			return nil
		}
		return d.action(d.payload(OutcomeConfirmed))
	}
	return d.submit()
}

// submit validates every field; on failure the errors are shown and the
// dialog stays open.
func (d *dialog) submit() tea.Cmd {
	errs := d.validate()
	if len(errs) > 0 {
		id := d.id
		return func() tea.Msg { return dialogInvalidMsg{ID: id, Errors: errs} }
	}
	return d.action(d.payload(OutcomeConfirmed))
}

// validate refreshes the per-field errors and returns them by field name.
func (d *dialog) validate() map[string]string {
	var errs map[string]string
	firstInvalid := ""
	for _, f := range d.fields {
		f.err = validateField(f.typ, f.required, strings.TrimSpace(f.input.Value()))
		if f.err == "" {
			continue
		}
		if errs == nil {
			errs = make(map[string]string)
			firstInvalid = fieldPrefix + f.name
		}
		errs[f.name] = f.err
	}
	if firstInvalid != "" {
		d.focus.SetFocus(firstInvalid)
		d.syncInputFocus()
	}
	return errs
}

func (d *dialog) action(p payload) tea.Cmd {
	id := d.id
	return func() tea.Msg {
		return dialogActionMsg{ID: id, Outcome: p.outcome, payload: p}
	}
}

// payload builds the settlement for outcome from the dialog's current state.
func (d *dialog) payload(outcome Outcome) payload {
	p := payload{outcome: outcome}
	switch d.kind {
	case kindForm:
		p.values = make(map[string]string, len(d.fields))
		if outcome == OutcomeConfirmed {
			for _, f := range d.fields {
				p.values[f.name] = strings.TrimSpace(f.input.Value())
			}
		}
	case kindInput:
		if outcome == OutcomeConfirmed && len(d.fields) > 0 {
			p.value = strings.TrimSpace(d.fields[0].input.Value())
		}
	case kindSelect:
		if outcome == OutcomeConfirmed && d.choices != nil {
			if c, ok := d.choices.SelectedItem().(choice); ok {
				p.value = c.opt.Value
			}
		}
	}
	return p
}

// View implements ui.View.
func (d *dialog) View() string {
	return d.render(d.theme.Styles(), d.theme.Palette())
}

func (d *dialog) boxStyle(s theme.Styles, p theme.Palette) lipgloss.Style {
	box := s.Box.Background(p.Background).BorderBackground(p.Background)
	if d.opts.icon != IconNone {
		fg, _ := p.Accent(string(d.opts.icon))
		box = box.BorderForeground(fg)
	}
	return box
}

func (d *dialog) render(s theme.Styles, p theme.Palette) string {
	w := d.innerWidth()
	block := lipgloss.NewStyle().Width(w)
	center := block.Align(lipgloss.Center)

	var parts []string
	if d.opts.showClose {
		parts = append(parts, block.Align(lipgloss.Right).Render(s.Close.Render("×")))
	}
	if d.opts.icon != IconNone {
		fg, bg := p.Accent(string(d.opts.icon))
		glyph := lipgloss.NewStyle().Bold(true).Foreground(fg).Background(bg).Padding(0, 1).
			Render(theme.Icon(string(d.opts.icon)))
		parts = append(parts, center.Render(glyph), "")
	}
	if d.opts.title != "" {
		parts = append(parts, center.Inherit(s.Title).Render(textutil.Sanitize(d.opts.title)), "")
	}
	switch {
	case d.opts.content != "":
		parts = append(parts, center.Render(d.opts.content), "")
	case d.opts.text != "":
		parts = append(parts, center.Inherit(s.Content).Render(textutil.Sanitize(d.opts.text)), "")
	}
	for _, f := range d.fields {
		parts = append(parts, d.renderField(f, s, w)...)
	}
	if d.choices != nil {
		parts = append(parts, d.choices.View(), "")
	}
	if buttons := d.renderButtons(s); buttons != "" {
		parts = append(parts, center.Render(buttons))
	}
	for len(parts) > 0 && parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}

	out := d.boxStyle(s, p).Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
	if d.closing {
		out = s.Closing.Render(out)
	}
	return out
}

func (d *dialog) renderField(f *field, s theme.Styles, w int) []string {
	var lines []string
	if f.label != "" {
		label := f.label
		if f.required {
			label += " *"
		}
		lines = append(lines, s.FieldLabel.Render(label))
	}
	frame := s.Input
	switch {
	case f.err != "":
		frame = s.InputError
	case d.focus.Is(fieldPrefix + f.name):
		frame = s.InputFocus
	}
	lines = append(lines, frame.Width(w-2).Render(f.input.View()))
	if f.err != "" {
		lines = append(lines, s.ErrorMessage.Render(f.err))
	}
	return append(lines, "")
}

func (d *dialog) renderButtons(s theme.Styles) string {
	var rendered []string
	for _, id := range d.buttonOrder() {
		switch id {
		case focusConfirm:
			st := s.Button
			if d.focus.Is(focusConfirm) || (d.kind != kindAlert && !d.onButton()) {
				st = s.ButtonFocus
			}
			rendered = append(rendered, st.Render(d.opts.confirmText))
		case focusCancel:
			st := s.Button
			if d.focus.Is(focusCancel) {
				st = s.CancelFocus
			}
			rendered = append(rendered, st.Render(d.opts.cancelText))
		}
	}
	return strings.Join(rendered, "  ")
}

// closeCell returns the screen cell of the close control when the dialog's
// box is drawn at rect.
func (d *dialog) closeCell(rect ui.Rect, s theme.Styles) (x, y int, ok bool) {
	if !d.opts.showClose {
		return 0, 0, false
	}
	box := s.Box
	x = rect.X + box.GetBorderLeftSize() + box.GetPaddingLeft() + d.innerWidth() - 1
	y = rect.Y + box.GetBorderTopSize() + box.GetPaddingTop()
	return x, y, true
}
