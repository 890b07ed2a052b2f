package alerts

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// Toggle is a boolean option whose zero value defers to a default. In a
// request the default is the manager Config; in a Config it is DefaultConfig.
type Toggle int8

const (
	Default Toggle = iota
	On
	Off
)

func (t Toggle) resolve(def bool) bool {
	switch t {
	case On:
		return true
	case Off:
		return false
	}
	return def
}

// ToggleOf converts b to On or Off.
func ToggleOf(b bool) Toggle {
	if b {
		return On
	}
	return Off
}

// Enabled reports whether t is On. Default counts as off; Config.Normalize
// resolves it first.
func (t Toggle) Enabled() bool { return t == On }

func (t Toggle) or(def Toggle) Toggle {
	if t == Default {
		return def
	}
	return t
}

// Icon is the glyph shown at the top of a dialog.
type Icon string

const (
	IconNone     Icon = ""
	IconSuccess  Icon = "success"
	IconError    Icon = "error"
	IconWarning  Icon = "warning"
	IconInfo     Icon = "info"
	IconQuestion Icon = "question"
)

func (i Icon) normalize() Icon {
	switch i {
	case IconSuccess, IconError, IconWarning, IconInfo, IconQuestion:
		return i
	}
	return IconNone
}

// Position is where a dialog sits vertically.
type Position string

const (
	PositionCenter Position = "center"
	PositionTop    Position = "top"
	PositionBottom Position = "bottom"
)

// ParsePosition maps a name to a Position; unknown names yield PositionCenter
// and ok=false.
func ParsePosition(s string) (Position, bool) {
	switch Position(strings.ToLower(strings.TrimSpace(s))) {
	case PositionCenter:
		return PositionCenter, true
	case PositionTop:
		return PositionTop, true
	case PositionBottom:
		return PositionBottom, true
	}
	return PositionCenter, false
}

func (p Position) vertical() lipgloss.Position {
	switch p {
	case PositionTop:
		return lipgloss.Top
	case PositionBottom:
		return lipgloss.Bottom
	}
	return lipgloss.Center
}

// DialogRequest configures an alert or confirmation dialog. Zero values take
// the defaults from Config.
type DialogRequest struct {
	Title string
	// Text is plain text; escape sequences and control characters are removed.
	Text string
	// Content is pre-styled content rendered verbatim. It wins over Text.
	Content string
	Icon    Icon

	ShowConfirmButton Toggle
	ShowCancelButton  Toggle
	ConfirmButtonText string
	CancelButtonText  string
	ShowCloseButton   Toggle
	AllowOutsideClick Toggle
	AllowEscapeKey    Toggle
	Backdrop          Toggle
	ReverseButtons    bool
	FocusCancel       bool

	// Timer closes the dialog with OutcomeTimedOut when it elapses first. 0 disables it.
	Timer    time.Duration
	Position Position
	Width    int // content width in cells; 0 uses Config.DialogWidth
}

// dialogOptions is a DialogRequest with every default applied.
type dialogOptions struct {
	title, text, content         string
	icon                         Icon
	showConfirm, showCancel      bool
	confirmText, cancelText      string
	showClose                    bool
	allowOutsideClick, allowEsc  bool
	backdrop                     bool
	reverseButtons, focusCancel  bool
	timer                        time.Duration
	position                     Position
	width                        int
}

func (r DialogRequest) withDefaults(cfg Config) dialogOptions {
	o := dialogOptions{
		title:             r.Title,
		text:              r.Text,
		content:           r.Content,
		icon:              r.Icon.normalize(),
		showConfirm:       r.ShowConfirmButton.resolve(true),
		showCancel:        r.ShowCancelButton.resolve(false),
		confirmText:       r.ConfirmButtonText,
		cancelText:        r.CancelButtonText,
		showClose:         r.ShowCloseButton.resolve(cfg.ShowCloseButton.Enabled()),
		allowOutsideClick: r.AllowOutsideClick.resolve(cfg.AllowOutsideClick.Enabled()),
		allowEsc:          r.AllowEscapeKey.resolve(cfg.AllowEscapeKey.Enabled()),
		backdrop:          r.Backdrop.resolve(cfg.Backdrop.Enabled()),
		reverseButtons:    r.ReverseButtons,
		focusCancel:       r.FocusCancel,
		timer:             max(r.Timer, 0),
		position:          cfg.Position,
		width:             cfg.DialogWidth,
	}
	if o.confirmText == "" {
		o.confirmText = cfg.ConfirmButtonText
	}
	if o.cancelText == "" {
		o.cancelText = cfg.CancelButtonText
	}
	if r.Position != "" {
		o.position, _ = ParsePosition(string(r.Position))
	}
	if r.Width > 0 {
		o.width = r.Width
	}
	return o
}

// FieldType selects the input behaviour of a form field.
type FieldType string

const (
	FieldText     FieldType = "text"
	FieldEmail    FieldType = "email"
	FieldPassword FieldType = "password"
	FieldNumber   FieldType = "number"
)

// FormField is one input of a form dialog.
type FormField struct {
	Name        string // defaults to input_<index>
	Type        FieldType
	Label       string
	Placeholder string
	Value       string
	Required    bool
	// Attributes tunes the input: "maxlength" and "width" are recognised.
	Attributes map[string]string
}

// FormRequest is a dialog with input fields. Forms always show both buttons.
type FormRequest struct {
	DialogRequest
	Fields []FormField
}

// InputRequest asks for a single line of text.
type InputRequest struct {
	DialogRequest
	Placeholder string
	Value       string
	Type        FieldType
	Required    bool
}

// SelectOption is one choice in a select dialog.
type SelectOption struct {
	Value string
	Text  string
}

// SelectRequest asks the user to pick one option.
type SelectRequest struct {
	DialogRequest
	Options []SelectOption
	Height  int // visible rows; 0 shows up to eight
}

// NotificationType is the semantic kind of a toast.
type NotificationType string

const (
	TypeSuccess NotificationType = "success"
	TypeError   NotificationType = "error"
	TypeWarning NotificationType = "warning"
	TypeInfo    NotificationType = "info"
)

func (t NotificationType) normalize() NotificationType {
	switch t {
	case TypeSuccess, TypeError, TypeWarning, TypeInfo:
		return t
	}
	return TypeInfo
}

// NotificationPosition is the screen corner or edge a toast container sits in.
type NotificationPosition string

const (
	TopLeft      NotificationPosition = "top-left"
	TopCenter    NotificationPosition = "top-center"
	TopRight     NotificationPosition = "top-right"
	BottomLeft   NotificationPosition = "bottom-left"
	BottomCenter NotificationPosition = "bottom-center"
	BottomRight  NotificationPosition = "bottom-right"
)

// NotificationPositions lists every position in a stable order.
var NotificationPositions = []NotificationPosition{
	TopLeft, TopCenter, TopRight, BottomLeft, BottomCenter, BottomRight,
}

// ParseNotificationPosition maps a name to a position; unknown names yield
// TopRight and ok=false.
func ParseNotificationPosition(s string) (NotificationPosition, bool) {
	p := NotificationPosition(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range NotificationPositions {
		if p == known {
			return p, true
		}
	}
	return TopRight, false
}

func (p NotificationPosition) anchors() (h, v lipgloss.Position) {
	switch p {
	case TopLeft:
		return lipgloss.Left, lipgloss.Top
	case TopCenter:
		return lipgloss.Center, lipgloss.Top
	case BottomLeft:
		return lipgloss.Left, lipgloss.Bottom
	case BottomCenter:
		return lipgloss.Center, lipgloss.Bottom
	case BottomRight:
		return lipgloss.Right, lipgloss.Bottom
	}
	return lipgloss.Right, lipgloss.Top
}

// NotificationRequest configures a toast.
type NotificationRequest struct {
	Type    NotificationType
	Title   string
	Message string
	// Position defaults to Config.NotificationPosition.
	Position NotificationPosition
	// Duration until the toast dismisses itself. nil uses
	// Config.NotificationDuration and 0 keeps the toast until it is closed.
	Duration     *time.Duration
	Dismissible  Toggle
	ShowIcon     Toggle
	ShowProgress Toggle
}

type notificationOptions struct {
	typ            NotificationType
	title, message string
	position       NotificationPosition
	duration       time.Duration
	dismissible    bool
	showIcon       bool
	showProgress   bool
}

func (r NotificationRequest) withDefaults(cfg Config) notificationOptions {
	o := notificationOptions{
		typ:          r.Type.normalize(),
		title:        r.Title,
		message:      r.Message,
		position:     cfg.NotificationPosition,
		dismissible:  r.Dismissible.resolve(true),
		showIcon:     r.ShowIcon.resolve(true),
		showProgress: r.ShowProgress.resolve(true),
	}
	if r.Position != "" {
		o.position, _ = ParseNotificationPosition(string(r.Position))
	}
	o.duration = cfg.NotificationDuration
	if r.Duration != nil {
		o.duration = max(*r.Duration, 0)
	}
	return o
}

// Duration returns a pointer to d for NotificationRequest.Duration.
// Duration(0) makes a persistent toast.
func Duration(d time.Duration) *time.Duration {
	return &d
}
