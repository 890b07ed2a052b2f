package alerts

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	oteltrace "go.opentelemetry.io/otel/trace"

	"lucid/internal/theme"
	"lucid/internal/ui"
	"lucid/internal/ui/textutil"
)

// notification is one toast.
type notification struct {
	id      NotificationID
	opts    notificationOptions
	created time.Time
	bar     progress.Model
	span    oteltrace.Span
	closing bool
}

func newNotification(id NotificationID, opts notificationOptions, created time.Time, width int) *notification {
	n := &notification{id: id, opts: opts, created: created}
	if opts.duration > 0 && opts.showProgress {
		n.bar = progress.New(
			progress.WithWidth(max(width-toastChrome, 1)),
			progress.WithoutPercentage(),
			progress.WithSolidFill("#3b82f6"),
		)
	}
	return n
}

// toastChrome is the horizontal space taken by the accent border and padding.
const toastChrome = 3

// timed reports whether the toast dismisses itself.
func (n *notification) timed() bool {
	return n.opts.duration > 0
}

// remaining is the fraction of the toast's duration left at now, in [0, 1].
func (n *notification) remaining(now time.Time) float64 {
	if !n.timed() {
		return 1
	}
	left := n.opts.duration - now.Sub(n.created)
	if left <= 0 {
		return 0
	}
	return float64(left) / float64(n.opts.duration)
}

func (n *notification) render(s theme.Styles, p theme.Palette, width int, now time.Time) string {
	w := max(width-toastChrome, 1)
	fg, _ := p.Accent(string(n.opts.typ))
	bg := p.ToastBackground(string(n.opts.typ))

	var head string
	if n.opts.showIcon {
		head = lipgloss.NewStyle().Foreground(fg).Bold(true).Render(theme.Icon(string(n.opts.typ))) + " "
	}
	if n.opts.title != "" {
		head += s.ToastTitle.Render(textutil.Sanitize(n.opts.title))
	}
	var closeMark string
	if n.opts.dismissible {
		closeMark = s.Close.Render("×")
	}
	lines := []string{joinEnds(head, closeMark, w)}
	if n.opts.message != "" {
		lines = append(lines, s.ToastMessage.Width(w).Render(textutil.Sanitize(n.opts.message)))
	}
	if n.timed() && n.opts.showProgress {
		n.bar.Width = w
		n.bar.FullColor = string(fg)
		n.bar.EmptyColor = string(p.Border)
		lines = append(lines, n.bar.ViewAs(n.remaining(now)))
	}

	card := s.Toast.
		BorderForeground(fg).
		Background(bg).
		Width(width - 1).
		Render(strings.Join(lines, "\n"))
	if n.closing {
		card = s.Closing.Render(card)
	}
	return card
}

// joinEnds lays out left and right on one line of width w, truncating left
// when they do not fit.
func joinEnds(left, right string, w int) string {
	rw := textutil.VisualWidth(right)
	avail := w - rw
	if right != "" {
		avail--
	}
	if textutil.VisualWidth(left) > avail {
		left = ansi.Truncate(left, max(avail, 0), textutil.TruncateEllipsis)
	}
	gap := max(w-textutil.VisualWidth(left)-rw, 0)
	return left + strings.Repeat(" ", gap) + right
}

// closeCell returns the screen cell of the close control when the toast is
// drawn at rect.
func (n *notification) closeCell(rect ui.Rect, s theme.Styles) (x, y int, ok bool) {
	if !n.opts.dismissible {
		return 0, 0, false
	}
	x = rect.X + rect.W - 1 - s.Toast.GetPaddingRight() - s.Toast.GetBorderRightSize()
	return x, rect.Y, true
}
