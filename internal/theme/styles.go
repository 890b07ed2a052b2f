package theme

import (
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/lipgloss"
)

// Styles contains the style definitions shared by dialogs and notifications.
type Styles struct {
	// Dialog
	Box          lipgloss.Style // Dialog box (rounded border)
	Title        lipgloss.Style // Bold, centered
	Content      lipgloss.Style // Secondary text, centered
	Close        lipgloss.Style // Close control (×)
	Button       lipgloss.Style // Unfocused button
	ButtonFocus  lipgloss.Style // Focused confirm button
	CancelFocus  lipgloss.Style // Focused cancel button
	Input        lipgloss.Style // Text field frame
	InputFocus   lipgloss.Style // Focused text field frame
	InputError   lipgloss.Style // Field that failed validation
	FieldLabel   lipgloss.Style
	ErrorMessage lipgloss.Style // Per-field validation message
	Hint         lipgloss.Style // Help text (dim)
	Selected     lipgloss.Style // Highlighted list row
	Muted        lipgloss.Style // Other list rows

	// Notification
	Toast        lipgloss.Style // Notification card (left accent border)
	ToastTitle   lipgloss.Style
	ToastMessage lipgloss.Style

	// Closing renders widgets that are in their dismissal animation.
	Closing lipgloss.Style
}

// NewStyles builds styles from a palette.
func NewStyles(p Palette) Styles {
	return Styles{
		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Border).
			Foreground(p.Text).
			Padding(1, 3),
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Text),
		Content: lipgloss.NewStyle().
			Foreground(p.TextSecondary),
		Close: lipgloss.NewStyle().
			Foreground(p.TextSecondary),
		Button: lipgloss.NewStyle().
			Foreground(p.Text).
			Background(p.Secondary).
			Padding(0, 2),
		ButtonFocus: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ffffff")).
			Background(p.Primary).
			Padding(0, 2),
		CancelFocus: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Text).
			Background(p.SecondaryDark).
			Padding(0, 2),
		Input: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(p.Border).
			Padding(0, 1),
		InputFocus: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(p.Primary).
			Padding(0, 1),
		InputError: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(p.Error).
			Padding(0, 1),
		FieldLabel: lipgloss.NewStyle().
			Foreground(p.TextSecondary),
		ErrorMessage: lipgloss.NewStyle().
			Foreground(p.Error),
		Hint: lipgloss.NewStyle().
			Foreground(p.TextSecondary).
			Faint(true),
		Selected: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Primary),
		Muted: lipgloss.NewStyle().
			Foreground(p.TextSecondary),
		Toast: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder(), false, false, false, true).
			Foreground(p.Text).
			Padding(0, 1),
		ToastTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Text),
		ToastMessage: lipgloss.NewStyle().
			Foreground(p.TextSecondary),
		Closing: lipgloss.NewStyle().
			Faint(true),
	}
}

// NewCompactListDelegate returns a single-line list delegate with zero
// spacing, styled from s.
func NewCompactListDelegate(s Styles) list.DefaultDelegate {
	d := list.NewDefaultDelegate()
	d.SetSpacing(0)
	d.ShowDescription = false
	d.Styles.SelectedTitle = s.Selected.PaddingLeft(1)
	d.Styles.SelectedDesc = s.Selected
	d.Styles.NormalTitle = s.Muted.PaddingLeft(1)
	d.Styles.NormalDesc = s.Muted
	return d
}

// Icon returns the glyph for a semantic kind, or "" when the kind has none.
func Icon(kind string) string {
	switch kind {
	case "success":
		return "✓"
	case "error":
		return "✕"
	case "warning":
		return "⚠"
	case "info":
		return "ℹ"
	case "question":
		return "?"
	}
	return ""
}
