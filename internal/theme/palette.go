// Package theme holds the light and dark palettes, the lipgloss styles built
// from them and the controller that picks one.
package theme

import "github.com/charmbracelet/lipgloss"

// Palette is the set of colours a theme renders with.
type Palette struct {
	Primary       lipgloss.Color
	PrimaryDark   lipgloss.Color
	Secondary     lipgloss.Color
	SecondaryDark lipgloss.Color

	Background    lipgloss.Color
	Text          lipgloss.Color
	TextSecondary lipgloss.Color
	Border        lipgloss.Color
	InputBg       lipgloss.Color

	Success, SuccessBg   lipgloss.Color
	Error, ErrorBg       lipgloss.Color
	Warning, WarningBg   lipgloss.Color
	Info, InfoBg         lipgloss.Color
	Question, QuestionBg lipgloss.Color

	// Toast backgrounds, one per notification type.
	SuccessToastBg lipgloss.Color
	ErrorToastBg   lipgloss.Color
	WarningToastBg lipgloss.Color
	InfoToastBg    lipgloss.Color
}

// Light is the default palette.
var Light = Palette{
	Primary:       "#3b82f6",
	PrimaryDark:   "#2563eb",
	Secondary:     "#e5e7eb",
	SecondaryDark: "#d1d5db",

	Background:    "#ffffff",
	Text:          "#1f2937",
	TextSecondary: "#6b7280",
	Border:        "#e5e7eb",
	InputBg:       "#ffffff",

	Success: "#10b981", SuccessBg: "#d1fae5",
	Error: "#ef4444", ErrorBg: "#fee2e2",
	Warning: "#f59e0b", WarningBg: "#fef3c7",
	Info: "#3b82f6", InfoBg: "#dbeafe",
	Question: "#8b5cf6", QuestionBg: "#ede9fe",

	SuccessToastBg: "#f0fdf4",
	ErrorToastBg:   "#fef2f2",
	WarningToastBg: "#fffbeb",
	InfoToastBg:    "#eff6ff",
}

// Dark overrides the surfaces of Light; accent colours are shared.
var Dark = Palette{
	Primary:       "#3b82f6",
	PrimaryDark:   "#2563eb",
	Secondary:     "#374151",
	SecondaryDark: "#4b5563",

	Background:    "#1f2937",
	Text:          "#f9fafb",
	TextSecondary: "#d1d5db",
	Border:        "#374151",
	InputBg:       "#374151",

	Success: "#10b981", SuccessBg: "#064e3b",
	Error: "#ef4444", ErrorBg: "#7f1d1d",
	Warning: "#f59e0b", WarningBg: "#78350f",
	Info: "#3b82f6", InfoBg: "#1e3a8a",
	Question: "#8b5cf6", QuestionBg: "#581c87",

	SuccessToastBg: "#022c22",
	ErrorToastBg:   "#450a0a",
	WarningToastBg: "#451a03",
	InfoToastBg:    "#1e3a8a",
}

// Accent returns the foreground and background colours for a semantic kind
// ("success", "error", "warning", "info", "question"). Unknown kinds get the
// primary colour on the normal background.
func (p Palette) Accent(kind string) (fg, bg lipgloss.Color) {
	switch kind {
	case "success":
		return p.Success, p.SuccessBg
	case "error":
		return p.Error, p.ErrorBg
	case "warning":
		return p.Warning, p.WarningBg
	case "info":
		return p.Info, p.InfoBg
	case "question":
		return p.Question, p.QuestionBg
	}
	return p.Primary, p.Background
}

// ToastBackground returns the background of a notification of the given type.
func (p Palette) ToastBackground(kind string) lipgloss.Color {
	switch kind {
	case "success":
		return p.SuccessToastBg
	case "error":
		return p.ErrorToastBg
	case "warning":
		return p.WarningToastBg
	case "info":
		return p.InfoToastBg
	}
	return p.Background
}
