package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
)

// RenderKeybindHelp produces the transient help bar shown after SPC.
// When keyHandler has a longer buffer (e.g. "SPC n"), shows next-level hints.
// Returns "" when the leader is not active.
func RenderKeybindHelp(keyHandler *KeyHandler) string {
	if keyHandler == nil || !keyHandler.Pending() {
		return ""
	}
	bindings := NewKeyMap(keyHandler).ShortHelp()
	if len(bindings) == 0 {
		return ""
	}

	helpModel := help.New()
	helpModel.Styles.ShortKey = lipgloss.NewStyle().
		Foreground(lipgloss.AdaptiveColor{Light: "#db2777", Dark: "205"}).
		Bold(true)
	helpModel.Styles.ShortDesc = lipgloss.NewStyle().
		Foreground(lipgloss.AdaptiveColor{Light: "#6b7280", Dark: "241"})
	helpModel.Styles.ShortSeparator = helpModel.Styles.ShortDesc

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.AdaptiveColor{Light: "#0d9488", Dark: "86"}).
		Padding(0, 1)

	prefix := keyHandler.CurrentSeq()
	if prefix == "" {
		prefix = Leader
	}
	return boxStyle.Render(helpModel.Styles.ShortDesc.Render(prefix) + " " + helpModel.ShortHelpView(bindings))
}
