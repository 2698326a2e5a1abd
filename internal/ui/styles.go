package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Color palette: default text plus a purple accent for entity names and a
// muted gray for secondary detail. Status is conveyed with symbols, not
// colors.
var (
	// Accent style for object names, profile names, highlights
	Accent = lipgloss.NewStyle().Foreground(lipgloss.Color("#A78BFA"))

	// Muted style for secondary info: kinds, counts, hints
	Muted = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086"))

	// Bold style for emphasis
	Bold = lipgloss.NewStyle().Bold(true)
)

// IsTTY reports whether stdout is a terminal. Non-TTY output skips styling
// and rendered markdown.
func IsTTY() bool {
	return isatty.IsTerminal(os.Stdout.Fd())
}
