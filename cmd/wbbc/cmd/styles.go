package cmd

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorError = lipgloss.Color("#EF4444")
	colorMuted = lipgloss.Color("#6B7280")
	colorKind  = lipgloss.Color("#7C3AED")
)

var (
	errorLabelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorError)

	positionStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Width(8)

	tokenKindStyle = lipgloss.NewStyle().
			Foreground(colorKind).
			Width(8)
)

// printError reports err as a single line
func printError(w io.Writer, err error) {
	_, _ = fmt.Fprintf(w, "%s %v\n", errorLabelStyle.Render("Error:"), err)
}
