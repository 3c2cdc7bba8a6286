// Package ui provides terminal output helpers: shared lipgloss styles,
// color-profile-aware writers and non-interactive table rendering.
package ui

import (
	"io"
	"os"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/colorprofile"
	"github.com/mattn/go-isatty"
)

// Shared styles for diagnostics and table output.
var (
	// ErrorStyle is used for fatal error messages (red).
	ErrorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))

	// MutedStyle is used for secondary text like totals (gray).
	MutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	// HeaderStyle is used for table headers.
	HeaderStyle = lipgloss.NewStyle().Bold(true)
)

// ColorWriter wraps w so styled output is downsampled to whatever the
// target terminal supports (handles piped output, NO_COLOR, dumb terms).
func ColorWriter(w io.Writer) io.Writer {
	return colorprofile.NewWriter(w, os.Environ())
}

// IsTerminal reports whether f is attached to a terminal. Styling is
// skipped entirely when it is not, so CI logs stay plain.
func IsTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
