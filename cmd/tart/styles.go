package main

import (
	"errors"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/ashn-dot-dev/tart"
)

var (
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	contextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// renderError formats a diagnostic for stderr, appending the offending
// source line when it can be recovered. Styling only applies when stderr
// is a terminal.
func renderError(err error) string {
	msg := err.Error()
	raw := ""

	var terr *tart.Error
	if errors.As(err, &terr) {
		if line, available, rerr := terr.RawLine(); rerr == nil && available {
			raw = "    " + line
		}
	}

	if isatty.IsTerminal(os.Stderr.Fd()) {
		msg = errorStyle.Render(msg)
		if raw != "" {
			raw = contextStyle.Render(raw)
		}
	}
	if raw != "" {
		return msg + "\n" + raw
	}
	return msg
}
