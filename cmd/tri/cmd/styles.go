package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	mdwerror "github.com/msto63/triangle/foundation/core/error"
)

// Colors
var (
	colorPrimary   = lipgloss.Color("#7C3AED")
	colorSecondary = lipgloss.Color("#10B981")
	colorError     = lipgloss.Color("#EF4444")
	colorMuted     = lipgloss.Color("#6B7280")
)

// styles renders diagnostics for one output stream. Colors are dropped
// when the stream is not a terminal.
type styles struct {
	title   lipgloss.Style
	errTag  lipgloss.Style
	code    lipgloss.Style
	hint    lipgloss.Style
	success lipgloss.Style
}

func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)

	return styles{
		title: r.NewStyle().
			Bold(true).
			Foreground(colorPrimary),

		errTag: r.NewStyle().
			Bold(true).
			Foreground(colorError),

		code: r.NewStyle().
			Foreground(colorMuted),

		hint: r.NewStyle().
			Foreground(colorMuted).
			Italic(true),

		success: r.NewStyle().
			Foreground(colorSecondary),
	}
}

// printError writes err to stderr as one diagnostic line. Usage errors
// get the command synopsis as a second line.
func (a *app) printError(err error) {
	code := mdwerror.GetCode(err)
	fmt.Fprintf(a.stderr, "%s %s %s\n",
		a.styles.errTag.Render("error:"),
		a.styles.code.Render("["+code.String()+"]"),
		err.Error())

	if !mdwerror.HasCode(err, mdwerror.CodeUsage) {
		return
	}
	var coded *mdwerror.Error
	if errors.As(err, &coded) {
		if usage, ok := coded.Details()["usage"].(string); ok {
			fmt.Fprintln(a.stderr, a.styles.hint.Render("usage: "+usage))
		}
	}
}

// printSuccess writes a short confirmation to stdout
func (a *app) printSuccess(msg string) {
	fmt.Fprintln(a.stdout, a.styles.success.Render(msg))
}
