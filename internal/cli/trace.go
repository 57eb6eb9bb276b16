package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"gridwalk/internal/interpreter"
)

type styles struct {
	report  lipgloss.Style
	failure lipgloss.Style
	trace   lipgloss.Style
}

// newStyles binds the label styles to w, so colours are dropped when w
// is not a terminal.
func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		report:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("10")),
		failure: r.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
		trace:   r.NewStyle().Foreground(lipgloss.Color("12")),
	}
}

// labelWidth lines trace poses up with the "Report:" label.
const labelWidth = 7

// tracer prints one line per applied command, optionally followed by a
// drawing of the room. After the first write or drawing failure it stops
// printing and keeps the error for Err.
type tracer struct {
	w      io.Writer
	draw   bool
	styles styles
	err    error
}

func (t *tracer) Observe(e interpreter.Event) {
	if t.err != nil {
		return
	}
	label := e.Kind.String() + ":"
	pad := strings.Repeat(" ", max(labelWidth-len(label), 0))
	if _, err := fmt.Fprintf(t.w, "%s%s %v\n", t.styles.trace.Render(label), pad, e.Pose); err != nil {
		t.err = err
		return
	}
	if t.draw {
		t.err = e.Room.Display(t.w, e.Pose)
	}
}

// Err returns the first error met while tracing.
func (t *tracer) Err() error {
	return t.err
}
