package notify

import (
	"fmt"
	"io"
	"os"

	"github.com/wolferonic/swiftbudget/internal/cli"
)

// Console renders notices to a terminal with lipgloss styling.
type Console struct {
	Out io.Writer
}

// NewConsole returns a Console writing to stdout.
func NewConsole() *Console {
	return &Console{Out: os.Stdout}
}

// Notify prints the styled message.
func (c *Console) Notify(message string, severity Severity) {
	out := c.Out
	if out == nil {
		out = os.Stdout
	}

	var rendered string
	switch severity {
	case Success:
		rendered = cli.FormatSuccess(message)
	case Warning:
		rendered = cli.FormatWarning(message)
	case Error:
		rendered = cli.FormatError(message)
	default:
		rendered = cli.FormatInfo(message)
	}

	fmt.Fprintln(out, rendered)
}
