// Package console prints the human-facing progress lines of a run,
// next to the structured logs.
package console

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

type Level int

const (
	Info Level = iota
	Success
	Warn
	Failure
)

var (
	prefixStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))

	levelStyles = map[Level]lipgloss.Style{
		Info:    lipgloss.NewStyle(),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		Warn:    lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		Failure: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
	}
)

type Console struct {
	out    io.Writer
	prefix string
	styled bool
}

// New creates a console writing to out. Output is only styled
// if out is a terminal.
func New(out io.Writer, prefix string) *Console {
	return &Console{
		out:    out,
		prefix: prefix,
		styled: isTerminal(out),
	}
}

// Stdout creates a console writing to the standard output.
func Stdout() *Console {
	return New(os.Stdout, "tandem")
}

// Discard creates a console that prints nothing.
func Discard() *Console {
	return New(io.Discard, "")
}

func (c *Console) Infof(format string, args ...any) {
	c.print(Info, format, args...)
}

func (c *Console) Successf(format string, args ...any) {
	c.print(Success, format, args...)
}

func (c *Console) Warnf(format string, args ...any) {
	c.print(Warn, format, args...)
}

func (c *Console) Failuref(format string, args ...any) {
	c.print(Failure, format, args...)
}

func (c *Console) print(level Level, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	prefix := fmt.Sprintf("[%s]", c.prefix)

	if c.styled {
		prefix = prefixStyle.Render(prefix)
		msg = levelStyles[level].Render(msg)
	}

	if c.prefix == "" {
		fmt.Fprintln(c.out, msg)
		return
	}

	fmt.Fprintf(c.out, "%s %s\n", prefix, msg)
}

func isTerminal(out io.Writer) bool {
	f, ok := out.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
