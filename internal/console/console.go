package console

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
)

var (
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("33"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("32"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("31"))
)

// Printer writes emoji-prefixed status lines to a single stream.
type Printer struct {
	stream io.Writer
}

func NewPrinter(stream io.Writer) *Printer {

	os.Setenv("CLICOLOR_FORCE", "1")

	return &Printer{
		stream: stream,
	}
}

func (p *Printer) Info(emoji string, format string, a ...any) (n int, err error) {
	return fmt.Fprintf(p.stream, "  "+withEmoji(emoji)+format+"\n", a...)
}

func (p *Printer) Success(emoji string, format string, a ...any) (n int, err error) {
	return fmt.Fprintln(p.stream, successStyle.Render(fmt.Sprintf("  "+withEmoji(emoji)+format, a...)))
}

func (p *Printer) Warn(emoji string, format string, a ...any) (n int, err error) {
	return fmt.Fprintln(p.stream, warnStyle.Render(fmt.Sprintf("  "+withEmoji(emoji)+format, a...)))
}

func (p *Printer) Error(emoji string, format string, a ...any) (n int, err error) {
	return fmt.Fprintln(p.stream, errorStyle.Render(fmt.Sprintf("  "+withEmoji(emoji)+format, a...)))
}

// Prompt prints a question without a trailing newline so the answer is
// typed on the same line.
func (p *Printer) Prompt(format string, a ...any) (n int, err error) {
	return fmt.Fprintf(p.stream, "  "+format+" ", a...)
}

func withEmoji(emoji string) string {
	if emoji == "" {
		return ""
	}
	return emoji + " "
}
