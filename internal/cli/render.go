package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/modu-ai/switch/internal/ui"
)

// CLI output styles.
var (
	cliSuccess = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#059669", Dark: "#10B981"})
	cliWarn    = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#D97706", Dark: "#F59E0B"})
	cliError   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#DC2626", Dark: "#EF4444"})
	cliMuted   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: "#6B7280"})
	cliPrimary = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#C45A3C", Dark: "#DA7756"})
	cliBorder  = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#D1D5DB", Dark: "#4B5563"})
)

func symSuccess() string { return cliSuccess.Render("✓") }
func symError() string   { return cliError.Render("✗") }
func symWarning() string { return cliWarn.Render("!") }

// cardStyle returns a lipgloss style for a rounded-border card.
func cardStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(cliBorder.GetForeground()).
		Padding(0, 2)
}

// renderSuccessCard renders a success message inside a rounded border card.
func renderSuccessCard(title string, details ...string) string {
	var body strings.Builder
	body.WriteString(symSuccess() + " " + title)
	if len(details) > 0 {
		body.WriteString("\n\n")
		body.WriteString(strings.Join(details, "\n"))
	}
	return cardStyle().Render(body.String())
}

// field renders a "Label: value" detail line.
func field(label, value string) string {
	return cliMuted.Render(label+":") + " " + value
}

// hinter is implemented by errors that know the next command to run.
type hinter interface {
	Hint() string
}

// printFatal writes err as "fatal: ..." followed by a "hint: ..." line when
// the error carries one.
func printFatal(w io.Writer, err error) {
	_, _ = fmt.Fprintf(w, "%s %s %v\n", symError(), cliError.Render("fatal:"), err)

	if hint := hintFor(err); hint != "" {
		_, _ = fmt.Fprintf(w, "  %s %s\n", cliMuted.Render("hint:"), hint)
	}
}

func hintFor(err error) string {
	var h hinter
	if errors.As(err, &h) {
		return h.Hint()
	}
	if errors.Is(err, ui.ErrNotInteractive) {
		return "run switch from an interactive terminal"
	}
	return ""
}

// usageError wraps flag and argument errors so they get a help hint.
type usageError struct {
	cmd string
	err error
}

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }
func (e *usageError) Hint() string  { return fmt.Sprintf("run '%s --help' for usage", e.cmd) }
