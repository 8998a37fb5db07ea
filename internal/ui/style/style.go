// Package style provides shared colors, icons and lipgloss styles for the CLI.
package style

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/iconkit/internal/ui/output"
)

// Palette.
var (
	Iris   = lipgloss.Color("#8B5CF6")
	Slate  = lipgloss.Color("#667085")
	Green  = lipgloss.Color("#0A7C0A")
	Red    = lipgloss.Color("#C41E3A")
	Yellow = lipgloss.Color("#F59E0B")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Dot     = "●"
	Circle  = "○"
)

// Styles bundles the lipgloss styles bound to one output.
type Styles struct {
	Success lipgloss.Style
	Failure lipgloss.Style
	Muted   lipgloss.Style
	Accent  lipgloss.Style
}

// New returns styles rendering to w with the CLI color profile.
func New(w io.Writer) Styles {
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(output.ColorProfile())

	return Styles{
		Success: r.NewStyle().Foreground(Green),
		Failure: r.NewStyle().Foreground(Red),
		Muted:   r.NewStyle().Foreground(Slate),
		Accent:  r.NewStyle().Foreground(Iris).Bold(true),
	}
}
