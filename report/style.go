package report

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	colorError   = lipgloss.Color("#EF4444") // Red
	colorWarning = lipgloss.Color("#F59E0B") // Amber
	colorNote    = lipgloss.Color("#10B981") // Emerald
	colorGutter  = lipgloss.Color("#06B6D4") // Cyan
)

type styles struct {
	severity  map[Severity]lipgloss.Style
	message   lipgloss.Style
	gutter    lipgloss.Style
	secondary lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) *styles {
	return &styles{
		severity: map[Severity]lipgloss.Style{
			SEV_ERROR:   r.NewStyle().Foreground(colorError).Bold(true),
			SEV_WARNING: r.NewStyle().Foreground(colorWarning).Bold(true),
			SEV_NOTE:    r.NewStyle().Foreground(colorNote).Bold(true),
		},
		message:   r.NewStyle().Bold(true),
		gutter:    r.NewStyle().Foreground(colorGutter).Bold(true),
		secondary: r.NewStyle().Foreground(colorGutter),
	}
}

// primary returns the style used for primary carets of a diagnostic.
func (s *styles) primary(sev Severity) lipgloss.Style {
	return s.severity[sev]
}
