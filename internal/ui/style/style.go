// Package style provides the colors, icons and text styles shared by the CLI output.
package style

import "github.com/charmbracelet/lipgloss"

// Brand Colors.
var (
	Iris   = lipgloss.Color("#8B5CF6")
	Slate  = lipgloss.Color("#667085")
	Green  = lipgloss.Color("#22A06B")
	Yellow = lipgloss.Color("#F59E0B")
)

// Icons.
const (
	Check = "✓"
	Dot   = "●"
)

// Styles groups the text styles of dependency listings for one renderer.
type Styles struct {
	Header    lipgloss.Style
	Name      lipgloss.Style
	Version   lipgloss.Style
	Requested lipgloss.Style
	Installed lipgloss.Style
	Missing   lipgloss.Style
}

// NewStyles builds the listing styles bound to r.
func NewStyles(r *lipgloss.Renderer) Styles {
	return Styles{
		Header:    r.NewStyle().Bold(true).Foreground(Iris),
		Name:      r.NewStyle().Bold(true),
		Version:   r.NewStyle().Foreground(Green),
		Requested: r.NewStyle().Foreground(Slate),
		Installed: r.NewStyle().Foreground(Green),
		Missing:   r.NewStyle().Foreground(Yellow),
	}
}
