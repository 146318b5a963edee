package tui

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Accent is the ANSI colour of the focused panel and the title.
const Accent = lipgloss.Color("3")

const errorColor = lipgloss.Color("1")

// Styles holds every style the console view uses. All styles come from one
// lipgloss renderer bound to the program output.
type Styles struct {
	Title        lipgloss.Style
	Panel        lipgloss.Style
	ActivePanel  lipgloss.Style
	PanelTitle   lipgloss.Style
	Cursor       lipgloss.Style
	Header       lipgloss.Style
	Cell         lipgloss.Style
	ErrorCell    lipgloss.Style
	Caption      lipgloss.Style
	Status       lipgloss.Style
	StatusDetail lipgloss.Style
	Placeholder  lipgloss.Style
}

// NewStyles builds the styles for output written to w. With noColor set, or
// NO_COLOR in the environment, colours are dropped but attributes such as
// bold and reverse video are kept so the focus and cursor stay visible.
func NewStyles(w io.Writer, noColor bool) Styles {
	r := lipgloss.NewRenderer(w)

	var accent, failure lipgloss.TerminalColor = Accent, errorColor
	if noColor || termenv.EnvNoColor() {
		accent, failure = lipgloss.NoColor{}, lipgloss.NoColor{}
	}

	return Styles{
		Title: r.NewStyle().Bold(true).Foreground(accent),
		Panel: r.NewStyle().
			Border(lipgloss.NormalBorder()),
		ActivePanel: r.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(accent),
		PanelTitle:   r.NewStyle().Bold(true),
		Cursor:       r.NewStyle().Reverse(true),
		Header:       r.NewStyle().Bold(true).Padding(0, 1),
		Cell:         r.NewStyle().Padding(0, 1),
		ErrorCell:    r.NewStyle().Padding(0, 1).Foreground(failure),
		Caption:      r.NewStyle().Faint(true),
		Status:       r.NewStyle().Bold(true),
		StatusDetail: r.NewStyle().Faint(true),
		Placeholder:  r.NewStyle().Faint(true).Italic(true),
	}
}
