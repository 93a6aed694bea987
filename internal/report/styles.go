package report

import "github.com/charmbracelet/lipgloss"

// Palette holds the fixed color scheme for the report
type Palette struct {
	Title     lipgloss.Color
	Header    lipgloss.Color
	Text      lipgloss.Color
	TextDim   lipgloss.Color
	Highlight lipgloss.Color
	Warning   lipgloss.Color
}

// palette is the default report color scheme
var palette = Palette{
	Title:     lipgloss.Color("51"),  // bright_cyan
	Header:    lipgloss.Color("37"),  // cyan
	Text:      lipgloss.Color("252"), // light_grey
	TextDim:   lipgloss.Color("242"), // grey
	Highlight: lipgloss.Color("226"), // bright_yellow
	Warning:   lipgloss.Color("214"), // orange
}

var (
	titleStyle     = lipgloss.NewStyle().Foreground(palette.Title).Bold(true)
	headerStyle    = lipgloss.NewStyle().Foreground(palette.Header).Bold(true)
	textStyle      = lipgloss.NewStyle().Foreground(palette.Text)
	dimStyle       = lipgloss.NewStyle().Foreground(palette.TextDim)
	highlightStyle = lipgloss.NewStyle().Foreground(palette.Highlight).Bold(true)
	warningStyle   = lipgloss.NewStyle().Foreground(palette.Warning)
)
