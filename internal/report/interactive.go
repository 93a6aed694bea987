package report

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// viewer is a minimal scrollable pager over rendered report lines
type viewer struct {
	lines  []string
	offset int
	height int
}

// newViewer creates a viewer over the rendered report text
func newViewer(rendered string) *viewer {
	return &viewer{
		lines:  strings.Split(strings.TrimRight(rendered, "\n"), "\n"),
		height: 24,
	}
}

// Init implements tea.Model
func (v *viewer) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (v *viewer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.height = msg.Height
		v.clampOffset()

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return v, tea.Quit
		case "up", "k":
			v.offset--
		case "down", "j":
			v.offset++
		case "pgup", "b":
			v.offset -= v.pageSize()
		case "pgdown", "f", " ":
			v.offset += v.pageSize()
		case "home", "g":
			v.offset = 0
		case "end", "G":
			v.offset = len(v.lines)
		}
		v.clampOffset()
	}

	return v, nil
}

// View implements tea.Model
func (v *viewer) View() string {
	var sb strings.Builder

	end := v.offset + v.pageSize()
	if end > len(v.lines) {
		end = len(v.lines)
	}
	for _, line := range v.lines[v.offset:end] {
		sb.WriteString(line)
		sb.WriteString("\n")
	}

	sb.WriteString(dimStyle.Render("  ↑/↓ scroll · q quit"))
	return sb.String()
}

// pageSize is the number of report lines visible at once, leaving one
// row for the footer
func (v *viewer) pageSize() int {
	if v.height <= 1 {
		return 1
	}
	return v.height - 1
}

func (v *viewer) clampOffset() {
	max := len(v.lines) - v.pageSize()
	if max < 0 {
		max = 0
	}
	if v.offset > max {
		v.offset = max
	}
	if v.offset < 0 {
		v.offset = 0
	}
}

// ShowInteractive displays the report in a scrollable full-screen
// session and blocks until the user quits.
func (r *Report) ShowInteractive(verbose bool) error {
	p := tea.NewProgram(newViewer(r.Render(verbose)), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
