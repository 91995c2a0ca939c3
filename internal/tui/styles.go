package tui

import "github.com/charmbracelet/lipgloss"

var (
	hintStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("69"))
	boxStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("62")).Padding(0, 1)
	statusStyle  = lipgloss.NewStyle().Faint(true)
	cursorStyle  = lipgloss.NewStyle().Reverse(true)
	selectedMark = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Render("[x]")
	emptyMark    = lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Render("[ ]")
	activeRow    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("230"))
)

// boxWidth returns the inner width for a bordered box spanning the terminal,
// or zero when the width is not known yet.
func boxWidth(termWidth int) int {
	// border (2) + padding (2)
	if inner := termWidth - 4; inner > 0 {
		return inner
	}
	return 0
}

func renderBox(title, body string, termWidth int) string {
	style := boxStyle
	if w := boxWidth(termWidth); w > 0 {
		style = style.Width(w)
	}
	return lipgloss.JoinVertical(lipgloss.Left, titleStyle.Render(title), style.Render(body))
}
