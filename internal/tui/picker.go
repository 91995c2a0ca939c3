package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// Picker is a multi-select list of character names.
type Picker struct {
	names     []string
	selected  []bool
	cursor    int
	submitted bool
	cancelled bool
}

// NewPicker lists names with every entry selected when selectAll is set.
func NewPicker(names []string, selectAll bool) Picker {
	selected := make([]bool, len(names))
	for i := range selected {
		selected[i] = selectAll
	}
	return Picker{names: names, selected: selected}
}

// Selected returns the chosen names in list order.
func (p Picker) Selected() []string {
	var out []string
	for i, name := range p.names {
		if p.selected[i] {
			out = append(out, name)
		}
	}
	return out
}

// Submitted reports whether the user confirmed the selection.
func (p Picker) Submitted() bool { return p.submitted }

// Cancelled reports whether the user left without confirming.
func (p Picker) Cancelled() bool { return p.cancelled }

func (p Picker) Init() tea.Cmd { return nil }

func (p Picker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return p, nil
	}
	switch key.String() {
	case "ctrl+c", "alt+q", "esc", "q":
		p.cancelled = true
		return p, tea.Quit
	case "enter":
		p.submitted = true
		return p, tea.Quit
	case "up", "k":
		if p.cursor > 0 {
			p.cursor--
		}
	case "down", "j":
		if p.cursor < len(p.names)-1 {
			p.cursor++
		}
	case " ", "x":
		if len(p.names) > 0 {
			p.selected = toggled(p.selected, p.cursor)
		}
	case "a":
		all := !allTrue(p.selected)
		p.selected = make([]bool, len(p.names))
		for i := range p.selected {
			p.selected[i] = all
		}
	}
	return p, nil
}

func (p Picker) View() string {
	if p.submitted || p.cancelled {
		return ""
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render("Select characters"))
	b.WriteString("\n")
	b.WriteString(hintStyle.Render("space toggles · a toggles all · enter confirms · esc cancels"))
	b.WriteString("\n\n")
	for i, name := range p.names {
		mark := emptyMark
		if p.selected[i] {
			mark = selectedMark
		}
		line := mark + " " + name
		if i == p.cursor {
			line = activeRow.Render("> ") + line
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

// toggled copies flags so earlier Picker values keep their selection.
func toggled(flags []bool, i int) []bool {
	out := append([]bool(nil), flags...)
	out[i] = !out[i]
	return out
}

func allTrue(flags []bool) bool {
	for _, f := range flags {
		if !f {
			return false
		}
	}
	return true
}
