package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"gw2inventory/internal/browse"
)

// HintText is the first line of the browser screen.
const HintText = "Type to filter, use Alt+Q to exit"

// chromeRows counts the lines that are not item rows: hint, two box titles,
// four border lines, the input line and the status line.
const chromeRows = 9

// DefaultTickInterval is the redraw interval used when none is configured.
const DefaultTickInterval = 250 * time.Millisecond

type tickMsg time.Time

// Browser is the bubbletea model for the item list.
type Browser struct {
	state  browse.State
	tick   time.Duration
	width  int
	height int
}

// NewBrowser wraps an initial view-model state.
func NewBrowser(state browse.State, tick time.Duration) Browser {
	if tick <= 0 {
		tick = DefaultTickInterval
	}
	return Browser{state: state, tick: tick}
}

// State returns the current view-model state.
func (b Browser) State() browse.State {
	return b.state
}

func (b Browser) Init() tea.Cmd {
	return tickCmd(b.tick)
}

func (b Browser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.width = msg.Width
		b.height = msg.Height
		b.state = browse.Apply(b.state, browse.Resize{Rows: listRows(msg.Height)})
		return b, nil
	case tickMsg:
		b.state = browse.Apply(b.state, browse.Tick{})
		return b, tickCmd(b.tick)
	case tea.KeyMsg:
		for _, ev := range eventsForKey(msg) {
			b.state = browse.Apply(b.state, ev)
		}
		if b.state.Done() {
			return b, tea.Quit
		}
	}
	return b, nil
}

func (b Browser) View() string {
	if b.state.Done() {
		return ""
	}

	input := b.state.Query() + cursorStyle.Render(" ")

	rows := b.state.Rows()
	lines := make([]string, b.state.PageSize())
	copy(lines, rows)
	items := strings.Join(lines, "\n")
	if len(rows) == 0 && b.state.PageSize() > 0 {
		lines[0] = hintStyle.Render("no matching items")
		items = strings.Join(lines, "\n")
	}

	matches := len(b.state.Matches())
	status := fmt.Sprintf("page %d/%d · %d of %d items · PgUp/PgDn to page, Esc to clear",
		b.state.Page()+1, browse.MaxPages(matches, b.state.PageSize()), matches, len(b.state.Items()))

	return strings.Join([]string{
		hintStyle.Render(HintText),
		renderBox("Input", input, b.width),
		renderBox("Items", items, b.width),
		statusStyle.Render(status),
	}, "\n")
}

// eventsForKey maps a key press to view-model events. Pasted text arrives
// as a single message carrying several runes.
func eventsForKey(msg tea.KeyMsg) []browse.Event {
	switch msg.String() {
	case "alt+q", "ctrl+c", "ctrl+d":
		return []browse.Event{browse.Exit{}}
	case "esc":
		return []browse.Event{browse.Clear{}}
	case "pgdown":
		return []browse.Event{browse.PageDown{}}
	case "pgup":
		return []browse.Event{browse.PageUp{}}
	case "backspace":
		return []browse.Event{browse.Backspace{}}
	}

	switch {
	case msg.Type == tea.KeySpace:
		return []browse.Event{browse.Input{Rune: ' '}}
	case msg.Type == tea.KeyRunes && !msg.Alt:
		events := make([]browse.Event, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			events = append(events, browse.Input{Rune: r})
		}
		return events
	}
	return nil
}

func listRows(height int) int {
	return max(height-chromeRows, 1)
}

func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
