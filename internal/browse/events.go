package browse

import "slices"

// Event is a view-model input. The concrete types below are the only
// implementations.
type Event interface {
	event()
}

// Input appends a rune to the query.
type Input struct{ Rune rune }

// Backspace removes the last rune of the query.
type Backspace struct{}

// Clear empties the query.
type Clear struct{}

// PageDown advances one page when another page exists.
type PageDown struct{}

// PageUp goes back one page when not on the first.
type PageUp struct{}

// Resize sets the page size to the number of rows available for items.
type Resize struct{ Rows int }

// Tick requests a redraw and changes nothing.
type Tick struct{}

// Exit ends the session.
type Exit struct{}

func (Input) event()     {}
func (Backspace) event() {}
func (Clear) event()     {}
func (PageDown) event()  {}
func (PageUp) event()    {}
func (Resize) event()    {}
func (Tick) event()      {}
func (Exit) event()      {}

// Apply returns the state that results from ev. Any change to the query
// returns to the first page. Resizing keeps the page even when it falls past
// the end; Paginate clips it.
func Apply(s State, ev Event) State {
	switch ev := ev.(type) {
	case Input:
		s.query = append(slices.Clip(s.query), ev.Rune)
		s.page = 0
	case Backspace:
		if n := len(s.query); n > 0 {
			s.query = slices.Clip(s.query[:n-1])
		}
		s.page = 0
	case Clear:
		s.query = nil
		s.page = 0
	case PageDown:
		if s.page < s.MaxPages()-1 {
			s.page++
		}
	case PageUp:
		if s.page > 0 {
			s.page--
		}
	case Resize:
		s.pageSize = max(ev.Rows, 0)
	case Exit:
		s.done = true
	case Tick:
	}
	return s
}
