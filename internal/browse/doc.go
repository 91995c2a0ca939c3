// Package browse is the view-model behind the interactive item list.
//
// State holds the consolidated items, the free-text query, and the current
// page. It never mutates in place: Apply takes a state and an Event and
// returns the next state, so the terminal loop is the single writer and
// tests can drive transitions without a terminal.
//
// Each frame the shell renders Rows, which runs Filter followed by Paginate
// over the current query and page.
package browse
