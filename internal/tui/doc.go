// Package tui hosts the bubbletea programs for the interactive session: a
// character picker shown before the inventory is fetched, and the item
// browser that drives the browse view-model.
//
// The bubbletea event loop is the only writer of view-model state. Key
// presses and a periodic redraw tick arrive as messages and are translated
// into browse events in Update.
package tui
