// Package logging assembles structured slog loggers and formatting helpers used
// across the inventory browser.
//
// It owns the configurable console/JSON handlers, centralizes level and output
// plumbing, and exposes context helpers that tag every line of a run with its
// session id. The interactive view owns the terminal, so the default sink is a
// log file under the configured log directory; stderr is opt-in. The package
// also provides a no-op logger for tests and wiring code that cannot fail.
package logging
