// Package main hosts the gw2inventory CLI entrypoint and command graph.
//
// The Cobra command tree resolves configuration and credentials, builds the
// API client and item cache, and hands off to the session loader. The
// default command opens the interactive browser; the other commands print
// the same data as tables or JSON for scripting.
//
// Keep this package thin: behaviour belongs in the internal packages and is
// only surfaced here.
package main
