// Package failures defines the error markers shared by the remote client,
// the item cache, configuration loading, and the CLI.
//
// Every startup failure is tagged with exactly one marker (network,
// deserialization, io, configuration, not found) through Wrap so callers can
// classify it with errors.Is while the message keeps component and operation
// context. Hint turns a tagged error into the next step printed to the user.
package failures
