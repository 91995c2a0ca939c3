// Package itemcache holds the item id → metadata catalog used to describe
// inventory slots.
//
// A Cache starts empty and is populated exactly once per run: from the JSON
// snapshot on disk when it exists, otherwise from the remote catalog (all ids,
// then metadata in sequential batches of 200) followed by an atomic snapshot
// write. The snapshot never expires; it is refreshed only on request.
//
// Lookup is total after a successful Populate for every id the API can
// return. It reports a typed *MissError (matching failures.ErrNotFound) for
// unknown ids and ErrNotPopulated when called too early, leaving the decision
// to abort with the caller.
package itemcache
