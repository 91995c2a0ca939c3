// Package gw2 wraps the Guild Wars 2 v2 web API endpoints the inventory
// browser needs: account character names, per-character bags, the full item
// id catalog, and batched item metadata.
//
// Requests authenticate with a bearer token. Transport failures and non-2xx
// responses are tagged failures.ErrNetwork; bodies that do not decode into the
// expected shape are tagged failures.ErrDeserialization.
package gw2
