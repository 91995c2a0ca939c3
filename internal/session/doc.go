// Package session runs the blocking startup pipeline: populate the item
// cache, list characters, let the caller choose which to include, fetch
// their inventories one at a time, and consolidate the result.
//
// Nothing is shown until every step has succeeded. Any failure aborts the
// whole load; there is no partial or offline result.
package session
