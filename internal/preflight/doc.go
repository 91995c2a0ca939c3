// Package preflight provides readiness checks for the API key and the local
// paths gw2inventory writes to.
//
// The "doctor" command runs RunAll and prints each Result. Checks never
// return errors; a failure is reported through Result.Passed and Detail so
// every check runs even when an earlier one fails.
package preflight
