// Package language normalizes the language setting for API requests.
//
// The GW2 API localizes item names and descriptions in five languages. Users
// may configure any common spelling (ISO 639-1 or 639-2 codes, English names,
// or BCP 47 tags such as "fr-CA"); Normalize reduces them to the two-letter
// code the API expects.
package language
