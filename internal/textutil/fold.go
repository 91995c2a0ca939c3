package textutil

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// Fold returns value in a form suitable for case-insensitive comparison:
// NFC-normalised, case-folded, with surrounding whitespace removed.
func Fold(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}
	return cases.Fold().String(norm.NFC.String(value))
}
