package language

import (
	"strings"

	xlanguage "golang.org/x/text/language"
)

type entry struct {
	code2   string // ISO 639-1
	code3   string // ISO 639-2 primary
	alt3    string // ISO 639-2 bibliographic alternate
	display string
}

// supported lists the languages the API serves, in its documented order.
var supported = []entry{
	{"en", "eng", "", "English"},
	{"es", "spa", "", "Spanish"},
	{"de", "deu", "ger", "German"},
	{"fr", "fra", "fre", "French"},
	{"zh", "zho", "chi", "Chinese"},
}

func lookup(value string) *entry {
	for i := range supported {
		e := &supported[i]
		if value == e.code2 || value == e.code3 || (e.alt3 != "" && value == e.alt3) || value == strings.ToLower(e.display) {
			return e
		}
	}
	return nil
}

// Normalize returns the two-letter code for value. ok is false when value is
// empty or names a language the API does not serve.
func Normalize(value string) (string, bool) {
	value = strings.ToLower(strings.TrimSpace(value))
	if value == "" {
		return "", false
	}
	if e := lookup(value); e != nil {
		return e.code2, true
	}
	tag, err := xlanguage.Parse(value)
	if err != nil {
		return "", false
	}
	base, _ := tag.Base()
	if e := lookup(base.String()); e != nil {
		return e.code2, true
	}
	return "", false
}

// Codes returns the supported two-letter codes.
func Codes() []string {
	codes := make([]string, len(supported))
	for i, e := range supported {
		codes[i] = e.code2
	}
	return codes
}

// DisplayName returns the English name for a supported code, or the input
// unchanged when it is not recognized.
func DisplayName(code string) string {
	if e := lookup(strings.ToLower(strings.TrimSpace(code))); e != nil {
		return e.display
	}
	return code
}
