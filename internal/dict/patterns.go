package dict

import "sort"

// patternLibrary holds named regex presets for common identifier formats,
// usable wherever a regex_pattern constraint is accepted.
var patternLibrary = map[string]string{
	"spanish_dni":         `^[0-9]{8}[TRWAGMYFPDXBNJZSQVHLCKE]$`,
	"spanish_nie":         `^[XYZ][0-9]{7}[TRWAGMYFPDXBNJZSQVHLCKE]$`,
	"spanish_cif":         `^[ABCDEFGHJNPQRSUVW][0-9]{7}[0-9A-J]$`,
	"spanish_postal_code": `^(?:0[1-9]|[1-4]\d|5[0-2])\d{3}$`,
	"spanish_phone":       `^(?:\+34|0034|34)?[6789]\d{8}$`,
	"spanish_iban":        `^ES\d{2}\d{4}\d{4}\d{2}\d{10}$`,
	"email":               `^[a-zA-Z0-9_.+-]+@[a-zA-Z0-9-]+\.[a-zA-Z0-9-.]+$`,
	"url":                 `^https?://(?:www\.)?[-a-zA-Z0-9@:%._\+~#=]{1,256}\.[a-zA-Z0-9()]{1,6}\b(?:[-a-zA-Z0-9()@:%_\+.~#?&/=]*)$`,
	"alphanumeric":        `^[a-zA-Z0-9]+$`,
}

// LookupPattern returns the preset pattern registered under the given name
func LookupPattern(name string) (string, bool) {
	p, ok := patternLibrary[name]
	return p, ok
}

// PatternNames returns the sorted names of all regex presets
func PatternNames() []string {
	names := make([]string, 0, len(patternLibrary))
	for name := range patternLibrary {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
