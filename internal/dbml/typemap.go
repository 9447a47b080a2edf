package dbml

import "strings"

type typeMapping struct {
	label string
	tag   string
}

// typeMappings is evaluated in order with exact-or-prefix matching, so a
// label must appear before any label it has as a prefix ("datetime" before
// "date", "timezone" and "timestamp" before "time"). Reordering entries
// changes results.
var typeMappings = []typeMapping{
	// temporal (and "timezone", which "time" would otherwise shadow)
	{"datetime", "datetime"},
	{"timestamp", "datetime"},
	{"timezone", "string"},
	{"local time", "time"},
	{"date", "date"},
	{"time", "time"},
	// numeric
	{"non-negative integer", "int"},
	{"non-negative float", "float"},
	{"non-zero integer", "int"},
	{"non-zero float", "float"},
	{"positive integer", "int"},
	{"positive float", "float"},
	{"integer", "int"},
	{"float", "float"},
	{"latitude", "float"},
	{"longitude", "float"},
	{"currency amount", "float"},
	// textual
	{"text", "string"},
	{"string", "string"},
	{"url", "string"},
	{"email", "string"},
	{"phone number", "string"},
	{"language code", "string"},
	{"currency code", "string"},
	{"color", "string"},
	{"unique id", "string"},
	{"foreign id", "string"},
	{"id", "string"},
	{"enum", "string"},
}

// MapType maps a free-text field type label to a DBML primitive type.
// Matching is case- and whitespace-insensitive; unknown or empty labels fall
// back to string so generation never fails on a new label.
func MapType(label string) string {
	t := strings.ToLower(strings.TrimSpace(label))
	if t == "" {
		return "string"
	}
	for _, m := range typeMappings {
		if t == m.label || strings.HasPrefix(t, m.label) {
			return m.tag
		}
	}
	return "string"
}
