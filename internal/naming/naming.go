// Package naming provides word-shaping helpers shared by the document
// renderers.
package naming

import (
	"strings"
	"unicode"
)

// TitleWords turns a snake_case or kebab-case identifier into a spaced,
// capitalized heading: "stop_times" -> "Stop Times".
func TitleWords(s string) string {
	words := strings.FieldsFunc(s, func(r rune) bool {
		return r == '_' || r == '-' || unicode.IsSpace(r)
	})

	var result strings.Builder
	for i, word := range words {
		if i > 0 {
			result.WriteByte(' ')
		}
		result.WriteString(strings.ToUpper(word[:1]))
		if len(word) > 1 {
			result.WriteString(strings.ToLower(word[1:]))
		}
	}
	return result.String()
}
