package string

import (
	"strings"
	"unicode"
)

// ToSnakeCase converts a Go identifier such as "LandSize" to "land_size".
func ToSnakeCase(s string) string {
	var b strings.Builder
	runes := []rune(s)
	for i, r := range runes {
		if unicode.IsUpper(r) && i > 0 &&
			(unicode.IsLower(runes[i-1]) || (i+1 < len(runes) && unicode.IsLower(runes[i+1]))) {
			b.WriteByte('_')
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}

// NormalizeKey lower-cases s and collapses inner whitespace so user-entered
// crop names and identifiers compare equal regardless of spacing.
func NormalizeKey(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}
