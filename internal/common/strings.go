package common

import (
	"strings"
	"unicode"
)

// UnknownStr is the String() value of out-of-range enum values.
const UnknownStr = "unknown"

// SnakeCase converts a Go identifier to snake_case, keeping acronyms together.
// Examples:
//   - "SimpleClone" -> "simple_clone"
//   - "HTTPServer" -> "http_server"
//   - "nodeV2" -> "node_v2"
func SnakeCase(s string) string {
	runes := []rune(s)

	var sb strings.Builder

	for i, r := range runes {
		if unicode.IsUpper(r) {
			if i > 0 && startsWord(runes, i) {
				sb.WriteByte('_')
			}

			sb.WriteRune(unicode.ToLower(r))

			continue
		}

		sb.WriteRune(r)
	}

	return sb.String()
}

func startsWord(runes []rune, i int) bool {
	prev := runes[i-1]
	if prev == '_' {
		return false
	}

	if unicode.IsLower(prev) || unicode.IsDigit(prev) {
		return true
	}

	// Inside an acronym: "HTTPServer" breaks before the 'S'.
	return i+1 < len(runes) && unicode.IsLower(runes[i+1])
}
