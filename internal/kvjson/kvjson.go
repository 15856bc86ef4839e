// Package kvjson converts comma-separated key=value lists into JSON objects
// for declarative fixture bodies.
package kvjson

import (
	"regexp"
	"strings"
)

// numericPattern matches integer and decimal literals, with optional sign.
var numericPattern = regexp.MustCompile(`^-?\d+(\.\d+)?$`)

// Convert turns "key1=value1,key2=value2" into {"key1":"value1","key2":"value2"}.
//
// Input that is already JSON-shaped ("{}", "[]", or anything bracket
// delimited) passes through unchanged. Values that are exactly true, false or
// null, numeric, or themselves bracket-delimited stay unquoted; everything
// else is quoted. Keys are always quoted.
//
// Embedded quotes and commas are not escaped or split-protected; values
// containing them belong in a raw body, not a key-value list.
func Convert(input string) string {
	trimmed := strings.TrimSpace(input)
	if trimmed == "{}" || trimmed == "[]" {
		return trimmed
	}
	if isBracketDelimited(trimmed) {
		return trimmed
	}

	pairs := strings.Split(trimmed, ",")
	parts := make([]string, 0, len(pairs))
	for _, pair := range pairs {
		key, value, found := strings.Cut(pair, "=")
		if !found {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		parts = append(parts, `"`+key+`":`+renderValue(value))
	}
	return "{" + strings.Join(parts, ",") + "}"
}

func renderValue(value string) string {
	switch value {
	case "true", "false", "null":
		return value
	}
	if numericPattern.MatchString(value) {
		return value
	}
	if isBracketDelimited(value) {
		return value
	}
	return `"` + value + `"`
}

func isBracketDelimited(s string) bool {
	if len(s) < 2 {
		return false
	}
	return (strings.HasPrefix(s, "{") && strings.HasSuffix(s, "}")) ||
		(strings.HasPrefix(s, "[") && strings.HasSuffix(s, "]"))
}
