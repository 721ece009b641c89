// Package content holds the text normalization rules shared by every
// content backend and the HTTP surface.
package content

import (
	"encoding/json"
	"strings"
	"unicode"
)

// Slug lowercases s, collapses every run of non-alphanumeric characters
// into a single '-' and strips leading and trailing separators.
func Slug(s string) string {
	var b strings.Builder
	pendingSep := false
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if pendingSep && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingSep = false
			b.WriteRune(r)
			continue
		}
		pendingSep = true
	}
	return b.String()
}

// Normalize trims every entry and drops the empty ones. The result is never nil.
func Normalize(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// SplitLines splits newline-delimited text into normalized entries.
func SplitLines(text string) []string {
	return Normalize(strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n"))
}

// SplitComma splits comma-separated text into normalized entries.
func SplitComma(text string) []string {
	return Normalize(strings.Split(text, ","))
}

// ParseList interprets raw form values as an ordered list.
//
// Several values are taken as the list itself. A single value is decoded as
// a JSON array of strings when it looks like one, and is otherwise split with
// split.
func ParseList(values []string, split func(string) []string) []string {
	switch len(values) {
	case 0:
		return []string{}
	case 1:
		raw := strings.TrimSpace(values[0])
		if strings.HasPrefix(raw, "[") {
			var decoded []string
			if err := json.Unmarshal([]byte(raw), &decoded); err == nil {
				return Normalize(decoded)
			}
		}
		return split(raw)
	default:
		var out []string
		for _, v := range values {
			out = append(out, split(v)...)
		}
		return Normalize(out)
	}
}
