package util

import (
	"strconv"
	"strings"
)

// NormalizeTicker trims whitespace and upper-cases a market symbol. Symbols
// are case-insensitive on the wire and stored upper-case everywhere.
func NormalizeTicker(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// SplitSymbols parses a comma-separated symbol list, normalizing each entry
// and dropping empties.
func SplitSymbols(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := NormalizeTicker(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// ParseIntDefault parses s as an int or returns def when empty/invalid.
func ParseIntDefault(s string, def int) int {
	if s == "" {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return v
}
