// Package strings provides small string and slice helpers shared across packages
package strings

import std "strings"

// IfEmpty returns def if in is empty, otherwise returns in
func IfEmpty[T any](in []T, def []T) []T {
	if len(in) == 0 {
		return def
	}
	return in
}

// IsBlank reports whether s has no non-whitespace content
func IsBlank(s string) bool { return std.TrimSpace(s) == "" }

// MustPrefix normalizes a route root like /api/v1: one leading slash, no trailing slash.
// Panics when nothing is left after trimming
func MustPrefix(s string) string {
	s = "/" + std.Trim(std.TrimSpace(s), " /")
	if s == "/" {
		panic("root path is required")
	}
	return s
}

// LastLine returns the final line of s after trailing line breaks are dropped.
// ok is false when s holds nothing but line breaks
func LastLine(s string) (line string, ok bool) {
	s = std.TrimRight(s, "\r\n")
	if s == "" {
		return "", false
	}
	if i := std.LastIndexByte(s, '\n'); i >= 0 {
		s = s[i+1:]
	}
	return std.TrimSuffix(s, "\r"), true
}

// SplitNonBlank splits s on sep and drops fragments that are blank
func SplitNonBlank(s, sep string) []string {
	parts := std.Split(s, sep)
	out := parts[:0]
	for _, p := range parts {
		if !IsBlank(p) {
			out = append(out, p)
		}
	}
	return out
}
