// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package translate

import "strings"

// Placeholder is the identifier used when a name has no alphanumeric characters.
const Placeholder = "Type"

// Sanitize converts an arbitrary schema name into a PascalCase identifier.
// ASCII letters and digits are kept; every other character is dropped and
// capitalizes the next kept character. The first kept character is capitalized.
func Sanitize(raw string) string {
	var sb strings.Builder
	capitalize := true
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		if !isAlnum(c) {
			capitalize = true
			continue
		}
		if capitalize {
			c = toUpper(c)
			capitalize = false
		}
		sb.WriteByte(c)
	}

	if sb.Len() == 0 {
		return Placeholder
	}
	return sb.String()
}

// TypeIdentifier sanitizes raw and prefixes names that would start with a digit.
func TypeIdentifier(raw string) string {
	s := Sanitize(raw)
	if isDigit(s[0]) {
		return Placeholder + s
	}
	return s
}

// LowerFirst lowercases the first character of an ASCII identifier.
func LowerFirst(s string) string {
	if s == "" {
		return s
	}
	return string(toLower(s[0])) + s[1:]
}

// SnakeCase converts a name into a lowercase, underscore-separated identifier.
// Case humps and runs of separators both become a single underscore.
func SnakeCase(raw string) string {
	var sb strings.Builder
	pendingSep := false
	prevLowerOrDigit := false
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		if !isAlnum(c) {
			pendingSep = sb.Len() > 0
			prevLowerOrDigit = false
			continue
		}
		if isUpper(c) && prevLowerOrDigit {
			pendingSep = true
		}
		if pendingSep {
			sb.WriteByte('_')
			pendingSep = false
		}
		sb.WriteByte(toLower(c))
		prevLowerOrDigit = !isUpper(c)
	}

	s := sb.String()
	switch {
	case s == "":
		return "field"
	case isDigit(s[0]):
		return "_" + s
	}
	return s
}

// IsIdentifier reports whether s is a valid ASCII identifier
// (letters, digits and underscores, not starting with a digit).
func IsIdentifier(s string) bool {
	if s == "" || isDigit(s[0]) {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isAlnum(s[i]) && s[i] != '_' {
			return false
		}
	}
	return true
}

func isAlnum(c byte) bool { return isDigit(c) || isUpper(c) || isLower(c) }
func isDigit(c byte) bool { return c >= '0' && c <= '9' }
func isUpper(c byte) bool { return c >= 'A' && c <= 'Z' }
func isLower(c byte) bool { return c >= 'a' && c <= 'z' }

func toUpper(c byte) byte {
	if isLower(c) {
		return c - ('a' - 'A')
	}
	return c
}

func toLower(c byte) byte {
	if isUpper(c) {
		return c + ('a' - 'A')
	}
	return c
}
