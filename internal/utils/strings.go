package utils

import (
	"strings"
	"unicode"
)

// NormalizeSpace collapses repeated whitespace into a single space.
func NormalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// ContainsLetter reports whether s has at least one unicode letter. Pure
// digit or punctuation strings do not qualify as locations.
func ContainsLetter(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}
