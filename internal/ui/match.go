package ui

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// lowerKey lowercases s with the root locale. Unlike case folding it keeps
// ß and ligatures intact, so "ss" does not match "Straße".
func lowerKey(s string) string {
	return cases.Lower(language.Und).String(s)
}

// matchName reports whether filter occurs in name, ignoring case.
func matchName(name, filter string) bool {
	if filter == "" {
		return true
	}
	return strings.Contains(lowerKey(name), lowerKey(filter))
}
