package validation

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// strictPolicy strips every tag; profile text is rendered as plain text.
var strictPolicy = bluemonday.StrictPolicy()

// SanitizeText removes markup from free text and trims whitespace.
// Entities produced by the policy are unescaped again so "R&D" stays "R&D".
func SanitizeText(input string) string {
	cleaned := strictPolicy.Sanitize(input)
	return strings.TrimSpace(html.UnescapeString(cleaned))
}

// SanitizeList applies SanitizeText to each item, dropping empty results.
func SanitizeList(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s := SanitizeText(item); s != "" {
			out = append(out, s)
		}
	}
	return out
}
