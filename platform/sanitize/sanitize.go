// Package sanitize strips markup from user-entered text before storage.
// Medication and physician notes are free-text fields rendered back to the
// browser, so they must never carry HTML.
package sanitize

import (
	"regexp"
	"strings"
)

var htmlTagRegex = regexp.MustCompile(`<[^>]*>`)

// StripHTML removes HTML tags and decodes the common entities, then strips
// again so entity-encoded tags do not survive the first pass.
func StripHTML(s string) string {
	result := htmlTagRegex.ReplaceAllString(s, "")
	result = strings.ReplaceAll(result, "&lt;", "<")
	result = strings.ReplaceAll(result, "&gt;", ">")
	result = strings.ReplaceAll(result, "&amp;", "&")
	result = strings.ReplaceAll(result, "&quot;", "\"")
	result = strings.ReplaceAll(result, "&#39;", "'")
	result = htmlTagRegex.ReplaceAllString(result, "")
	return strings.TrimSpace(result)
}

// TextPtr sanitizes an optional text field, passing nil through.
func TextPtr(s *string) *string {
	if s == nil {
		return nil
	}
	result := StripHTML(*s)
	return &result
}
