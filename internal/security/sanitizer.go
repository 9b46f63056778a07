// Package security holds text sanitization for values that are stored and echoed back to clients.
package security

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// maxPasses bounds re-sanitizing of text that decodes into new markup.
const maxPasses = 4

// TextSanitizer removes markup from free text.
type TextSanitizer struct {
	policy *bluemonday.Policy
}

// NewTextSanitizer creates a sanitizer backed by the bluemonday strict policy.
func NewTextSanitizer() *TextSanitizer {
	return &TextSanitizer{policy: bluemonday.StrictPolicy()}
}

// Sanitize strips every HTML element and returns plain, trimmed text.
// Entities are decoded so "mac & cheese" and "<200g chicken" survive as typed. Decoded text
// is sanitized again until it no longer changes, so escaped markup cannot come back as tags.
func (s *TextSanitizer) Sanitize(raw string) string {
	clean := raw
	for i := 0; i < maxPasses; i++ {
		next := html.UnescapeString(s.policy.Sanitize(clean))
		if next == clean {
			break
		}
		clean = next
	}
	return strings.TrimSpace(clean)
}
