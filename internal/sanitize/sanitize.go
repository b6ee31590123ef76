// Package sanitize strips markup from operator-supplied strings before they
// reach stored state or the audit trail.
package sanitize

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// strictPolicy removes all HTML tags and attributes. Display names, product
// names, and audit targets are plain text only.
var strictPolicy = bluemonday.StrictPolicy()

// Text strips all HTML and trims surrounding whitespace.
func Text(input string) string {
	return strings.TrimSpace(strictPolicy.Sanitize(input))
}

// TextSlice sanitizes each string in a slice.
func TextSlice(inputs []string) []string {
	if inputs == nil {
		return nil
	}
	sanitized := make([]string, len(inputs))
	for i, input := range inputs {
		sanitized[i] = Text(input)
	}
	return sanitized
}
