// Package htmlsanitize strips unsafe HTML from free-text fields accepted
// by the console forms (library document descriptions and similar).
package htmlsanitize

import "github.com/microcosm-cc/bluemonday"

var policy = bluemonday.UGCPolicy()

// Sanitize removes scripts, event handlers, and other unsafe markup,
// keeping user-generated-content formatting tags.
func Sanitize(s string) string {
	if s == "" {
		return ""
	}
	return policy.Sanitize(s)
}
