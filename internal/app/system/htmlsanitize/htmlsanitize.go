// internal/app/system/htmlsanitize/htmlsanitize.go

// Package htmlsanitize scrubs operator-supplied free text before it is
// stored in the document. Incident notes, group names, and broadcast
// messages all pass through here so markup injected by a compromised
// operator account never reaches another console.
package htmlsanitize

import "github.com/microcosm-cc/bluemonday"

var policy = bluemonday.UGCPolicy()

var strict = bluemonday.StrictPolicy()

// Sanitize removes unsafe HTML, keeping basic user-generated markup
// (paragraphs, emphasis, safe links).
func Sanitize(s string) string {
	return policy.Sanitize(s)
}

// Strip removes all markup, leaving plain text. Used for fields that
// are rendered verbatim, such as group names and audit details.
func Strip(s string) string {
	return strict.Sanitize(s)
}
