// Package sanitize defangs free-text, URL, and email fields before they are
// persisted. Notes and descriptions may later be rendered as HTML-adjacent
// content, so markup is stripped rather than escaped.
package sanitize

import (
	"html"
	"net/mail"
	"net/url"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// strict strips all HTML elements and attributes.
var strict = bluemonday.StrictPolicy()

// Text strips markup from free text and trims surrounding whitespace.
func Text(s string) string {
	return strings.TrimSpace(html.UnescapeString(strict.Sanitize(s)))
}

// URL returns the input when it parses as an absolute http or https URL,
// and the empty string otherwise.
func URL(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	u, err := url.Parse(s)
	if err != nil {
		return ""
	}
	switch u.Scheme {
	case "http", "https":
		return u.String()
	}
	return ""
}

// Email returns the lowercased address when the input parses as a bare
// email address, and the empty string otherwise.
func Email(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Address != s {
		return ""
	}
	return strings.ToLower(addr.Address)
}
