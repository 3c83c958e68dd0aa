package validation

import (
	"html"
	"strings"
)

// Sanitize trims whitespace and escapes markup-significant characters (& < > " ')
// as HTML entities. Existing entities are decoded first, so sanitizing an
// already sanitized value returns it unchanged.
func Sanitize(s string) string {
	return html.EscapeString(Normalize(s))
}

// Normalize decodes entities and trims whitespace. It is the form Sanitize
// escapes, so rules checked against it hold for the sanitized value too.
func Normalize(s string) string {
	return strings.TrimSpace(html.UnescapeString(s))
}

// SingleLine folds CR and LF into spaces, for values written into headers and log lines
func SingleLine(s string) string {
	return strings.NewReplacer("\r\n", " ", "\r", " ", "\n", " ").Replace(s)
}
