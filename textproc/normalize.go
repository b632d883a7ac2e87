package textproc

import (
	"regexp"
	"strings"
)

// Truncation bounds for the downstream classifier, which is token-limited.
// Text longer than maxCleanLength keeps its head and tail.
const (
	maxCleanLength = 500
	headLength     = 400
	tailLength     = 100
)

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	urlRe        = regexp.MustCompile(`http[s]?://(?:[a-zA-Z]|[0-9]|[$-_@.&+]|[!*\(\),]|(?:%[0-9a-fA-F][0-9a-fA-F]))+`)
	emailRe      = regexp.MustCompile(`\S+@\S+`)
)

// Normalize cleans raw text before it is handed to the classifier: collapses
// whitespace, strips URL and email tokens, and truncates long text to the
// first 400 plus the last 100 characters. Idempotent, never fails; degenerate
// input yields the empty string.
func Normalize(text string) string {
	t := strings.TrimSpace(text)
	t = whitespaceRe.ReplaceAllString(t, " ")
	t = urlRe.ReplaceAllString(t, "")
	t = emailRe.ReplaceAllString(t, "")
	t = strings.TrimSpace(whitespaceRe.ReplaceAllString(t, " "))

	r := []rune(t)
	if len(r) > maxCleanLength {
		t = string(r[:headLength]) + " " + string(r[len(r)-tailLength:])
		t = strings.TrimSpace(whitespaceRe.ReplaceAllString(t, " "))
	}
	return t
}
