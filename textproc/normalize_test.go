package textproc

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeCollapsesWhitespace(t *testing.T) {
	assert.Equal(t, "one two three", Normalize("  one\n\ntwo\t three  "))
}

func TestNormalizeRemovesURLs(t *testing.T) {
	in := "read this https://example.com/a%20b?q=1 carefully"
	assert.Equal(t, "read this carefully", Normalize(in))

	assert.Equal(t, "see", Normalize("see http://t.co/abc123"))
}

func TestNormalizeRemovesEmails(t *testing.T) {
	assert.Equal(t, "contact for info", Normalize("contact bob@example.com for info"))
}

func TestNormalizeTruncatesLongText(t *testing.T) {
	in := strings.Repeat("a", 300) + strings.Repeat("b", 300)
	out := Normalize(in)

	assert.Equal(t, 501, utf8.RuneCountInString(out))
	assert.True(t, strings.HasPrefix(out, strings.Repeat("a", 300)+strings.Repeat("b", 100)))
	assert.True(t, strings.HasSuffix(out, strings.Repeat("b", 100)))
	assert.Contains(t, out, " ")
}

func TestNormalizeKeepsShortTextIntact(t *testing.T) {
	in := strings.Repeat("x", 500)
	assert.Equal(t, in, Normalize(in))
}

func TestNormalizeDegenerateInput(t *testing.T) {
	assert.Equal(t, "", Normalize(""))
	assert.Equal(t, "", Normalize("   \n\t  "))
	assert.Equal(t, "", Normalize("https://only-a-url.example.com/path"))
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"",
		"plain short text",
		"  spaced\n out \t text ",
		"with https://example.com/link and someone@example.org inside",
		strings.Repeat("word ", 200),
		strings.Repeat("a", 1200),
		strings.Repeat("a", 399) + " " + strings.Repeat("b", 200),
	}
	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once), "input %q", in)
	}
}
