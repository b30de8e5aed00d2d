// Package textclean normalizes raw posting text before analysis.
package textclean

import (
	"regexp"
	"strings"
)

var (
	scriptRe     = regexp.MustCompile(`(?is)<script.*?>.*?</script>`)
	styleRe      = regexp.MustCompile(`(?is)<style.*?>.*?</style>`)
	tagRe        = regexp.MustCompile(`<[^>]+>`)
	whitespaceRe = regexp.MustCompile(`\s+`)
	quoteRe      = regexp.MustCompile("[“”»«]")
	dashRe       = regexp.MustCompile("[–—]")
)

// Cleaner strips HTML and normalizes whitespace and punctuation.
type Cleaner struct{}

// NewCleaner returns a ready Cleaner.
func NewCleaner() *Cleaner {
	return &Cleaner{}
}

// Clean returns the normalized form of raw. It never fails; the worst
// case is an empty string.
func (c *Cleaner) Clean(raw string) string {
	text := scriptRe.ReplaceAllString(raw, " ")
	text = styleRe.ReplaceAllString(text, " ")
	text = tagRe.ReplaceAllString(text, " ")

	text = strings.ReplaceAll(text, "\r", " ")
	text = strings.ReplaceAll(text, "\n", " ")
	text = whitespaceRe.ReplaceAllString(text, " ")

	text = quoteRe.ReplaceAllString(text, `"`)
	text = dashRe.ReplaceAllString(text, "-")

	return strings.TrimSpace(text)
}
