package content

import (
	"regexp"
	"strings"

	"github.com/THE-GOOD-NEWS/tgnDashboard/internal/models"
)

var htmlTags = regexp.MustCompile(`<[^>]*>`)

// ExcerptLength is how many characters of stripped text an auto-derived
// excerpt keeps.
const ExcerptLength = 300

// StripHTML removes tags and collapses surrounding whitespace.
func StripHTML(s string) string {
	return strings.TrimSpace(htmlTags.ReplaceAllString(s, ""))
}

// DeriveExcerpt builds a short summary from the legacy content blob when it
// is non-empty, otherwise from the joined block text.
func DeriveExcerpt(legacyContent string, blocks []models.ContentBlock) string {
	base := strings.TrimSpace(legacyContent)
	if base == "" {
		parts := make([]string, 0, len(blocks))
		for _, b := range blocks {
			if b.TextHTML != "" {
				parts = append(parts, b.TextHTML)
			}
		}
		base = strings.Join(parts, " ")
	}

	stripped := StripHTML(base)
	runes := []rune(stripped)
	if len(runes) > ExcerptLength {
		return string(runes[:ExcerptLength])
	}
	return stripped
}

// ContentFromBlocks regenerates the legacy content field from the block
// text, so older consumers that only read content keep working.
func ContentFromBlocks(blocks []models.ContentBlock) string {
	parts := make([]string, 0, len(blocks))
	for _, b := range blocks {
		if strings.TrimSpace(b.TextHTML) != "" {
			parts = append(parts, b.TextHTML)
		}
	}
	if len(parts) == 0 {
		return "<p></p>"
	}
	return strings.Join(parts, "\n<hr/>\n")
}
