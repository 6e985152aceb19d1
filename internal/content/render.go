// Package content holds the pure rendering logic for article bodies: which
// language variant a block resolves to, the legacy-content fallback, and
// carousel stepping. Nothing here mutates state or touches the store.
package content

import (
	"github.com/THE-GOOD-NEWS/tgnDashboard/internal/models"
)

// EffectiveText picks the text a block renders with: the Arabic variant when
// Arabic is requested and the block carries a non-empty one, otherwise the
// primary text (which may itself be empty and render nothing).
func EffectiveText(b models.ContentBlock, arabic bool) string {
	if arabic && b.ArabicContent != "" {
		return b.ArabicContent
	}
	return b.TextHTML
}

// RenderedBlock is a block with its language choice resolved.
type RenderedBlock struct {
	Block models.ContentBlock
	Text  string
}

// Body is the resolved article body: either the block sequence or, when the
// article has no blocks, the legacy content blob as a single body.
type Body struct {
	Blocks        []RenderedBlock
	LegacyContent string
}

// RenderBody resolves an article body for the requested language.
func RenderBody(a *models.Article, arabic bool) Body {
	if len(a.Blocks) == 0 {
		return Body{LegacyContent: a.Content}
	}

	out := make([]RenderedBlock, 0, len(a.Blocks))
	for _, b := range a.Blocks {
		out = append(out, RenderedBlock{Block: b, Text: EffectiveText(b, arabic)})
	}
	return Body{Blocks: out}
}

// NextIndex advances a carousel index, wrapping past the last image. The
// index is view state only and is never persisted.
func NextIndex(i, count int) int {
	if count <= 0 {
		return 0
	}
	return (i + 1) % count
}

// PrevIndex steps a carousel index backwards, wrapping before the first image.
func PrevIndex(i, count int) int {
	if count <= 0 {
		return 0
	}
	return (i - 1 + count) % count
}
