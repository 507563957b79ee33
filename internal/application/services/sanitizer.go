package services

import (
	"github.com/microcosm-cc/bluemonday"
)

// TextSanitizer strips unsafe markup from pasted snippets. Only basic
// formatting and block-level elements survive; attributes, scripts and
// everything else are removed.
type TextSanitizer struct {
	policy *bluemonday.Policy
}

func NewTextSanitizer() *TextSanitizer {
	p := bluemonday.NewPolicy()
	p.AllowElements(
		// formatting
		"b", "i", "u", "s", "em", "strong", "sub", "sup",
		"ins", "del", "strike", "tt", "code", "big", "small", "br", "span",
		// blocks
		"p", "div", "h1", "h2", "h3", "h4", "h5", "h6",
		"ul", "ol", "li", "blockquote",
	)
	return &TextSanitizer{policy: p}
}

func (s *TextSanitizer) Sanitize(text string) string {
	return s.policy.Sanitize(text)
}
