package nlp

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// Sanitizer очищает HTML из описаний вакансий.
type Sanitizer struct {
	policy *bluemonday.Policy
}

// NewSanitizer разрешает базовое форматирование и ссылки http/https/mailto.
func NewSanitizer() *Sanitizer {
	policy := bluemonday.NewPolicy()
	policy.AllowElements("p", "br", "div", "span")
	policy.AllowElements("strong", "b", "em", "i", "u")
	policy.AllowElements("ul", "ol", "li")
	policy.AllowElements("h3", "h4", "h5", "h6")

	policy.AllowAttrs("href").OnElements("a")
	policy.RequireParseableURLs(true)
	policy.AllowURLSchemes("http", "https", "mailto")

	return &Sanitizer{policy: policy}
}

// Clean оставляет безопасную разметку.
func (s *Sanitizer) Clean(html string) string {
	return strings.TrimSpace(s.policy.Sanitize(html))
}
