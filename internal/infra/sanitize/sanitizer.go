// Package sanitize strips markup from user text before it is stored.
package sanitize

import (
	"strings"

	"devconnects/internal/domain/service"

	"github.com/microcosm-cc/bluemonday"
)

type strictSanitizer struct {
	policy *bluemonday.Policy
}

// NewTextSanitizer returns a sanitizer that removes every HTML element, dropping the
// content of script and style blocks. The output stays HTML-escaped and is never
// unescaped, so encoded markup cannot turn back into a live tag.
func NewTextSanitizer() service.TextSanitizer {
	return &strictSanitizer{policy: bluemonday.StrictPolicy()}
}

func (s *strictSanitizer) Sanitize(raw string) string {
	return strings.TrimSpace(s.policy.Sanitize(raw))
}
