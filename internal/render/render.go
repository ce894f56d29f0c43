// Package render implements the flat placeholder substitution used for every
// template in the pipeline. It is deliberately not a template language: no
// conditionals, no loops, single pass, and unresolved names pass through
// verbatim so that composed layouts can be rendered in stages.
package render

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	placeholderRe = regexp.MustCompile(`\{\{\s*([^}\s]+)\s*\}\}`)
	tagRe         = regexp.MustCompile(`(?s)<.*?>`)
)

// Render substitutes every {{ name }} placeholder in template with the string
// form of params[name]. Names absent from params are left as their original
// token text. Substituted values are never re-scanned for placeholders.
func Render(template string, params map[string]any) string {
	return placeholderRe.ReplaceAllStringFunc(template, func(token string) string {
		name := placeholderRe.FindStringSubmatch(token)[1]
		if v, ok := params[name]; ok {
			return fmt.Sprint(v)
		}
		return token
	})
}

// Truncate strips markup tags from text and returns at most words
// whitespace-delimited words, joined by single spaces. No ellipsis is
// appended; truncation is silent.
func Truncate(text string, words int) string {
	if words < 0 {
		words = 0
	}
	fields := strings.Fields(tagRe.ReplaceAllString(text, " "))
	if len(fields) > words {
		fields = fields[:words]
	}
	return strings.Join(fields, " ")
}
