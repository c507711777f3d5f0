// Package render turns closure members into enum entry text. Field
// naming, value-type flags, and description handling follow the rules
// the generated annotations encode downstream.
package render

import (
	"regexp"
	"strings"
	"unicode"
)

// nameRules is the ordered substitution table applied to a term name
// before segmentation. Order matters: every symbol must already be an
// underscore (or "plus") when the segment pass runs.
var nameRules = []struct {
	old, new string
}{
	{"-", "_"},
	{":", "_"},
	{"/", "_"},
	{"+", "plus"},
	{"!", "_"},
	{" ", "_"},
}

// segmentPattern matches an underscore followed by a single letter; the
// pair collapses to the upper-cased letter, turning snake segments into
// camel-case boundaries.
var segmentPattern = regexp.MustCompile(`_[a-zA-Z]`)

// FieldName derives the identifier-safe enum field name for a term
// name. The derivation is pure and total: any name yields a valid
// identifier with no further escaping needed.
func FieldName(name string) string {
	s := name
	for _, rule := range nameRules {
		s = strings.ReplaceAll(s, rule.old, rule.new)
	}
	s = segmentPattern.ReplaceAllStringFunc(s, func(m string) string {
		return strings.ToUpper(m[1:])
	})
	if s == "" {
		return s
	}

	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	s = string(runes)

	if unicode.IsDigit(runes[0]) {
		s = "_" + s
	}
	return s
}

// TypeName derives an enum type name from a term name by title-casing
// each word and removing spaces, e.g. "mass analyzer" -> "MassAnalyzer".
func TypeName(name string) string {
	var b strings.Builder
	prevLetter := false
	for _, r := range name {
		if r == ' ' {
			prevLetter = false
			continue
		}
		if unicode.IsLetter(r) {
			if prevLetter {
				b.WriteRune(unicode.ToLower(r))
			} else {
				b.WriteRune(unicode.ToUpper(r))
			}
			prevLetter = true
		} else {
			b.WriteRune(r)
			prevLetter = false
		}
	}
	return b.String()
}

// SanitizeDefinition normalizes a definition for embedding in a quoted
// doc string: double quotes become single quotes and square brackets
// are escaped so they are not read as attribute syntax.
func SanitizeDefinition(def string) string {
	s := strings.ReplaceAll(def, `"`, "'")
	s = strings.ReplaceAll(s, "[", `\\[`)
	s = strings.ReplaceAll(s, "]", `\\]`)
	return s
}
