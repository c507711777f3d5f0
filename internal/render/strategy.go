package render

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/hargabyte/cvx/internal/obo"
)

// Strategy derives the flags literal and the description text for one
// term. The flags literal is embedded verbatim inside the annotation's
// flags={...} payload, so bitmask strategies return a decimal integer
// while the pattern strategy returns a raw-string literal.
type Strategy interface {
	Render(term *obo.Term) (flags string, descr string, err error)
}

// ValueTypeFlags accumulates a ValueType bitmask from the term's
// has_value_type relationships.
type ValueTypeFlags struct{}

// Render implements Strategy.
func (ValueTypeFlags) Render(term *obo.Term) (string, string, error) {
	mask := NoType
	for _, rel := range term.Relationships {
		if rel.Type != "has_value_type" {
			continue
		}
		vt, err := ValueTypeFromXSD(rel.Target)
		if err != nil {
			return "", "", err
		}
		mask |= vt
	}
	return strconv.Itoa(int(mask)), SanitizeDefinition(term.Definition), nil
}

// ClassifierFlags derives a bitmask from membership of specific direct
// parents, e.g. the three software classification terms.
type ClassifierFlags struct {
	Bits map[obo.Ident]uint16
}

// Render implements Strategy.
func (c ClassifierFlags) Render(term *obo.Term) (string, string, error) {
	var mask uint16
	for _, parent := range term.Parents {
		mask |= c.Bits[parent]
	}
	return strconv.Itoa(int(mask)), SanitizeDefinition(term.Definition), nil
}

// ZeroFlags emits a constant zero flags payload; used for enums whose
// variants carry a numeric payload instead of type flags.
type ZeroFlags struct{}

// Render implements Strategy.
func (ZeroFlags) Render(term *obo.Term) (string, string, error) {
	return "0", SanitizeDefinition(term.Definition), nil
}

// typeFragment matches the "name=xsd:type" fragments of a native
// identifier format definition.
var typeFragment = regexp.MustCompile(`([A-Za-z]+)=(xsd:(IDREF|long|nonNegativeInteger|positiveInteger|string))`)

// xsdToRegex maps the xsd tokens appearing in native-id format
// definitions to the pattern matching their lexical space.
var xsdToRegex = map[string]string{
	"IDREF":              `\S+`,
	"long":               `-?\d+`,
	"nonNegativeInteger": `\d+`,
	"positiveInteger":    `\d+`,
	"string":             `\S+`,
}

// formatMarker introduces the format template inside a native-id term
// definition, e.g. "Native format defined by scan=xsd:nonNegativeInteger."
const formatMarker = "defined by "

// PatternFlags rewrites the definition's format template into a regular
// expression with named capture groups. The pattern doubles as the
// description so generated docs show what the identifier looks like.
// Definitions without the format marker fall back to a catch-all.
type PatternFlags struct{}

// Render implements Strategy.
func (PatternFlags) Render(term *obo.Term) (string, string, error) {
	pattern := PatternFromDefinition(term.Definition)
	return `r"` + pattern + `"`, pattern, nil
}

// PatternFromDefinition extracts and rewrites the format template of a
// native-id definition into a regular expression.
func PatternFromDefinition(def string) string {
	_, tail, ok := strings.Cut(def, formatMarker)
	if !ok {
		return "(.+)"
	}
	tail = strings.TrimRight(tail, ".")
	return typeFragment.ReplaceAllStringFunc(tail, func(m string) string {
		groups := typeFragment.FindStringSubmatch(m)
		return groups[1] + "=(?<" + groups[1] + ">" + xsdToRegex[groups[3]] + ")"
	})
}
