package render

import (
	"fmt"
	"strings"

	"github.com/hargabyte/cvx/internal/obo"
)

// Options configures one enum generation: the type name, the flags
// strategy, and the entry shape.
type Options struct {
	TypeName string
	Strategy Strategy

	// Payload parameterizes each variant with a numeric type, e.g.
	// "f32" for continuous energy quantities.
	Payload string

	// SpacedDoc writes the doc attribute as `#[doc = ...]` rather than
	// `#[doc=...]`, matching the per-category output shape.
	SpacedDoc bool

	// RawDoc emits the doc string as a raw-string literal so regex
	// patterns survive without escaping.
	RawDoc bool

	// NameFix optionally rewrites the term name before field name
	// derivation (the raw name in the annotation is untouched).
	NameFix func(string) string
}

// MissingNameError reports a closure member with no name clause; such a
// term cannot be rendered and aborts the run.
type MissingNameError struct {
	ID obo.Ident
}

// Error implements the error interface.
func (e *MissingNameError) Error() string {
	return fmt.Sprintf("term name not found for %s", e.ID)
}

// Entry renders one term as an annotated enum variant. The leading
// newline and indentation are part of the entry so Generate can
// concatenate entries directly.
func Entry(term *obo.Term, opts Options) (string, error) {
	if term.Name == "" {
		return "", &MissingNameError{ID: term.ID}
	}

	flags, descr, err := opts.Strategy.Render(term)
	if err != nil {
		return "", fmt.Errorf("term %s: %w", term.ID, err)
	}

	fieldSource := term.Name
	if opts.NameFix != nil {
		fieldSource = opts.NameFix(fieldSource)
	}
	field := FieldName(fieldSource)
	if opts.Payload != "" {
		field += "(" + opts.Payload + ")"
	}

	doc := term.Name + " - " + descr
	var docAttr string
	switch {
	case opts.RawDoc && opts.SpacedDoc:
		docAttr = `#[doc = r"` + doc + `"]`
	case opts.RawDoc:
		docAttr = `#[doc=r"` + doc + `"]`
	case opts.SpacedDoc:
		docAttr = `#[doc = "` + doc + `"]`
	default:
		docAttr = `#[doc="` + doc + `"]`
	}

	var b strings.Builder
	fmt.Fprintf(&b, "\n    #[term(cv=%s, accession=%s, name=%q, flags={%s}, parents={%s})]",
		term.ID.Prefix, term.ID.Local, term.Name, flags, parentList(term.Parents))
	b.WriteString("\n    ")
	b.WriteString(docAttr)
	b.WriteString("\n    ")
	b.WriteString(field)
	b.WriteString(",")
	return b.String(), nil
}

// Generate renders the full enum block for an already-sorted term list.
// Nothing is emitted until every entry has rendered, so a failure never
// leaves a truncated block behind.
func Generate(terms []*obo.Term, opts Options) (string, error) {
	var b strings.Builder
	b.WriteString("pub enum " + opts.TypeName + " {")
	for _, term := range terms {
		entry, err := Entry(term, opts)
		if err != nil {
			return "", err
		}
		b.WriteString(entry)
	}
	b.WriteString("\n}")
	return b.String(), nil
}

// parentList formats parent accessions as a JSON-style string list.
func parentList(parents []obo.Ident) string {
	if len(parents) == 0 {
		return "[]"
	}
	quoted := make([]string, len(parents))
	for i, p := range parents {
		quoted[i] = `"` + p.String() + `"`
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}
