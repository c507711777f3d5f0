package obo

// Relationship is a typed, non-structural edge declared on a term, such
// as "has_value_type xsd:integer". Targets are kept as raw tokens since
// they may reference XSD types rather than CV terms.
type Relationship struct {
	Type   string
	Target string
}

// Term is one concept in the vocabulary. Parents holds the is_a targets
// in declaration order; the is-a graph is a DAG, so a term may declare
// zero, one, or several parents.
type Term struct {
	ID            Ident
	Name          string
	Parents       []Ident
	Relationships []Relationship
	Definition    string
}

// HeaderClause is one document-level metadata clause, e.g.
// "data-version: 4.1.130".
type HeaderClause struct {
	Tag   string
	Value string
}

// Document is a parsed OBO document: the header clauses followed by the
// term stanzas in file order. File order carries no topological
// guarantee; children may appear before their ancestors.
type Document struct {
	Header []HeaderClause
	Terms  []*Term
}

// HeaderValues returns the raw values of all header clauses with the
// given tag, in document order.
func (d *Document) HeaderValues(tag string) []string {
	var values []string
	for _, c := range d.Header {
		if c.Tag == tag {
			values = append(values, c.Value)
		}
	}
	return values
}
