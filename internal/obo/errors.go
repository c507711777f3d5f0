package obo

import "fmt"

// ParseError reports a malformed clause with its line number in the
// source document.
type ParseError struct {
	Line    int
	Message string
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Message)
}

// TermNotFoundError is returned when an identifier has no corresponding
// term in the document, typically a root accession that the loaded CV
// snapshot does not contain.
type TermNotFoundError struct {
	ID Ident
}

// Error implements the error interface.
func (e *TermNotFoundError) Error() string {
	return fmt.Sprintf("term not found: %s", e.ID)
}
