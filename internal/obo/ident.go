// Package obo provides the in-memory model and parser for OBO-format
// controlled vocabulary documents such as the PSI-MS CV.
package obo

import (
	"fmt"
	"strconv"
	"strings"
)

// Ident is a prefixed term identifier such as MS:1000443.
// It is a value type and is used as a map key throughout the pipeline.
type Ident struct {
	Prefix string
	Local  string
}

// ParseIdent parses a CURIE-style identifier of the form "PREFIX:LOCAL".
func ParseIdent(s string) (Ident, error) {
	prefix, local, ok := strings.Cut(s, ":")
	if !ok || prefix == "" || local == "" {
		return Ident{}, fmt.Errorf("malformed identifier %q: want PREFIX:LOCAL", s)
	}
	return Ident{Prefix: prefix, Local: local}, nil
}

// MustIdent is ParseIdent for known-good literals; it panics on error.
// Intended for the static category tables.
func MustIdent(s string) Ident {
	id, err := ParseIdent(s)
	if err != nil {
		panic(err)
	}
	return id
}

// String returns the canonical PREFIX:LOCAL form.
func (id Ident) String() string {
	return id.Prefix + ":" + id.Local
}

// IsZero reports whether the identifier is the empty value.
func (id Ident) IsZero() bool {
	return id.Prefix == "" && id.Local == ""
}

// Compare orders identifiers by prefix, then by local code. Local codes
// that are both numeric compare numerically, so MS:999 sorts before
// MS:1000443 regardless of string length.
func (id Ident) Compare(other Ident) int {
	if c := strings.Compare(id.Prefix, other.Prefix); c != 0 {
		return c
	}
	a, aerr := strconv.ParseUint(id.Local, 10, 64)
	b, berr := strconv.ParseUint(other.Local, 10, 64)
	if aerr == nil && berr == nil {
		switch {
		case a < b:
			return -1
		case a > b:
			return 1
		default:
			return 0
		}
	}
	return strings.Compare(id.Local, other.Local)
}

// Less reports whether id sorts before other.
func (id Ident) Less(other Ident) bool {
	return id.Compare(other) < 0
}
