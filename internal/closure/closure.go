// Package closure computes is-a transitive closures over a CV term
// collection. The collection carries no ordering guarantee, so the
// computation iterates to a fixed point rather than assuming parents
// appear before children.
package closure

import (
	"sort"

	"github.com/hargabyte/cvx/internal/obo"
)

// Result holds a computed closure: the member identifiers and a lookup
// over every term seen during the scan (not only closure members), so
// callers can resolve any identifier the scan encountered.
type Result struct {
	IDs    map[obo.Ident]struct{}
	Lookup map[obo.Ident]*obo.Term
}

// Compute returns the set of identifiers reachable from the roots via
// is_a edges. Each pass scans the full collection, admitting any term
// with an is_a edge into the current set; passes repeat until one adds
// no member. The graph is a finite DAG, so this terminates, bounded by
// the longest is-a chain depth from any root.
//
// A root with no corresponding term still appears in IDs but has no
// Lookup entry; resolving it later fails with TermNotFoundError.
func Compute(terms []*obo.Term, roots ...obo.Ident) *Result {
	r := &Result{
		IDs:    make(map[obo.Ident]struct{}, len(roots)),
		Lookup: make(map[obo.Ident]*obo.Term, len(terms)),
	}
	for _, root := range roots {
		r.IDs[root] = struct{}{}
	}

	for {
		added := false
		for _, term := range terms {
			r.Lookup[term.ID] = term
			if _, ok := r.IDs[term.ID]; ok {
				continue
			}
			for _, parent := range term.Parents {
				if _, ok := r.IDs[parent]; ok {
					r.IDs[term.ID] = struct{}{}
					added = true
					break
				}
			}
		}
		if !added {
			return r
		}
	}
}

// Merge unions independently computed closures into one. Lookup maps
// merge last-write-wins; entries for a shared key are identical records
// from the same document, so the policy is safe.
func Merge(results ...*Result) *Result {
	merged := &Result{
		IDs:    make(map[obo.Ident]struct{}),
		Lookup: make(map[obo.Ident]*obo.Term),
	}
	for _, r := range results {
		for id := range r.IDs {
			merged.IDs[id] = struct{}{}
		}
		for id, term := range r.Lookup {
			merged.Lookup[id] = term
		}
	}
	return merged
}

// Sorted returns the member identifiers ordered by prefix, then local
// code (numeric when possible). Rendering iterates this order so output
// never depends on map iteration.
func (r *Result) Sorted() []obo.Ident {
	ids := make([]obo.Ident, 0, len(r.IDs))
	for id := range r.IDs {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i].Less(ids[j]) })
	return ids
}

// Terms resolves the sorted members against the lookup. A member with
// no record (a root absent from the document) is a fatal configuration
// error.
func (r *Result) Terms() ([]*obo.Term, error) {
	ids := r.Sorted()
	terms := make([]*obo.Term, 0, len(ids))
	for _, id := range ids {
		term, ok := r.Lookup[id]
		if !ok {
			return nil, &obo.TermNotFoundError{ID: id}
		}
		terms = append(terms, term)
	}
	return terms, nil
}
