// Package extract runs the closure-then-render pipeline for one
// extraction job against a loaded CV document.
package extract

import (
	"github.com/hargabyte/cvx/internal/catalog"
	"github.com/hargabyte/cvx/internal/closure"
	"github.com/hargabyte/cvx/internal/obo"
	"github.com/hargabyte/cvx/internal/render"
)

// Run computes the job's closure over doc and renders the enum block.
// Multi-root jobs compute each root's closure independently and union
// them. The returned text is complete or absent: any failure yields no
// partial output.
func Run(doc *obo.Document, job catalog.Job) (string, error) {
	results := make([]*closure.Result, len(job.Roots))
	for i, root := range job.Roots {
		results[i] = closure.Compute(doc.Terms, root)
	}
	merged := closure.Merge(results...)

	typeName := job.TypeName
	if typeName == "" {
		root := job.Roots[0]
		rootTerm, ok := merged.Lookup[root]
		if !ok {
			return "", &obo.TermNotFoundError{ID: root}
		}
		if rootTerm.Name == "" {
			return "", &render.MissingNameError{ID: root}
		}
		typeName = render.TypeName(rootTerm.Name)
	}

	terms, err := merged.Terms()
	if err != nil {
		return "", err
	}

	return render.Generate(terms, job.RenderOptions(typeName))
}
