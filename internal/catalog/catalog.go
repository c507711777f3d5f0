// Package catalog maps extraction categories to their root terms,
// output type names, and rendering strategies. It is the single place
// category knowledge lives; commands and the MCP server both resolve
// jobs here.
package catalog

import (
	"fmt"
	"strings"

	"github.com/hargabyte/cvx/internal/obo"
	"github.com/hargabyte/cvx/internal/render"
)

// Job describes one extraction: which roots seed the closure and how
// the resulting terms render. An empty TypeName means "derive from the
// first root's term name".
type Job struct {
	Roots     []obo.Ident
	TypeName  string
	Strategy  render.Strategy
	Payload   string
	SpacedDoc bool
	RawDoc    bool
	NameFix   func(string) string
}

// RenderOptions builds the render configuration for the job with the
// resolved type name.
func (j Job) RenderOptions(typeName string) render.Options {
	return render.Options{
		TypeName:  typeName,
		Strategy:  j.Strategy,
		Payload:   j.Payload,
		SpacedDoc: j.SpacedDoc,
		RawDoc:    j.RawDoc,
		NameFix:   j.NameFix,
	}
}

// UnknownCategoryError reports a category token outside the supported set.
type UnknownCategoryError struct {
	Category string
}

// Error implements the error interface.
func (e *UnknownCategoryError) Error() string {
	return fmt.Sprintf("unknown category: %s", e.Category)
}

// componentSpec is one instrument-component category.
type componentSpec struct {
	root     obo.Ident
	typeName string
}

var components = map[string]componentSpec{
	"mass-analyzer":    {root: obo.MustIdent("MS:1000443"), typeName: "MassAnalyzer"},
	"ionization-type":  {root: obo.MustIdent("MS:1000008"), typeName: "IonizationType"},
	"inlet-type":       {root: obo.MustIdent("MS:1000007"), typeName: "InletType"},
	"detector-type":    {root: obo.MustIdent("MS:1000026"), typeName: "DetectorType"},
	"collision-energy": {root: obo.MustIdent("MS:1000045"), typeName: "CollisionEnergy"},
}

// componentOrder fixes the category listing for help text and
// completion; map iteration order would shuffle it between runs.
var componentOrder = []string{
	"mass-analyzer",
	"ionization-type",
	"inlet-type",
	"detector-type",
	"collision-energy",
}

// ComponentCategories lists the supported instrument-component
// categories in presentation order.
func ComponentCategories() []string {
	return append([]string(nil), componentOrder...)
}

// Component resolves an instrument-component category to its job.
func Component(category string) (Job, error) {
	spec, ok := components[category]
	if !ok {
		return Job{}, &UnknownCategoryError{Category: category}
	}
	return Job{
		Roots:    []obo.Ident{spec.root},
		TypeName: spec.typeName,
		Strategy: render.ValueTypeFlags{},
	}, nil
}

// Custom builds a job from an explicit root accession and optional type
// name, the escape hatch for categories outside the fixed set.
func Custom(curie, typeName string) (Job, error) {
	root, err := obo.ParseIdent(curie)
	if err != nil {
		return Job{}, err
	}
	return Job{
		Roots:    []obo.Ident{root},
		TypeName: typeName,
		Strategy: render.ValueTypeFlags{},
	}, nil
}

// Software classification bits. Terms under the software root get
// flagged by which of the three classification parents they declare.
const (
	SoftwareAnalysis       uint16 = 0b001
	SoftwareDataProcessing uint16 = 0b010
	SoftwareAcquisition    uint16 = 0b100
)

// Software returns the software-term extraction job.
func Software() Job {
	return Job{
		Roots:    []obo.Ident{obo.MustIdent("MS:1000531")},
		TypeName: "SoftwareTerm",
		Strategy: render.ClassifierFlags{
			Bits: map[obo.Ident]uint16{
				obo.MustIdent("MS:1001455"): SoftwareAcquisition,
				obo.MustIdent("MS:1001456"): SoftwareAnalysis,
				obo.MustIdent("MS:1001457"): SoftwareDataProcessing,
			},
		},
		// Keeps the word visible as its own camel-case segment even when
		// the CV spells it lower-case mid-name.
		NameFix: func(name string) string {
			return strings.ReplaceAll(name, "software", "Software")
		},
	}
}

// Energy returns the dissociation-energy extraction job. The grouping
// spans several independent base categories, so the closure is the
// union over all roots.
func Energy() Job {
	return Job{
		Roots: []obo.Ident{
			obo.MustIdent("MS:1000045"),
			obo.MustIdent("MS:1000138"),
			obo.MustIdent("MS:1002680"),
			obo.MustIdent("MS:1003410"),
		},
		TypeName:  "DissociationEnergy",
		Strategy:  render.ZeroFlags{},
		Payload:   "f32",
		SpacedDoc: true,
	}
}

// Resolve maps any supported category token to its job. The "-" escape
// takes an explicit curie (and optional type name); "software",
// "energy", and "native-id" resolve to their fixed jobs; anything else
// is looked up as an instrument-component category.
func Resolve(category, curie, typeName string) (Job, error) {
	switch category {
	case "-":
		if curie == "" {
			return Job{}, fmt.Errorf("category \"-\" requires an explicit --curie")
		}
		return Custom(curie, typeName)
	case "software":
		return Software(), nil
	case "energy":
		return Energy(), nil
	case "native-id":
		return NativeID(), nil
	default:
		return Component(category)
	}
}

// NativeID returns the native spectrum identifier format job. The type
// name derives from the root term's own name.
func NativeID() Job {
	return Job{
		Roots:     []obo.Ident{obo.MustIdent("MS:1000767")},
		Strategy:  render.PatternFlags{},
		SpacedDoc: true,
		RawDoc:    true,
	}
}
