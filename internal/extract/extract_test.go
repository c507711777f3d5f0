package extract

import (
	"errors"
	"strings"
	"testing"

	"github.com/hargabyte/cvx/internal/catalog"
	"github.com/hargabyte/cvx/internal/obo"
)

// toyDocument builds a small ontology with a mass analyzer branch, a
// detached branch, and a nameless orphan outside both.
func toyDocument() *obo.Document {
	return &obo.Document{
		Terms: []*obo.Term{
			{
				ID:      obo.MustIdent("MS:1000079"),
				Name:    "fourier transform ion cyclotron resonance mass spectrometer",
				Parents: []obo.Ident{obo.MustIdent("MS:1000443")},
			},
			{
				ID:   obo.MustIdent("MS:1000443"),
				Name: "mass analyzer",
			},
			{
				ID:      obo.MustIdent("MS:1000084"),
				Name:    "time-of-flight",
				Parents: []obo.Ident{obo.MustIdent("MS:1000443")},
			},
			{
				ID:   obo.MustIdent("MS:1000008"),
				Name: "ionization type",
			},
			{
				ID:      obo.MustIdent("MS:1000073"),
				Name:    "electrospray ionization",
				Parents: []obo.Ident{obo.MustIdent("MS:1000008")},
			},
		},
	}
}

func TestRun_MassAnalyzer(t *testing.T) {
	job, err := catalog.Component("mass-analyzer")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := Run(toyDocument(), job)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.HasPrefix(got, "pub enum MassAnalyzer {") {
		t.Errorf("output does not open the enum block: %q", got)
	}
	if !strings.HasSuffix(got, "\n}") {
		t.Errorf("output does not close the enum block: %q", got)
	}
	for _, field := range []string{
		"FourierTransformIonCyclotronResonanceMassSpectrometer,",
		"TimeOfFlight,",
		"MassAnalyzer,",
	} {
		if !strings.Contains(got, field) {
			t.Errorf("output missing %q:\n%s", field, got)
		}
	}
	// The detached ionization branch stays out.
	if strings.Contains(got, "ElectrosprayIonization") {
		t.Errorf("output leaked a term outside the closure:\n%s", got)
	}

	// Accessions appear in sorted order.
	i79 := strings.Index(got, "accession=1000079")
	i84 := strings.Index(got, "accession=1000084")
	i443 := strings.Index(got, "accession=1000443")
	if i79 < 0 || i84 < 0 || i443 < 0 || !(i79 < i84 && i84 < i443) {
		t.Errorf("accessions out of order (%d, %d, %d):\n%s", i79, i84, i443, got)
	}
}

func TestRun_DerivedTypeName(t *testing.T) {
	job, err := catalog.Custom("MS:1000008", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := Run(toyDocument(), job)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(got, "pub enum IonizationType {") {
		t.Errorf("type name not derived from root term name: %q", got)
	}
}

func TestRun_MissingRoot(t *testing.T) {
	job, err := catalog.Custom("MS:9999999", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out, err := Run(toyDocument(), job)
	if err == nil {
		t.Fatal("expected error for a root absent from the document")
	}
	var notFound *obo.TermNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("error type = %T, want *TermNotFoundError", err)
	}
	if out != "" {
		t.Errorf("output must be empty on failure, got %q", out)
	}
}

func TestRun_MultiRootUnion(t *testing.T) {
	job, err := catalog.Custom("MS:1000443", "Instrument")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	job.Roots = append(job.Roots, obo.MustIdent("MS:1000008"))

	got, err := Run(toyDocument(), job)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, field := range []string{"MassAnalyzer,", "IonizationType,", "ElectrosprayIonization,"} {
		if !strings.Contains(got, field) {
			t.Errorf("union output missing %q:\n%s", field, got)
		}
	}
}
