package render

import (
	"errors"
	"strings"
	"testing"

	"github.com/hargabyte/cvx/internal/obo"
)

func massAnalyzerTerms() []*obo.Term {
	return []*obo.Term{
		{
			ID:      obo.MustIdent("MS:1000079"),
			Name:    "fourier transform ion cyclotron resonance mass spectrometer",
			Parents: []obo.Ident{obo.MustIdent("MS:1000443")},
		},
		{
			ID:   obo.MustIdent("MS:1000443"),
			Name: "mass analyzer",
		},
	}
}

func TestEntry_Format(t *testing.T) {
	term := &obo.Term{
		ID:         obo.MustIdent("MS:1000079"),
		Name:       "fourier transform ion cyclotron resonance mass spectrometer",
		Parents:    []obo.Ident{obo.MustIdent("MS:1000443")},
		Definition: "A mass spectrometer based on the principle of ion cyclotron resonance.",
	}

	got, err := Entry(term, Options{Strategy: ValueTypeFlags{}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "\n" +
		`    #[term(cv=MS, accession=1000079, name="fourier transform ion cyclotron resonance mass spectrometer", flags={0}, parents={["MS:1000443"]})]` + "\n" +
		`    #[doc="fourier transform ion cyclotron resonance mass spectrometer - A mass spectrometer based on the principle of ion cyclotron resonance."]` + "\n" +
		`    FourierTransformIonCyclotronResonanceMassSpectrometer,`
	if got != want {
		t.Errorf("entry mismatch:\ngot:  %q\nwant: %q", got, want)
	}
}

func TestEntry_MissingName(t *testing.T) {
	term := &obo.Term{ID: obo.MustIdent("MS:1000443")}

	_, err := Entry(term, Options{Strategy: ValueTypeFlags{}})
	if err == nil {
		t.Fatal("expected error for term without a name")
	}
	var missing *MissingNameError
	if !errors.As(err, &missing) {
		t.Fatalf("error type = %T, want *MissingNameError", err)
	}
	if missing.ID != obo.MustIdent("MS:1000443") {
		t.Errorf("error names %s, want MS:1000443", missing.ID)
	}
}

func TestEntry_Payload(t *testing.T) {
	term := &obo.Term{
		ID:   obo.MustIdent("MS:1000045"),
		Name: "collision energy",
	}

	got, err := Entry(term, Options{Strategy: ZeroFlags{}, Payload: "f32", SpacedDoc: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(got, "CollisionEnergy(f32),") {
		t.Errorf("entry missing payload variant: %q", got)
	}
	if !strings.Contains(got, `#[doc = "collision energy - "]`) {
		t.Errorf("entry missing spaced doc attribute: %q", got)
	}
}

func TestEntry_RawDoc(t *testing.T) {
	term := &obo.Term{
		ID:         obo.MustIdent("MS:1000776"),
		Name:       "scan number only nativeID format",
		Definition: "Native format defined by scan=xsd:positiveInteger.",
	}

	got, err := Entry(term, Options{Strategy: PatternFlags{}, SpacedDoc: true, RawDoc: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(got, `flags={r"scan=(?<scan>\d+)"}`) {
		t.Errorf("entry missing raw pattern flags: %q", got)
	}
	if !strings.Contains(got, `#[doc = r"scan number only nativeID format - scan=(?<scan>\d+)"]`) {
		t.Errorf("entry missing raw doc attribute: %q", got)
	}
}

func TestEntry_NameFix(t *testing.T) {
	term := &obo.Term{
		ID:      obo.MustIdent("MS:1001455"),
		Name:    "acquisition software",
		Parents: []obo.Ident{obo.MustIdent("MS:1000531")},
	}

	fix := func(name string) string { return strings.ReplaceAll(name, "software", "Software") }
	got, err := Entry(term, Options{Strategy: ValueTypeFlags{}, NameFix: fix})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(got, "\n    AcquisitionSoftware,") {
		t.Errorf("entry field name not fixed: %q", got)
	}
	// The raw name in the annotation stays untouched.
	if !strings.Contains(got, `name="acquisition software"`) {
		t.Errorf("annotation name was rewritten: %q", got)
	}
}

func TestGenerate(t *testing.T) {
	got, err := Generate(massAnalyzerTerms(), Options{TypeName: "MassAnalyzer", Strategy: ValueTypeFlags{}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "pub enum MassAnalyzer {\n" +
		`    #[term(cv=MS, accession=1000079, name="fourier transform ion cyclotron resonance mass spectrometer", flags={0}, parents={["MS:1000443"]})]` + "\n" +
		`    #[doc="fourier transform ion cyclotron resonance mass spectrometer - "]` + "\n" +
		"    FourierTransformIonCyclotronResonanceMassSpectrometer,\n" +
		`    #[term(cv=MS, accession=1000443, name="mass analyzer", flags={0}, parents={[]})]` + "\n" +
		`    #[doc="mass analyzer - "]` + "\n" +
		"    MassAnalyzer,\n" +
		"}"
	if got != want {
		t.Errorf("generated block mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestGenerate_FailureEmitsNothing(t *testing.T) {
	terms := []*obo.Term{
		{ID: obo.MustIdent("MS:1000443"), Name: "mass analyzer"},
		{ID: obo.MustIdent("MS:1000999")}, // nameless
	}

	out, err := Generate(terms, Options{TypeName: "MassAnalyzer", Strategy: ValueTypeFlags{}})
	if err == nil {
		t.Fatal("expected error from nameless term")
	}
	if out != "" {
		t.Errorf("output must be empty on failure, got %q", out)
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	opts := Options{TypeName: "MassAnalyzer", Strategy: ValueTypeFlags{}}
	first, err := Generate(massAnalyzerTerms(), opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 0; i < 5; i++ {
		got, err := Generate(massAnalyzerTerms(), opts)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != first {
			t.Fatal("generation is not deterministic")
		}
	}
}
