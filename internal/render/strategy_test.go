package render

import (
	"errors"
	"testing"

	"github.com/hargabyte/cvx/internal/obo"
)

func TestValueTypeFlags(t *testing.T) {
	term := &obo.Term{
		ID:   obo.MustIdent("MS:1000045"),
		Name: "collision energy",
		Relationships: []obo.Relationship{
			{Type: "has_value_type", Target: "xsd:integer"},
			{Type: "has_value_type", Target: "xsd:positiveInteger"},
			{Type: "has_units", Target: "UO:0000266"},
		},
		Definition: "Energy for the collision.",
	}

	flags, descr, err := ValueTypeFlags{}.Render(term)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Integer (2) | PositiveInteger (32)
	if flags != "34" {
		t.Errorf("flags = %q, want 34", flags)
	}
	if descr != "Energy for the collision." {
		t.Errorf("descr = %q", descr)
	}
}

func TestValueTypeFlags_NoDeclaration(t *testing.T) {
	term := &obo.Term{ID: obo.MustIdent("MS:1"), Name: "x"}
	flags, _, err := ValueTypeFlags{}.Render(term)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if flags != "0" {
		t.Errorf("flags = %q, want 0", flags)
	}
}

func TestValueTypeFlags_UnknownToken(t *testing.T) {
	term := &obo.Term{
		ID:            obo.MustIdent("MS:1"),
		Name:          "x",
		Relationships: []obo.Relationship{{Type: "has_value_type", Target: "xsd:anyURI"}},
	}
	_, _, err := ValueTypeFlags{}.Render(term)
	if err == nil {
		t.Fatal("expected error for unmapped value type token")
	}
	var unknown *UnknownTypeError
	if !errors.As(err, &unknown) {
		t.Fatalf("error type = %T, want *UnknownTypeError", err)
	}
}

func TestClassifierFlags(t *testing.T) {
	bits := map[obo.Ident]uint16{
		obo.MustIdent("MS:1001455"): 0b100,
		obo.MustIdent("MS:1001456"): 0b001,
		obo.MustIdent("MS:1001457"): 0b010,
	}

	term := &obo.Term{
		ID:   obo.MustIdent("MS:1000615"),
		Name: "ProteoWizard software",
		Parents: []obo.Ident{
			obo.MustIdent("MS:1001456"),
			obo.MustIdent("MS:1001457"),
		},
	}

	flags, _, err := ClassifierFlags{Bits: bits}.Render(term)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if flags != "3" {
		t.Errorf("flags = %q, want 3 (analysis|data processing)", flags)
	}
}

func TestClassifierFlags_UnclassifiedParents(t *testing.T) {
	bits := map[obo.Ident]uint16{obo.MustIdent("MS:1001455"): 0b100}
	term := &obo.Term{
		ID:      obo.MustIdent("MS:1"),
		Name:    "x",
		Parents: []obo.Ident{obo.MustIdent("MS:1000531")},
	}

	flags, _, err := ClassifierFlags{Bits: bits}.Render(term)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if flags != "0" {
		t.Errorf("flags = %q, want 0", flags)
	}
}

func TestZeroFlags(t *testing.T) {
	term := &obo.Term{ID: obo.MustIdent("MS:1"), Name: "x", Definition: `See [ref].`}
	flags, descr, err := ZeroFlags{}.Render(term)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if flags != "0" {
		t.Errorf("flags = %q, want 0", flags)
	}
	if descr != `See \\[ref\\].` {
		t.Errorf("descr = %q", descr)
	}
}

func TestPatternFromDefinition(t *testing.T) {
	tests := []struct {
		def  string
		want string
	}{
		{
			"Native format defined by frame=xsd:nonNegativeInteger scan=xsd:nonNegativeInteger.",
			`frame=(?<frame>\d+) scan=(?<scan>\d+)`,
		},
		{
			"Native format defined by controllerType=xsd:nonNegativeInteger controllerNumber=xsd:positiveInteger scan=xsd:positiveInteger.",
			`controllerType=(?<controllerType>\d+) controllerNumber=(?<controllerNumber>\d+) scan=(?<scan>\d+)`,
		},
		{
			"Native format defined by file=xsd:IDREF index=xsd:long.",
			`file=(?<file>\S+) index=(?<index>-?\d+)`,
		},
		{
			"Native format defined by spectrum=xsd:string.",
			`spectrum=(?<spectrum>\S+)`,
		},
		{
			"A format with no template marker at all.",
			"(.+)",
		},
	}

	for _, tt := range tests {
		if got := PatternFromDefinition(tt.def); got != tt.want {
			t.Errorf("PatternFromDefinition(%q) = %q, want %q", tt.def, got, tt.want)
		}
	}
}

func TestPatternFlags(t *testing.T) {
	term := &obo.Term{
		ID:         obo.MustIdent("MS:1000776"),
		Name:       "scan number only nativeID format",
		Definition: "Native format defined by scan=xsd:positiveInteger.",
	}

	flags, descr, err := PatternFlags{}.Render(term)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	wantPattern := `scan=(?<scan>\d+)`
	if flags != `r"`+wantPattern+`"` {
		t.Errorf("flags = %q, want raw-string of %q", flags, wantPattern)
	}
	if descr != wantPattern {
		t.Errorf("descr = %q, want %q", descr, wantPattern)
	}
}
