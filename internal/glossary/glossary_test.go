package glossary

import "testing"

func TestGlossaryHasReasonableCoverage(t *testing.T) {
	if len(Terms()) <= 10 {
		t.Fatalf("expected more than 10 terms, got %d", len(Terms()))
	}
	if _, ok := Lookup("Anion Exchange"); !ok {
		t.Fatal("missing Anion Exchange")
	}
	if _, ok := Lookup("Regeneration"); !ok {
		t.Fatal("missing Regeneration")
	}
}

func TestNamesSorted(t *testing.T) {
	names := Names()
	if len(names) != len(Terms()) {
		t.Fatalf("names length %d != terms length %d", len(names), len(Terms()))
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Fatalf("names not sorted at %d: %s >= %s", i, names[i-1], names[i])
		}
	}
}

func TestLookupUnknown(t *testing.T) {
	if _, ok := Lookup("Warp Core"); ok {
		t.Fatal("unknown term must not resolve")
	}
}
