package domain

import "testing"

func TestSpeciesRecord_IsValid(t *testing.T) {
	tests := []struct {
		name     string
		record   SpeciesRecord
		expected bool
	}{
		{
			name:     "valid record with common name",
			record:   SpeciesRecord{CommonName: "Polar bear"},
			expected: true,
		},
		{
			name:     "invalid record with empty common name",
			record:   SpeciesRecord{ScientificName: "Ursus maritimus"},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.record.IsValid(); got != tt.expected {
				t.Errorf("IsValid() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestSpeciesRecord_WithImage(t *testing.T) {
	original := SpeciesRecord{CommonName: "Sun bear", ImageRef: "a.jpg"}
	updated := original.WithImage("b.jpg")

	if original.ImageRef != "a.jpg" {
		t.Errorf("WithImage mutated the original record: %q", original.ImageRef)
	}
	if updated.ImageRef != "b.jpg" {
		t.Errorf("ImageRef = %q, want %q", updated.ImageRef, "b.jpg")
	}
}

func TestFallbackSpecies(t *testing.T) {
	first := FallbackSpecies()
	if len(first) < 2 {
		t.Fatalf("FallbackSpecies returned %d records, want at least 2", len(first))
	}
	for _, r := range first {
		if !r.IsValid() {
			t.Errorf("fallback record %+v is not valid", r)
		}
	}

	first[0].CommonName = "changed"
	second := FallbackSpecies()
	if second[0].CommonName != "Brown bear" {
		t.Error("FallbackSpecies should return a fresh slice on every call")
	}
}

func TestDedupe(t *testing.T) {
	records := []SpeciesRecord{
		{CommonName: "Brown bear", ScientificName: "Ursus arctos", Range: "first"},
		{CommonName: "Polar bear", ScientificName: "Ursus maritimus"},
		{CommonName: "Brown bear", ScientificName: "Ursus arctos", Range: "second"},
		{CommonName: "Brown bear", ScientificName: "Ursus arctos horribilis"},
	}

	unique := Dedupe(records)

	if len(unique) != 3 {
		t.Fatalf("Dedupe returned %d records, want 3", len(unique))
	}
	if unique[0].Range != "first" {
		t.Errorf("first occurrence should win, got range %q", unique[0].Range)
	}
	if unique[1].CommonName != "Polar bear" {
		t.Errorf("order not preserved: %q at index 1", unique[1].CommonName)
	}
	if unique[2].ScientificName != "Ursus arctos horribilis" {
		t.Errorf("records with a different scientific name must be kept")
	}
}

func TestDedupe_Empty(t *testing.T) {
	if got := Dedupe(nil); len(got) != 0 {
		t.Errorf("Dedupe(nil) returned %d records", len(got))
	}
}

func TestMatchSpan_End(t *testing.T) {
	m := MatchSpan{Text: "brown", Offset: 4}
	if m.End() != 9 {
		t.Errorf("End() = %d, want 9", m.End())
	}
}

func TestComment_IsValid(t *testing.T) {
	if (Comment{Name: " ", Text: "hi"}).IsValid() {
		t.Error("blank name should be invalid")
	}
	if (Comment{Name: "Ana", Text: "\t"}).IsValid() {
		t.Error("blank text should be invalid")
	}
	if !(Comment{Name: "Ana", Text: "Nice bears"}).IsValid() {
		t.Error("filled comment should be valid")
	}
}
