// ABOUTME: SpeciesRecord domain model represents one bear species shown on the page
// ABOUTME: Also defines the static fallback list used when live extraction fails

package domain

// DefaultRangeText is used when a species table row carries no range field
const DefaultRangeText = "Range information not available"

// SpeciesRecord represents one extracted bear species
type SpeciesRecord struct {
	// CommonName is the English name, e.g. "Brown bear"
	CommonName string

	// ScientificName is the binomial name, may be empty
	ScientificName string

	// Range describes where the species lives, may be empty
	Range string

	// ImageRef is an absolute image URL, a local placeholder path, or empty
	ImageRef string
}

// IsValid checks if the record has a common name
func (r SpeciesRecord) IsValid() bool {
	return r.CommonName != ""
}

// Key returns the identity used for deduplication
func (r SpeciesRecord) Key() string {
	return r.CommonName + "|" + r.ScientificName
}

// WithImage returns a copy of the record with a different image reference
func (r SpeciesRecord) WithImage(ref string) SpeciesRecord {
	r.ImageRef = ref
	return r
}

// FallbackSpecies returns the hardcoded species list rendered when the
// encyclopedia cannot be reached. Each call returns a fresh slice.
func FallbackSpecies() []SpeciesRecord {
	return []SpeciesRecord{
		{
			CommonName:     "Brown bear",
			ScientificName: "Ursus arctos",
			Range:          "Eurasia, North America",
			ImageRef:       "media/wild-bear.jpg",
		},
		{
			CommonName:     "Urban bear",
			ScientificName: "Ursus urbanus",
			Range:          "Cities",
			ImageRef:       "media/urban-bear.jpg",
		},
	}
}

// Dedupe removes records whose (CommonName, ScientificName) pair was already
// seen. The first occurrence wins and relative order is preserved.
func Dedupe(records []SpeciesRecord) []SpeciesRecord {
	seen := make(map[string]struct{}, len(records))
	unique := make([]SpeciesRecord, 0, len(records))
	for _, r := range records {
		key := r.Key()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		unique = append(unique, r)
	}
	return unique
}
