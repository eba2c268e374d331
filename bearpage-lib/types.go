// ABOUTME: Public types for the BearPage library API
// ABOUTME: Provides user-friendly types that wrap internal domain models

package bearpage

import (
	"bearpage/core/domain"
)

// Species represents one bear species card
type Species struct {
	CommonName     string `json:"common_name"`
	ScientificName string `json:"scientific_name,omitempty"`
	Range          string `json:"range,omitempty"`
	Image          string `json:"image,omitempty"`
}

// Comment represents a submitted comment
type Comment struct {
	Name string `json:"name"`
	Text string `json:"text"`
}

// convertSpecies converts domain records to public types
func convertSpecies(records []domain.SpeciesRecord) []Species {
	out := make([]Species, len(records))
	for i, r := range records {
		out[i] = Species{
			CommonName:     r.CommonName,
			ScientificName: r.ScientificName,
			Range:          r.Range,
			Image:          r.ImageRef,
		}
	}
	return out
}

// convertComment converts a domain comment to the public type
func convertComment(c domain.Comment) Comment {
	return Comment{Name: c.Name, Text: c.Text}
}
