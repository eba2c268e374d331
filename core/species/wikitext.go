// ABOUTME: Structured-markup extraction of species rows from page wikitext
// ABOUTME: Reads name, binomial, image and range fields out of species table row templates

package species

import (
	"regexp"
	"strings"

	"bearpage/core/domain"
	"bearpage/pkg/utils/markup"
)

const (
	tableEndMarker = "{{Species table/end}}"
	rowMarker      = "{{Species table/row"
)

var (
	nameLinkRe  = regexp.MustCompile(`\|\s*name\s*=\s*\[\[(.*?)\]\]`)
	namePlainRe = regexp.MustCompile(`\|\s*name\s*=([^\n|]*)`)
	binomialRe  = fieldRe("binomial")
	imageRe     = fieldRe("image")
	rangeRe     = fieldRe("range")
)

// fieldRe matches "|field=value" up to the end of the line
func fieldRe(field string) *regexp.Regexp {
	return regexp.MustCompile(`\|\s*` + field + `\s*=([^\n]*)`)
}

// ParseWikitext extracts species rows from the wikitext of a species list.
// Rows without both a common and a scientific name are skipped. ImageRef
// holds the bare file name of the row image, to be resolved later.
func ParseWikitext(wikitext string) []domain.SpeciesRecord {
	var records []domain.SpeciesRecord

	for _, table := range strings.Split(wikitext, tableEndMarker) {
		for _, row := range strings.Split(table, rowMarker) {
			record, ok := parseRow(row)
			if ok {
				records = append(records, record)
			}
		}
	}

	return records
}

// parseRow reads a single row fragment
func parseRow(row string) (domain.SpeciesRecord, bool) {
	name := rowName(row)
	binomial := markup.StripWikiMarkup(firstGroup(binomialRe, row))
	if name == "" || binomial == "" {
		return domain.SpeciesRecord{}, false
	}

	speciesRange := markup.StripWikiMarkup(firstGroup(rangeRe, row))
	if speciesRange == "" {
		speciesRange = domain.DefaultRangeText
	}

	return domain.SpeciesRecord{
		CommonName:     name,
		ScientificName: binomial,
		Range:          speciesRange,
		ImageRef:       markup.StripFilePrefix(firstGroup(imageRe, row)),
	}, true
}

// rowName prefers a bracketed link and falls back to the plain field value
func rowName(row string) string {
	if m := nameLinkRe.FindStringSubmatch(row); m != nil {
		target := m[1]
		// [[Target|Label]] renders as Label
		if i := strings.LastIndex(target, "|"); i >= 0 {
			target = target[i+1:]
		}
		if name := markup.StripWikiMarkup(target); name != "" {
			return name
		}
	}
	return markup.StripWikiMarkup(firstGroup(namePlainRe, row))
}

func firstGroup(re *regexp.Regexp, s string) string {
	m := re.FindStringSubmatch(s)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}
