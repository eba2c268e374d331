// ABOUTME: Rendered-HTML extraction of species from the parsed page body
// ABOUTME: Walks list items of the parser output and splits common and scientific names

package species

import (
	"regexp"
	"strings"

	"bearpage/core/domain"
	"bearpage/pkg/utils/markup"
	"github.com/PuerkitoBio/goquery"
)

// DefaultMaxItems caps the number of records taken from rendered HTML
const DefaultMaxItems = 20

var parenthesisedRe = regexp.MustCompile(`\(([^)]*)\)`)

// ParseRenderedHTML extracts species from the rendered page HTML.
// Each list item of the parser output becomes one record: text before the
// first comma (parenthesised parts removed) is the common name and the
// first parenthesised segment is the scientific name. At most maxItems
// records are returned; maxItems <= 0 uses DefaultMaxItems.
func ParseRenderedHTML(body string, maxItems int) ([]domain.SpeciesRecord, error) {
	if maxItems <= 0 {
		maxItems = DefaultMaxItems
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		return nil, err
	}

	records := make([]domain.SpeciesRecord, 0, maxItems)
	doc.Find(".mw-parser-output ul li").EachWithBreak(func(_ int, li *goquery.Selection) bool {
		text := markup.CollapseWhitespace(li.Text())
		if text == "" {
			return true
		}

		var scientific string
		if m := parenthesisedRe.FindStringSubmatch(text); m != nil {
			scientific = strings.TrimSpace(m[1])
		}

		common := parenthesisedRe.ReplaceAllString(text, "")
		if i := strings.Index(common, ","); i >= 0 {
			common = common[:i]
		}
		common = markup.CollapseWhitespace(common)
		if common == "" {
			return true
		}

		var image string
		if src, ok := li.Find("img[src]").First().Attr("src"); ok {
			image = markup.NormalizeImageSrc(src)
		}

		records = append(records, domain.SpeciesRecord{
			CommonName:     common,
			ScientificName: scientific,
			ImageRef:       image,
		})
		return len(records) < maxItems
	})

	return records, nil
}
