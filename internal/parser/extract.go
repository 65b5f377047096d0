package parser

import (
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/jonesrussell/lexicrawl/internal/domain"
)

// dateLayouts are tried in order when parsing the publication date.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"02/01/2006",
}

// extractArticle pulls title, body, and publication date out of a parsed
// document. Returns ErrNoContent when the body selector matches nothing or
// yields empty text.
func extractArticle(
	doc *goquery.Document,
	source, articleURL string,
	sel Selectors,
	scrapedAt time.Time,
) (*domain.Article, error) {
	body, err := extractBody(doc, sel)
	if err != nil {
		return nil, err
	}

	return &domain.Article{
		Title:         extractTitle(doc, sel.Title),
		Body:          body,
		PublishedDate: extractDate(doc, sel.Date),
		Source:        source,
		URL:           articleURL,
		ScrapedAt:     scrapedAt,
	}, nil
}

// extractTitle returns the first match of the title selector, falling back
// to the page <title>.
func extractTitle(doc *goquery.Document, selector string) string {
	if selector != "" {
		if title := strings.TrimSpace(doc.Find(selector).First().Text()); title != "" {
			return title
		}
	}
	return strings.TrimSpace(doc.Find("title").First().Text())
}

// extractBody returns the collapsed text of the body container with
// excluded sub-elements removed.
func extractBody(doc *goquery.Document, sel Selectors) (string, error) {
	if sel.Body == "" {
		return "", ErrNoContent
	}

	container := doc.Find(sel.Body).First()
	if container.Length() == 0 {
		return "", ErrNoContent
	}

	// Work on a clone so exclusions don't mutate the document.
	clone := container.Clone()
	for _, exclude := range sel.Exclude {
		if exclude != "" {
			clone.Find(exclude).Remove()
		}
	}

	text := strings.Join(strings.Fields(clone.Text()), " ")
	if text == "" {
		return "", ErrNoContent
	}

	return text, nil
}

// extractDate parses the publication date from the selected element,
// preferring a datetime attribute over element text. Returns the zero time
// when nothing parses.
func extractDate(doc *goquery.Document, selector string) time.Time {
	if selector == "" {
		return time.Time{}
	}

	el := doc.Find(selector).First()
	if el.Length() == 0 {
		return time.Time{}
	}

	candidates := make([]string, 0, 2)
	if dt, ok := el.Attr("datetime"); ok {
		candidates = append(candidates, strings.TrimSpace(dt))
	}
	candidates = append(candidates, strings.TrimSpace(el.Text()))

	for _, candidate := range candidates {
		if candidate == "" {
			continue
		}
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, candidate); err == nil {
				return t
			}
		}
	}

	return time.Time{}
}
