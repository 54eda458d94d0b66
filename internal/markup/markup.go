// Package markup adapts goquery and encoding/json to the small set of
// extraction helpers the providers share.
package markup

import (
	"encoding/json"
	"html"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/pkg/errors"
)

var (
	breakPattern = regexp.MustCompile(`(?i)<br\s*/?>`)
	tagPattern   = regexp.MustCompile(`<[^>]*>`)
)

// Parse builds a document from an HTML body.
func Parse(body string) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		return nil, errors.Wrap(err, "could not parse html")
	}

	return doc, nil
}

// Decode unmarshals a JSON body into v.
func Decode(body string, v any) error {
	if err := json.Unmarshal([]byte(body), v); err != nil {
		return errors.Wrap(err, "could not decode json")
	}

	return nil
}

// Text returns the text of the selection with runs of whitespace collapsed.
func Text(sel *goquery.Selection) string {
	return Clean(sel.Text())
}

// Clean collapses whitespace and trims the result.
func Clean(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Texts returns the cleaned text of every matched element, skipping empty ones.
func Texts(sel *goquery.Selection) []string {
	out := make([]string, 0, sel.Length())
	sel.Each(func(_ int, s *goquery.Selection) {
		if text := Text(s); text != "" {
			out = append(out, text)
		}
	})

	return out
}

// LabelValue returns the text of the element following the one whose title
// attribute equals label, as used by "Genre:", "Author:" style info rows.
func LabelValue(doc *goquery.Document, label string) (string, bool) {
	sel := doc.Find(`[title="` + label + `"]`).First()
	if sel.Length() == 0 {
		return "", false
	}

	next := sel.Next()
	if next.Length() == 0 {
		return "", false
	}

	return Text(next), true
}

// SplitList splits s on sep and drops blank entries.
func SplitList(s, sep string) []string {
	parts := strings.Split(s, sep)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}

	return out
}

// Lines splits the inner HTML of each matched element on <br> tags and
// returns the non-empty text lines.
func Lines(sel *goquery.Selection) []string {
	var out []string
	sel.Each(func(_ int, s *goquery.Selection) {
		inner, err := s.Html()
		if err != nil {
			return
		}

		for _, part := range breakPattern.Split(inner, -1) {
			if text := StripTags(part); text != "" {
				out = append(out, text)
			}
		}
	})

	return out
}

// StripTags removes markup from a fragment and unescapes entities.
func StripTags(fragment string) string {
	return Clean(html.UnescapeString(tagPattern.ReplaceAllString(fragment, "")))
}
