// Package scraper - card.go extracts structured fields from a single
// job card's markup. Everything here operates on static HTML so the
// cascade logic stays testable without a browser.
package scraper

import (
	"errors"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/jonathan/job-finder/internal/textutil"
)

// cardFields holds what a result card alone can tell us. Description
// and apply link come from the detail pane after the card is opened.
type cardFields struct {
	Title    string
	Company  string
	Location string
}

// parseCard resolves the title, company and location cascades against
// a card's outer HTML. A card without a recoverable title is useless
// downstream, so that is an error; company and location may be empty.
func parseCard(html string, set SelectorSet) (cardFields, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return cardFields{}, err
	}

	title := extractTitle(doc, set)
	if title == "" {
		return cardFields{}, errors.New("no title found in card")
	}

	return cardFields{
		Title:    title,
		Company:  firstSelectorText(doc, set.Company),
		Location: firstSelectorText(doc, set.Location),
	}, nil
}

// titleStrategy is one way of recovering a job title from card markup.
type titleStrategy func(*goquery.Document, SelectorSet) string

// extractTitle runs the title strategies in order of reliability and
// returns the first hit. Later strategies are progressively less
// precise, ending with a plain-text heuristic.
func extractTitle(doc *goquery.Document, set SelectorSet) string {
	strategies := []titleStrategy{
		titleFromSelectorText,
		titleFromSelectorAttrs,
		titleFromAnchors,
		titleFromHeadings,
		titleFromFrames,
		titleFromTextHeuristic,
	}
	for _, strategy := range strategies {
		if title := strategy(doc, set); title != "" {
			return title
		}
	}
	return ""
}

func titleFromSelectorText(doc *goquery.Document, set SelectorSet) string {
	for _, sel := range set.Title {
		if text := cleanText(doc.Find(sel).First().Text()); plausibleTitle(text) {
			return text
		}
	}
	return ""
}

func titleFromSelectorAttrs(doc *goquery.Document, set SelectorSet) string {
	attrs := []string{"title", "aria-label", "data-job-title"}
	for _, sel := range set.Title {
		node := doc.Find(sel).First()
		for _, attr := range attrs {
			if value, ok := node.Attr(attr); ok {
				if text := cleanText(value); plausibleTitle(text) {
					return text
				}
			}
		}
	}
	return ""
}

func titleFromAnchors(doc *goquery.Document, _ SelectorSet) string {
	var title string
	doc.Find("a").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if text := cleanText(s.Text()); plausibleTitle(text) {
			title = text
			return false
		}
		return true
	})
	return title
}

func titleFromHeadings(doc *goquery.Document, _ SelectorSet) string {
	var title string
	doc.Find("h1, h2, h3, h4").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if text := cleanText(s.Text()); plausibleTitle(text) {
			title = text
			return false
		}
		return true
	})
	return title
}

// titleFromFrames covers the variant where the card title lives on an
// embedded frame's accessibility attributes.
func titleFromFrames(doc *goquery.Document, _ SelectorSet) string {
	var title string
	doc.Find("iframe").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		for _, attr := range []string{"title", "aria-label"} {
			if value, ok := s.Attr(attr); ok {
				if text := cleanText(value); plausibleTitle(text) {
					title = text
					return false
				}
			}
		}
		return true
	})
	return title
}

// metadataHints mark text lines that are card metadata rather than a
// title, used by the last-resort heuristic.
var metadataHints = []string{"ago", "applicant", "promoted", "easy apply", "·", "salary", "company", "location", "remote", "hybrid", "on-site"}

// titleFromTextHeuristic takes the first plausible text line of the
// card that does not look like metadata.
func titleFromTextHeuristic(doc *goquery.Document, _ SelectorSet) string {
	for _, line := range strings.Split(doc.Text(), "\n") {
		text := cleanText(line)
		if !plausibleTitle(text) || len(text) > 100 {
			continue
		}
		lower := strings.ToLower(text)
		skip := false
		for _, hint := range metadataHints {
			if strings.Contains(lower, hint) {
				skip = true
				break
			}
		}
		if !skip {
			return text
		}
	}
	return ""
}

// firstSelectorText returns the sanitized text of the first selector
// in the cascade that matches a non-empty node.
func firstSelectorText(doc *goquery.Document, selectors []string) string {
	for _, sel := range selectors {
		if text := cleanText(doc.Find(sel).First().Text()); text != "" {
			return text
		}
	}
	return ""
}

func cleanText(s string) string {
	return textutil.Sanitize(s)
}

func plausibleTitle(s string) bool {
	return len(strings.TrimSpace(s)) >= 3
}
