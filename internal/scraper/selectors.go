// Package scraper - selectors.go defines the CSS selector cascades for
// LinkedIn's search results markup.
package scraper

// SelectorSet groups the selector cascades used to locate search
// results. LinkedIn serves several frontend variants, so every lookup
// tries an ordered list first to last. The set is a plain value with a
// version tag: a markup change ships as a new set without touching the
// scrape logic.
type SelectorSet struct {
	Version string

	// ResultsContainer locates the element holding the result list.
	ResultsContainer []string
	// JobCards locates individual result cards, scoped to the
	// container first and page-wide as a fallback.
	JobCards []string
	// Title, Company and Location are resolved against a single
	// card's markup.
	Title    []string
	Company  []string
	Location []string
	// Description is resolved against the detail pane after a card
	// has been opened.
	Description []string
}

// DefaultSelectors returns the selector set for LinkedIn's current
// markup variants.
func DefaultSelectors() SelectorSet {
	return SelectorSet{
		Version: "2025-02",
		ResultsContainer: []string{
			"div.jobs-search-results-list",
			"ul.jobs-search-results__list",
			"ul.jobs-search__results-list",
			"main.jobs-search-results-list",
			"div.scaffold-layout__list",
			"div.jobs-search__job-details",
			"div.jobs-box",
		},
		JobCards: []string{
			"div.job-card-container",
			"li.jobs-search-results__list-item",
			"div.job-card-list__entity",
			"li.artdeco-list__item",
			"div[data-job-id]",
			"div.job-card-square",
			"li[class*='jobs-search-results']",
		},
		Title: []string{
			"h3.job-card-list__title",
			"h3.base-search-card__title",
			"h3[class*='job-card']",
			"a[class*='job-card-list__title']",
			"a[class*='job-card-container__link']",
			".job-card-container__title",
			".job-card-list__title",
			"h3.base-card__title",
			".base-card__full-link",
			".job-card-list__entity-lockup",
			"h3.job-search-card__title",
			"[data-job-title]",
			"[aria-label*='job']",
			"[role='heading']",
			"a[href*='jobs/view']",
		},
		Company: []string{
			".job-card-container__company-name",
			".job-card-container__primary-description",
			".job-card-list__company-name",
			".artdeco-entity-lockup__subtitle",
			".job-card-container__metadata-wrapper a",
			"[data-control-name='company_link']",
			".job-card-container__company-link",
			".result-card__subtitle.job-result-card__subtitle",
			".base-search-card__subtitle",
			".job-search-card__company-name",
		},
		Location: []string{
			".job-card-container__metadata-item",
			".job-card-container__metadata-wrapper span",
			".job-search-card__location",
			".artdeco-entity-lockup__caption",
			".job-card-list__footer-wrapper span",
			".job-result-card__location",
			".base-search-card__metadata span",
			"[data-job-location]",
		},
		Description: []string{
			"div.jobs-description-content__text",
			"div.jobs-box__html-content",
			"div[class*='jobs-description']",
			"div[class*='job-view-layout']",
			"div.show-more-less-html__markup",
		},
	}
}
