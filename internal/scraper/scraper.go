// Package scraper provides a browser-driven LinkedIn job scraper.
//
// A scrape is a best-effort acquisition pass: any failure, from
// browser launch to a missing results container, degrades to an empty
// batch rather than an error. Individual card failures are isolated so
// one broken card never sinks the rest of the page.
package scraper

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"net/url"
	"strings"
	"time"

	"github.com/chromedp/cdproto/cdp"
	"github.com/chromedp/cdproto/dom"
	"github.com/chromedp/cdproto/runtime"
	"github.com/chromedp/chromedp"

	"github.com/jonathan/job-finder/internal/extract"
	"github.com/jonathan/job-finder/internal/textutil"
	"github.com/jonathan/job-finder/internal/types"
)

const (
	searchBaseURL = "https://www.linkedin.com/jobs/search"

	// maxCards caps how many result cards a single scrape processes.
	maxCards = 10

	settleDelay        = 5 * time.Second
	resultsTimeout     = 15 * time.Second
	descriptionTimeout = 10 * time.Second
)

// Config holds scraper configuration.
type Config struct {
	Email    string
	Password string
	Headless bool

	// MinDelay and MaxDelay bound the randomized pause between
	// page interactions.
	MinDelay time.Duration
	MaxDelay time.Duration

	Selectors SelectorSet
}

// DefaultConfig returns a scraper configuration with the current
// selector set and conservative pacing.
func DefaultConfig() Config {
	return Config{
		Headless:  true,
		MinDelay:  3 * time.Second,
		MaxDelay:  7 * time.Second,
		Selectors: DefaultSelectors(),
	}
}

// Scraper drives a headless browser through LinkedIn's search flow.
type Scraper struct {
	cfg  Config
	rand *rand.Rand

	// swappable for tests
	sleep func(time.Duration)
}

// New creates a Scraper, applying defaults for unset config fields.
func New(cfg Config) *Scraper {
	def := DefaultConfig()
	if cfg.MinDelay == 0 {
		cfg.MinDelay = def.MinDelay
	}
	if cfg.MaxDelay == 0 {
		cfg.MaxDelay = def.MaxDelay
	}
	if len(cfg.Selectors.ResultsContainer) == 0 {
		cfg.Selectors = def.Selectors
	}
	return &Scraper{
		cfg:   cfg,
		rand:  rand.New(rand.NewSource(time.Now().UnixNano())),
		sleep: time.Sleep,
	}
}

// Scrape runs a full acquisition pass for the criteria. It never
// returns an error: failures are logged and yield an empty batch.
func (s *Scraper) Scrape(ctx context.Context, criteria types.SearchCriteria) []types.JobListing {
	jobs, err := s.run(ctx, criteria)
	if err != nil {
		log.Printf("[SCRAPER] Scrape failed: %v", err)
		return []types.JobListing{}
	}
	return jobs
}

func (s *Scraper) run(ctx context.Context, criteria types.SearchCriteria) ([]types.JobListing, error) {
	browserCtx, cancel := newBrowserContext(ctx, s.cfg.Headless, randomUserAgent(s.rand))
	defer cancel()

	if err := chromedp.Run(browserCtx, hideWebdriver()); err != nil {
		return nil, fmt.Errorf("failed to start browser: %w", err)
	}

	if err := s.login(browserCtx); err != nil {
		return nil, err
	}

	if err := s.openSearch(browserCtx, criteria); err != nil {
		return nil, err
	}

	container, err := s.waitForResults(browserCtx)
	if err != nil {
		return nil, err
	}

	cards, err := s.collectCards(browserCtx, container)
	if err != nil {
		return nil, err
	}
	log.Printf("[SCRAPER] Processing %d job cards", len(cards))

	jobs := make([]types.JobListing, 0, len(cards))
	for i, card := range cards {
		job, err := s.extractJob(browserCtx, card)
		if err != nil {
			log.Printf("[SCRAPER] Skipping card %d: %v", i+1, err)
			continue
		}
		jobs = append(jobs, job)
	}
	return jobs, nil
}

// searchURL builds the remote-jobs search URL, sorted by relevance.
func searchURL(criteria types.SearchCriteria) string {
	q := url.Values{}
	q.Set("keywords", textutil.Sanitize(criteria.Position))
	q.Set("location", textutil.Sanitize(criteria.Location))
	q.Set("f_WT", "2")
	q.Set("sortBy", "R")
	return searchBaseURL + "?" + q.Encode()
}

// openSearch navigates to the results page and lets the client-side
// list render, scrolling to the bottom to trigger lazy loading.
func (s *Scraper) openSearch(ctx context.Context, criteria types.SearchCriteria) error {
	u := searchURL(criteria)
	log.Printf("[SCRAPER] Opening search: %s", u)

	if err := chromedp.Run(ctx,
		chromedp.Navigate(u),
		chromedp.Sleep(settleDelay),
		chromedp.Evaluate(`window.scrollTo(0, document.body.scrollHeight)`, nil),
		chromedp.Sleep(2*time.Second),
	); err != nil {
		return fmt.Errorf("failed to open search results: %w", err)
	}
	s.randomDelay()
	return nil
}

// waitForResults polls the container cascade until one selector is
// present or the deadline passes. Returns the winning selector.
func (s *Scraper) waitForResults(ctx context.Context) (string, error) {
	deadline := time.Now().Add(resultsTimeout)
	for {
		for _, sel := range s.cfg.Selectors.ResultsContainer {
			if nodePresent(ctx, sel) {
				return sel, nil
			}
		}
		if time.Now().After(deadline) {
			return "", fmt.Errorf("no results container found after %s", resultsTimeout)
		}
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(500 * time.Millisecond):
		}
	}
}

// collectCards resolves the card cascade, scoped to the container
// first and falling back to the whole page, capped at maxCards.
func (s *Scraper) collectCards(ctx context.Context, container string) ([]*cdp.Node, error) {
	for _, scope := range []string{container + " ", ""} {
		for _, sel := range s.cfg.Selectors.JobCards {
			tctx, cancel := context.WithTimeout(ctx, 2*time.Second)
			var nodes []*cdp.Node
			err := chromedp.Run(tctx, chromedp.Nodes(scope+sel, &nodes, chromedp.ByQueryAll, chromedp.AtLeast(0)))
			cancel()
			if err == nil && len(nodes) > 0 {
				if len(nodes) > maxCards {
					nodes = nodes[:maxCards]
				}
				return nodes, nil
			}
		}
	}
	return nil, fmt.Errorf("no job cards found")
}

// extractJob turns one result card into a JobListing. The card markup
// is parsed statically for title, company and location; the card is
// then opened and the detail pane supplies the description and the
// apply link. A card without a title or description is an error.
func (s *Scraper) extractJob(ctx context.Context, node *cdp.Node) (types.JobListing, error) {
	_ = chromedp.Run(ctx, chromedp.ActionFunc(func(ctx context.Context) error {
		return dom.ScrollIntoViewIfNeeded().WithNodeID(node.NodeID).Do(ctx)
	}))
	s.sleep(500 * time.Millisecond)

	var cardHTML string
	if err := chromedp.Run(ctx, chromedp.ActionFunc(func(ctx context.Context) error {
		html, err := dom.GetOuterHTML().WithNodeID(node.NodeID).Do(ctx)
		cardHTML = html
		return err
	})); err != nil {
		return types.JobListing{}, fmt.Errorf("failed to read card markup: %w", err)
	}

	fields, err := parseCard(cardHTML, s.cfg.Selectors)
	if err != nil {
		return types.JobListing{}, err
	}

	if err := s.openCard(ctx, node); err != nil {
		return types.JobListing{}, fmt.Errorf("failed to open card: %w", err)
	}
	s.randomDelay()

	description, err := s.readDescription(ctx)
	if err != nil {
		return types.JobListing{}, err
	}
	description = textutil.Sanitize(description)

	var applyLink string
	if err := chromedp.Run(ctx, chromedp.Location(&applyLink)); err != nil {
		return types.JobListing{}, fmt.Errorf("failed to read apply link: %w", err)
	}

	return buildListing(fields, description, applyLink)
}

// buildListing assembles the final listing from card fields and the
// detail pane. Every listing that leaves the scraper carries a title
// and an apply link; anything less is an error and the card is skipped.
func buildListing(fields cardFields, description, applyLink string) (types.JobListing, error) {
	job := types.JobListing{
		JobTitle:    fields.Title,
		Company:     fields.Company,
		Location:    fields.Location,
		Salary:      extract.Salary(description),
		Experience:  extract.Experience(description),
		ApplyLink:   applyLink,
		Description: description,
		Source:      types.SourceLinkedIn,
	}
	job.ApplyDefaults()
	if !job.Valid() {
		return types.JobListing{}, fmt.Errorf("incomplete listing: title=%q apply_link=%q", job.JobTitle, job.ApplyLink)
	}
	return job, nil
}

// openCard clicks the card with a real mouse event, falling back to a
// scripted click when the node sits under an overlay.
func (s *Scraper) openCard(ctx context.Context, node *cdp.Node) error {
	if err := chromedp.Run(ctx, chromedp.MouseClickNode(node)); err == nil {
		return nil
	}
	return chromedp.Run(ctx, chromedp.ActionFunc(func(ctx context.Context) error {
		obj, err := dom.ResolveNode().WithNodeID(node.NodeID).Do(ctx)
		if err != nil {
			return err
		}
		_, exp, err := runtime.CallFunctionOn("function() { this.click(); }").
			WithObjectID(obj.ObjectID).Do(ctx)
		if err != nil {
			return err
		}
		if exp != nil {
			return exp
		}
		return nil
	}))
}

// readDescription resolves the description cascade against the detail
// pane, waiting for each selector to render before moving on.
func (s *Scraper) readDescription(ctx context.Context) (string, error) {
	for _, sel := range s.cfg.Selectors.Description {
		tctx, cancel := context.WithTimeout(ctx, descriptionTimeout)
		var text string
		err := chromedp.Run(tctx,
			chromedp.WaitReady(sel, chromedp.ByQuery),
			chromedp.Text(sel, &text, chromedp.ByQuery),
		)
		cancel()
		if err == nil && strings.TrimSpace(text) != "" {
			return text, nil
		}
	}
	return "", fmt.Errorf("no description found")
}

// randomDelay pauses between interactions for a randomized interval.
func (s *Scraper) randomDelay() {
	spread := s.cfg.MaxDelay - s.cfg.MinDelay
	d := s.cfg.MinDelay
	if spread > 0 {
		d += time.Duration(s.rand.Int63n(int64(spread)))
	}
	s.sleep(d)
}
