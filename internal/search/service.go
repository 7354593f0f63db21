// Package search orchestrates a job search request: cache lookup,
// browser scrape on a miss, and summary enrichment of the batch.
package search

import (
	"context"
	"log"

	"github.com/jonathan/job-finder/internal/textutil"
	"github.com/jonathan/job-finder/internal/types"
)

// Scraper acquires a fresh batch of listings for the criteria.
type Scraper interface {
	Scrape(ctx context.Context, criteria types.SearchCriteria) []types.JobListing
}

// Cache reads and writes persisted batches.
type Cache interface {
	Lookup(criteria types.SearchCriteria) ([]types.JobListing, bool)
	Store(criteria types.SearchCriteria, jobs []types.JobListing) (string, error)
}

// Enricher attaches generated summaries to a batch.
type Enricher interface {
	Process(ctx context.Context, criteria types.SearchCriteria, jobs []types.JobListing) []types.JobListing
}

// Service runs the end-to-end search flow.
type Service struct {
	scraper  Scraper
	cache    Cache
	enricher Enricher
}

// NewService wires a Service from its collaborators.
func NewService(scraper Scraper, cache Cache, enricher Enricher) *Service {
	return &Service{
		scraper:  scraper,
		cache:    cache,
		enricher: enricher,
	}
}

// Search returns enriched listings for the criteria. A fresh cached
// batch short-circuits the scrape. An empty scrape is a valid empty
// result, never an error; acquisition and caching failures have
// already been degraded by the collaborators.
func (s *Service) Search(ctx context.Context, criteria types.SearchCriteria) ([]types.JobListing, error) {
	criteria = criteria.Sanitized(textutil.Sanitize)

	if jobs, ok := s.cache.Lookup(criteria); ok {
		return s.enricher.Process(ctx, criteria, jobs), nil
	}

	jobs := s.scraper.Scrape(ctx, criteria)
	if len(jobs) == 0 {
		log.Printf("[SEARCH] No jobs found for %q in %q", criteria.Position, criteria.Location)
		return []types.JobListing{}, nil
	}

	// Persist the raw batch before enrichment so a later request can
	// still reuse it if summary generation dies halfway.
	if _, err := s.cache.Store(criteria, jobs); err != nil {
		log.Printf("[SEARCH] Failed to cache raw batch: %v", err)
	}

	return s.enricher.Process(ctx, criteria, jobs), nil
}
