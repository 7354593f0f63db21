// Package enrich generates LLM summaries for scraped job listings.
//
// Enrichment is strictly best-effort: a provider failure downgrades a
// single job to a placeholder summary and never fails the batch. The
// Processor serializes provider calls with a minimum spacing, and a
// long quota rejection flips a process-wide daily-limit flag that
// short-circuits all further calls until restart.
package enrich

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/jonathan/job-finder/internal/llm"
	"github.com/jonathan/job-finder/internal/types"
)

// Placeholder summaries returned when generation is not possible.
const (
	SummaryUnavailable = "Unable to generate summary."
	SummaryAPIFailure  = "Unable to generate summary due to API limits. Please try again later."
	SummaryDailyLimit  = "Summary generation paused - daily API limit reached. Please try again tomorrow."
)

// minCallSpacing is the minimum gap between two provider calls.
const minCallSpacing = 3 * time.Second

// dailyLimitThreshold distinguishes a per-minute quota rejection from
// an exhausted daily quota: a suggested wait beyond this means the
// quota will not recover during the batch.
const dailyLimitThreshold = 5 * time.Minute

// Storer persists an enriched batch. Satisfied by cache.Cache.
type Storer interface {
	Store(criteria types.SearchCriteria, jobs []types.JobListing) (string, error)
}

// Processor enriches job batches with generated summaries.
type Processor struct {
	client llm.Client
	store  Storer

	mu       sync.Mutex
	lastCall time.Time

	dailyLimit atomic.Bool

	// swappable for tests
	now   func() time.Time
	sleep func(time.Duration)
}

// New creates a Processor backed by the given provider client. store
// may be nil, in which case enriched batches are not persisted.
func New(client llm.Client, store Storer) *Processor {
	return &Processor{
		client: client,
		store:  store,
		now:    time.Now,
		sleep:  time.Sleep,
	}
}

// DailyLimitReached reports whether summary generation is paused for
// the rest of the process lifetime.
func (p *Processor) DailyLimitReached() bool {
	return p.dailyLimit.Load()
}

// Process enriches each job in the batch with a summary and applies
// field defaults. Jobs that already carry a usable summary pass
// through untouched. The enriched batch is persisted best-effort
// before being returned.
func (p *Processor) Process(ctx context.Context, criteria types.SearchCriteria, jobs []types.JobListing) []types.JobListing {
	processed := make([]types.JobListing, 0, len(jobs))
	for _, job := range jobs {
		job.ApplyDefaults()
		if !hasUsableSummary(job) {
			job.Summary = p.Summarize(ctx, job)
		}
		processed = append(processed, job)
	}

	if p.store != nil && len(processed) > 0 {
		if _, err := p.store.Store(criteria, processed); err != nil {
			log.Printf("[ENRICH] Failed to cache enriched batch: %v", err)
		}
	}
	return processed
}

// Summarize generates a summary for a single job, degrading to a
// placeholder on any failure.
func (p *Processor) Summarize(ctx context.Context, job types.JobListing) string {
	if p.dailyLimit.Load() {
		return SummaryDailyLimit
	}

	prompt := buildSummaryPrompt(job)
	p.throttle()

	text, err := p.client.GenerateContent(ctx, prompt)
	if err != nil {
		var rlErr *llm.RateLimitError
		if errors.As(err, &rlErr) && rlErr.RetryAfter > dailyLimitThreshold {
			p.dailyLimit.Store(true)
			log.Printf("[ENRICH] Daily API limit reached (retry after %s), pausing summary generation", rlErr.RetryAfter)
			return SummaryDailyLimit
		}
		log.Printf("[ENRICH] Failed to generate summary for %q: %v", job.JobTitle, err)
		return SummaryAPIFailure
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return SummaryUnavailable
	}
	return text
}

// throttle blocks until minCallSpacing has elapsed since the previous
// provider call. The shared timestamp serializes spacing across
// concurrent callers.
func (p *Processor) throttle() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.lastCall.IsZero() {
		if elapsed := p.now().Sub(p.lastCall); elapsed < minCallSpacing {
			p.sleep(minCallSpacing - elapsed)
		}
	}
	p.lastCall = p.now()
}

func hasUsableSummary(job types.JobListing) bool {
	return job.Summary != "" && job.Summary != SummaryUnavailable
}
