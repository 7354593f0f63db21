package enrich

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/job-finder/internal/llm"
	"github.com/jonathan/job-finder/internal/types"
)

// fakeClient scripts provider responses per call.
type fakeClient struct {
	responses []string
	errs      []error
	prompts   []string
}

func (f *fakeClient) GenerateContent(_ context.Context, prompt string) (string, error) {
	i := len(f.prompts)
	f.prompts = append(f.prompts, prompt)
	var err error
	if i < len(f.errs) {
		err = f.errs[i]
	}
	var resp string
	if i < len(f.responses) {
		resp = f.responses[i]
	}
	return resp, err
}

func (f *fakeClient) Close() error { return nil }

type fakeStore struct {
	criteria types.SearchCriteria
	jobs     []types.JobListing
	calls    int
	err      error
}

func (f *fakeStore) Store(criteria types.SearchCriteria, jobs []types.JobListing) (string, error) {
	f.calls++
	f.criteria = criteria
	f.jobs = jobs
	return "cache/test.json", f.err
}

// newTestProcessor wires a Processor with an instant clock so tests
// never actually sleep.
func newTestProcessor(client llm.Client, store Storer) (*Processor, *[]time.Duration) {
	p := New(client, store)
	slept := &[]time.Duration{}
	p.now = func() time.Time { return time.Unix(1700000000, 0) }
	p.sleep = func(d time.Duration) { *slept = append(*slept, d) }
	return p, slept
}

func sampleJob() types.JobListing {
	return types.JobListing{
		JobTitle:    "Backend Developer",
		Company:     "Acme",
		Location:    "Berlin",
		ApplyLink:   "https://example.com/jobs/1",
		Description: "Build services in Go.",
	}
}

func TestProcess_SetsSummariesAndDefaults(t *testing.T) {
	client := &fakeClient{responses: []string{"First summary.", "Second summary."}}
	p, _ := newTestProcessor(client, nil)

	jobs := []types.JobListing{sampleJob(), {JobTitle: "Data Engineer", ApplyLink: "https://example.com/jobs/2"}}
	got := p.Process(context.Background(), types.SearchCriteria{Position: "dev", Location: "Berlin"}, jobs)

	require.Len(t, got, 2)
	assert.Equal(t, "First summary.", got[0].Summary)
	assert.Equal(t, "Second summary.", got[1].Summary)
	assert.Equal(t, types.SourceLinkedIn, got[0].Source)
	assert.Equal(t, types.NotSpecified, got[1].JobNature)
	assert.Equal(t, types.NotSpecified, got[1].Salary)
}

func TestProcess_PassesThroughExistingSummary(t *testing.T) {
	client := &fakeClient{}
	p, _ := newTestProcessor(client, nil)

	job := sampleJob()
	job.Summary = "Already summarized."
	got := p.Process(context.Background(), types.SearchCriteria{}, []types.JobListing{job})

	require.Len(t, got, 1)
	assert.Equal(t, "Already summarized.", got[0].Summary)
	assert.Empty(t, client.prompts)
}

func TestProcess_RetriesPlaceholderSummary(t *testing.T) {
	client := &fakeClient{responses: []string{"Fresh summary."}}
	p, _ := newTestProcessor(client, nil)

	job := sampleJob()
	job.Summary = SummaryUnavailable
	got := p.Process(context.Background(), types.SearchCriteria{}, []types.JobListing{job})

	require.Len(t, got, 1)
	assert.Equal(t, "Fresh summary.", got[0].Summary)
}

func TestProcess_StoresEnrichedBatch(t *testing.T) {
	client := &fakeClient{responses: []string{"A summary."}}
	store := &fakeStore{}
	p, _ := newTestProcessor(client, store)

	criteria := types.SearchCriteria{Position: "dev", Location: "Berlin"}
	p.Process(context.Background(), criteria, []types.JobListing{sampleJob()})

	assert.Equal(t, 1, store.calls)
	assert.Equal(t, criteria, store.criteria)
	require.Len(t, store.jobs, 1)
	assert.Equal(t, "A summary.", store.jobs[0].Summary)
}

func TestProcess_StoreFailureIsSwallowed(t *testing.T) {
	client := &fakeClient{responses: []string{"A summary."}}
	store := &fakeStore{err: errors.New("disk full")}
	p, _ := newTestProcessor(client, store)

	got := p.Process(context.Background(), types.SearchCriteria{}, []types.JobListing{sampleJob()})
	require.Len(t, got, 1)
	assert.Equal(t, "A summary.", got[0].Summary)
}

func TestProcess_EmptyBatchSkipsStore(t *testing.T) {
	store := &fakeStore{}
	p, _ := newTestProcessor(&fakeClient{}, store)

	got := p.Process(context.Background(), types.SearchCriteria{}, nil)
	assert.Empty(t, got)
	assert.Zero(t, store.calls)
}

func TestSummarize_SpacingBetweenCalls(t *testing.T) {
	client := &fakeClient{responses: []string{"one", "two"}}
	p, slept := newTestProcessor(client, nil)

	p.Summarize(context.Background(), sampleJob())
	p.Summarize(context.Background(), sampleJob())

	// The clock is frozen, so the second call must wait the full gap.
	require.Len(t, *slept, 1)
	assert.Equal(t, minCallSpacing, (*slept)[0])
}

func TestSummarize_LongRateLimitSetsDailyFlag(t *testing.T) {
	client := &fakeClient{errs: []error{
		&llm.RateLimitError{Provider: llm.ProviderGroq, RetryAfter: 10 * time.Minute, Message: "quota exhausted"},
	}}
	p, _ := newTestProcessor(client, nil)

	got := p.Summarize(context.Background(), sampleJob())
	assert.Equal(t, SummaryDailyLimit, got)
	assert.True(t, p.DailyLimitReached())

	// Subsequent calls short-circuit without touching the provider.
	got = p.Summarize(context.Background(), sampleJob())
	assert.Equal(t, SummaryDailyLimit, got)
	assert.Len(t, client.prompts, 1)
}

func TestSummarize_ShortRateLimitIsAPIFailure(t *testing.T) {
	client := &fakeClient{errs: []error{
		&llm.RateLimitError{Provider: llm.ProviderGroq, RetryAfter: 30 * time.Second, Message: "per-minute limit"},
	}}
	p, _ := newTestProcessor(client, nil)

	got := p.Summarize(context.Background(), sampleJob())
	assert.Equal(t, SummaryAPIFailure, got)
	assert.False(t, p.DailyLimitReached())
}

func TestSummarize_GenericErrorIsAPIFailure(t *testing.T) {
	client := &fakeClient{errs: []error{errors.New("connection refused")}}
	p, _ := newTestProcessor(client, nil)

	got := p.Summarize(context.Background(), sampleJob())
	assert.Equal(t, SummaryAPIFailure, got)
}

func TestSummarize_EmptyResponseIsUnavailable(t *testing.T) {
	client := &fakeClient{responses: []string{"   "}}
	p, _ := newTestProcessor(client, nil)

	got := p.Summarize(context.Background(), sampleJob())
	assert.Equal(t, SummaryUnavailable, got)
}
