package scraper

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/job-finder/internal/types"
)

func TestSearchURL(t *testing.T) {
	criteria := types.SearchCriteria{
		Position: "Full Stack Developer",
		Location: "Islamabad, Pakistan",
	}

	got := searchURL(criteria)
	assert.Contains(t, got, "https://www.linkedin.com/jobs/search?")
	assert.Contains(t, got, "keywords=Full+Stack+Developer")
	assert.Contains(t, got, "location=Islamabad%2C+Pakistan")
	// Remote filter, most relevant first.
	assert.Contains(t, got, "f_WT=2")
	assert.Contains(t, got, "sortBy=R")
}

func TestSearchURL_SanitizesInput(t *testing.T) {
	criteria := types.SearchCriteria{
		Position: "Go\x00\a Developer",
		Location: "Berlin",
	}
	got := searchURL(criteria)
	assert.Contains(t, got, "keywords=Go+Developer")
}

func TestNew_AppliesDefaults(t *testing.T) {
	s := New(Config{Email: "user@example.com", Password: "secret"})

	assert.Equal(t, 3*time.Second, s.cfg.MinDelay)
	assert.Equal(t, 7*time.Second, s.cfg.MaxDelay)
	assert.NotEmpty(t, s.cfg.Selectors.ResultsContainer)
	assert.NotNil(t, s.sleep)
}

func TestNew_KeepsExplicitConfig(t *testing.T) {
	custom := SelectorSet{Version: "test", ResultsContainer: []string{"#results"}}
	s := New(Config{MinDelay: time.Second, MaxDelay: 2 * time.Second, Selectors: custom})

	assert.Equal(t, time.Second, s.cfg.MinDelay)
	assert.Equal(t, "test", s.cfg.Selectors.Version)
}

func TestDefaultSelectors_CascadesPopulated(t *testing.T) {
	set := DefaultSelectors()

	assert.NotEmpty(t, set.Version)
	assert.NotEmpty(t, set.ResultsContainer)
	assert.NotEmpty(t, set.JobCards)
	assert.NotEmpty(t, set.Title)
	assert.NotEmpty(t, set.Company)
	assert.NotEmpty(t, set.Location)
	assert.NotEmpty(t, set.Description)

	// Highest-signal selectors lead their cascades.
	assert.Equal(t, "div.jobs-search-results-list", set.ResultsContainer[0])
	assert.Equal(t, "div.job-card-container", set.JobCards[0])
}

func TestBuildListing_PopulatesExtractedFields(t *testing.T) {
	fields := cardFields{Title: "Go Developer", Company: "Tech Corp", Location: "Berlin"}
	description := "We offer $4,000 - $6,000/month for 3+ years of experience."

	job, err := buildListing(fields, description, "https://www.linkedin.com/jobs/view/123")
	require.NoError(t, err)
	assert.Equal(t, "Go Developer", job.JobTitle)
	assert.Equal(t, "$4,000 - $6,000/month", job.Salary)
	assert.Equal(t, "3+ years of experience", job.Experience)
	assert.Equal(t, types.SourceLinkedIn, job.Source)
	assert.Equal(t, types.NotSpecified, job.JobNature)
}

func TestBuildListing_RejectsMissingApplyLink(t *testing.T) {
	fields := cardFields{Title: "Go Developer"}

	_, err := buildListing(fields, "some description", "")
	assert.Error(t, err)
}

func TestBuildListing_RejectsMissingTitle(t *testing.T) {
	_, err := buildListing(cardFields{}, "some description", "https://www.linkedin.com/jobs/view/123")
	assert.Error(t, err)
}

func TestRandomDelay_StaysInBounds(t *testing.T) {
	s := New(Config{MinDelay: 10 * time.Millisecond, MaxDelay: 20 * time.Millisecond, Selectors: DefaultSelectors()})

	var slept []time.Duration
	s.sleep = func(d time.Duration) { slept = append(slept, d) }

	for i := 0; i < 50; i++ {
		s.randomDelay()
	}
	for _, d := range slept {
		assert.GreaterOrEqual(t, d, 10*time.Millisecond)
		assert.Less(t, d, 20*time.Millisecond)
	}
}
