// Package enrich - prompt.go builds the summary prompt for a job listing.
package enrich

import (
	"github.com/jonathan/job-finder/internal/prompts"
	"github.com/jonathan/job-finder/internal/types"
)

// maxDescriptionChars caps the description embedded in a prompt so a
// single oversized posting cannot blow the model's context budget.
const maxDescriptionChars = 2000

// buildSummaryPrompt renders the embedded summary template with the
// job's fields. Missing fields fall back to placeholder values so the
// model never sees empty slots.
func buildSummaryPrompt(job types.JobListing) string {
	template := prompts.MustGet("enrichment.json", "job-summary")

	description := job.Description
	if description == "" {
		description = "Not provided"
	}

	return prompts.Format(template, map[string]string{
		"Title":       job.JobTitle,
		"Company":     job.Company,
		"Experience":  orNotSpecified(job.Experience),
		"Location":    orNotSpecified(job.Location),
		"JobType":     orNotSpecified(job.JobNature),
		"Salary":      orNotSpecified(job.Salary),
		"Description": truncate(description, maxDescriptionChars),
	})
}

func orNotSpecified(s string) string {
	if s == "" {
		return types.NotSpecified
	}
	return s
}

// truncate cuts s to at most limit characters, counting runes so a
// multi-byte character is never split.
func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
