// Package types provides type definitions for structured data used throughout the job-finder system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// NotSpecified is the sentinel value for fields whose content could not
// be determined from the source page.
const NotSpecified = "Not specified"

// SourceLinkedIn is the provider tag for listings scraped from LinkedIn.
const SourceLinkedIn = "LinkedIn"

// SearchCriteria represents the user-supplied job search parameters.
// Values are treated as immutable; Sanitized returns a cleaned copy
// rather than mutating in place.
type SearchCriteria struct {
	Position   string `json:"position" validate:"required"`
	Experience string `json:"experience"`
	Salary     string `json:"salary"`
	JobNature  string `json:"jobNature"`
	Location   string `json:"location" validate:"required"`
	Skills     string `json:"skills"`
}

// Sanitized returns a copy of the criteria with every field passed
// through the given sanitizer.
func (c SearchCriteria) Sanitized(sanitize func(string) string) SearchCriteria {
	return SearchCriteria{
		Position:   sanitize(c.Position),
		Experience: sanitize(c.Experience),
		Salary:     sanitize(c.Salary),
		JobNature:  sanitize(c.JobNature),
		Location:   sanitize(c.Location),
		Skills:     sanitize(c.Skills),
	}
}

// JobListing represents one discovered job posting.
//
// Invariant: JobTitle and ApplyLink are non-empty for every listing
// that leaves the scraper. Cards where either cannot be extracted are
// dropped during scraping, never emitted with placeholders.
type JobListing struct {
	JobTitle    string `json:"job_title"`
	Company     string `json:"company"`
	Experience  string `json:"experience,omitempty"`
	JobNature   string `json:"jobNature,omitempty"`
	Location    string `json:"location,omitempty"`
	Salary      string `json:"salary,omitempty"`
	ApplyLink   string `json:"apply_link"`
	Description string `json:"description,omitempty"`
	Source      string `json:"source,omitempty"`
	Summary     string `json:"summary,omitempty"`
}

// ApplyDefaults fills unset optional fields with their documented
// defaults. It does not touch JobTitle or ApplyLink.
func (j *JobListing) ApplyDefaults() {
	if j.JobNature == "" {
		j.JobNature = NotSpecified
	}
	if j.Salary == "" {
		j.Salary = NotSpecified
	}
	if j.Source == "" {
		j.Source = SourceLinkedIn
	}
}

// Valid reports whether the listing satisfies the required-field
// invariant.
func (j JobListing) Valid() bool {
	return j.JobTitle != "" && j.ApplyLink != ""
}

// SearchResponse is the API response shape for a job search.
type SearchResponse struct {
	RelevantJobs []JobListing `json:"relevant_jobs"`
}
