// Package extract provides best-effort pattern extraction of salary and
// experience phrases from unstructured job description text.
//
// Pattern order is significant: more specific patterns (explicit
// currency plus range) run before generic ones (bare number with "k")
// to avoid false positives. The first match wins and its matched
// substring is returned verbatim.
package extract

import (
	"regexp"

	"github.com/jonathan/job-finder/internal/types"
)

var salaryPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\$[\d,]+ - \$[\d,]+(?:/year|/hr|/month)?`),
	regexp.MustCompile(`(?i)\$[\d,]+(?:/year|/hr|/month)`),
	regexp.MustCompile(`(?i)[\d,]+ - [\d,]+k`),
	regexp.MustCompile(`(?i)[\d,]+k`),
	regexp.MustCompile(`(?i)(?:USD|EUR|GBP|PKR) [\d,]+k?(?:/year|/hr|/month)?`),
	regexp.MustCompile(`(?i)(?:Rs)\s*\.?\s*[\d,]+k?(?:/year|/hr|/month)?`),
}

var experiencePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\d+\+?\s*-\s*\d+\+?\s*years?.*experience`),
	regexp.MustCompile(`(?i)\d+\+?\s*years?.*experience`),
	regexp.MustCompile(`(?i)minimum.*\d+\s*years?.*experience`),
	regexp.MustCompile(`(?i)at least.*\d+\s*years?.*experience`),
	regexp.MustCompile(`(?i)senior.*level`),
	regexp.MustCompile(`(?i)mid.*level`),
	regexp.MustCompile(`(?i)entry.*level`),
	regexp.MustCompile(`(?i)fresher`),
}

// Salary returns the first salary-looking substring of the description,
// or the "Not specified" sentinel when no pattern matches.
func Salary(description string) string {
	return firstMatch(salaryPatterns, description)
}

// Experience returns the first experience-requirement substring of the
// description, or the "Not specified" sentinel when no pattern matches.
func Experience(description string) string {
	return firstMatch(experiencePatterns, description)
}

func firstMatch(patterns []*regexp.Regexp, text string) string {
	for _, p := range patterns {
		if m := p.FindString(text); m != "" {
			return m
		}
	}
	return types.NotSpecified
}
