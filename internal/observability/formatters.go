// Package observability provides formatted output utilities for CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/job-finder/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
)

// Printer handles formatted output
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintJobListing outputs a human-readable card for a single listing.
func (p *Printer) PrintJobListing(index int, job types.JobListing) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Company:    %s\n", job.Company))
	sb.WriteString(fmt.Sprintf("Location:   %s\n", job.Location))
	sb.WriteString(fmt.Sprintf("Experience: %s\n", job.Experience))
	sb.WriteString(fmt.Sprintf("Salary:     %s\n", job.Salary))
	sb.WriteString(fmt.Sprintf("Apply:      %s", job.ApplyLink))

	if job.Summary != "" {
		sb.WriteString("\n\n")
		sb.WriteString(wrapText(job.Summary, boxWidth-4))
	}

	title := fmt.Sprintf("#%d  %s", index, job.JobTitle)
	p.printBox(title, sb.String())
}

// PrintSearchSummary outputs the result count for a finished search.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintSearchSummary(criteria types.SearchCriteria, jobs []types.JobListing) {
	if len(jobs) == 0 {
		fmt.Fprintf(p.out, "No jobs found for %q in %q\n", criteria.Position, criteria.Location)
		return
	}

	fmt.Fprintf(p.out, "Found %d jobs for %q in %q\n\n", len(jobs), criteria.Position, criteria.Location)
	for i, job := range jobs {
		p.PrintJobListing(i+1, job)
		fmt.Fprintln(p.out)
	}
}

// wrapText folds text into lines no wider than width.
func wrapText(text string, width int) string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return ""
	}

	var sb strings.Builder
	lineLen := 0
	for i, word := range words {
		if lineLen > 0 && lineLen+1+len(word) > width {
			sb.WriteString("\n")
			lineLen = 0
		} else if i > 0 {
			sb.WriteString(" ")
			lineLen++
		}
		sb.WriteString(word)
		lineLen += len(word)
	}
	return sb.String()
}
