package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/job-finder/internal/observability"
	"github.com/jonathan/job-finder/internal/types"
)

var (
	searchPosition  string
	searchLocation  string
	searchExp       string
	searchSalary    string
	searchJobNature string
	searchSkills    string
	searchConfig    string
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Run a single job search from the terminal",
	Long:  `Search LinkedIn for postings matching the given criteria and print the enriched results.`,
	RunE:  runSearch,
}

func init() {
	searchCmd.Flags().StringVar(&searchPosition, "position", "", "Job title to search for (required)")
	searchCmd.Flags().StringVar(&searchLocation, "location", "", "Location to search in (required)")
	searchCmd.Flags().StringVar(&searchExp, "experience", "", "Desired experience level")
	searchCmd.Flags().StringVar(&searchSalary, "salary", "", "Desired salary")
	searchCmd.Flags().StringVar(&searchJobNature, "job-nature", "", "Job nature (remote, onsite, hybrid)")
	searchCmd.Flags().StringVar(&searchSkills, "skills", "", "Relevant skills")
	searchCmd.Flags().StringVar(&searchConfig, "config", "", "Path to a JSON config file")
	_ = searchCmd.MarkFlagRequired("position")
	_ = searchCmd.MarkFlagRequired("location")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(searchConfig)
	if err != nil {
		return err
	}

	ctx := context.Background()
	svc, cleanup, err := buildService(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to build search service: %w", err)
	}
	defer cleanup()

	criteria := types.SearchCriteria{
		Position:   searchPosition,
		Location:   searchLocation,
		Experience: searchExp,
		Salary:     searchSalary,
		JobNature:  searchJobNature,
		Skills:     searchSkills,
	}

	jobs, err := svc.Search(ctx, criteria)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintSearchSummary(criteria, jobs)
	return nil
}
