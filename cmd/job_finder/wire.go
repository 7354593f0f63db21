package main

import (
	"context"
	"fmt"

	"github.com/jonathan/job-finder/internal/cache"
	"github.com/jonathan/job-finder/internal/config"
	"github.com/jonathan/job-finder/internal/enrich"
	"github.com/jonathan/job-finder/internal/llm"
	"github.com/jonathan/job-finder/internal/scraper"
	"github.com/jonathan/job-finder/internal/search"
)

// loadConfig builds the effective configuration: environment values,
// optionally overlaid with a JSON file, validated up front.
func loadConfig(configPath string) (config.Config, error) {
	cfg := config.FromEnv()

	if configPath != "" {
		var err error
		cfg, err = config.LoadFile(cfg, configPath)
		if err != nil {
			return cfg, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// buildService wires the search service from configuration. The
// returned cleanup releases the LLM client.
func buildService(ctx context.Context, cfg config.Config) (*search.Service, func(), error) {
	var llmCfg *llm.Config
	switch cfg.LLMProvider {
	case "gemini":
		llmCfg = llm.DefaultGeminiConfig()
	default:
		llmCfg = llm.DefaultGroqConfig()
	}

	client, err := llm.NewClient(ctx, llmCfg, cfg.APIKey())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create LLM client: %w", err)
	}

	store := cache.New(cache.Config{Dir: cfg.CacheDir, TTL: cfg.CacheTTL})
	processor := enrich.New(client, store)

	scr := scraper.New(scraper.Config{
		Email:    cfg.LinkedInEmail,
		Password: cfg.LinkedInPassword,
		Headless: cfg.Headless,
	})

	cleanup := func() { _ = client.Close() }
	return search.NewService(scr, store, processor), cleanup, nil
}
