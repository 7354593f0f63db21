// Package cache provides a filesystem-backed result cache for job
// search batches, keyed by normalized position and location.
//
// The cache is append-only: every Store writes a fresh timestamped
// file and Lookup selects the newest file for a key. Concurrent
// writers therefore never corrupt each other; stale files are ignored
// by the freshness window rather than deleted. Caching is strictly an
// optimization — read failures degrade to a miss and write failures
// are reported but expected to be swallowed by callers.
package cache

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jonathan/job-finder/internal/schemas"
	"github.com/jonathan/job-finder/internal/textutil"
	"github.com/jonathan/job-finder/internal/types"
)

// DefaultTTL is the freshness window after which an entry is treated
// as stale and ignored on lookup.
const DefaultTTL = 4 * time.Hour

// providerTag is embedded in cache filenames to identify the scraping
// provider that produced the batch.
const providerTag = "linkedin"

// Entry is the persisted cache document.
type Entry struct {
	Criteria  types.SearchCriteria `json:"criteria"`
	Timestamp time.Time            `json:"timestamp"`
	Jobs      []types.JobListing   `json:"jobs"`
}

// Config holds cache configuration.
type Config struct {
	Dir string
	TTL time.Duration
}

// Cache reads and writes job batches on durable storage. It is the
// sole owner of the entry files under its directory.
type Cache struct {
	dir string
	ttl time.Duration

	// now is swappable for tests
	now func() time.Time
}

// New creates a cache rooted at cfg.Dir, applying defaults for unset
// fields.
func New(cfg Config) *Cache {
	if cfg.Dir == "" {
		cfg.Dir = "cache"
	}
	if cfg.TTL == 0 {
		cfg.TTL = DefaultTTL
	}
	return &Cache{dir: cfg.Dir, ttl: cfg.TTL, now: time.Now}
}

// Key builds the normalized cache key for a set of criteria:
// sanitized, lower-cased "position_location" with spaces folded to
// underscores.
func Key(criteria types.SearchCriteria) string {
	raw := textutil.Sanitize(criteria.Position) + "_" + textutil.Sanitize(criteria.Location)
	return strings.ReplaceAll(strings.ToLower(raw), " ", "_")
}

// Lookup returns the most recent fresh batch for the criteria, or
// (nil, false) on a miss. Parse and I/O failures are logged and
// treated as misses — they never propagate to the caller.
func (c *Cache) Lookup(criteria types.SearchCriteria) ([]types.JobListing, bool) {
	pattern := filepath.Join(c.dir, Key(criteria)+"_*.json")
	matches, err := filepath.Glob(pattern)
	if err != nil || len(matches) == 0 {
		return nil, false
	}

	latest, modTime, ok := newestFile(matches)
	if !ok {
		return nil, false
	}

	if c.now().Sub(modTime) > c.ttl {
		log.Printf("[CACHE] Entry expired: %s", latest)
		return nil, false
	}

	data, err := os.ReadFile(latest)
	if err != nil {
		log.Printf("[CACHE] Failed to read %s: %v", latest, err)
		return nil, false
	}

	if err := schemas.ValidateCacheEntry(data); err != nil {
		log.Printf("[CACHE] Invalid entry %s: %v", latest, err)
		return nil, false
	}

	var entry Entry
	if err := json.Unmarshal(data, &entry); err != nil {
		log.Printf("[CACHE] Failed to parse %s: %v", latest, err)
		return nil, false
	}

	log.Printf("[CACHE] Hit: %d jobs from %s", len(entry.Jobs), latest)
	return entry.Jobs, true
}

// Store serializes the criteria, the current timestamp, and the job
// batch to a new timestamped file and returns its path. Callers treat
// failures as non-fatal: caching must never fail the overall request.
func (c *Cache) Store(criteria types.SearchCriteria, jobs []types.JobListing) (string, error) {
	if err := os.MkdirAll(c.dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create cache directory: %w", err)
	}

	entry := Entry{
		Criteria:  criteria,
		Timestamp: c.now(),
		Jobs:      jobs,
	}
	data, err := json.MarshalIndent(entry, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal cache entry: %w", err)
	}

	filename := fmt.Sprintf("%s_%s_%d.json", Key(criteria), providerTag, c.now().UnixNano())
	path := filepath.Join(c.dir, filename)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write cache entry: %w", err)
	}

	log.Printf("[CACHE] Stored %d jobs to %s", len(jobs), path)
	return path, nil
}

// newestFile returns the path and modification time of the most
// recently modified file among candidates.
func newestFile(paths []string) (string, time.Time, bool) {
	var (
		newest  string
		modTime time.Time
	)
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			continue
		}
		if newest == "" || info.ModTime().After(modTime) {
			newest = p
			modTime = info.ModTime()
		}
	}
	return newest, modTime, newest != ""
}
