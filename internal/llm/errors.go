// Package llm - errors.go provides typed errors for provider failures.
package llm

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// RateLimitError indicates the provider rejected a request because a
// usage quota was exhausted. RetryAfter is zero when the provider did
// not say how long to wait.
type RateLimitError struct {
	Provider   Provider
	RetryAfter time.Duration
	Message    string
}

func (e *RateLimitError) Error() string {
	if e.RetryAfter > 0 {
		return fmt.Sprintf("%s rate limit exceeded, retry after %s: %s", e.Provider, e.RetryAfter, e.Message)
	}
	return fmt.Sprintf("%s rate limit exceeded: %s", e.Provider, e.Message)
}

// Groq embeds the suggested wait in the error message body, e.g.
// "Please try again in 12m3.456s".
var retryAfterPattern = regexp.MustCompile(`try again in (\d+)m([\d.]+)s`)

// parseRetryAfter extracts the suggested wait from a provider error
// message. It returns zero when the message carries no parseable hint.
func parseRetryAfter(message string) time.Duration {
	m := retryAfterPattern.FindStringSubmatch(message)
	if m == nil {
		return 0
	}
	minutes, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	seconds, err := strconv.ParseFloat(m[2], 64)
	if err != nil {
		return 0
	}
	return time.Duration((float64(minutes)*60 + seconds) * float64(time.Second))
}
