// Package scraper - login.go drives the LinkedIn authentication flow.
package scraper

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/chromedp/cdproto/cdp"
	"github.com/chromedp/cdproto/network"
	"github.com/chromedp/chromedp"
)

const (
	loginURL         = "https://www.linkedin.com/login"
	maxLoginAttempts = 3
)

// loggedInMarkers are elements only present on an authenticated page.
var loggedInMarkers = []string{
	".global-nav__me",
	".feed-identity-module",
	".search-global-typeahead__input",
}

// login authenticates the browser session, retrying with a randomized
// pause between attempts.
func (s *Scraper) login(ctx context.Context) error {
	for attempt := 1; attempt <= maxLoginAttempts; attempt++ {
		if attempt > 1 {
			s.randomDelay()
		}
		err := s.loginOnce(ctx)
		if err == nil {
			log.Printf("[SCRAPER] Login succeeded on attempt %d", attempt)
			return nil
		}
		log.Printf("[SCRAPER] Login attempt %d/%d failed: %v", attempt, maxLoginAttempts, err)
	}
	return fmt.Errorf("login failed after %d attempts", maxLoginAttempts)
}

func (s *Scraper) loginOnce(ctx context.Context) error {
	if err := chromedp.Run(ctx,
		chromedp.Navigate(loginURL),
		chromedp.Sleep(2*time.Second),
	); err != nil {
		return fmt.Errorf("failed to open login page: %w", err)
	}

	// A session restored from a previous run redirects straight to the feed.
	var currentURL string
	if err := chromedp.Run(ctx, chromedp.Location(&currentURL)); err == nil &&
		strings.Contains(currentURL, "feed") {
		return nil
	}

	// Start each attempt from a clean slate.
	if err := chromedp.Run(ctx,
		network.ClearBrowserCookies(),
		chromedp.Navigate(loginURL),
		chromedp.WaitVisible("#username", chromedp.ByQuery),
	); err != nil {
		return fmt.Errorf("login form not available: %w", err)
	}

	if err := s.typeSlowly(ctx, "#username", s.cfg.Email); err != nil {
		return fmt.Errorf("failed to enter email: %w", err)
	}
	if err := s.typeSlowly(ctx, "#password", s.cfg.Password); err != nil {
		return fmt.Errorf("failed to enter password: %w", err)
	}

	if err := chromedp.Run(ctx,
		chromedp.Click("button[type='submit']", chromedp.NodeVisible),
		chromedp.Sleep(5*time.Second),
	); err != nil {
		return fmt.Errorf("failed to submit login form: %w", err)
	}

	if !s.verifyLogin(ctx) {
		return fmt.Errorf("login not confirmed")
	}
	return nil
}

// typeSlowly enters a value character by character with jittered
// pauses, the way a person would.
func (s *Scraper) typeSlowly(ctx context.Context, sel, value string) error {
	if err := chromedp.Run(ctx,
		chromedp.Click(sel, chromedp.NodeVisible),
		chromedp.Clear(sel, chromedp.ByQuery),
	); err != nil {
		return err
	}
	for _, r := range value {
		if err := chromedp.Run(ctx, chromedp.SendKeys(sel, string(r), chromedp.ByQuery)); err != nil {
			return err
		}
		s.sleep(time.Duration(100+s.rand.Intn(200)) * time.Millisecond)
	}
	return nil
}

// verifyLogin checks the post-submit page for authentication evidence:
// the feed URL or any element only rendered for a signed-in member.
func (s *Scraper) verifyLogin(ctx context.Context) bool {
	var currentURL string
	if err := chromedp.Run(ctx, chromedp.Location(&currentURL)); err != nil {
		return false
	}
	if strings.Contains(currentURL, "feed") {
		return true
	}

	for _, marker := range loggedInMarkers {
		if nodePresent(ctx, marker) {
			return true
		}
	}
	return false
}

// nodePresent reports whether a selector matches at least one node,
// bounded by a short timeout so cascades stay fast.
func nodePresent(ctx context.Context, sel string) bool {
	tctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	var nodes []*cdp.Node
	if err := chromedp.Run(tctx, chromedp.Nodes(sel, &nodes, chromedp.ByQueryAll, chromedp.AtLeast(0))); err != nil {
		return false
	}
	return len(nodes) > 0
}
