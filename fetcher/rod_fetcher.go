package fetcher

import (
	"fmt"
	"log"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
)

// RodFetcher implements the Fetcher interface using rod (headless
// browser). Useful when the tariff page is served behind JavaScript
// challenges that a plain HTTP client cannot pass.
type RodFetcher struct {
	browser *rod.Browser
}

// NewRodFetcher launches a headless browser and connects to it.
func NewRodFetcher() (*RodFetcher, error) {
	l := launcher.New().
		Headless(true).
		NoSandbox(true).
		Leakless(false).
		Set("disable-blink-features", "AutomationControlled").
		Set("disable-dev-shm-usage").
		Set("disable-gpu").
		Set("no-first-run").
		Set("no-default-browser-check").
		Set("disable-extensions").
		Set("mute-audio")

	controlURL, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("failed to launch browser: %w", err)
	}

	browser := rod.New().ControlURL(controlURL)
	if err := browser.Connect(); err != nil {
		return nil, fmt.Errorf("failed to connect to browser: %w", err)
	}

	return &RodFetcher{browser: browser}, nil
}

// Fetch navigates to the URL, waits for the page to render and returns
// its HTML.
func (rf *RodFetcher) Fetch(url string) (string, error) {
	var page *rod.Page
	var pageErr error
	func() {
		defer func() {
			if r := recover(); r != nil {
				pageErr = fmt.Errorf("panic while creating page: %v", r)
			}
		}()
		page = rf.browser.MustPage()
	}()
	if pageErr != nil {
		return "", pageErr
	}
	defer page.Close()

	if err := page.Navigate(url); err != nil {
		return "", fmt.Errorf("failed to navigate: %w", err)
	}

	page.WaitLoad()

	if err := page.Timeout(10 * time.Second).WaitStable(500 * time.Millisecond); err != nil {
		log.Printf("Warning: page did not stabilize within timeout, continuing anyway: %v\n", err)
	}

	html, err := page.HTML()
	if err != nil {
		return "", fmt.Errorf("failed to get HTML: %w", err)
	}

	return html, nil
}

// Close shuts down the browser.
func (rf *RodFetcher) Close() error {
	if rf.browser == nil {
		return nil
	}
	return rf.browser.Close()
}
