package fetcher

import (
	"fmt"
	"log"
	"time"

	"github.com/gocolly/colly/v2"
	"github.com/gocolly/colly/v2/extensions"
)

// CollyFetcher implements the Fetcher interface using colly
type CollyFetcher struct {
	collector *colly.Collector
}

// NewCollyFetcher creates a new CollyFetcher instance. Every request goes
// out with a randomized User-Agent header.
func NewCollyFetcher() *CollyFetcher {
	c := colly.NewCollector()

	// Rotate the User-Agent on each request
	extensions.RandomUserAgent(c)

	// Be polite to the tariff page host
	c.Limit(&colly.LimitRule{
		DomainGlob:  "*rialcom.*",
		Parallelism: 1,
		Delay:       2 * time.Second,
	})

	return &CollyFetcher{
		collector: c,
	}
}

// Fetch implements the Fetcher interface. A non-200 response is returned
// as a *StatusError carrying the status code.
func (cf *CollyFetcher) Fetch(url string) (string, error) {
	var html string
	var fetchErr error

	cf.collector.OnResponse(func(r *colly.Response) {
		html = string(r.Body)
	})

	cf.collector.OnError(func(r *colly.Response, err error) {
		if r != nil && r.StatusCode != 0 {
			log.Printf("Error fetching %s: status %d\n", r.Request.URL, r.StatusCode)
			fetchErr = &StatusError{Code: r.StatusCode}
			return
		}
		log.Printf("Error fetching %s: %v\n", url, err)
		fetchErr = err
	})

	visitErr := cf.collector.Visit(url)
	cf.collector.Wait()

	if fetchErr != nil {
		return "", fetchErr
	}
	if visitErr != nil {
		return "", fmt.Errorf("failed to visit URL: %w", visitErr)
	}
	if html == "" {
		return "", fmt.Errorf("empty response body from %s", url)
	}

	return html, nil
}
