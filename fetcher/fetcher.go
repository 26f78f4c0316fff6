package fetcher

import "fmt"

// Fetcher defines the contract for retrieving the HTML content of a
// single page.
type Fetcher interface {
	// Fetch retrieves the HTML content from the given URL.
	Fetch(url string) (string, error)
}

// StatusError is returned when the server answers with a non-200 status.
// The run terminates without writing output; there are no retries.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status code: %d", e.Code)
}
