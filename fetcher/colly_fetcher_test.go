package fetcher

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestCollyFetcherFetch(t *testing.T) {
	const body = `<html><body><table><tr><th>тариф</th></tr></table></body></html>`

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/tariffs":
			w.Write([]byte(body))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	t.Run("200 returns body", func(t *testing.T) {
		html, err := NewCollyFetcher().Fetch(srv.URL + "/tariffs")
		if err != nil {
			t.Fatalf("Fetch() error = %v", err)
		}
		if html != body {
			t.Errorf("Fetch() = %q, want %q", html, body)
		}
	})

	t.Run("non-200 returns StatusError", func(t *testing.T) {
		_, err := NewCollyFetcher().Fetch(srv.URL + "/missing")
		if err == nil {
			t.Fatal("Fetch() error = nil, want *StatusError")
		}
		var statusErr *StatusError
		if !errors.As(err, &statusErr) {
			t.Fatalf("Fetch() error = %v (%T), want *StatusError", err, err)
		}
		if statusErr.Code != http.StatusNotFound {
			t.Errorf("StatusError.Code = %d, want %d", statusErr.Code, http.StatusNotFound)
		}
	})
}

func TestStatusErrorMessage(t *testing.T) {
	err := &StatusError{Code: 503}
	want := "unexpected status code: 503"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}
