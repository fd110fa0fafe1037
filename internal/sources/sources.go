// Package sources fetches batches from the public cat APIs and normalizes
// them into catalog items. Every source degrades to baked-in demo data on
// failure, so the pages always have something to show.
package sources

import (
	"context"
	"net/http"
	"time"

	"trustcat/internal/catalog"
	"trustcat/internal/logging"
)

// Source is the interface all remote adapters implement.
type Source interface {
	// Name returns human-readable source name
	Name() string

	// Kind returns the collection this source feeds
	Kind() catalog.Kind

	// Fetch retrieves one batch from the remote API
	Fetch(ctx context.Context) ([]catalog.Item, error)
}

// Result is a fetched batch plus whether it came from the live API.
type Result struct {
	Items []catalog.Item
	Live  bool
}

// FetchOrFallback attempts one fetch. On any failure (transport error,
// non-2xx, malformed body, empty batch) it logs a warning and substitutes
// the fallback items. Never retries; staleness has no correctness impact
// for informational data.
func FetchOrFallback(ctx context.Context, src Source, fallback []catalog.Item) Result {
	items, err := src.Fetch(ctx)
	if err != nil {
		logging.Warn("fetch failed, using fallback", "source", src.Name(), "error", err)
		return Result{Items: fallback, Live: false}
	}
	if len(items) == 0 {
		logging.Warn("fetch returned no items, using fallback", "source", src.Name())
		return Result{Items: fallback, Live: false}
	}
	logging.Info("fetched batch", "source", src.Name(), "items", len(items))
	return Result{Items: items, Live: true}
}

// newClient builds the shared HTTP client configuration.
func newClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &http.Client{Timeout: timeout}
}

const userAgent = "TrustCat/0.1 (terminal client)"
