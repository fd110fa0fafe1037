package sources

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"trustcat/internal/catalog"
)

// imageRecord is one record from the TheCatAPI image search endpoint.
type imageRecord struct {
	ID     string `json:"id"`
	URL    string `json:"url"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Breeds []struct {
		Name string `json:"name"`
	} `json:"breeds"`
	Tags []string `json:"tags"`
}

// ImagesSource fetches cat image URLs from TheCatAPI.
type ImagesSource struct {
	name   string
	url    string
	limit  int
	client *http.Client
}

// NewImages creates an images source.
func NewImages(url string, limit int, timeout time.Duration) *ImagesSource {
	return &ImagesSource{
		name:   "TheCatAPI images",
		url:    url,
		limit:  limit,
		client: newClient(timeout),
	}
}

func (s *ImagesSource) Name() string { return s.name }

func (s *ImagesSource) Kind() catalog.Kind { return catalog.KindImages }

// Fetch retrieves one batch of images.
func (s *ImagesSource) Fetch(ctx context.Context) ([]catalog.Item, error) {
	url := fmt.Sprintf("%s?limit=%d", s.url, s.limit)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch images: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("images API error: %d", resp.StatusCode)
	}

	var records []imageRecord
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, fmt.Errorf("failed to decode images response: %w", err)
	}

	return MapImages(records, time.Now()), nil
}

// MapImages normalizes image records into catalog items. The URL doubles as
// the identity, matching how favorites were keyed in the original site.
func MapImages(records []imageRecord, fetched time.Time) []catalog.Item {
	items := make([]catalog.Item, 0, len(records))
	for _, r := range records {
		if r.URL == "" {
			continue
		}

		breed := ""
		if len(r.Breeds) > 0 {
			breed = r.Breeds[0].Name
		}
		tags := strings.Join(r.Tags, ", ")

		category := breed
		if category == "" && len(r.Tags) > 0 {
			category = r.Tags[0]
		}

		it := catalog.NewItem(catalog.KindImages, r.URL, breed, tags)
		it.Category = category
		it.Date = fetched
		it.Fields = map[string]string{
			"src":   r.URL,
			"breed": breed,
			"tags":  tags,
			"size":  fmt.Sprintf("%dx%d", r.Width, r.Height),
		}
		items = append(items, it)
	}
	return items
}
