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

// factRecord is one record from the catfact.ninja batch endpoint.
type factRecord struct {
	ID   string `json:"_id"`
	Fact string `json:"fact"`
}

// factsResponse is the paginated envelope around the batch.
type factsResponse struct {
	Data []factRecord `json:"data"`
}

// FactsSource fetches short text facts from catfact.ninja.
type FactsSource struct {
	name      string
	url       string
	limit     int
	maxLength int
	client    *http.Client
}

// NewFacts creates a facts source.
func NewFacts(url string, limit, maxLength int, timeout time.Duration) *FactsSource {
	return &FactsSource{
		name:      "catfact.ninja",
		url:       url,
		limit:     limit,
		maxLength: maxLength,
		client:    newClient(timeout),
	}
}

func (s *FactsSource) Name() string { return s.name }

func (s *FactsSource) Kind() catalog.Kind { return catalog.KindFacts }

// Fetch retrieves one batch of facts.
func (s *FactsSource) Fetch(ctx context.Context) ([]catalog.Item, error) {
	url := fmt.Sprintf("%s?limit=%d&max_length=%d", s.url, s.limit, s.maxLength)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch facts: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("facts API error: %d", resp.StatusCode)
	}

	var body factsResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode facts response: %w", err)
	}

	return MapFacts(body.Data, time.Now()), nil
}

// MapFacts normalizes fact records into catalog items. Records without an
// id get a positional one; missing optional fields default to empty.
func MapFacts(records []factRecord, fetched time.Time) []catalog.Item {
	items := make([]catalog.Item, 0, len(records))
	for i, r := range records {
		if r.Fact == "" {
			continue
		}
		id := r.ID
		if id == "" {
			id = fmt.Sprintf("fact-%d", i)
		}
		it := catalog.NewItem(catalog.KindFacts, id, factTitle(r.Fact), r.Fact)
		it.Category = FactCategory(r.Fact)
		it.Date = fetched
		it.Fields = map[string]string{"source": "catfact.ninja"}
		items = append(items, it)
	}
	return items
}

// factTitle is the fact text up to the first sentence break.
func factTitle(text string) string {
	if i := strings.Index(text, ". "); i > 0 {
		return text[:i]
	}
	return text
}

// FactCategory buckets a fact by keywords in its text.
func FactCategory(text string) string {
	lower := strings.ToLower(text)
	switch {
	case strings.Contains(lower, "kitten"), strings.Contains(lower, "baby"):
		return "Kittens"
	case strings.Contains(lower, "health"), strings.Contains(lower, "medical"):
		return "Health"
	case strings.Contains(lower, "behavior"), strings.Contains(lower, "habit"):
		return "Behavior"
	case strings.Contains(lower, "history"), strings.Contains(lower, "ancient"):
		return "History"
	default:
		return "General"
	}
}
