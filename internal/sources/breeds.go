package sources

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"trustcat/internal/catalog"
)

// breedRecord is one record from the TheCatAPI breeds endpoint.
type breedRecord struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Origin      string `json:"origin"`
	Temperament string `json:"temperament"`
	LifeSpan    string `json:"life_span"`
	Description string `json:"description"`
	Weight      struct {
		Metric string `json:"metric"`
	} `json:"weight"`
	Image struct {
		URL string `json:"url"`
	} `json:"image"`
	Adaptability   int `json:"adaptability"`
	AffectionLevel int `json:"affection_level"`
	ChildFriendly  int `json:"child_friendly"`
	EnergyLevel    int `json:"energy_level"`
	Intelligence   int `json:"intelligence"`
}

// BreedsSource fetches the breed list from TheCatAPI.
type BreedsSource struct {
	name   string
	url    string
	client *http.Client
}

// NewBreeds creates a breeds source.
func NewBreeds(url string, timeout time.Duration) *BreedsSource {
	return &BreedsSource{
		name:   "TheCatAPI breeds",
		url:    url,
		client: newClient(timeout),
	}
}

func (s *BreedsSource) Name() string { return s.name }

func (s *BreedsSource) Kind() catalog.Kind { return catalog.KindBreeds }

// Fetch retrieves the full breed list.
func (s *BreedsSource) Fetch(ctx context.Context) ([]catalog.Item, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch breeds: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("breeds API error: %d", resp.StatusCode)
	}

	var records []breedRecord
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, fmt.Errorf("failed to decode breeds response: %w", err)
	}

	return MapBreeds(records, time.Now()), nil
}

// MapBreeds normalizes breed records into catalog items. All optional
// fields default to empty strings rather than failing.
func MapBreeds(records []breedRecord, fetched time.Time) []catalog.Item {
	items := make([]catalog.Item, 0, len(records))
	for _, r := range records {
		if r.ID == "" || r.Name == "" {
			continue
		}
		it := catalog.NewItem(catalog.KindBreeds, r.ID, r.Name, r.Description)
		it.Category = r.Origin
		it.Date = fetched
		it.Fields = map[string]string{
			"origin":          r.Origin,
			"temperament":     r.Temperament,
			"life_span":       r.LifeSpan,
			"weight":          r.Weight.Metric,
			"image":           r.Image.URL,
			"adaptability":    strconv.Itoa(r.Adaptability),
			"affection_level": strconv.Itoa(r.AffectionLevel),
			"child_friendly":  strconv.Itoa(r.ChildFriendly),
			"energy_level":    strconv.Itoa(r.EnergyLevel),
			"intelligence":    strconv.Itoa(r.Intelligence),
		}
		items = append(items, it)
	}
	return items
}
