package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Config is the persistent application configuration
type Config struct {
	// Remote API endpoints
	API APIConfig `json:"api"`

	// UI Preferences
	UI UIConfig `json:"ui"`
}

// APIConfig holds remote source settings
type APIConfig struct {
	FactsURL  string `json:"facts_url"`
	ImagesURL string `json:"images_url"`
	BreedsURL string `json:"breeds_url"`

	// FetchLimit is the batch size requested from the facts and images APIs
	FetchLimit int `json:"fetch_limit"`

	// MaxFactLength caps fact text length requested from the facts API
	MaxFactLength int `json:"max_fact_length"`

	// TimeoutSeconds for the HTTP client
	TimeoutSeconds int `json:"timeout_seconds"`
}

// UIConfig holds UI preferences
type UIConfig struct {
	Theme            string `json:"theme"`
	PageSize         int    `json:"page_size"`          // Cards shown before "load more"
	SlideshowDelayMs int    `json:"slideshow_delay_ms"` // Gallery auto-advance interval
	AnswerDelayMs    int    `json:"answer_delay_ms"`    // Quiz reveal delay before next question
}

// DefaultConfig returns sensible defaults
func DefaultConfig() *Config {
	return &Config{
		API: APIConfig{
			FactsURL:       "https://catfact.ninja/facts",
			ImagesURL:      "https://api.thecatapi.com/v1/images/search",
			BreedsURL:      "https://api.thecatapi.com/v1/breeds",
			FetchLimit:     50,
			MaxFactLength:  500,
			TimeoutSeconds: 30,
		},
		UI: UIConfig{
			Theme:            "default",
			PageSize:         6,
			SlideshowDelayMs: 3000,
			AnswerDelayMs:    900,
		},
	}
}

// ConfigPath returns the path to the config file
func ConfigPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".trustcat", "config.json")
}

// Load reads config from disk, or returns defaults
func Load() (*Config, error) {
	path := ConfigPath()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		// Corrupt config falls back to defaults rather than failing startup
		return DefaultConfig(), nil
	}
	cfg.fillZero()

	return &cfg, nil
}

// Save writes config to disk
func (c *Config) Save() error {
	path := ConfigPath()

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// fillZero replaces zero-valued fields with defaults so a hand-edited
// config with missing keys still works.
func (c *Config) fillZero() {
	def := DefaultConfig()
	if c.API.FactsURL == "" {
		c.API.FactsURL = def.API.FactsURL
	}
	if c.API.ImagesURL == "" {
		c.API.ImagesURL = def.API.ImagesURL
	}
	if c.API.BreedsURL == "" {
		c.API.BreedsURL = def.API.BreedsURL
	}
	if c.API.FetchLimit <= 0 {
		c.API.FetchLimit = def.API.FetchLimit
	}
	if c.API.MaxFactLength <= 0 {
		c.API.MaxFactLength = def.API.MaxFactLength
	}
	if c.API.TimeoutSeconds <= 0 {
		c.API.TimeoutSeconds = def.API.TimeoutSeconds
	}
	if c.UI.PageSize <= 0 {
		c.UI.PageSize = def.UI.PageSize
	}
	if c.UI.SlideshowDelayMs <= 0 {
		c.UI.SlideshowDelayMs = def.UI.SlideshowDelayMs
	}
	if c.UI.AnswerDelayMs <= 0 {
		c.UI.AnswerDelayMs = def.UI.AnswerDelayMs
	}
}
