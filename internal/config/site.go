package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Site is the storefront chrome: everything the marketing pages and the
// shared layout need but the backend API does not own.
type Site struct {
	Name            string   `yaml:"name"`
	Tagline         string   `yaml:"tagline"`
	SupportEmail    string   `yaml:"support_email"`
	DefaultCurrency string   `yaml:"default_currency"`
	NavCategories   []string `yaml:"nav_categories"`
}

// LoadSite reads site.yaml. A missing file falls back to defaults so the
// app boots with nothing but env vars set.
func LoadSite(path string) (Site, error) {
	s := Site{
		Name:            "GoFromA2zAfrica",
		Tagline:         "Shop African stores, delivered to your door",
		SupportEmail:    "support@gofroma2zafrica.com",
		DefaultCurrency: "NGN",
	}

	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return Site{}, fmt.Errorf("read site config: %w", err)
	}
	if err := yaml.Unmarshal(b, &s); err != nil {
		return Site{}, fmt.Errorf("parse site config %s: %w", path, err)
	}
	if s.DefaultCurrency == "" {
		s.DefaultCurrency = "NGN"
	}
	return s, nil
}
