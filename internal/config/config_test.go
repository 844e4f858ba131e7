package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setEnv(t *testing.T, kv map[string]string) {
	t.Helper()
	for _, k := range []string{
		"APP_ENV", "PORT", "API_BASE_URL", "API_TIMEOUT", "API_RETRY_MAX",
		"COOKIE_SECRET", "COOKIE_SECURE", "SITE_CONFIG",
	} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
	for k, v := range kv {
		t.Setenv(k, v)
	}
}

func TestFromEnvDefaults(t *testing.T) {
	setEnv(t, map[string]string{"API_BASE_URL": "http://localhost:4000/api"})

	cfg, err := FromEnv()

	require.NoError(t, err)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, 15*time.Second, cfg.APITimeout)
	assert.Equal(t, 3, cfg.APIRetryMax)
	assert.Equal(t, []byte("dev-only-cookie-secret"), cfg.CookieSecret)
	assert.False(t, cfg.CookieSecure)
	assert.Equal(t, "GoFromA2zAfrica", cfg.Site.Name)
}

func TestFromEnvRequiresBaseURL(t *testing.T) {
	setEnv(t, nil)

	_, err := FromEnv()
	assert.ErrorContains(t, err, "API_BASE_URL")
}

func TestFromEnvProductionRequiresSecret(t *testing.T) {
	setEnv(t, map[string]string{
		"APP_ENV":      "production",
		"API_BASE_URL": "https://api.gofroma2zafrica.com",
	})

	_, err := FromEnv()
	assert.ErrorContains(t, err, "COOKIE_SECRET")
}

func TestFromEnvRejectsBadValues(t *testing.T) {
	cases := map[string]map[string]string{
		"bad port":    {"API_BASE_URL": "http://x", "PORT": "nope"},
		"zero port":   {"API_BASE_URL": "http://x", "PORT": "0"},
		"bad timeout": {"API_BASE_URL": "http://x", "API_TIMEOUT": "soon"},
		"bad retries": {"API_BASE_URL": "http://x", "API_RETRY_MAX": "-1"},
	}
	for name, env := range cases {
		setEnv(t, env)
		_, err := FromEnv()
		assert.Error(t, err, name)
	}
}

func TestLoadSiteFromYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
name: Test Market
tagline: Test tagline
support_email: help@test.example
nav_categories:
  - Spices
  - Fabrics
`), 0o644))

	s, err := LoadSite(path)

	require.NoError(t, err)
	assert.Equal(t, "Test Market", s.Name)
	assert.Equal(t, []string{"Spices", "Fabrics"}, s.NavCategories)
	assert.Equal(t, "NGN", s.DefaultCurrency, "the default currency backstops a sparse file")
}

func TestLoadSiteMissingFileUsesDefaults(t *testing.T) {
	s, err := LoadSite(filepath.Join(t.TempDir(), "nope.yaml"))

	require.NoError(t, err)
	assert.Equal(t, "GoFromA2zAfrica", s.Name)
}

func TestLoadSiteBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: [unclosed"), 0o644))

	_, err := LoadSite(path)
	assert.Error(t, err)
}
