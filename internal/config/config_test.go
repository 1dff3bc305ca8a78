package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:7600", cfg.APIURL)
	assert.Equal(t, "http://localhost:7600", cfg.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, 10, cfg.PageSize)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("JOBDECK_API_URL", "https://api.jobdeck.dev")
	t.Setenv("JOBDECK_HTTP_TIMEOUT", "10s")
	t.Setenv("JOBDECK_PAGE_SIZE", "25")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://api.jobdeck.dev", cfg.APIURL)
	assert.Equal(t, 10*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, 25, cfg.PageSize)
}

func TestLoadRejectsNonPositivePageSize(t *testing.T) {
	t.Setenv("JOBDECK_PAGE_SIZE", "0")
	_, err := Load()
	require.Error(t, err)
}

func TestDeriveBaseURL(t *testing.T) {
	tests := []struct {
		apiURL string
		want   string
	}{
		{"https://api.jobdeck.dev", "https://jobdeck.dev"},
		{"https://api.jobdeck.dev:8443", "https://jobdeck.dev:8443"},
		{"http://localhost:7600", "http://localhost:7600"},
		{"https://jobs.example.com", "https://jobs.example.com"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, deriveBaseURL(tt.apiURL), "apiURL=%s", tt.apiURL)
	}
}

func TestBaseURLEnvWins(t *testing.T) {
	t.Setenv("JOBDECK_API_URL", "https://api.jobdeck.dev")
	t.Setenv("JOBDECK_BASE_URL", "https://careers.example.org")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "https://careers.example.org", cfg.BaseURL)
}
