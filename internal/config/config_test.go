package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"ITEMDESK_API_URL", "ITEMDESK_PAGE_SIZE", "ITEMDESK_TIMEOUT", "ITEMDESK_LOG_FILE",
		"ITEMDESK_IMAGE_MAX_DIM", "ITEMDESK_PLACEHOLDER_IMAGE", "ITEMDESK_DEBUG",
	} {
		t.Setenv(k, "")
	}
	t.Chdir(t.TempDir()) // keep a developer's .env out of the test
	t.Setenv("HOME", t.TempDir())
}

func writeFile(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8000", cfg.APIURL)
	assert.Equal(t, 10, cfg.PageSize)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.Equal(t, 0, cfg.ImageMaxDim)
}

func TestLoadFileThenEnv(t *testing.T) {
	clearEnv(t)
	p := writeFile(t, "api_url: http://items.internal:9000\npage_size: 20\ntimeout: 5s\nimage_max_dim: 800\n")
	t.Setenv("ITEMDESK_PAGE_SIZE", "25")

	cfg, err := Load(p)

	require.NoError(t, err)
	assert.Equal(t, "http://items.internal:9000", cfg.APIURL)
	assert.Equal(t, 25, cfg.PageSize, "env overrides file")
	assert.Equal(t, 5*time.Second, cfg.Timeout)
	assert.Equal(t, 800, cfg.ImageMaxDim)
}

func TestLoadExplicitMissingFile(t *testing.T) {
	clearEnv(t)
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"relative url", "ITEMDESK_API_URL", "localhost"},
		{"zero page size", "ITEMDESK_PAGE_SIZE", "0"},
		{"non numeric page size", "ITEMDESK_PAGE_SIZE", "ten"},
		{"bad timeout", "ITEMDESK_TIMEOUT", "soon"},
		{"negative image dim", "ITEMDESK_IMAGE_MAX_DIM", "-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.val)
			_, err := Load("")
			assert.Error(t, err)
		})
	}
}
