package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "perplexity", cfg.LLM.Provider)
	assert.Equal(t, "https://api.perplexity.ai", cfg.LLM.BaseURL)
	assert.Equal(t, "sonar-pro", cfg.LLM.Model)
	assert.Equal(t, 60*time.Second, cfg.LLM.Timeout)
	assert.Equal(t, 10, cfg.Search.MaxResults)
	assert.Equal(t, 10, cfg.Search.MaxTechnologies)
	assert.Equal(t, "./uploads", cfg.Archive.Dir)
	assert.False(t, cfg.Archive.Strict)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("PERPLEXITY_API_TOKEN", "pplx-test")
	t.Setenv("LLM_MODEL", "sonar")
	t.Setenv("ARCHIVE_DIR", "/tmp/resumes")
	t.Setenv("ARCHIVE_STRICT", "true")
	t.Setenv("SEARCH_MAX_RESULTS", "25")
	t.Setenv("PORT", "9090")

	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, "pplx-test", cfg.LLM.APIKey)
	assert.Equal(t, "sonar", cfg.LLM.Model)
	assert.Equal(t, "/tmp/resumes", cfg.Archive.Dir)
	assert.True(t, cfg.Archive.Strict)
	assert.Equal(t, 25, cfg.Search.MaxResults)
	assert.Equal(t, 9090, cfg.Server.Port)
}

func TestLoadConfig_YAMLFileWithEnvExpansion(t *testing.T) {
	t.Setenv("TEST_API_TOKEN", "expanded-token")

	content := `
llm:
  api_key: "${TEST_API_TOKEN}"
  model: "sonar"
search:
  max_results: 5
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "expanded-token", cfg.LLM.APIKey)
	assert.Equal(t, "sonar", cfg.LLM.Model)
	assert.Equal(t, 5, cfg.Search.MaxResults)

	// Untouched sections keep defaults
	assert.Equal(t, 8080, cfg.Server.Port)
}

func TestLoadConfig_MissingFileFallsBackToDefaults(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/config.yaml")
	require.NoError(t, err)
	assert.Equal(t, "perplexity", cfg.LLM.Provider)
}
