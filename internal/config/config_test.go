package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points config discovery at an empty temp dir and runs in a
// directory without a .env file.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Chdir(dir)
	for _, k := range []string{"GEMINI_API_KEY", "OPENAI_API_KEY", "ANTHROPIC_API_KEY", "OPENROUTER_API_KEY"} {
		t.Setenv(k, "")
	}
	return dir
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "", cfg.DBPath)
	assert.Equal(t, 8*time.Second, cfg.Feedback.Timeout)
	assert.Equal(t, 200, cfg.Feedback.MaxTokens)

	_, ok := cfg.ProviderConfig()
	assert.False(t, ok, "no provider without keys")
}

func TestLoad_File(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "hoot"), 0o755))
	yaml := `db_path: /tmp/custom.db
log_level: debug
llm:
  provider: openai
  api_key: sk-test
  model: gpt-4.1-mini
feedback:
  timeout: 3s
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "hoot", "config.yaml"), []byte(yaml), 0o644))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/custom.db", cfg.DBPath)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 3*time.Second, cfg.FeedbackSettings().Timeout)

	llmCfg, ok := cfg.ProviderConfig()
	require.True(t, ok)
	assert.Equal(t, "openai", llmCfg.Provider)
	assert.Equal(t, "sk-test", llmCfg.OpenAI.APIKey)
	assert.Equal(t, "gpt-4.1-mini", llmCfg.OpenAI.Model)
	assert.NoError(t, llmCfg.Validate())
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log_level: warn\n"), 0o644))
	t.Setenv("HOOT_LOG_LEVEL", "error")
	t.Setenv("HOOT_LLM_PROVIDER", "anthropic")
	t.Setenv("HOOT_LLM_API_KEY", "key")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.LogLevel)

	llmCfg, ok := cfg.ProviderConfig()
	require.True(t, ok)
	assert.Equal(t, "key", llmCfg.Anthropic.APIKey)
	assert.NotEmpty(t, llmCfg.Anthropic.Model, "model falls back to default")
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	dir := isolate(t)

	_, err := Load(filepath.Join(dir, "absent.yaml"))
	assert.NoError(t, err)
}

func TestLoad_DotEnv(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("HOOT_DB_PATH=/tmp/from-env.db\n"), 0o644))
	// Register cleanup, then unset so .env is not shadowed.
	t.Setenv("HOOT_DB_PATH", "")
	os.Unsetenv("HOOT_DB_PATH")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/from-env.db", cfg.DBPath)
}

func TestProviderConfig_Discovered(t *testing.T) {
	isolate(t)
	t.Setenv("GEMINI_API_KEY", "g-key")

	cfg, err := Load("")
	require.NoError(t, err)
	llmCfg, ok := cfg.ProviderConfig()
	require.True(t, ok)
	assert.Equal(t, "gemini", llmCfg.Provider)
	assert.Equal(t, "g-key", llmCfg.Gemini.APIKey)
}

func TestLoad_RejectsInvalidFile(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"unknown key", "db_pth: /tmp/x.db\n"},
		{"bad log level", "log_level: loud\n"},
		{"bad provider", "llm:\n  provider: owlnet\n"},
		{"numeric timeout", "feedback:\n  timeout: 3\n"},
		{"zero timeout", "feedback:\n  timeout: 0s\n"},
		{"zero compound timeout", "feedback:\n  timeout: 0m0.0s\n"},
		{"zero max tokens", "feedback:\n  max_tokens: 0\n"},
		{"hot temperature", "feedback:\n  temperature: 1.5\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := isolate(t)
			path := filepath.Join(dir, "config.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.yaml), 0o644))

			_, err := Load(path)
			assert.ErrorContains(t, err, "invalid config")
		})
	}
}

func TestLoad_AcceptsFullFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "config.yaml")
	yaml := `db_path: /tmp/hoot.db
log_file: /tmp/hoot.log
log_level: warn
llm:
  provider: mock
  model: ""
feedback:
  timeout: 1500ms
  max_tokens: 80
  temperature: 0.4
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 1500*time.Millisecond, cfg.Feedback.Timeout)
	assert.Equal(t, 80, cfg.Feedback.MaxTokens)
	assert.InDelta(t, 0.4, cfg.Feedback.Temperature, 1e-9)
}
