package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "gitmuse.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
		errMsg  string
	}{
		{
			name: "valid openai config",
			config: Config{
				Provider: "openai",
				APIKey:   "sk-xxx",
				Model:    "gpt-4o",
			},
			wantErr: false,
		},
		{
			name: "valid claude config",
			config: Config{
				Provider: "claude",
				APIKey:   "sk-ant-xxx",
				Model:    "claude-sonnet-4-20250514",
			},
			wantErr: false,
		},
		{
			name: "valid ollama config without api key",
			config: Config{
				Provider: "ollama",
				Model:    "qwen2.5:14b",
				BaseURL:  "http://localhost:11434/v1",
			},
			wantErr: false,
		},
		{
			name:    "missing provider",
			config:  Config{Model: "gpt-4o", APIKey: "sk-xxx"},
			wantErr: true,
			errMsg:  "provider is required",
		},
		{
			name:    "unsupported provider",
			config:  Config{Provider: "invalid", Model: "x", APIKey: "k"},
			wantErr: true,
			errMsg:  "unsupported provider",
		},
		{
			name:    "missing model",
			config:  Config{Provider: "openai", APIKey: "sk-xxx"},
			wantErr: true,
			errMsg:  "model is required",
		},
		{
			name:    "missing api key",
			config:  Config{Provider: "openai", Model: "gpt-4o"},
			wantErr: true,
			errMsg:  "api_key is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	path := writeConfig(t, `
provider: deepseek
model: deepseek-chat
api_key: sk-test
default_ticket: PROJ-1
default_ticket_for:
  - path: /work/backend
    ticket: BACK-1
  - path: .*frontend.*
    ticket: WEB-1
use_conventional_commits_in:
  - /work/backend
`)

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "deepseek", cfg.Provider)
	assert.Equal(t, "deepseek-chat", cfg.Model)
	assert.Equal(t, "sk-test", cfg.APIKey)
	assert.Equal(t, "PROJ-1", cfg.DefaultTicket)
	require.Len(t, cfg.DefaultTicketFor, 2)
	assert.Equal(t, "/work/backend", cfg.DefaultTicketFor[0].Path)
	assert.Equal(t, "BACK-1", cfg.DefaultTicketFor[0].Ticket)
	assert.Equal(t, []string{"/work/backend"}, cfg.UseConventionalCommitsIn)
	assert.Equal(t, path, cfg.Path())
}

func TestLoadFromFile_Missing(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestResolvedAPIKey_EnvExpansion(t *testing.T) {
	t.Setenv("GITMUSE_TEST_KEY", "sk-from-env")

	cfg := &Config{APIKey: "${GITMUSE_TEST_KEY}"}
	assert.Equal(t, "sk-from-env", cfg.ResolvedAPIKey())

	cfg = &Config{APIKey: "$GITMUSE_TEST_KEY"}
	assert.Equal(t, "sk-from-env", cfg.ResolvedAPIKey())

	cfg = &Config{APIKey: "sk-literal"}
	assert.Equal(t, "sk-literal", cfg.ResolvedAPIKey())
}

func TestGetLanguage(t *testing.T) {
	cfg := &Config{Language: "zh"}

	assert.Equal(t, "ja", cfg.GetLanguage("ja"))
	assert.Equal(t, "zh", cfg.GetLanguage(""))
	assert.Equal(t, "en", (&Config{}).GetLanguage(""))

	t.Setenv("GITMUSE_LANG", "ko")
	assert.Equal(t, "ko", (&Config{}).GetLanguage(""))
}

func TestSaveRewritesWholesale(t *testing.T) {
	path := writeConfig(t, `
provider: openai
model: gpt-4o
api_key: sk-old
`)

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	require.NoError(t, cfg.SetField("model", "gpt-4o-mini"))
	require.NoError(t, cfg.Save())

	reloaded, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "gpt-4o-mini", reloaded.Model)
	assert.Equal(t, "openai", reloaded.Provider)
	assert.Equal(t, "sk-old", reloaded.APIKey)
}

func TestSetGetField(t *testing.T) {
	cfg := &Config{}

	require.NoError(t, cfg.SetField("provider", "gemini"))
	require.NoError(t, cfg.SetField("default_ticket", "T-1"))

	value, err := cfg.GetField("provider")
	require.NoError(t, err)
	assert.Equal(t, "gemini", value)

	value, err = cfg.GetField("default_ticket")
	require.NoError(t, err)
	assert.Equal(t, "T-1", value)

	require.Error(t, cfg.SetField("unknown", "x"))
	_, err = cfg.GetField("unknown")
	require.Error(t, err)
}
