package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Supported providers
var supportedProviders = map[string]bool{
	"openai":   true,
	"deepseek": true,
	"ollama":   true,
	"gemini":   true,
	"grok":     true,
	"claude":   true,
}

// SupportedProviders returns a list of supported providers
func SupportedProviders() []string {
	providers := make([]string, 0, len(supportedProviders))
	for p := range supportedProviders {
		providers = append(providers, p)
	}
	return providers
}

// TicketRule maps a repository path to a default ticket identifier.
// Path may be a literal substring or a regular expression.
type TicketRule struct {
	Path   string `yaml:"path" mapstructure:"path"`
	Ticket string `yaml:"ticket" mapstructure:"ticket"`
}

// Config represents the application configuration
type Config struct {
	Provider                 string       `yaml:"provider" mapstructure:"provider"`
	Model                    string       `yaml:"model" mapstructure:"model"`
	APIKey                   string       `yaml:"api_key" mapstructure:"api_key"`
	BaseURL                  string       `yaml:"base_url" mapstructure:"base_url"`
	Language                 string       `yaml:"language" mapstructure:"language"`
	DefaultTicket            string       `yaml:"default_ticket" mapstructure:"default_ticket"`
	DefaultTicketFor         []TicketRule `yaml:"default_ticket_for" mapstructure:"default_ticket_for"`
	UseConventionalCommitsIn []string     `yaml:"use_conventional_commits_in" mapstructure:"use_conventional_commits_in"`

	// path is the file the config was loaded from, used for wholesale rewrites
	path string
}

// Validate validates the configuration for generation commands.
// Ticket and conventional-commit fields are optional; provider, model and
// api_key are required before any generation request can be issued.
func (c *Config) Validate() error {
	if c.Provider == "" {
		return fmt.Errorf("provider is required (run 'gitmuse init' or 'gitmuse config set provider <name>')")
	}
	if !supportedProviders[c.Provider] {
		return fmt.Errorf("unsupported provider: %s (supported: %s)", c.Provider, strings.Join(SupportedProviders(), ", "))
	}
	if c.Model == "" {
		return fmt.Errorf("model is required")
	}
	// API key is required for all providers except ollama
	if c.Provider != "ollama" && c.APIKey == "" {
		return fmt.Errorf("api_key is required for provider %s", c.Provider)
	}
	return nil
}

// ResolvedAPIKey returns the API key with environment variables expanded
func (c *Config) ResolvedAPIKey() string {
	return expandEnv(c.APIKey)
}

// GetLanguage returns the language to use
// Priority: parameter > env variable (GITMUSE_LANG) > config file > default (en)
func (c *Config) GetLanguage(langParam string) string {
	if langParam != "" {
		return langParam
	}
	if envLang := os.Getenv("GITMUSE_LANG"); envLang != "" {
		return envLang
	}
	if c.Language != "" {
		return c.Language
	}
	return "en"
}

// Path returns the file the configuration was loaded from
func (c *Config) Path() string {
	return c.path
}

// expandEnv expands environment variables in the format ${VAR} or $VAR
func expandEnv(s string) string {
	if strings.HasPrefix(s, "${") && strings.HasSuffix(s, "}") {
		envName := s[2 : len(s)-1]
		return os.Getenv(envName)
	}
	if strings.HasPrefix(s, "$") {
		envName := s[1:]
		return os.Getenv(envName)
	}
	return s
}

// DefaultPath returns the default configuration file path (~/.gitmuse.yaml)
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".gitmuse.yaml"), nil
}

// LoadFromFile loads configuration from a file
func LoadFromFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.path = path
	return &cfg, nil
}

// Load loads configuration with the following priority:
// 1. Custom path if provided
// 2. Current directory .gitmuse.yaml
// 3. Home directory ~/.gitmuse.yaml
// A project-local .env file is loaded first, best effort, so that
// ${VAR} references in the config can resolve against it.
func Load(customPath string) (*Config, error) {
	_ = godotenv.Load()

	if customPath != "" {
		return LoadFromFile(customPath)
	}

	if cfg, err := LoadFromFile(".gitmuse.yaml"); err == nil {
		return cfg, nil
	}

	homePath, err := DefaultPath()
	if err != nil {
		return nil, err
	}
	if cfg, err := LoadFromFile(homePath); err == nil {
		return cfg, nil
	}

	return nil, fmt.Errorf("no configuration file found. Run 'gitmuse init' to create one")
}

// Save rewrites the configuration file wholesale
func (c *Config) Save() error {
	path := c.path
	if path == "" {
		var err error
		path, err = DefaultPath()
		if err != nil {
			return err
		}
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.Set("provider", c.Provider)
	v.Set("model", c.Model)
	v.Set("api_key", c.APIKey)
	if c.BaseURL != "" {
		v.Set("base_url", c.BaseURL)
	}
	if c.Language != "" {
		v.Set("language", c.Language)
	}
	if c.DefaultTicket != "" {
		v.Set("default_ticket", c.DefaultTicket)
	}
	if len(c.DefaultTicketFor) > 0 {
		v.Set("default_ticket_for", c.DefaultTicketFor)
	}
	if len(c.UseConventionalCommitsIn) > 0 {
		v.Set("use_conventional_commits_in", c.UseConventionalCommitsIn)
	}

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	c.path = path
	return nil
}

// SetField sets a top-level scalar field by its config key.
// Used by 'gitmuse config set'; list fields are edited in the file directly.
func (c *Config) SetField(key, value string) error {
	switch key {
	case "provider":
		c.Provider = value
	case "model":
		c.Model = value
	case "api_key":
		c.APIKey = value
	case "base_url":
		c.BaseURL = value
	case "language":
		c.Language = value
	case "default_ticket":
		c.DefaultTicket = value
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}
	return nil
}

// GetField returns a top-level scalar field by its config key
func (c *Config) GetField(key string) (string, error) {
	switch key {
	case "provider":
		return c.Provider, nil
	case "model":
		return c.Model, nil
	case "api_key":
		return c.APIKey, nil
	case "base_url":
		return c.BaseURL, nil
	case "language":
		return c.Language, nil
	case "default_ticket":
		return c.DefaultTicket, nil
	default:
		return "", fmt.Errorf("unknown config key: %s", key)
	}
}
