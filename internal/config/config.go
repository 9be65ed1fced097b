// Package config loads hoot settings from defaults, an optional YAML file,
// a .env file and HOOT_* environment variables, in increasing priority.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/abhisek/hoot/internal/feedback"
	"github.com/abhisek/hoot/internal/llm"
)

type Config struct {
	DBPath   string         `mapstructure:"db_path"`
	LogLevel string         `mapstructure:"log_level"`
	LogFile  string         `mapstructure:"log_file"`
	LLM      LLMConfig      `mapstructure:"llm"`
	Feedback FeedbackConfig `mapstructure:"feedback"`
}

// LLMConfig selects the tutor text provider. When Provider is empty the
// provider is discovered from the standard API key variables.
type LLMConfig struct {
	Provider string `mapstructure:"provider"`
	Model    string `mapstructure:"model"`
	APIKey   string `mapstructure:"api_key"`
	BaseURL  string `mapstructure:"base_url"`
}

type FeedbackConfig struct {
	Timeout     time.Duration `mapstructure:"timeout"`
	MaxTokens   int           `mapstructure:"max_tokens"`
	Temperature float64       `mapstructure:"temperature"`
}

// Load reads configuration. path overrides the default config file
// location; a missing file is not an error.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	if path != "" {
		v.SetConfigFile(path)
	} else {
		dir, err := DefaultDir()
		if err != nil {
			return nil, err
		}
		v.SetConfigName("config")
		v.AddConfigPath(dir)
	}

	v.SetEnvPrefix("HOOT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	fb := feedback.DefaultConfig()
	v.SetDefault("db_path", "")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_file", "")
	v.SetDefault("llm.provider", "")
	v.SetDefault("llm.model", "")
	v.SetDefault("llm.api_key", "")
	v.SetDefault("llm.base_url", "")
	v.SetDefault("feedback.timeout", fb.Timeout)
	v.SetDefault("feedback.max_tokens", fb.MaxTokens)
	v.SetDefault("feedback.temperature", fb.Temperature)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	} else if err := validateFile(v.ConfigFileUsed()); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &cfg, nil
}

// DefaultDir returns $XDG_CONFIG_HOME/hoot, falling back to ~/.config/hoot.
func DefaultDir() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "hoot"), nil
}

// FeedbackSettings converts the feedback section for the tutor text service.
func (c *Config) FeedbackSettings() feedback.Config {
	return feedback.Config{
		Timeout:     c.Feedback.Timeout,
		MaxTokens:   c.Feedback.MaxTokens,
		Temperature: c.Feedback.Temperature,
	}
}

// ProviderConfig builds the LLM configuration. It reports false when no
// provider is configured or discoverable.
func (c *Config) ProviderConfig() (llm.Config, bool) {
	if c.LLM.Provider == "" {
		return llm.DiscoverConfig()
	}

	cfg := llm.DefaultConfig()
	cfg.Provider = c.LLM.Provider
	switch c.LLM.Provider {
	case "anthropic":
		cfg.Anthropic.APIKey = c.LLM.APIKey
		cfg.Anthropic.Model = orDefault(c.LLM.Model, cfg.Anthropic.Model)
		cfg.Anthropic.BaseURL = c.LLM.BaseURL
	case "openai":
		cfg.OpenAI.APIKey = c.LLM.APIKey
		cfg.OpenAI.Model = orDefault(c.LLM.Model, cfg.OpenAI.Model)
		cfg.OpenAI.BaseURL = c.LLM.BaseURL
	case "gemini":
		cfg.Gemini.APIKey = c.LLM.APIKey
		cfg.Gemini.Model = orDefault(c.LLM.Model, cfg.Gemini.Model)
	case "openrouter":
		cfg.OpenRouter.APIKey = c.LLM.APIKey
		cfg.OpenRouter.Model = orDefault(c.LLM.Model, cfg.OpenRouter.Model)
		cfg.OpenRouter.BaseURL = c.LLM.BaseURL
	}
	return cfg, true
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
