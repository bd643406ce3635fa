package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the resume matcher.
type Config struct {
	Embedding EmbeddingConfig `yaml:"embedding"`
	Match     MatchConfig     `yaml:"match"`
	Discover  DiscoverConfig  `yaml:"discover"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// EmbeddingConfig holds embedding configuration.
type EmbeddingConfig struct {
	Provider  string `yaml:"provider"`    // "openai", "jina", "ollama", "gemini", "mock"
	Model     string `yaml:"model"`       // e.g., "text-embedding-3-small"
	APIKeyEnv string `yaml:"api_key_env"` // Environment variable for API key
	BaseURL   string `yaml:"base_url"`    // Only for self-hosted providers
	Dimension int    `yaml:"dimension"`
	BatchSize int    `yaml:"batch_size"`
	Cache     bool   `yaml:"cache"`
	CachePath string `yaml:"cache_path"`
}

// MatchConfig holds scoring and ranking configuration.
type MatchConfig struct {
	TopK         int `yaml:"top_k"`          // Ranked results kept in batch mode
	MaxKeywords  int `yaml:"max_keywords"`   // Missing keywords reported per resume
	Concurrency  int `yaml:"concurrency"`    // Resumes processed in parallel
	MinTextChars int `yaml:"min_text_chars"` // Below this, a result is flagged low confidence
}

// DiscoverConfig holds resume discovery configuration for batch mode.
type DiscoverConfig struct {
	Includes []string `yaml:"includes"`
	Excludes []string `yaml:"excludes"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level string `yaml:"level"`
	JSON  bool   `yaml:"json"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Embedding: EmbeddingConfig{
			Provider:  "openai",
			Model:     "text-embedding-3-small",
			APIKeyEnv: "OPENAI_API_KEY",
			Dimension: 1536,
			BatchSize: 100,
			Cache:     false,
			CachePath: filepath.Join(".resumematch", "embeddings.db"),
		},
		Match: MatchConfig{
			TopK:         10,
			MaxKeywords:  10,
			Concurrency:  4,
			MinTextChars: 100,
		},
		Discover: DiscoverConfig{
			Includes: []string{"**/*.pdf", "**/*.docx"},
			Excludes: []string{},
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load loads configuration from a YAML file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Return defaults if no config file
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFromDir loads configuration from a directory (looks for resumematch.yaml).
func LoadFromDir(dir string) (*Config, error) {
	path := filepath.Join(dir, "resumematch.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	path = filepath.Join(dir, ".resumematch", "config.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	return DefaultConfig(), nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
