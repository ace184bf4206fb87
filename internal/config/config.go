package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Supported AI providers.
const (
	ProviderOllama = "ollama"
	ProviderGemini = "gemini"
)

type Config struct {
	AI      AIConfig      `yaml:"ai"`
	Paths   PathsConfig   `yaml:"paths"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
	Watch   WatchConfig   `yaml:"watch"`
}

type AIConfig struct {
	Provider    string       `yaml:"provider"`
	Model       string       `yaml:"model"`
	Temperature float32      `yaml:"temperature"`
	Ollama      OllamaConfig `yaml:"ollama"`
	Gemini      GeminiConfig `yaml:"gemini"`
}

type OllamaConfig struct {
	Host string `yaml:"host"`
}

type GeminiConfig struct {
	APIKeys []string `yaml:"api_keys"`
}

type PathsConfig struct {
	Output string `yaml:"output"`
	Temp   string `yaml:"temp"`
}

type OutputConfig struct {
	SaveTranscript bool `yaml:"save_transcript"`
	Docx           bool `yaml:"docx"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

type WatchConfig struct {
	Input         string `yaml:"input"`
	MaxConcurrent int    `yaml:"max_concurrent"`
}

// Load reads and validates a YAML config file.
func Load(path string) (*Config, error) {
	cfg, err := Read(path)
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

// Read parses a YAML config file without validating it or applying
// defaults. Callers that layer overrides on top of the file call
// Validate themselves once the overrides are in place.
func Read(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	return &cfg, nil
}

// Default returns a config with all defaults applied, for running
// without a config file.
func Default() *Config {
	cfg := &Config{}
	// Validate only fills defaults when required fields are absent.
	_ = cfg.Validate()
	return cfg
}

// Validate checks required fields and applies defaults.
func (c *Config) Validate() error {
	if c.AI.Provider == "" {
		c.AI.Provider = ProviderOllama
	}
	if c.AI.Provider != ProviderOllama && c.AI.Provider != ProviderGemini {
		return fmt.Errorf("ai.provider must be %q or %q, got %q", ProviderOllama, ProviderGemini, c.AI.Provider)
	}

	if c.AI.Model == "" {
		switch c.AI.Provider {
		case ProviderGemini:
			c.AI.Model = "gemini-2.5-flash"
		default:
			c.AI.Model = "gemma3:12b"
		}
	}

	if c.AI.Ollama.Host == "" {
		c.AI.Ollama.Host = "http://localhost:11434"
	}

	if c.AI.Provider == ProviderGemini && len(c.AI.Gemini.APIKeys) == 0 {
		if key := os.Getenv("GEMINI_API_KEY"); key != "" {
			c.AI.Gemini.APIKeys = []string{key}
		} else {
			return fmt.Errorf("ai.gemini.api_keys is required when provider is %q", ProviderGemini)
		}
	}

	if c.Paths.Output == "" {
		c.Paths.Output = "."
	}
	if c.Paths.Temp == "" {
		c.Paths.Temp = os.TempDir()
	}

	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}

	if c.Watch.Input == "" {
		c.Watch.Input = "data/transcripts"
	}
	if c.Watch.MaxConcurrent <= 0 {
		c.Watch.MaxConcurrent = 2
	}

	return nil
}
