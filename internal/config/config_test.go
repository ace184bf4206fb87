package config

import (
	"os"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name:    "empty config gets defaults",
			config:  Config{},
			wantErr: false,
		},
		{
			name: "valid ollama config",
			config: Config{
				AI: AIConfig{
					Provider: ProviderOllama,
					Model:    "gemma3:4b",
				},
			},
			wantErr: false,
		},
		{
			name: "valid gemini config",
			config: Config{
				AI: AIConfig{
					Provider: ProviderGemini,
					Gemini:   GeminiConfig{APIKeys: []string{"key-1"}},
				},
			},
			wantErr: false,
		},
		{
			name: "unknown provider",
			config: Config{
				AI: AIConfig{Provider: "anthropic"},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateDefaults(t *testing.T) {
	cfg := Config{}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	if cfg.AI.Provider != ProviderOllama {
		t.Errorf("Provider = %v, want %v", cfg.AI.Provider, ProviderOllama)
	}
	if cfg.AI.Model != "gemma3:12b" {
		t.Errorf("Model = %v, want gemma3:12b", cfg.AI.Model)
	}
	if cfg.AI.Ollama.Host != "http://localhost:11434" {
		t.Errorf("Ollama.Host = %v", cfg.AI.Ollama.Host)
	}
	if cfg.Paths.Output != "." {
		t.Errorf("Paths.Output = %v, want .", cfg.Paths.Output)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %v, want info", cfg.Logging.Level)
	}
	if cfg.Watch.MaxConcurrent != 2 {
		t.Errorf("Watch.MaxConcurrent = %v, want 2", cfg.Watch.MaxConcurrent)
	}
}

func TestValidateGeminiModelDefault(t *testing.T) {
	cfg := Config{
		AI: AIConfig{
			Provider: ProviderGemini,
			Gemini:   GeminiConfig{APIKeys: []string{"key-1"}},
		},
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if cfg.AI.Model != "gemini-2.5-flash" {
		t.Errorf("Model = %v, want gemini-2.5-flash", cfg.AI.Model)
	}
}

func TestLoad(t *testing.T) {
	tmpfile, err := os.CreateTemp("", "config-*.yaml")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(tmpfile.Name())

	content := `
ai:
  provider: ollama
  model: "gemma3:4b"
  ollama:
    host: "http://127.0.0.1:11434"

paths:
  output: "summaries"

output:
  save_transcript: true

logging:
  level: "debug"

watch:
  input: "data/inbox"
  max_concurrent: 4
`

	if _, err := tmpfile.Write([]byte(content)); err != nil {
		t.Fatal(err)
	}
	if err := tmpfile.Close(); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(tmpfile.Name())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.AI.Model != "gemma3:4b" {
		t.Errorf("Model = %v, want gemma3:4b", cfg.AI.Model)
	}
	if cfg.Paths.Output != "summaries" {
		t.Errorf("Output = %v, want summaries", cfg.Paths.Output)
	}
	if !cfg.Output.SaveTranscript {
		t.Error("SaveTranscript = false, want true")
	}
	if cfg.Watch.MaxConcurrent != 4 {
		t.Errorf("MaxConcurrent = %v, want 4", cfg.Watch.MaxConcurrent)
	}
}

func TestReadDoesNotApplyDefaults(t *testing.T) {
	tmpfile, err := os.CreateTemp("", "config-*.yaml")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(tmpfile.Name())

	if _, err := tmpfile.WriteString("ai:\n  provider: ollama\n"); err != nil {
		t.Fatal(err)
	}
	if err := tmpfile.Close(); err != nil {
		t.Fatal(err)
	}

	cfg, err := Read(tmpfile.Name())
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}

	// Read leaves defaults to a later Validate, so overrides applied
	// in between still influence which defaults are chosen.
	if cfg.AI.Model != "" {
		t.Errorf("Model = %q, want empty before Validate", cfg.AI.Model)
	}
	if cfg.Logging.Level != "" {
		t.Errorf("Level = %q, want empty before Validate", cfg.Logging.Level)
	}
}

func TestLoadInvalidFile(t *testing.T) {
	if _, err := Load("nonexistent.yaml"); err == nil {
		t.Error("Load() should return error for nonexistent file")
	}
}
