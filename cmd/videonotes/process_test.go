package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/nguyentantai21042004/video-notes/internal/config"
)

func TestLoadConfigAppliesNoDefaults(t *testing.T) {
	cfg, err := loadConfig("")
	if err != nil {
		t.Fatalf("loadConfig() error = %v", err)
	}
	if cfg.AI.Provider != "" || cfg.AI.Model != "" {
		t.Errorf("loadConfig filled defaults early: provider=%q model=%q", cfg.AI.Provider, cfg.AI.Model)
	}
}

func TestProviderFlagPicksProviderModelDefault(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "test-key")

	// A config file that says ollama, overridden to gemini on the
	// command line without naming a model. The model default must
	// follow the overridden provider.
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte("ai:\n  provider: ollama\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig() error = %v", err)
	}
	cfg.AI.Provider = config.ProviderGemini
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	if cfg.AI.Model != "gemini-2.5-flash" {
		t.Errorf("AI.Model = %q, want the gemini default", cfg.AI.Model)
	}
}
