package config

import (
	"os"
	"path/filepath"
	"testing"
)

// clearEnv blanks the override variables so ambient values cannot leak into
// a test.
func clearEnv(t *testing.T) {
	t.Helper()
	t.Setenv("ANTHROPIC_API_KEY", "")
	t.Setenv("TAILORCV_MODEL", "")
	t.Setenv("PORT", "")
	t.Setenv("TAILORCV_DATA", "")
}

func TestLoad(t *testing.T) {
	clearEnv(t)

	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.json")

	content := `{
  "anthropic_api_key": "file-key",
  "model": "claude-3-5-sonnet-20241022",
  "port": "8000",
  "data_path": "career.json",
  "output_dir": "./out"
}`

	err := os.WriteFile(configPath, []byte(content), 0600)
	if err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.AnthropicAPIKey != "file-key" {
		t.Errorf("Expected API key file-key, got %s", cfg.AnthropicAPIKey)
	}

	if cfg.Port != "8000" {
		t.Errorf("Expected port 8000, got %s", cfg.Port)
	}

	if cfg.DataPath != "career.json" {
		t.Errorf("Expected data path career.json, got %s", cfg.DataPath)
	}

	if cfg.OutputDir != "./out" {
		t.Errorf("Expected output dir ./out, got %s", cfg.OutputDir)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	if err != nil {
		t.Fatalf("Expected missing config file to be tolerated, got %v", err)
	}

	if cfg.Port != DefaultPort {
		t.Errorf("Expected default port %s, got %s", DefaultPort, cfg.Port)
	}

	if cfg.DataPath != DefaultDataPath {
		t.Errorf("Expected default data path %s, got %s", DefaultDataPath, cfg.DataPath)
	}

	if cfg.OutputDir != DefaultOutputDir {
		t.Errorf("Expected default output dir %s, got %s", DefaultOutputDir, cfg.OutputDir)
	}

	if cfg.AnthropicAPIKey != "" {
		t.Errorf("Expected empty API key, got %s", cfg.AnthropicAPIKey)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.json")

	content := `{"anthropic_api_key": "file-key", "port": "8000"}`
	err := os.WriteFile(configPath, []byte(content), 0600)
	if err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	t.Setenv("ANTHROPIC_API_KEY", "env-key")
	t.Setenv("TAILORCV_MODEL", "claude-test-model")
	t.Setenv("PORT", "9999")
	t.Setenv("TAILORCV_DATA", "/tmp/career.json")

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.AnthropicAPIKey != "env-key" {
		t.Errorf("Expected env override env-key, got %s", cfg.AnthropicAPIKey)
	}

	if cfg.Model != "claude-test-model" {
		t.Errorf("Expected env override claude-test-model, got %s", cfg.Model)
	}

	if cfg.Port != "9999" {
		t.Errorf("Expected env override 9999, got %s", cfg.Port)
	}

	if cfg.DataPath != "/tmp/career.json" {
		t.Errorf("Expected env override /tmp/career.json, got %s", cfg.DataPath)
	}
}

func TestLoadInvalidJSON(t *testing.T) {
	clearEnv(t)

	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.json")

	err := os.WriteFile(configPath, []byte("{not valid json"), 0600)
	if err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	_, err = Load(configPath)
	if err == nil {
		t.Error("Expected error loading malformed config, got nil")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		config    Config
		wantError bool
	}{
		{
			name:      "numeric port",
			config:    Config{Port: "5000"},
			wantError: false,
		},
		{
			name:      "non-numeric port",
			config:    Config{Port: "abc"},
			wantError: true,
		},
		{
			name:      "empty port",
			config:    Config{Port: ""},
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantError && err == nil {
				t.Error("Expected error, got nil")
			}
			if !tt.wantError && err != nil {
				t.Errorf("Expected no error, got %v", err)
			}
		})
	}
}
