package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

const (
	// DefaultPort is the HTTP port the serve command binds when PORT is unset.
	DefaultPort = "5000"
	// DefaultDataPath is where the career data document is looked for.
	DefaultDataPath = "experience_data.json"
	// DefaultOutputDir is where generated documents are written.
	DefaultOutputDir = "./applications"
)

// Config represents the application configuration.
type Config struct {
	AnthropicAPIKey string `json:"anthropic_api_key,omitempty"`
	Model           string `json:"model,omitempty"`
	Port            string `json:"port,omitempty"`
	DataPath        string `json:"data_path,omitempty"`
	OutputDir       string `json:"output_dir,omitempty"`
}

// Load reads configuration from file with environment variable overrides.
// A missing config file is not an error: every field has a default and the
// environment can supply the rest.
func Load(configPath string) (cfg Config, err error) {
	// Pick up a .env file when present.
	_ = godotenv.Load()

	// Determine config file location
	path := configPath
	if path == "" {
		var homeDir string
		homeDir, err = os.UserHomeDir()
		if err != nil {
			err = errors.Wrap(err, "failed to get user home directory")
			return cfg, err
		}
		path = filepath.Join(homeDir, ".tailorcv", "config.json")
	}

	// Read config file if present
	var data []byte
	data, err = os.ReadFile(path)
	switch {
	case err == nil:
		err = json.Unmarshal(data, &cfg)
		if err != nil {
			err = errors.Wrapf(err, "failed to parse config file: %s", path)
			return cfg, err
		}
	case os.IsNotExist(err):
		err = nil
	default:
		err = errors.Wrapf(err, "failed to read config file: %s", path)
		return cfg, err
	}

	// Override with environment variables if set
	if apiKey := os.Getenv("ANTHROPIC_API_KEY"); apiKey != "" {
		cfg.AnthropicAPIKey = apiKey
	}
	if model := os.Getenv("TAILORCV_MODEL"); model != "" {
		cfg.Model = model
	}
	if port := os.Getenv("PORT"); port != "" {
		cfg.Port = port
	}
	if dataPath := os.Getenv("TAILORCV_DATA"); dataPath != "" {
		cfg.DataPath = dataPath
	}

	// Apply defaults
	if cfg.Port == "" {
		cfg.Port = DefaultPort
	}
	if cfg.DataPath == "" {
		cfg.DataPath = DefaultDataPath
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = DefaultOutputDir
	}

	err = cfg.Validate()
	if err != nil {
		err = errors.Wrap(err, "config validation failed")
		return cfg, err
	}

	return cfg, err
}

// Validate checks that the configuration is usable. An empty API key is
// allowed: generation then runs entirely on fallback content.
func (c *Config) Validate() (err error) {
	if _, convErr := strconv.Atoi(c.Port); convErr != nil {
		err = errors.Errorf("port must be numeric, got %q", c.Port)
		return err
	}

	return err
}
