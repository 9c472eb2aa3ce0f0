// Package config loads the optional quizbuilder.yaml configuration file.
// Values resolve in priority order: CLI flags, then the config file, then
// built-in defaults. Environment variables referenced in the file are
// expanded, and a .env file is loaded first when present.
package config

import (
	"fmt"
	"os"

	qerrors "git.home.luguber.info/inful/quizbuilder/internal/errors"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Built-in defaults, matching the layout the web app expects.
const (
	DefaultInput       = "data/quiz"
	DefaultOutput      = "app/src/lib/data"
	DefaultHistoryPath = ".quizbuilder/history.db"
)

// Config represents the application configuration
type Config struct {
	Input   string        `yaml:"input"`   // Quiz corpus directory
	Output  string        `yaml:"output"`  // Directory for compiled manifests
	History HistoryConfig `yaml:"history"` // Build history store
}

// HistoryConfig controls the sqlite build-history store.
type HistoryConfig struct {
	Disabled bool   `yaml:"disabled,omitempty"`
	Path     string `yaml:"path,omitempty"`
}

// Default returns a configuration populated with built-in defaults.
func Default() *Config {
	return &Config{
		Input:  DefaultInput,
		Output: DefaultOutput,
		History: HistoryConfig{
			Path: DefaultHistoryPath,
		},
	}
}

// Load loads configuration from the specified file. A missing file is not
// an error: defaults are returned so the tool works without any setup.
func Load(configPath string) (*Config, error) {
	// Load .env/.env.local if present; existing env vars win.
	for _, envPath := range []string{".env", ".env.local"} {
		if err := godotenv.Load(envPath); err == nil {
			break
		}
	}

	cfg := Default()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, qerrors.NewConfigError(fmt.Sprintf("failed to read config file %s", configPath), err)
	}

	// Expand environment variables in the YAML content
	expanded := os.ExpandEnv(string(data))

	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, qerrors.NewConfigError(fmt.Sprintf("failed to parse config file %s", configPath), err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.Input == "" {
		return qerrors.NewConfigError("input must not be empty", nil)
	}
	if c.Output == "" {
		return qerrors.NewConfigError("output must not be empty", nil)
	}
	if !c.History.Disabled && c.History.Path == "" {
		return qerrors.NewConfigError("history.path must not be empty unless history is disabled", nil)
	}
	return nil
}

// starterConfig is written by the init command.
const starterConfig = `# quizbuilder configuration
# Values here are overridden by CLI flags.

# Directory containing the quiz yaml corpus.
input: data/quiz

# Directory the compiled <quiz>.json manifests are written to.
output: app/src/lib/data

# Build history (sqlite). Set disabled: true to opt out.
history:
  path: .quizbuilder/history.db
`

// WriteStarter writes a commented starter configuration file. It refuses to
// overwrite an existing file unless force is set.
func WriteStarter(path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return qerrors.NewConfigError(fmt.Sprintf("%s already exists (use --force to overwrite)", path), nil)
	}
	if err := os.WriteFile(path, []byte(starterConfig), 0o644); err != nil {
		return qerrors.NewFileSystemError(fmt.Sprintf("write %s", path), err)
	}
	return nil
}
