package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// DefaultDisplayFormat is the layout used to render timestamps on the
// console when the config does not override it.
const DefaultDisplayFormat = "2006-01-02 15:04:05"

// Config represents the main configuration for ft. Only ambient settings
// live here; the tool never persists anything about individual operations.
type Config struct {
	LogDir        string `toml:"log_dir"`
	DisplayFormat string `toml:"display_format"`
}

// NewConfig creates a new Config writing logs under the given directory,
// with the default display format.
func NewConfig(logDir string) *Config {
	return &Config{
		LogDir:        logDir,
		DisplayFormat: DefaultDisplayFormat,
	}
}

// normalize fills in defaults for fields a hand-edited config may omit.
func (c *Config) normalize() {
	if c.DisplayFormat == "" {
		c.DisplayFormat = DefaultDisplayFormat
	}
}

// Manager handles reading and writing configuration.
type Manager struct{}

// Read decodes a Config from the provided reader.
func (m *Manager) Read(r io.Reader) (*Config, error) {
	var cfg Config
	if _, err := toml.NewDecoder(r).Decode(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	cfg.normalize()
	return &cfg, nil
}

// Write encodes a Config to the provided writer.
func (m *Manager) Write(w io.Writer, cfg *Config) error {
	if err := toml.NewEncoder(w).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return nil
}

// ReadFromFile reads a Config from the specified file path.
func ReadFromFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer f.Close()

	m := &Manager{}
	cfg, err := m.Read(f)
	if err != nil {
		return nil, fmt.Errorf("reading config from %s: %w", path, err)
	}
	return cfg, nil
}

// LoadOrDefault reads the config file at path if it exists. A missing file
// is not an error: the tool works with defaults so that no setup step is
// required before first use.
func LoadOrDefault(path, defaultLogDir string) (*Config, error) {
	cfg, err := ReadFromFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return NewConfig(defaultLogDir), nil
		}
		return nil, err
	}
	if cfg.LogDir == "" {
		cfg.LogDir = defaultLogDir
	}
	return cfg, nil
}

// writeToFile writes a Config to the specified file path.
// This is an internal helper and should not be exported.
func writeToFile(path string, cfg *Config) error {
	// Ensure the directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer f.Close()

	m := &Manager{}
	if err := m.Write(f, cfg); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// Init initializes a new config file at the specified path with the provided Config.
func Init(path string, cfg *Config) error {
	// Check if config already exists
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s", path)
	}

	if err := writeToFile(path, cfg); err != nil {
		return fmt.Errorf("initializing config: %w", err)
	}
	return nil
}
