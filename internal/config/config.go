package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/pelletier/go-toml/v2"
)

const appDirName = "tui-datagrid"

// Config holds application configuration
type Config struct {
	Theme    string            `toml:"theme"`
	Grid     GridConfig        `toml:"grid"`
	Settings map[string]string `toml:"settings"`

	// Session settings (not persisted to TOML, overrides persisted settings)
	sessionSettings map[string]string
}

// GridConfig tunes the data grid.
type GridConfig struct {
	// SpareRows is the number of blank rows kept below the data.
	SpareRows int `toml:"spare_rows"`
	// MinYear and MaxYear bound plausible values in year columns.
	MinYear int `toml:"min_year"`
	MaxYear int `toml:"max_year"`
	// DateFormats are strftime layouts accepted in date columns.
	DateFormats []string `toml:"date_formats"`
	// SystemClipboard mirrors copies to the system clipboard.
	SystemClipboard bool `toml:"system_clipboard"`
}

// DefaultGridConfig returns the grid settings used when the file is silent.
func DefaultGridConfig() GridConfig {
	return GridConfig{
		SpareRows:       12,
		MinYear:         1926,
		MaxYear:         2050,
		DateFormats:     []string{"%Y-%m-%d", "%d %B %Y", "%B %d, %Y", "%B %Y", "%b %Y", "%Y"},
		SystemClipboard: true,
	}
}

// Load loads the config file from the standard location
func Load() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return defaultConfig(), nil
	}

	return LoadFromFile(configPath)
}

// LoadFromFile loads config from a specific file. A missing file yields
// the defaults.
func LoadFromFile(filePath string) (*Config, error) {
	data, err := os.ReadFile(filePath)
	if errors.Is(err, os.ErrNotExist) {
		return defaultConfig(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := defaultConfig()
	if err := toml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if config.Theme == "" {
		config.Theme = "tokyo-night"
	}
	if config.Settings == nil {
		config.Settings = make(map[string]string)
	}
	if err := config.Grid.validate(); err != nil {
		return nil, fmt.Errorf("invalid [grid] section: %w", err)
	}

	return config, nil
}

func (g GridConfig) validate() error {
	if g.SpareRows < 0 {
		return fmt.Errorf("spare_rows must not be negative, got %d", g.SpareRows)
	}
	if g.MinYear > g.MaxYear {
		return fmt.Errorf("min_year %d is after max_year %d", g.MinYear, g.MaxYear)
	}
	return nil
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	return defaultConfig()
}

// defaultConfig returns the default configuration
func defaultConfig() *Config {
	return &Config{
		Theme:           "tokyo-night",
		Grid:            DefaultGridConfig(),
		Settings:        make(map[string]string),
		sessionSettings: make(map[string]string),
	}
}

// GetConfigDir returns the config directory
func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, ".config", appDirName), nil
}

// EnsureConfigDir creates the config directory if it doesn't exist
func EnsureConfigDir() error {
	configDir, err := GetConfigDir()
	if err != nil {
		return err
	}

	return os.MkdirAll(configDir, 0755)
}

// Set sets a session configuration value
func (c *Config) Set(key, value string) {
	if c.sessionSettings == nil {
		c.sessionSettings = make(map[string]string)
	}
	c.sessionSettings[key] = value
}

// Get retrieves a configuration value. Session settings override
// persisted ones; a missing key yields "".
func (c *Config) Get(key string) string {
	if val, ok := c.sessionSettings[key]; ok {
		return val
	}
	return c.Settings[key]
}

// GetBool interprets a setting as a boolean, returning def when the key is
// missing or unparseable.
func (c *Config) GetBool(key string, def bool) bool {
	v, err := strconv.ParseBool(c.Get(key))
	if err != nil {
		return def
	}
	return v
}

// GetAll returns a copy of all settings with session values applied.
func (c *Config) GetAll() map[string]string {
	result := make(map[string]string, len(c.Settings)+len(c.sessionSettings))
	for k, v := range c.Settings {
		result[k] = v
	}
	for k, v := range c.sessionSettings {
		result[k] = v
	}
	return result
}

// Save persists the configuration to the standard location. Session
// settings are not written.
func (c *Config) Save() error {
	configPath, err := getConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}
	if err := EnsureConfigDir(); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	return c.SaveToFile(configPath)
}

// SaveToFile writes the configuration to filePath.
func (c *Config) SaveToFile(filePath string) error {
	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
