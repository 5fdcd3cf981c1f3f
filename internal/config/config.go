package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

const (
	DefaultTheme      = "classic"
	DefaultCardWidth  = 24
	DefaultCardHeight = 9
)

// Config represents the application configuration
type Config struct {
	DefaultTheme string `toml:"default_theme"`
	CardWidth    int    `toml:"card_width"`
	CardHeight   int    `toml:"card_height"`
}

// GetXDGConfigHome returns XDG_CONFIG_HOME or default path
func GetXDGConfigHome() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return xdgConfig
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config")
}

// GetXDGCacheHome returns XDG_CACHE_HOME or default path
func GetXDGCacheHome() string {
	if xdgCache := os.Getenv("XDG_CACHE_HOME"); xdgCache != "" {
		return xdgCache
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".cache")
}

// GetConfigFilePath returns the path to the config file
func GetConfigFilePath() string {
	return filepath.Join(GetXDGConfigHome(), "cardface", "config.toml")
}

// GetThemesFilePath returns the path to the user's themes file
func GetThemesFilePath() string {
	return filepath.Join(GetXDGConfigHome(), "cardface", "themes.toml")
}

// GetCacheDir returns the directory for generated previews
func GetCacheDir() string {
	return filepath.Join(GetXDGCacheHome(), "cardface")
}

// LoadConfig loads the config file, creating it with defaults on first use
func LoadConfig() (*Config, error) {
	configPath := GetConfigFilePath()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return createDefaultConfig()
	}

	var config Config
	if _, err := toml.DecodeFile(configPath, &config); err != nil {
		return nil, fmt.Errorf("error decoding config file: %w", err)
	}
	config.applyDefaults()

	return &config, nil
}

func (c *Config) applyDefaults() {
	if c.DefaultTheme == "" {
		c.DefaultTheme = DefaultTheme
	}
	if c.CardWidth <= 0 {
		c.CardWidth = DefaultCardWidth
	}
	if c.CardHeight <= 0 {
		c.CardHeight = DefaultCardHeight
	}
}

// createDefaultConfig creates a default config file
func createDefaultConfig() (*Config, error) {
	config := &Config{}
	config.applyDefaults()

	if err := SaveConfig(config); err != nil {
		return nil, err
	}
	return config, nil
}

// SaveConfig writes config to the config file
func SaveConfig(config *Config) error {
	configPath := GetConfigFilePath()

	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	file, err := os.Create(configPath)
	if err != nil {
		return fmt.Errorf("error opening config file: %w", err)
	}
	defer file.Close()

	encoder := toml.NewEncoder(file)
	if err := encoder.Encode(config); err != nil {
		return fmt.Errorf("error encoding config: %w", err)
	}

	return nil
}

// GetDefaultTheme returns the default theme name from config
func GetDefaultTheme() (string, error) {
	config, err := LoadConfig()
	if err != nil {
		return "", err
	}

	return config.DefaultTheme, nil
}

// SetDefaultTheme sets the default theme in the config
func SetDefaultTheme(name string) error {
	config, err := LoadConfig()
	if err != nil {
		return err
	}

	config.DefaultTheme = name
	return SaveConfig(config)
}
