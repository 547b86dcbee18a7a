package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// StateDirName is the per-directory folder holding the chat database and logs.
const StateDirName = ".promptmark"

// Config holds all configuration for promptmark.
type Config struct {
	Store   StoreConfig   `yaml:"store"`
	Sites   []SiteConfig  `yaml:"sites"`
	Import  ImportConfig  `yaml:"import"`
	Logging LoggingConfig `yaml:"logging"`
}

// StoreConfig holds chat storage configuration.
type StoreConfig struct {
	Path string `yaml:"path"` // relative paths resolve against the root directory
}

// SiteConfig describes a supported AI chat site.
type SiteConfig struct {
	Name        string   `yaml:"name"`
	Hosts       []string `yaml:"hosts"`        // doublestar patterns, e.g. "*.openai.com"
	ChatPath    string   `yaml:"chat_path"`    // doublestar pattern over the path without its leading "/"; empty matches all
	ThemeColor  string   `yaml:"theme_color"`
	TitleSuffix string   `yaml:"title_suffix"` // defaults to " - <name>"
	IDPrefix    string   `yaml:"id_prefix"`
}

// ImportConfig holds transcript import configuration.
type ImportConfig struct {
	Includes []string `yaml:"includes"`
	Excludes []string `yaml:"excludes"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level      string `yaml:"level"`
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Store: StoreConfig{
			Path: filepath.Join(StateDirName, "chats.db"),
		},
		Sites: []SiteConfig{
			{
				Name:       "ChatGPT",
				Hosts:      []string{"chat.openai.com", "chatgpt.com"},
				ChatPath:   "**/c/**",
				ThemeColor: "#10a37f",
				IDPrefix:   "msg",
			},
			{
				Name:       "Gemini",
				Hosts:      []string{"gemini.google.com"},
				ThemeColor: "#8e44ad",
				IDPrefix:   "msg",
			},
		},
		Import: ImportConfig{
			Includes: []string{"**/*.yaml", "**/*.yml", "**/*.json"},
			Excludes: []string{"**/.git/**", "**/node_modules/**", StateDirName + "/**"},
		},
		Logging: LoggingConfig{
			Level:      "info",
			File:       filepath.Join(StateDirName, "promptmark.log"),
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 28,
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

// LoadFromDir loads configuration from a directory (looks for promptmark.yaml).
func LoadFromDir(dir string) (*Config, error) {
	path := filepath.Join(dir, "promptmark.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	path = filepath.Join(dir, StateDirName, "config.yaml")
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

// DBPath returns the chat database path for the given root directory.
func (c *Config) DBPath(dir string) string {
	return resolve(dir, c.Store.Path)
}

// LogPath returns the log file path for the given root directory.
func (c *Config) LogPath(dir string) string {
	return resolve(dir, c.Logging.File)
}

func resolve(dir, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dir, path)
}

// EnsureStateDir ensures the .promptmark directory exists.
func EnsureStateDir(dir string) error {
	return os.MkdirAll(filepath.Join(dir, StateDirName), 0755)
}
