// pkg/core/config.go
package core

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// DefaultDownloadRoot is the official Node.js distribution site
const DefaultDownloadRoot = "https://nodejs.org/dist/"

// EnvDownloadRoot overrides DefaultDownloadRoot
const EnvDownloadRoot = "NODEDIST_DOWNLOAD_ROOT"

// Config holds nodedist configuration
type Config struct {
	NodeVersion      string `yaml:"node_version" toml:"node_version"`
	ArchiveOnWindows bool   `yaml:"archive_on_windows" toml:"archive_on_windows"`
	DownloadRoot     string `yaml:"download_root" toml:"download_root"`
	OSName           string `yaml:"os_name,omitempty" toml:"os_name,omitempty"` // raw os.name override
	Arch             string `yaml:"arch,omitempty" toml:"arch,omitempty"`       // raw os.arch override
	Debug            bool   `yaml:"debug" toml:"debug"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		ArchiveOnWindows: true,
		DownloadRoot:     getDefaultDownloadRoot(),
		Debug:            false,
	}
}

// DefaultConfigPath returns $HOME/.config/nodedist/config.yaml
func DefaultConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "nodedist", "config.yaml"), nil
}

// LoadConfig loads configuration from file. Files ending in .toml are
// parsed as TOML, anything else as YAML. Keys missing from the file keep
// their default value.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		p, err := DefaultConfigPath()
		if err != nil {
			return DefaultConfig(), nil
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := DefaultConfig()
	if isTOML(path) {
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config: %w", err)
		}
	} else {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config: %w", err)
		}
	}

	if cfg.DownloadRoot == "" {
		cfg.DownloadRoot = getDefaultDownloadRoot()
	}

	return cfg, nil
}

// SaveConfig saves configuration to file
func SaveConfig(cfg *Config, path string) error {
	if path == "" {
		p, err := DefaultConfigPath()
		if err != nil {
			return err
		}
		path = p
	}

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := Marshal(cfg, path)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

// Marshal encodes cfg in the format implied by path's extension
func Marshal(cfg *Config, path string) ([]byte, error) {
	if isTOML(path) {
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	}
	return yaml.Marshal(cfg)
}

func isTOML(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}

func getDefaultDownloadRoot() string {
	if root := os.Getenv(EnvDownloadRoot); root != "" {
		return root
	}
	return DefaultDownloadRoot
}
