// Package config loads tool configuration for the CLI and HTTP service.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	invoicepdf "github.com/alnah/go-invoicepdf"
	"github.com/alnah/go-invoicepdf/internal/fileutil"
	"github.com/alnah/go-invoicepdf/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
)

// Config holds all configuration for invoice document generation.
type Config struct {
	API      APIConfig         `yaml:"api"`
	Issuer   invoicepdf.Issuer `yaml:"issuer"`
	Output   OutputConfig      `yaml:"output"`
	Document DocumentConfig    `yaml:"document"`
	Assets   AssetsConfig      `yaml:"assets"`
}

// APIConfig points at the remote invoices/clients APIs.
type APIConfig struct {
	BaseURL string `yaml:"baseUrl"` // Empty = API access disabled
	Token   string `yaml:"token"`   // Optional bearer token
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default output directory (empty = working directory)
}

// DocumentConfig defines rendering and capture options.
type DocumentConfig struct {
	Style string  `yaml:"style"` // Built-in style name, CSS path, or raw CSS (empty = default)
	Width int     `yaml:"width"` // Document width in CSS pixels (0 = default)
	Scale float64 `yaml:"scale"` // Capture supersampling factor (0 = default)
}

// AssetsConfig defines asset loading options.
type AssetsConfig struct {
	BasePath string `yaml:"basePath"` // Empty = use embedded assets
}

// DefaultConfig returns a neutral configuration with all overrides unset.
func DefaultConfig() *Config {
	return &Config{}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	return &cfg, nil
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/go-invoicepdf/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		localPath := name + ext
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "go-invoicepdf", name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}

// GeneratorOptions converts the document settings into generator options.
func (c *Config) GeneratorOptions() []invoicepdf.Option {
	var opts []invoicepdf.Option
	if c.Document.Style != "" {
		opts = append(opts, invoicepdf.WithStyle(c.Document.Style))
	}
	if c.Document.Width > 0 {
		opts = append(opts, invoicepdf.WithDocumentWidth(c.Document.Width))
	}
	if c.Document.Scale > 0 {
		opts = append(opts, invoicepdf.WithScale(c.Document.Scale))
	}
	if c.Assets.BasePath != "" {
		opts = append(opts, invoicepdf.WithAssetPath(c.Assets.BasePath))
	}
	return opts
}
