package cliconfig

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Config represents the structedit configuration loaded from .structedit.yaml.
type Config struct {
	ProjectName string                  `mapstructure:"project_name" yaml:"project_name,omitempty"`
	Presets     map[string]PresetConfig `mapstructure:"presets" yaml:"presets,omitempty"`
	Server      ServerConfig            `mapstructure:"server" yaml:"server,omitempty"`
	Store       StoreConfig             `mapstructure:"store" yaml:"store,omitempty"`
	Cache       CacheConfig             `mapstructure:"cache" yaml:"cache,omitempty"`
}

// PresetConfig describes a named scoper+action pipeline.
type PresetConfig struct {
	Scope   ScopeConfig `mapstructure:"scope" yaml:"scope"`
	Actions []string    `mapstructure:"actions" yaml:"actions"`
}

// ScopeConfig describes one of the three scoper kinds. Exactly one field
// should be set; which one is validated by the caller that builds a
// pipeline.Pipeline from it.
type ScopeConfig struct {
	Regex    string `mapstructure:"regex" yaml:"regex,omitempty"`
	Literal  string `mapstructure:"literal" yaml:"literal,omitempty"`
	Language string `mapstructure:"language" yaml:"language,omitempty"`
	Query    string `mapstructure:"query" yaml:"query,omitempty"`
}

// ServerConfig configures the transform HTTP service and the watch-mode
// reload server.
type ServerConfig struct {
	Port      int    `mapstructure:"port" yaml:"port,omitempty"`
	Host      string `mapstructure:"host" yaml:"host,omitempty"`
	APIPrefix string `mapstructure:"api_prefix" yaml:"api_prefix,omitempty"`
}

// StoreConfig configures the preset store backend.
type StoreConfig struct {
	Driver string `mapstructure:"driver" yaml:"driver,omitempty"` // "postgres", "sqlite"
	DSN    string `mapstructure:"dsn" yaml:"dsn,omitempty"`
}

// CacheConfig configures the compiled-query/result cache.
type CacheConfig struct {
	Driver string `mapstructure:"driver" yaml:"driver,omitempty"` // "memory", "redis", "none"
	Addr   string `mapstructure:"addr" yaml:"addr,omitempty"`
}

// Save writes cfg as .structedit.yaml in the current directory, the
// counterpart to Load for commands (like `structedit init`) that generate
// configuration interactively rather than editing the file by hand.
func Save(cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(".structedit.yaml", data, 0644); err != nil {
		return fmt.Errorf("write .structedit.yaml: %w", err)
	}
	return nil
}

// Load loads the configuration from .structedit.yml or .structedit.yaml.
func Load() (*Config, error) {
	v := viper.New()

	// Set defaults
	v.SetDefault("server.port", 3000)
	v.SetDefault("server.host", "localhost")
	v.SetDefault("server.api_prefix", "")
	v.SetDefault("store.driver", "sqlite")
	v.SetDefault("store.dsn", ".structedit/presets.db")
	v.SetDefault("cache.driver", "memory")

	// Set config name and paths
	v.SetConfigName(".structedit")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Enable environment variable support
	v.AutomaticEnv()

	// Read config file if it exists
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Config file not found - use defaults
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Validate configuration
	if err := validateConfig(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// GetStoreDSN returns the preset store DSN from config or environment.
func GetStoreDSN() string {
	// First check environment variable
	if dsn := os.Getenv("STRUCTEDIT_STORE_DSN"); dsn != "" {
		return dsn
	}

	// Then check config file
	cfg, err := Load()
	if err != nil {
		return ""
	}

	return cfg.Store.DSN
}

// InProject checks if the current directory holds a structedit project.
func InProject() bool {
	if _, err := os.Stat(".structedit.yml"); err == nil {
		return true
	}
	if _, err := os.Stat(".structedit.yaml"); err == nil {
		return true
	}
	return false
}

// GetProjectRoot walks up from the current directory looking for a
// .structedit.yml/.structedit.yaml marker.
func GetProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, ".structedit.yml")); err == nil {
			return dir, nil
		}
		if _, err := os.Stat(filepath.Join(dir, ".structedit.yaml")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("not in a structedit project (no .structedit.yaml found)")
		}
		dir = parent
	}
}

// validateConfig validates the configuration.
func validateConfig(cfg *Config) error {
	if cfg.Server.APIPrefix != "" {
		if !strings.HasPrefix(cfg.Server.APIPrefix, "/") {
			return fmt.Errorf("server.api_prefix must start with '/', got: %s", cfg.Server.APIPrefix)
		}
		if strings.HasSuffix(cfg.Server.APIPrefix, "/") {
			return fmt.Errorf("server.api_prefix must not end with '/', got: %s", cfg.Server.APIPrefix)
		}
	}

	switch cfg.Store.Driver {
	case "", "postgres", "sqlite":
	default:
		return fmt.Errorf("store.driver must be 'postgres' or 'sqlite', got: %s", cfg.Store.Driver)
	}

	switch cfg.Cache.Driver {
	case "", "memory", "redis", "none":
	default:
		return fmt.Errorf("cache.driver must be 'memory', 'redis' or 'none', got: %s", cfg.Cache.Driver)
	}

	return nil
}
