package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"flowreg/pkg/fileops"

	"github.com/adrg/xdg"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const APP_NAME = "flowreg" // application name used for config and data directories

const (
	DefaultServerName       = "mcp-flowreg"
	DefaultVersion          = "1.0.0"
	DefaultMaxTemplateBytes = int64(1 << 20)
	TemplatesDirName        = "prompts"
)

// Environment overrides, applied after the config file. Each is the config
// key upper-cased under envPrefix.
const (
	envPrefix = "FLOWREG"

	EnvTemplatesDir     = "FLOWREG_TEMPLATES_DIR"
	EnvMaxTemplateBytes = "FLOWREG_MAX_TEMPLATE_BYTES"
)

// Config holds process configuration for the flowreg MCP server.
type Config struct {
	// TemplatesDir is the directory holding the prompt templates.
	TemplatesDir     string `yaml:"templates_dir"`
	MaxTemplateBytes int64  `yaml:"max_template_bytes"`
	ServerName       string `yaml:"server_name"`
	Version          string `yaml:"version"`
}

// ConfigPath returns the standard config file path for the current platform.
func ConfigPath() string {
	return filepath.Join(xdg.ConfigHome, APP_NAME, "config.yaml")
}

// DefaultTemplatesDir resolves the templates directory shipped with the
// installed binary: a "prompts" directory next to the executable, then one
// under the XDG data directory. When neither exists the executable-relative
// path is returned so errors name the expected location.
func DefaultTemplatesDir() string {
	var candidates []string
	if exe, err := os.Executable(); err == nil {
		if resolved, err := filepath.EvalSymlinks(exe); err == nil {
			exe = resolved
		}
		candidates = append(candidates, filepath.Join(filepath.Dir(exe), TemplatesDirName))
	}
	candidates = append(candidates, filepath.Join(xdg.DataHome, APP_NAME, TemplatesDirName))

	for _, dir := range candidates {
		if stat, err := os.Stat(dir); err == nil && stat.IsDir() {
			return dir
		}
	}
	return candidates[0]
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		TemplatesDir:     DefaultTemplatesDir(),
		MaxTemplateBytes: DefaultMaxTemplateBytes,
		ServerName:       DefaultServerName,
		Version:          DefaultVersion,
	}
}

// Load reads the config from the standard location. A missing file is not an
// error: defaults and environment overrides are used instead.
func Load() (*Config, error) {
	path := ConfigPath()
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		cfg := DefaultConfig()
		if err := cfg.applyEnv(); err != nil {
			return nil, err
		}
		return &cfg, cfg.Validate()
	}
	return LoadFrom(path)
}

// LoadFrom loads config from a specific path, fills unset fields with
// defaults and applies environment overrides.
func LoadFrom(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer f.Close()

	var cfg Config
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.applyDefaults()
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.TemplatesDir == "" {
		c.TemplatesDir = defaults.TemplatesDir
	}
	if c.MaxTemplateBytes == 0 {
		c.MaxTemplateBytes = defaults.MaxTemplateBytes
	}
	if c.ServerName == "" {
		c.ServerName = defaults.ServerName
	}
	if c.Version == "" {
		c.Version = defaults.Version
	}
	c.TemplatesDir = fileops.ExpandPath(c.TemplatesDir)
}

func (c *Config) applyEnv() error {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	for _, key := range []string{"templates_dir", "max_template_bytes"} {
		if err := v.BindEnv(key); err != nil {
			return fmt.Errorf("failed to bind %s: %w", key, err)
		}
	}

	if dir := strings.TrimSpace(v.GetString("templates_dir")); dir != "" {
		c.TemplatesDir = fileops.ExpandPath(dir)
	}
	if raw := strings.TrimSpace(v.GetString("max_template_bytes")); raw != "" {
		size, err := cast.ToInt64E(raw)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvMaxTemplateBytes, raw, err)
		}
		c.MaxTemplateBytes = size
	}
	return nil
}

// Validate checks that the config can drive a server.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.TemplatesDir) == "" {
		return fmt.Errorf("templates_dir cannot be empty")
	}
	if c.MaxTemplateBytes <= 0 {
		return fmt.Errorf("max_template_bytes must be positive, got %d", c.MaxTemplateBytes)
	}
	if strings.TrimSpace(c.ServerName) == "" {
		return fmt.Errorf("server_name cannot be empty")
	}
	return nil
}

// Save writes the config to the standard location
func (c *Config) Save() error {
	return c.SaveTo(ConfigPath())
}

// SaveTo writes the config to a specific path
func (c *Config) SaveTo(path string) error {
	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Create file with restrictive permissions (600) for security
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer f.Close()

	enc := yaml.NewEncoder(f)
	defer enc.Close()

	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}
