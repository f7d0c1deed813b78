package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/gyeh/eircode"
)

// Validation modes accepted in the YAML file.
const (
	ModeDefault = "default"
	ModeStrict  = "strict"
	ModeLax     = "lax"
)

// Config holds all runtime configuration for an eircode run.
type Config struct {
	DSN         string
	FilePath    string
	LogFormat   string   // "text" or "json"
	Mode        string   // "default", "strict" or "lax"
	Strict      bool     // --strict flag, overrides Mode
	Lax         bool     // --lax flag, overrides Mode
	Force       bool     // reload a file whose hash was already loaded
	RoutingKeys []string `yaml:"routing_keys"` // allow-list; empty means all
}

// yamlConfig is the on-disk YAML structure.
type yamlConfig struct {
	Mode        string   `yaml:"mode"`
	RoutingKeys []string `yaml:"routing_keys"`
}

// LoadFromFile reads a YAML config file and merges its values into Config.
func (c *Config) LoadFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	var yc yamlConfig
	if err := yaml.Unmarshal(data, &yc); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	if yc.Mode != "" {
		c.Mode = yc.Mode
	}
	c.RoutingKeys = yc.RoutingKeys
	if err := c.validateMode(); err != nil {
		return err
	}
	return c.validateRoutingKeys()
}

func (c *Config) validateMode() error {
	switch strings.ToLower(c.Mode) {
	case "", ModeDefault, ModeStrict, ModeLax:
		return nil
	}
	return fmt.Errorf("unknown mode %q in config", c.Mode)
}

// validateRoutingKeys uppercases the allow-list and rejects malformed keys.
func (c *Config) validateRoutingKeys() error {
	for i, rk := range c.RoutingKeys {
		rk = strings.ToUpper(strings.TrimSpace(rk))
		if !eircode.IsRoutingKey(rk) {
			return fmt.Errorf("invalid routing key %q in config", c.RoutingKeys[i])
		}
		c.RoutingKeys[i] = rk
	}
	return nil
}

// Options resolves the validation mode. The --strict and --lax flags take
// precedence over the file's mode; setting both is eircode.ErrConfiguration.
func (c *Config) Options() (eircode.Options, error) {
	var o eircode.Options
	switch {
	case c.Strict || c.Lax:
		o = eircode.Options{Strict: c.Strict, Lax: c.Lax}
	case strings.EqualFold(c.Mode, ModeStrict):
		o.Strict = true
	case strings.EqualFold(c.Mode, ModeLax):
		o.Lax = true
	}
	if err := o.Validate(); err != nil {
		return eircode.Options{}, err
	}
	return o, nil
}

// AllowsRoutingKey reports whether rk passes the routing key allow-list.
func (c *Config) AllowsRoutingKey(rk string) bool {
	if len(c.RoutingKeys) == 0 {
		return true
	}
	rk = strings.ToUpper(rk)
	for _, k := range c.RoutingKeys {
		if k == rk {
			return true
		}
	}
	return false
}

// Validate checks required fields and returns an error if the config is invalid.
func (c *Config) Validate() error {
	if c.FilePath == "" {
		return fmt.Errorf("--file is required")
	}
	if _, err := os.Stat(c.FilePath); err != nil {
		return fmt.Errorf("file not accessible: %w", err)
	}
	if _, err := c.Options(); err != nil {
		return err
	}
	return nil
}

// ValidateWithDSN checks both file and DSN fields.
func (c *Config) ValidateWithDSN() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.DSN == "" {
		return fmt.Errorf("--dsn or EIRCODE_DB_URL is required")
	}
	return nil
}
