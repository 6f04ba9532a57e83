package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (LINETRANS_*).
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// Start from defaults.
	cfg := DefaultConfig()

	// Load YAML file if it exists.
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	// Overlay environment variables: LINETRANS_CHANNEL_SECRET -> channel_secret, etc.
	if err := k.Load(env.Provider("LINETRANS_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "LINETRANS_"))
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// validLogFormats is the set of recognized log_format values.
var validLogFormats = map[string]bool{
	"text": true,
	"json": true,
}

// Validate checks that the configuration contains valid values. A
// validation error at startup is fatal: the bot cannot verify webhooks
// or call its collaborators without credentials.
func (c *Config) Validate() error {
	if c.ChannelAccessToken == "" {
		return fmt.Errorf("channel_access_token is required")
	}
	if c.ChannelSecret == "" {
		return fmt.Errorf("channel_secret is required")
	}
	if c.TranslateAPIKey == "" {
		return fmt.Errorf("translate_api_key is required")
	}

	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("port %d out of range", c.Port)
	}

	if c.LogFormat != "" && !validLogFormats[c.LogFormat] {
		return fmt.Errorf("invalid log_format %q: must be text or json", c.LogFormat)
	}

	if c.TranslateEndpoint == "" {
		return fmt.Errorf("translate_endpoint is required")
	}

	if c.TranslateTimeoutSeconds <= 0 {
		return fmt.Errorf("translate_timeout_seconds must be positive")
	}

	if c.MaxReplyLength <= 0 {
		return fmt.Errorf("max_reply_length must be positive")
	}

	return nil
}
