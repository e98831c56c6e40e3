// Package config holds the persisted key-value configuration: the signing
// key and the relay list. Load-at-startup, save-on-change; there is no
// concurrent-writer protection and no eager validation — a malformed key
// or empty relay list fails at first use, not here.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultRelay is the single relay configured out of the box.
const DefaultRelay = "wss://relay.damus.io"

// PlaceholderKey marks an unconfigured signing key.
const PlaceholderKey = "nsec1..."

// Config is the persisted state.
type Config struct {
	// PrivateKey is the encoded secret key (nsec or hex), decoded once
	// at startup to derive the signing identity.
	PrivateKey string `yaml:"privateKey"`
	// Relays is a comma-separated list of relay URIs.
	Relays string `yaml:"relays"`
}

// Default returns the out-of-the-box configuration.
func Default() Config {
	return Config{
		PrivateKey: PlaceholderKey,
		Relays:     DefaultRelay,
	}
}

// DefaultPath returns the per-user config file location.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate user config dir: %w", err)
	}
	return filepath.Join(dir, "wikipub", "config.yaml"), nil
}

// Load reads the config file at path. A missing file yields the defaults
// without error; anything else unreadable is an error.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the config to path, creating parent directories as needed.
// The file holds a secret, hence the tight mode.
func (c Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config dir: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// RelayList splits the comma-separated relay string into trimmed URIs,
// dropping empty entries.
func (c Config) RelayList() []string {
	var urls []string
	for _, part := range strings.Split(c.Relays, ",") {
		if url := strings.TrimSpace(part); url != "" {
			urls = append(urls, url)
		}
	}
	return urls
}
