package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/sintya/dinote/internal/constants"
)

// Config holds everything the client needs to talk to the notes service.
// The service owns the notes themselves; nothing note-shaped is persisted
// here.
type Config struct {
	BaseURL        string `yaml:"base_url"        json:"base_url"`
	TimeoutSeconds int    `yaml:"timeout_seconds" json:"timeout_seconds"`
	DefaultView    string `yaml:"default_view"    json:"default_view"`
}

var ValidViews = map[string]bool{
	"active":   true,
	"archived": true,
}

func newConfig() *Config {
	return &Config{
		BaseURL:        constants.DefaultBaseURL,
		TimeoutSeconds: constants.DefaultTimeoutSeconds,
		DefaultView:    constants.DefaultView,
	}
}

func (cfg *Config) ensureDefaults() {
	cfg.BaseURL = strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if cfg.BaseURL == "" {
		cfg.BaseURL = constants.DefaultBaseURL
	}
	if cfg.TimeoutSeconds <= 0 {
		cfg.TimeoutSeconds = constants.DefaultTimeoutSeconds
	}
	if !ValidViews[cfg.DefaultView] {
		cfg.DefaultView = constants.DefaultView
	}
}

func (cfg *Config) Timeout() time.Duration {
	return time.Duration(cfg.TimeoutSeconds) * time.Second
}

func ValidateView(view string) error {
	if ValidViews[view] {
		return nil
	}
	return fmt.Errorf("invalid view: %q. Please choose 'active' or 'archived'.", view)
}

func Load(home string) (*Config, error) {
	path := GetConfigPath(home)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := &Config{}
	if len(strings.TrimSpace(string(data))) == 0 {
		cfg = newConfig()
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.ensureDefaults()
	return cfg, nil
}

func (cfg *Config) Save(home string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	if err := os.WriteFile(GetConfigPath(home), data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}
