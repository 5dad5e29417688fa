// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/adrg/xdg"

	"github.com/nhath/quill/internal/assist"
)

// Config represents the application configuration
type Config struct {
	Provider              string `toml:"provider"`
	Model                 string `toml:"model"`
	BaseURL               string `toml:"base_url"`
	EnhancementLevel      string `toml:"enhancement_level"`
	DebounceMs            int    `toml:"debounce_ms"`
	RequestTimeoutSeconds int    `toml:"request_timeout_seconds"`
	ThemeName             string `toml:"theme"`
	Theme                 Theme  `toml:"theme_colors"`
	Keys                  KeyMap `toml:"keys"`

	path string
}

// Theme defines the color palette
type Theme struct {
	TextPrimary   string `toml:"text_primary"`
	TextSecondary string `toml:"text_secondary"`
	TextFaint     string `toml:"text_faint"`
	Accent        string `toml:"accent"`
	Success       string `toml:"success"`
	Error         string `toml:"error"`
	Highlight     string `toml:"highlight"`
	Warning       string `toml:"warning"`
	BgPrimary     string `toml:"bg_primary"`
	BgSecondary   string `toml:"bg_secondary"`
	CardBg        string `toml:"card_bg"`
}

// KeyMap defines key bindings
type KeyMap struct {
	Enhance  []string `toml:"enhance"`
	Apply    []string `toml:"apply"`
	Focus    []string `toml:"focus"`
	Back     []string `toml:"back"`
	Level    []string `toml:"level"`
	Activity []string `toml:"activity"`
	Help     []string `toml:"help"`
	Copy     []string `toml:"copy"`
	Accept   []string `toml:"accept"`
	Quit     []string `toml:"quit"`

	ScrollUp   []string `toml:"scroll_up"`
	ScrollDown []string `toml:"scroll_down"`
}

// DefaultConfig returns a config with default values
func DefaultConfig() *Config {
	return &Config{
		Provider:              assist.ProviderGemini,
		Model:                 assist.DefaultGeminiModel,
		BaseURL:               "",
		EnhancementLevel:      string(assist.LevelDefault),
		DebounceMs:            1000,
		RequestTimeoutSeconds: 30,
		ThemeName:             "nord",
		Theme:                 GetThemes()["nord"],
		Keys: KeyMap{
			Enhance:  []string{"ctrl+e"},
			Apply:    []string{"enter"},
			Focus:    []string{"tab"},
			Back:     []string{"esc"},
			Level:    []string{"ctrl+l"},
			Activity: []string{"ctrl+r"},
			Help:     []string{"f1"},
			Copy:     []string{"ctrl+y"},
			Accept:   []string{"ctrl+o"},
			Quit:     []string{"ctrl+c"},

			ScrollUp:   []string{"pgup"},
			ScrollDown: []string{"pgdown"},
		},
	}
}

// ConfigPath returns the config file path: $QUILL_CONFIG if set, else the
// XDG-compliant location.
func ConfigPath() (string, error) {
	if p := os.Getenv("QUILL_CONFIG"); p != "" {
		return p, nil
	}
	return xdg.ConfigFile("quill/config.toml")
}

// Load loads the config from disk or creates default
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, fmt.Errorf("config path: %w", err)
	}
	return LoadFrom(path)
}

// LoadFrom loads the config at path. A missing file is created with defaults.
func LoadFrom(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		// First run: create default
		cfg := DefaultConfig()
		cfg.path = path
		if err := cfg.Save(); err != nil {
			return nil, err
		}
		cfg.applyEnv()
		return cfg, cfg.Validate()
	}

	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}
	cfg.path = path

	// Populate defaults for missing fields (migration)
	if cfg.fillDefaults() {
		// Persist so the user can see and edit the new keys. A read-only
		// config dir is not fatal.
		_ = cfg.Save()
	}

	cfg.applyEnv()
	return &cfg, cfg.Validate()
}

func (c *Config) fillDefaults() bool {
	defaults := DefaultConfig()
	updated := false

	if c.Provider == "" {
		c.Provider = defaults.Provider
		updated = true
	}
	if c.Model == "" && c.Provider == assist.ProviderGemini {
		c.Model = defaults.Model
		updated = true
	}
	if c.EnhancementLevel == "" {
		c.EnhancementLevel = defaults.EnhancementLevel
		updated = true
	}
	if c.DebounceMs <= 0 {
		c.DebounceMs = defaults.DebounceMs
		updated = true
	}
	if c.RequestTimeoutSeconds <= 0 {
		c.RequestTimeoutSeconds = defaults.RequestTimeoutSeconds
		updated = true
	}
	if c.ThemeName == "" {
		c.ThemeName = defaults.ThemeName
		updated = true
	}
	if c.Theme.TextPrimary == "" {
		theme, ok := GetThemes()[c.ThemeName]
		if !ok {
			theme = defaults.Theme
		}
		c.Theme = theme
		updated = true
	}
	if len(c.Keys.Enhance) == 0 {
		c.Keys = defaults.Keys
		updated = true
	}
	if len(c.Keys.ScrollUp) == 0 {
		c.Keys.ScrollUp = defaults.Keys.ScrollUp
		updated = true
	}
	if len(c.Keys.ScrollDown) == 0 {
		c.Keys.ScrollDown = defaults.Keys.ScrollDown
		updated = true
	}
	return updated
}

// applyEnv applies QUILL_* environment overrides. They are never saved.
func (c *Config) applyEnv() {
	if v := os.Getenv("QUILL_PROVIDER"); v != "" {
		c.SetProvider(v)
	}
	if v := os.Getenv("QUILL_MODEL"); v != "" {
		c.Model = v
	}
	if v := os.Getenv("QUILL_BASE_URL"); v != "" {
		c.BaseURL = v
	}
}

// SetProvider switches the backend. A model still at the Gemini default is
// swapped for the OpenAI default so it is never sent to an OpenAI endpoint.
func (c *Config) SetProvider(provider string) {
	c.Provider = provider
	if provider == assist.ProviderOpenAI && c.Model == assist.DefaultGeminiModel {
		c.Model = assist.DefaultOpenAIModel
	}
}

// Validate checks values that would otherwise fail later at request time.
func (c *Config) Validate() error {
	switch c.Provider {
	case assist.ProviderGemini, assist.ProviderOpenAI, assist.ProviderMock:
	default:
		return fmt.Errorf("config: unknown provider %q", c.Provider)
	}
	if _, err := assist.ParseLevel(c.EnhancementLevel); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// Level returns the configured enhancement level, or default if invalid.
func (c *Config) Level() assist.Level {
	l, err := assist.ParseLevel(c.EnhancementLevel)
	if err != nil {
		return assist.LevelDefault
	}
	return l
}

// Debounce is the quiet period before suggestions are fetched.
func (c *Config) Debounce() time.Duration {
	return time.Duration(c.DebounceMs) * time.Millisecond
}

// RequestTimeout bounds each model request.
func (c *Config) RequestTimeout() time.Duration {
	return time.Duration(c.RequestTimeoutSeconds) * time.Second
}

// Path is where the config was loaded from.
func (c *Config) Path() string {
	return c.path
}

// Save writes the config to disk
func (c *Config) Save() error {
	path := c.path
	if path == "" {
		var err error
		if path, err = ConfigPath(); err != nil {
			return err
		}
		c.path = path
	}

	// Ensure directory exists with secure permissions
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("config: create dir: %w", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("config: open %s: %w", path, err)
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(c)
}
