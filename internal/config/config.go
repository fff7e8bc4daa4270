package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	UI  UIConfig
	Log LogConfig
}

// UIConfig holds presentation settings.
type UIConfig struct {
	DefaultTab    string `mapstructure:"default_tab"`
	InitialClient int    `mapstructure:"initial_client"`
	Mouse         bool
	AltScreen     bool   `mapstructure:"alt_screen"`
	MarkdownStyle string `mapstructure:"markdown_style"`
	Width         int
}

// LogConfig holds logger settings. The TUI owns the terminal, so logs go to a file.
type LogConfig struct {
	Path  string
	Level string
}

// Path returns the config file location: DORATRACKER_CONFIG or the XDG-style default.
func Path() string {
	if p := os.Getenv("DORATRACKER_CONFIG"); p != "" {
		return p
	}
	return filepath.Join(os.Getenv("HOME"), ".config", "doratracker", "config.toml")
}

// Load reads configuration from file and env. Env var overrides use prefix DORATRACKER_.
func Load() (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigType("toml")

	if p := os.Getenv("DORATRACKER_CONFIG"); p != "" {
		v.SetConfigFile(p)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "doratracker"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("DORATRACKER")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// Defaults returns the configuration used when no file or env overrides exist.
func Defaults() Config {
	v := viper.New()
	setDefaults(v)
	var c Config
	_ = v.Unmarshal(&c)
	return c
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ui.default_tab", "overview")
	v.SetDefault("ui.initial_client", 0)
	v.SetDefault("ui.mouse", true)
	v.SetDefault("ui.alt_screen", true)
	v.SetDefault("ui.markdown_style", "dark")
	v.SetDefault("ui.width", 100)
	v.SetDefault("log.path", filepath.Join(os.Getenv("HOME"), ".local", "state", "doratracker", "doratracker.log"))
	v.SetDefault("log.level", "info")
}

// Save writes the provided config to disk, creating the config directory if needed.
func Save(cfg Config) error {
	path := Path()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("ui.default_tab", cfg.UI.DefaultTab)
	v.Set("ui.initial_client", cfg.UI.InitialClient)
	v.Set("ui.mouse", cfg.UI.Mouse)
	v.Set("ui.alt_screen", cfg.UI.AltScreen)
	v.Set("ui.markdown_style", cfg.UI.MarkdownStyle)
	v.Set("ui.width", cfg.UI.Width)
	v.Set("log.path", cfg.Log.Path)
	v.Set("log.level", cfg.Log.Level)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
