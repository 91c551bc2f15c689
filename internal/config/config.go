// Package config provides configuration types, defaults, and persistence for zen.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"

	"github.com/Zen-Editor/zen/internal/log"
)

// Geometry backends for editor.metrics.
const (
	MetricsFont = "font"
	MetricsCell = "cell"
)

// LocalPath is the project-level config file, checked before the user one.
const LocalPath = ".zen/config.yaml"

// Config holds all application configuration.
type Config struct {
	DefaultTheme  string        `mapstructure:"default_theme"`
	ThemesDir     string        `mapstructure:"themes_dir"`
	Watch         bool          `mapstructure:"watch"`
	WatchDebounce time.Duration `mapstructure:"watch_debounce"`
	Editor        EditorConfig  `mapstructure:"editor"`
}

// EditorConfig holds editing surface settings.
type EditorConfig struct {
	ShowLineNumbers bool    `mapstructure:"show_line_numbers"`
	Metrics         string  `mapstructure:"metrics"`        // "font" (default) or "cell"
	MaxScanLines    int     `mapstructure:"max_scan_lines"` // lines measured for the widest line
	MinWidth        float64 `mapstructure:"min_width"`      // floor for the editing surface width
}

// Defaults returns the default configuration.
func Defaults() Config {
	return Config{
		DefaultTheme:  "Dark",
		ThemesDir:     "themes",
		Watch:         true,
		WatchDebounce: 200 * time.Millisecond,
		Editor: EditorConfig{
			ShowLineNumbers: true,
			Metrics:         MetricsFont,
			MaxScanLines:    1000,
			MinWidth:        800,
		},
	}
}

// UserPath returns ~/.config/zen/config.yaml.
func UserPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "zen", "config.yaml")
}

func setDefaults(v *viper.Viper) {
	d := Defaults()
	v.SetDefault("default_theme", d.DefaultTheme)
	v.SetDefault("themes_dir", d.ThemesDir)
	v.SetDefault("watch", d.Watch)
	v.SetDefault("watch_debounce", d.WatchDebounce)
	v.SetDefault("editor.show_line_numbers", d.Editor.ShowLineNumbers)
	v.SetDefault("editor.metrics", d.Editor.Metrics)
	v.SetDefault("editor.max_scan_lines", d.Editor.MaxScanLines)
	v.SetDefault("editor.min_width", d.Editor.MinWidth)
}

// Load reads the config file and returns it with the path it came from.
// An empty cfgFile looks for LocalPath, then UserPath. When no file exists a
// default one is written. A file that cannot be parsed yields the defaults
// and an error.
func Load(cfgFile string) (Config, string, error) {
	v := viper.New()
	setDefaults(v)

	target := cfgFile
	switch {
	case cfgFile != "":
		v.SetConfigFile(cfgFile)
	case fileExists(LocalPath):
		target = LocalPath
		v.SetConfigFile(LocalPath)
	default:
		target = UserPath()
		v.AddConfigPath(filepath.Dir(target))
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			log.ErrorErr(log.CatConfig, "Failed to read config, using defaults", err, "path", target)
			return Defaults(), target, fmt.Errorf("reading config %s: %w", target, err)
		}

		if target != "" {
			if writeErr := WriteDefaultConfig(target); writeErr == nil {
				v.SetConfigFile(target)
				_ = v.ReadInConfig()
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to decode config, using defaults", err, "path", target)
		return Defaults(), target, fmt.Errorf("decoding config %s: %w", target, err)
	}

	if used := v.ConfigFileUsed(); used != "" {
		target = used
	}
	log.Debug(log.CatConfig, "Loaded config", "path", target, "theme", cfg.DefaultTheme)
	return normalize(cfg), target, nil
}

// normalize replaces out-of-range values with their defaults.
func normalize(cfg Config) Config {
	d := Defaults()
	if cfg.DefaultTheme == "" {
		cfg.DefaultTheme = d.DefaultTheme
	}
	if cfg.Editor.Metrics != MetricsFont && cfg.Editor.Metrics != MetricsCell {
		log.Warn(log.CatConfig, "Unknown metrics, using font", "metrics", cfg.Editor.Metrics)
		cfg.Editor.Metrics = MetricsFont
	}
	if cfg.Editor.MaxScanLines <= 0 {
		cfg.Editor.MaxScanLines = d.Editor.MaxScanLines
	}
	if cfg.Editor.MinWidth < 0 {
		cfg.Editor.MinWidth = d.Editor.MinWidth
	}
	if cfg.WatchDebounce <= 0 {
		cfg.WatchDebounce = d.WatchDebounce
	}
	return cfg
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// DefaultConfigTemplate returns the default config as a YAML string with comments.
func DefaultConfigTemplate() string {
	return `# Zen Configuration

# Theme shown at startup (run 'zen themes' to list them)
default_theme: Dark

# Directory with extra themes (*.json, *.yaml); a theme named like a
# built-in replaces it
themes_dir: themes

# Reload the open file and the themes directory when they change on disk
watch: true
watch_debounce: 200ms

editor:
  show_line_numbers: true
  metrics: font          # "font" measures Go Mono in pixels, "cell" counts terminal cells
  max_scan_lines: 1000   # lines measured when finding the widest line
  min_width: 800         # the editing surface is never narrower than this
`
}

// WriteDefaultConfig creates a config file with default settings.
func WriteDefaultConfig(configPath string) error {
	log.Debug(log.CatConfig, "Writing default config", "path", configPath)

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to create config directory", err, "dir", dir)
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(DefaultConfigTemplate()), 0o600); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to write config file", err, "path", configPath)
		return fmt.Errorf("writing config file: %w", err)
	}

	log.Info(log.CatConfig, "Created default config", "path", configPath)
	return nil
}
