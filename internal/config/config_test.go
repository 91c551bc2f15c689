package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	d := Defaults()
	require.Equal(t, "Dark", d.DefaultTheme)
	require.Equal(t, "themes", d.ThemesDir)
	require.True(t, d.Watch)
	require.Equal(t, 200*time.Millisecond, d.WatchDebounce)
	require.Equal(t, MetricsFont, d.Editor.Metrics)
	require.Equal(t, 1000, d.Editor.MaxScanLines)
	require.Equal(t, 800.0, d.Editor.MinWidth)
}

func TestLoad_WritesDefaultWhenMissing(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg, used, err := Load(configPath)
	require.NoError(t, err)
	require.Equal(t, configPath, used)
	require.Equal(t, Defaults(), cfg)

	data, err := os.ReadFile(configPath)
	require.NoError(t, err)
	require.Equal(t, DefaultConfigTemplate(), string(data))
}

func TestLoad_ReadsValues(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	content := `default_theme: Light
themes_dir: /opt/zen/themes
watch: false
watch_debounce: 1s
editor:
  show_line_numbers: false
  metrics: cell
  max_scan_lines: 50
`
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0o600))

	cfg, used, err := Load(configPath)
	require.NoError(t, err)
	require.Equal(t, configPath, used)
	require.Equal(t, "Light", cfg.DefaultTheme)
	require.Equal(t, "/opt/zen/themes", cfg.ThemesDir)
	require.False(t, cfg.Watch)
	require.Equal(t, time.Second, cfg.WatchDebounce)
	require.False(t, cfg.Editor.ShowLineNumbers)
	require.Equal(t, MetricsCell, cfg.Editor.Metrics)
	require.Equal(t, 50, cfg.Editor.MaxScanLines)
	require.Equal(t, 800.0, cfg.Editor.MinWidth, "unset keys keep their defaults")
}

func TestLoad_NormalizesBadValues(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	content := `default_theme: ""
editor:
  metrics: vector
  max_scan_lines: -3
  min_width: -1
`
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0o600))

	cfg, _, err := Load(configPath)
	require.NoError(t, err)
	require.Equal(t, "Dark", cfg.DefaultTheme)
	require.Equal(t, MetricsFont, cfg.Editor.Metrics)
	require.Equal(t, 1000, cfg.Editor.MaxScanLines)
	require.Equal(t, 800.0, cfg.Editor.MinWidth)
}

func TestLoad_MalformedFileFallsBackToDefaults(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("editor: [unclosed\n"), 0o600))

	cfg, used, err := Load(configPath)
	require.Error(t, err)
	require.Equal(t, configPath, used)
	require.Equal(t, Defaults(), cfg)
}

func TestSaveDefaultTheme_CreatesNewFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")

	require.NoError(t, SaveDefaultTheme(configPath, "Solarized"))

	data, err := os.ReadFile(configPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "default_theme: Solarized")
}

func TestSaveDefaultTheme_PreservesOtherConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, WriteDefaultConfig(configPath))

	require.NoError(t, SaveDefaultTheme(configPath, "Light"))

	data, err := os.ReadFile(configPath)
	require.NoError(t, err)
	content := string(data)
	assert.Contains(t, content, "default_theme: Light")
	assert.NotContains(t, content, "default_theme: Dark")
	assert.Contains(t, content, "Directory with extra themes")
	assert.Contains(t, content, "themes_dir: themes")
	assert.Contains(t, content, "watch_debounce: 200ms")
	assert.Contains(t, content, "max_scan_lines: 1000")

	cfg, _, err := Load(configPath)
	require.NoError(t, err)
	require.Equal(t, "Light", cfg.DefaultTheme)
}

func TestSaveDefaultTheme_AppendsMissingKey(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("watch: false\n"), 0o600))

	require.NoError(t, SaveDefaultTheme(configPath, "Light"))

	cfg, _, err := Load(configPath)
	require.NoError(t, err)
	require.False(t, cfg.Watch)
	require.Equal(t, "Light", cfg.DefaultTheme)
}

func TestSaveDefaultTheme_RejectsNonMappingRoot(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("- a\n- b\n"), 0o600))

	require.Error(t, SaveDefaultTheme(configPath, "Light"))
}
