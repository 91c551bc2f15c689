package theme

import (
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/Zen-Editor/zen/internal/log"
)

var (
	ErrMalformed   = errors.New("malformed theme")
	ErrUnsupported = errors.New("unsupported theme file")
)

// file mirrors Theme with the sections as pointers so missing ones can be told
// apart from zero values.
type file struct {
	Name       string      `json:"name" yaml:"name"`
	Colors     *Colors     `json:"colors" yaml:"colors"`
	Spacing    *Spacing    `json:"spacing" yaml:"spacing"`
	Typography *Typography `json:"typography" yaml:"typography"`
	Syntax     *Syntax     `json:"syntax" yaml:"syntax"`
}

func (f file) theme() (Theme, error) {
	switch {
	case strings.TrimSpace(f.Name) == "":
		return Theme{}, fmt.Errorf("%w: missing name", ErrMalformed)
	case f.Colors == nil:
		return Theme{}, fmt.Errorf("%w: missing colors", ErrMalformed)
	case f.Spacing == nil:
		return Theme{}, fmt.Errorf("%w: missing spacing", ErrMalformed)
	case f.Typography == nil:
		return Theme{}, fmt.Errorf("%w: missing typography", ErrMalformed)
	case f.Typography.FontSize <= 0 || f.Typography.CodeFontSize <= 0:
		return Theme{}, fmt.Errorf("%w: font sizes must be positive", ErrMalformed)
	}

	t := Theme{
		Name:       f.Name,
		Colors:     *f.Colors,
		Spacing:    *f.Spacing,
		Typography: *f.Typography,
	}
	if f.Syntax != nil {
		t.Syntax = *f.Syntax
	} else {
		t.Syntax = darkSyntax
		t.Syntax.Text = t.Colors.TextPrimary
	}
	return t, nil
}

// Loader reads theme definition files from a filesystem.
type Loader struct {
	fs afero.Fs
}

// NewLoader creates a loader over fs. A nil fs means the OS filesystem.
func NewLoader(fs afero.Fs) *Loader {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &Loader{fs: fs}
}

// LoadFile decodes a single .json, .yaml or .yml theme file.
func (l *Loader) LoadFile(path string) (Theme, error) {
	data, err := afero.ReadFile(l.fs, path)
	if err != nil {
		return Theme{}, fmt.Errorf("reading theme %s: %w", path, err)
	}

	var f file
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		err = json.Unmarshal(data, &f)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &f)
	default:
		return Theme{}, fmt.Errorf("%w: %s", ErrUnsupported, path)
	}
	if err != nil {
		return Theme{}, fmt.Errorf("%w: %s: %v", ErrMalformed, path, err)
	}

	t, err := f.theme()
	if err != nil {
		return Theme{}, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// LoadDir returns the built-in themes followed by every readable theme file
// in dir, in file name order. A file whose theme name matches an earlier
// theme replaces it in place. Unreadable or malformed files are skipped;
// a missing dir yields just the built-ins.
func (l *Loader) LoadDir(dir string) []Theme {
	themes := Builtins()
	if dir == "" {
		return themes
	}

	entries, err := afero.ReadDir(l.fs, dir)
	if err != nil {
		log.Debug(log.CatTheme, "themes dir not readable", "dir", dir, "error", err)
		return themes
	}

	for _, entry := range entries {
		if entry.IsDir() || !IsThemeFile(entry.Name()) {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		t, err := l.LoadFile(path)
		if err != nil {
			log.Warn(log.CatTheme, "skipping theme file", "path", path, "error", err)
			continue
		}

		themes = upsert(themes, t)
		log.Debug(log.CatTheme, "loaded theme", "name", t.Name, "path", path)
	}

	return themes
}

// Load reads dir from the OS filesystem. See Loader.LoadDir.
func Load(dir string) []Theme {
	return NewLoader(nil).LoadDir(dir)
}

// IsThemeFile reports whether name has a theme file extension.
func IsThemeFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".json", ".yaml", ".yml":
		return true
	}
	return false
}

// Find returns the theme called name, or Dark when there is none.
func Find(themes []Theme, name string) Theme {
	if i := Index(themes, name); i >= 0 {
		return themes[i]
	}
	return Dark()
}

// Index returns the position of the theme called name, or -1.
func Index(themes []Theme, name string) int {
	for i, t := range themes {
		if t.Name == name {
			return i
		}
	}
	return -1
}

// Names lists theme names in order.
func Names(themes []Theme) []string {
	names := make([]string, len(themes))
	for i, t := range themes {
		names[i] = t.Name
	}
	return names
}

func upsert(themes []Theme, t Theme) []Theme {
	if i := Index(themes, t.Name); i >= 0 {
		themes[i] = t
		return themes
	}
	return append(themes, t)
}
