package core

import (
	"path/filepath"
	"strings"

	"github.com/Zen-Editor/zen/highlighter"
)

// DefaultLanguage is the language of a session before any file is loaded.
const DefaultLanguage = "rs"

// specialFiles maps base names (lower case) that have no telling extension.
var specialFiles = map[string]string{
	"cmakelists.txt": "c",
	"makefile":       "make",
	"gnumakefile":    "make",
	"dockerfile":     "docker",
	".bashrc":        "sh",
	".zshrc":         "sh",
	".profile":       "sh",
}

// LanguageForPath picks the language id for a file: special file names
// first, then the extension, then plain text.
func LanguageForPath(path string) string {
	base := filepath.Base(path)
	if lang, ok := specialFiles[strings.ToLower(base)]; ok {
		return lang
	}

	if ext := strings.TrimPrefix(filepath.Ext(base), "."); ext != "" && ext != base[1:] {
		return strings.ToLower(ext)
	}

	return highlighter.PlainText
}
