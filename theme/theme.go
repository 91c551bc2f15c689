// Package theme defines the editor colour roles, spacing and typography,
// the built-in themes, and loading of user themes from disk.
package theme

import "fmt"

const (
	MinCodeFontSize = 10
	MaxCodeFontSize = 24
)

// RGB is an opaque 8-bit colour. It decodes from a JSON or YAML [r, g, b] array.
type RGB [3]uint8

// Hex returns the colour as "#rrggbb".
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c[0], c[1], c[2])
}

// Colors are the UI roles of a theme.
type Colors struct {
	WindowBg      RGB `json:"window_bg" yaml:"window_bg"`
	PanelBg       RGB `json:"panel_bg" yaml:"panel_bg"`
	EditorBg      RGB `json:"editor_bg" yaml:"editor_bg"`
	FaintBg       RGB `json:"faint_bg" yaml:"faint_bg"`
	TextPrimary   RGB `json:"text_primary" yaml:"text_primary"`
	TextSecondary RGB `json:"text_secondary" yaml:"text_secondary"`
	TextDisabled  RGB `json:"text_disabled" yaml:"text_disabled"`
	ButtonBg      RGB `json:"button_bg" yaml:"button_bg"`
	ButtonHover   RGB `json:"button_hover" yaml:"button_hover"`
	ButtonActive  RGB `json:"button_active" yaml:"button_active"`
	Selection     RGB `json:"selection" yaml:"selection"`
	Separator     RGB `json:"separator" yaml:"separator"`
}

// Syntax are the semantic token roles used for highlighting.
type Syntax struct {
	Text            RGB `json:"text" yaml:"text"`
	Keyword         RGB `json:"keyword" yaml:"keyword"`
	Literal         RGB `json:"literal" yaml:"literal"`
	String          RGB `json:"string" yaml:"string"`
	Punctuation     RGB `json:"punctuation" yaml:"punctuation"`
	Preprocessor    RGB `json:"preprocessor" yaml:"preprocessor"`
	FormatSpecifier RGB `json:"format_specifier" yaml:"format_specifier"` // function-like names
	Types           RGB `json:"types" yaml:"types"`
	Variables       RGB `json:"variables" yaml:"variables"`
}

type Spacing struct {
	ItemSpacing   [2]float64 `json:"item_spacing" yaml:"item_spacing"`
	ButtonPadding [2]float64 `json:"button_padding" yaml:"button_padding"`
	WindowMargin  float64    `json:"window_margin" yaml:"window_margin"`
	PanelMargin   int8       `json:"panel_margin" yaml:"panel_margin"`
}

type Typography struct {
	FontSize     float64 `json:"font_size" yaml:"font_size"`
	CodeFontSize float64 `json:"code_font_size" yaml:"code_font_size"`
}

// Theme is a value type: it holds no references, so a copy never aliases
// another copy. Derive variants with the With* methods.
type Theme struct {
	Name       string     `json:"name" yaml:"name"`
	Colors     Colors     `json:"colors" yaml:"colors"`
	Spacing    Spacing    `json:"spacing" yaml:"spacing"`
	Typography Typography `json:"typography" yaml:"typography"`
	Syntax     Syntax     `json:"syntax" yaml:"syntax"`
}

// WithCodeFontSize returns a copy of t using size for code, clamped to
// [MinCodeFontSize, MaxCodeFontSize]. The UI font follows one point above.
func (t Theme) WithCodeFontSize(size float64) Theme {
	size = min(max(size, MinCodeFontSize), MaxCodeFontSize)
	t.Typography.CodeFontSize = size
	t.Typography.FontSize = size + 1
	return t
}

// WithName returns a copy of t renamed to name.
func (t Theme) WithName(name string) Theme {
	t.Name = name
	return t
}
