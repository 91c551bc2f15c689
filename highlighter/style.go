package highlighter

import (
	"github.com/alecthomas/chroma/v2"

	"github.com/Zen-Editor/zen/theme"
)

// Style is the resolved look of a run. It is comparable and can key a cache.
type Style struct {
	Color    theme.RGB
	Bold     bool
	FontSize float64
}

// StyleTable resolves scopes to styles for one theme. It is read-only once built.
type StyleTable struct {
	name       string
	background theme.RGB
	styles     [scopeCount]Style
}

// Build derives the style table for t.
func Build(t theme.Theme) *StyleTable {
	table := &StyleTable{
		name:       t.Name,
		background: t.Colors.EditorBg,
	}
	for s := ScopeText; s < scopeCount; s++ {
		table.styles[s] = Style{
			Color:    roleColor(t.Syntax, s.Role()),
			Bold:     s.Bold(),
			FontSize: t.Typography.CodeFontSize,
		}
	}
	return table
}

func roleColor(syntax theme.Syntax, role Role) theme.RGB {
	switch role {
	case RoleKeyword:
		return syntax.Keyword
	case RoleString:
		return syntax.String
	case RoleLiteral:
		return syntax.Literal
	case RoleFunction:
		return syntax.FormatSpecifier
	case RoleType:
		return syntax.Types
	case RoleVariable:
		return syntax.Variables
	case RolePunctuation:
		return syntax.Punctuation
	case RolePreprocessor:
		return syntax.Preprocessor
	default:
		return syntax.Text
	}
}

// Name is the name of the theme the table was built from.
func (t *StyleTable) Name() string {
	return t.name
}

// Background is the editor background colour.
func (t *StyleTable) Background() theme.RGB {
	return t.background
}

// Lookup returns the style of s. Out of range scopes get the text style.
func (t *StyleTable) Lookup(s Scope) Style {
	if s >= scopeCount {
		s = ScopeText
	}
	return t.styles[s]
}

// LookupName parses a grammar scope name and returns its style.
func (t *StyleTable) LookupName(scope string) Style {
	return t.Lookup(ParseScope(scope))
}

// Text returns the fallback style.
func (t *StyleTable) Text() Style {
	return t.styles[ScopeText]
}

// ChromaStyle converts the table into a chroma style so chroma formatters can
// render with the editor theme.
func (t *StyleTable) ChromaStyle() (*chroma.Style, error) {
	builder := chroma.NewStyleBuilder(t.name)
	builder.AddEntry(chroma.Background, chroma.StyleEntry{
		Colour:     colour(t.Text().Color),
		Background: colour(t.background),
	})

	for tt := range chroma.StandardTypes {
		if tt < 0 {
			continue
		}
		style := t.Lookup(scopeOf(tt))
		entry := chroma.StyleEntry{Colour: colour(style.Color)}
		if style.Bold {
			entry.Bold = chroma.Yes
		}
		builder.AddEntry(tt, entry)
	}

	return builder.Build()
}

func colour(c theme.RGB) chroma.Colour {
	return chroma.NewColour(c[0], c[1], c[2])
}
