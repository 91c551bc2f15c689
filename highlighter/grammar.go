package highlighter

import (
	"sync"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"

	"github.com/Zen-Editor/zen/internal/log"
)

// PlainText is the id that always resolves to the plain text grammar.
const PlainText = "txt"

// grammarNames maps the language ids the editor knows to chroma lexer names.
var grammarNames = map[string]string{
	"rs":         "Rust",
	"rust":       "Rust",
	"py":         "Python",
	"python":     "Python",
	"js":         "JavaScript",
	"javascript": "JavaScript",
	"ts":         "TypeScript",
	"typescript": "TypeScript",
	"c":          "C",
	"h":          "C",
	"cpp":        "C++",
	"cc":         "C++",
	"cxx":        "C++",
	"hpp":        "C++",
	"hh":         "C++",
	"hxx":        "C++",
	"java":       "Java",
	"go":         "Go",
	"json":       "JSON",
	"toml":       "TOML",
	"yaml":       "YAML",
	"yml":        "YAML",
	"xml":        "XML",
	"html":       "HTML",
	"css":        "CSS",
	"md":         "Markdown",
	"markdown":   "Markdown",
	"sh":         "Bash",
	"bash":       "Bash",
	"zsh":        "Bash",
}

// KnownLanguages lists the ids with a fixed grammar mapping.
func KnownLanguages() []string {
	ids := make([]string, 0, len(grammarNames))
	for id := range grammarNames {
		ids = append(ids, id)
	}
	return ids
}

// lexerCache holds one coalesced lexer per grammar, keyed by grammar name, so
// it is bounded by the registry however many ids are looked up.
var lexerCache sync.Map // grammar name -> chroma.Lexer

// Resolve returns the grammar for a language id. The fixed table is tried
// first, then the id as a file extension, then as a grammar name; anything
// else gets the plain text grammar. It never returns nil.
func Resolve(languageID string) chroma.Lexer {
	raw := resolve(languageID)
	name := raw.Config().Name
	if l, ok := lexerCache.Load(name); ok {
		return l.(chroma.Lexer)
	}

	lexer, loaded := lexerCache.LoadOrStore(name, chroma.Coalesce(raw))
	if !loaded {
		log.Debug(log.CatHighlight, "resolved grammar", "language", languageID, "grammar", name)
	}
	return lexer.(chroma.Lexer)
}

func resolve(languageID string) chroma.Lexer {
	if name, ok := grammarNames[languageID]; ok {
		if l := lexers.Get(name); l != nil {
			return l
		}
	}

	if languageID != "" && languageID != PlainText {
		if l := lexers.Match("file." + languageID); l != nil {
			return l
		}
		if l := lexers.Get(languageID); l != nil {
			return l
		}
	}

	return lexers.Fallback
}

// grammarScopes names chroma token types with the grammar scope they stand
// for. Types not listed inherit from their sub-category, then category.
var grammarScopes = map[chroma.TokenType]string{
	chroma.Keyword:            "keyword",
	chroma.KeywordConstant:    "constant.language",
	chroma.KeywordDeclaration: "storage.type",
	chroma.KeywordNamespace:   "keyword.other.use",
	chroma.KeywordPseudo:      "keyword.other",
	chroma.KeywordReserved:    "keyword.control",
	chroma.KeywordType:        "support.type.primitive",

	chroma.NameAttribute:      "entity.other.attribute-name",
	chroma.NameBuiltin:        "support.function",
	chroma.NameBuiltinPseudo:  "variable.language",
	chroma.NameClass:          "entity.name.class",
	chroma.NameConstant:       "constant.other",
	chroma.NameDecorator:      "meta.attribute",
	chroma.NameEntity:         "constant.character.entity",
	chroma.NameException:      "support.type.exception",
	chroma.NameFunction:       "entity.name.function",
	chroma.NameFunctionMagic:  "support.function.macro",
	chroma.NameLabel:          "entity.name.label",
	chroma.NameNamespace:      "entity.name.namespace",
	chroma.NameOther:          "variable.other",
	chroma.NameProperty:       "variable.other.member",
	chroma.NameTag:            "entity.name.tag",
	chroma.NameVariable:       "variable.other",
	chroma.NameVariableGlobal: "variable.other.global",

	chroma.Literal:                "constant",
	chroma.LiteralDate:            "constant.other.date",
	chroma.LiteralString:          "string",
	chroma.LiteralStringAffix:     "storage.type.string",
	chroma.LiteralStringBacktick:  "string.quoted.other",
	chroma.LiteralStringChar:      "constant.character",
	chroma.LiteralStringDelimiter: "punctuation.definition.string",
	chroma.LiteralStringDoc:       "string.quoted.docstring",
	chroma.LiteralStringDouble:    "string.quoted.double",
	chroma.LiteralStringEscape:    "constant.character.escape",
	chroma.LiteralStringInterpol:  "string.interpolated",
	chroma.LiteralStringRegex:     "string.regexp",
	chroma.LiteralStringSingle:    "string.quoted.single",
	chroma.LiteralStringSymbol:    "constant.other.symbol",
	chroma.LiteralNumber:          "constant.numeric",

	chroma.Operator:     "keyword.operator",
	chroma.OperatorWord: "keyword.operator.word",
	chroma.Punctuation:  "punctuation",

	chroma.Comment:            "comment",
	chroma.CommentPreproc:     "meta.preprocessor",
	chroma.CommentPreprocFile: "meta.preprocessor.include",

	chroma.GenericHeading:    "markup.heading",
	chroma.GenericSubheading: "markup.heading",
	chroma.GenericEmph:       "markup.italic",
	chroma.GenericStrong:     "markup.bold",

	chroma.Error: "invalid.illegal",
}

// GrammarScope returns the grammar scope name of a chroma token type, or ""
// when it has none.
func GrammarScope(tt chroma.TokenType) string {
	for {
		if name, ok := grammarScopes[tt]; ok {
			return name
		}
		switch {
		case tt != tt.SubCategory():
			tt = tt.SubCategory()
		case tt != tt.Category():
			tt = tt.Category()
		default:
			return ""
		}
	}
}

var tokenScopes = func() map[chroma.TokenType]Scope {
	m := make(map[chroma.TokenType]Scope, len(chroma.StandardTypes))
	for tt := range chroma.StandardTypes {
		m[tt] = ParseScope(GrammarScope(tt))
	}
	return m
}()

func scopeOf(tt chroma.TokenType) Scope {
	if s, ok := tokenScopes[tt]; ok {
		return s
	}
	return ParseScope(GrammarScope(tt))
}
