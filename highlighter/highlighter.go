// Package highlighter turns source text into styled runs. chroma lexers are
// the grammar layer; their token types are mapped onto grammar scopes, and
// scopes onto theme colours through a StyleTable.
package highlighter

import (
	"strings"
	"unicode/utf8"

	"github.com/alecthomas/chroma/v2"

	"github.com/Zen-Editor/zen/internal/log"
)

// StyledRun is a span of the source paired with its resolved style. Text is a
// substring of the highlighted input and holds at most one line ending, at
// its end.
type StyledRun struct {
	Text  string
	Style Style
}

// Highlight tokenizes text with the grammar for languageID and resolves every
// token through table. Joining the Text of the result reproduces text byte
// for byte, and the result is never empty.
func Highlight(text, languageID string, table *StyleTable) []StyledRun {
	if text == "" {
		return []StyledRun{{Style: table.Text()}}
	}

	b := runBuilder{text: text}
	lexer := Resolve(languageID)

	iterator, err := lexer.Tokenise(&chroma.TokeniseOptions{State: "root"}, text)
	if err != nil {
		log.ErrorErr(log.CatHighlight, "tokenise failed", err, "language", languageID)
	} else {
		for token := iterator(); token != chroma.EOF; token = iterator() {
			if token.Value == "" {
				continue
			}
			// Lexers may append a newline or otherwise rewrite the input;
			// only the part that matches the source is kept.
			n, whole := consumed(text[b.pos:], token.Value)
			b.add(b.pos+n, table.Lookup(scopeOf(token.Type)))
			if !whole {
				break
			}
		}
	}

	if b.pos < len(text) {
		b.add(len(text), table.Text())
	}

	return b.runs()
}

// Lines groups runs into lines. A run ending in "\n" closes its line.
func Lines(runs []StyledRun) [][]StyledRun {
	var (
		lines   [][]StyledRun
		current []StyledRun
	)
	for _, run := range runs {
		current = append(current, run)
		if strings.HasSuffix(run.Text, "\n") {
			lines = append(lines, current)
			current = nil
		}
	}
	if len(current) > 0 {
		lines = append(lines, current)
	}
	return lines
}

// Join concatenates the text of runs.
func Join(runs []StyledRun) string {
	var b strings.Builder
	for _, run := range runs {
		b.WriteString(run.Text)
	}
	return b.String()
}

type span struct {
	start, end int
	style      Style
}

// runBuilder accumulates spans of text, splitting them at line endings and
// merging neighbours on the same line that share a style.
type runBuilder struct {
	text  string
	pos   int
	spans []span
}

func (b *runBuilder) add(end int, style Style) {
	for b.pos < end {
		stop := end
		if i := strings.IndexByte(b.text[b.pos:end], '\n'); i >= 0 {
			stop = b.pos + i + 1
		}

		if n := len(b.spans); n > 0 {
			last := &b.spans[n-1]
			if last.style == style && b.text[last.end-1] != '\n' {
				last.end = stop
				b.pos = stop
				continue
			}
		}

		b.spans = append(b.spans, span{start: b.pos, end: stop, style: style})
		b.pos = stop
	}
}

func (b *runBuilder) runs() []StyledRun {
	runs := make([]StyledRun, len(b.spans))
	for i, s := range b.spans {
		runs[i] = StyledRun{Text: b.text[s.start:s.end], Style: s.style}
	}
	return runs
}

// consumed returns how many bytes of src the token value accounts for and
// whether all of value matched. Lexers see invalid UTF-8 as U+FFFD, so an
// invalid byte in src matches a U+FFFD in value.
func consumed(src, value string) (int, bool) {
	i, j := 0, 0
	for j < len(value) {
		if i >= len(src) {
			return i, false
		}
		sr, ss := utf8.DecodeRuneInString(src[i:])
		vr, vs := utf8.DecodeRuneInString(value[j:])
		if sr != vr {
			return i, false
		}
		i += ss
		j += vs
	}
	return i, true
}
