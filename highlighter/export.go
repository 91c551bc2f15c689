package highlighter

import (
	"fmt"
	"io"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
)

// Export writes text highlighted for languageID through the named chroma
// formatter ("html", "svg", "terminal256", "terminal16m", ...), coloured
// with table. Unknown formatter names fall back to plain output.
func Export(w io.Writer, text, languageID string, table *StyleTable, format string) error {
	formatter := formatters.Get(format)
	if formatter == nil {
		formatter = formatters.Fallback
	}

	style, err := table.ChromaStyle()
	if err != nil {
		return fmt.Errorf("building chroma style: %w", err)
	}

	iterator, err := Resolve(languageID).Tokenise(&chroma.TokeniseOptions{State: "root"}, text)
	if err != nil {
		return fmt.Errorf("tokenising %s: %w", languageID, err)
	}

	if err := formatter.Format(w, style, iterator); err != nil {
		return fmt.Errorf("formatting %s: %w", format, err)
	}
	return nil
}
