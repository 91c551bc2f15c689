package geometry

import (
	"strconv"
	"strings"

	"github.com/Zen-Editor/zen/theme"
)

const (
	// DefaultMaxScanLines bounds how many lines MaxLineWidth measures.
	DefaultMaxScanLines = 1000
	// DefaultMinWidth is the narrowest editing surface, in font units.
	DefaultMinWidth = 800.0
	// DefaultMinCells is the narrowest editing surface on a terminal grid.
	DefaultMinCells = 80.0

	tabWidth = 4
)

// Calculator derives layout geometry from text and a theme.
type Calculator struct {
	Metrics      Metrics
	MaxScanLines int
	MinWidth     float64
}

// New returns a Calculator over m with the default scan limit and floor.
func New(m Metrics) Calculator {
	return Calculator{
		Metrics:      m,
		MaxScanLines: DefaultMaxScanLines,
		MinWidth:     DefaultMinWidth,
	}
}

// NewCells returns a Calculator for a terminal grid.
func NewCells() Calculator {
	return Calculator{
		Metrics:      CellMetrics{},
		MaxScanLines: DefaultMaxScanLines,
		MinWidth:     DefaultMinCells,
	}
}

// LineHeight is the height of one line of code set in t.
func (c Calculator) LineHeight(t theme.Theme) float64 {
	return c.Metrics.LineHeight(t.Typography.CodeFontSize)
}

// MaxLineWidth measures the first MaxScanLines lines of text in t's code font
// and returns the widest, but never less than MinWidth.
func (c Calculator) MaxLineWidth(text string, t theme.Theme) float64 {
	size := t.Typography.CodeFontSize
	widest := 0.0

	for i := 0; i < c.MaxScanLines && text != ""; i++ {
		line, rest, found := strings.Cut(text, "\n")
		line = strings.TrimSuffix(line, "\r")
		widest = max(widest, c.Metrics.Measure(expandTabs(line), size))
		if !found {
			break
		}
		text = rest
	}

	return max(widest, c.MinWidth)
}

// ContentHeight is the height of the whole document.
func (c Calculator) ContentHeight(text string, t theme.Theme) float64 {
	return float64(LineCount(text)) * c.LineHeight(t)
}

// GutterWidth is the width of a line number column wide enough for
// lineCount, with one digit of slack.
func (c Calculator) GutterWidth(lineCount int, t theme.Theme) float64 {
	digits := len(strconv.Itoa(max(1, lineCount)))
	return c.Metrics.Measure(strings.Repeat("9", digits+1), t.Typography.CodeFontSize)
}

// LineCount counts lines the way an editor shows them: a trailing newline
// does not start a new line, and an empty document has one line.
func LineCount(text string) int {
	n := strings.Count(text, "\n")
	if text != "" && !strings.HasSuffix(text, "\n") {
		n++
	}
	return max(1, n)
}

func expandTabs(line string) string {
	if !strings.Contains(line, "\t") {
		return line
	}
	return strings.ReplaceAll(line, "\t", strings.Repeat(" ", tabWidth))
}
