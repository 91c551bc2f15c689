package geometry_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Zen-Editor/zen/geometry"
	"github.com/Zen-Editor/zen/theme"
)

func TestLineCount(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"", 1},
		{"\n", 1},
		{"a", 1},
		{"a\n", 1},
		{"a\nb", 2},
		{"a\nb\n", 2},
		{"a\n\n", 2},
		{"a\r\nb\r\n", 2},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, geometry.LineCount(tt.text), "%q", tt.text)
	}
}

func newFontCalculator(t *testing.T) (geometry.Calculator, *geometry.FontMetrics) {
	t.Helper()
	metrics, err := geometry.NewFontMetrics()
	require.NoError(t, err)
	return geometry.New(metrics), metrics
}

func TestFontMetrics_LineHeightScalesWithSize(t *testing.T) {
	calc, _ := newFontCalculator(t)
	dark := theme.Dark()

	small := calc.LineHeight(dark)
	large := calc.LineHeight(dark.WithCodeFontSize(20))

	require.Greater(t, small, 0.0)
	require.Greater(t, large, small)
}

func TestFontMetrics_MonospaceAdvance(t *testing.T) {
	metrics, err := geometry.NewFontMetrics()
	require.NoError(t, err)

	one := metrics.Measure("a", 13)
	require.Greater(t, one, 0.0)
	require.InDelta(t, 10*one, metrics.Measure("abcdefghij", 13), 0.5)
	require.InDelta(t, one, metrics.Measure("W", 13), 0.1)
}

func TestFontMetrics_CachesFacesPerSize(t *testing.T) {
	calc, metrics := newFontCalculator(t)
	dark := theme.Dark()

	calc.LineHeight(dark)
	calc.MaxLineWidth("hello", dark)
	calc.LineHeight(dark)
	require.Equal(t, 1, metrics.Faces())

	calc.LineHeight(dark.WithCodeFontSize(18))
	require.Equal(t, 2, metrics.Faces())
}

func TestMaxLineWidth_Floor(t *testing.T) {
	calc, _ := newFontCalculator(t)
	dark := theme.Dark()

	require.Equal(t, geometry.DefaultMinWidth, calc.MaxLineWidth("fn", dark))
	require.Equal(t, geometry.DefaultMinWidth, calc.MaxLineWidth("", dark))
	require.GreaterOrEqual(t, calc.MaxLineWidth("x", dark), 800.0)
}

func TestMaxLineWidth_LongLine(t *testing.T) {
	calc, _ := newFontCalculator(t)
	dark := theme.Dark()

	long := strings.Repeat("a", 300)
	width := calc.MaxLineWidth("short\n"+long+"\nshort", dark)
	require.Greater(t, width, geometry.DefaultMinWidth)
	require.Greater(t, calc.MaxLineWidth(long, dark.WithCodeFontSize(20)), width)
}

func TestMaxLineWidth_ScansBoundedPrefix(t *testing.T) {
	calc := geometry.NewCells()
	dark := theme.Dark()

	text := strings.Repeat("x\n", geometry.DefaultMaxScanLines) + strings.Repeat("y", 500)
	require.Equal(t, geometry.DefaultMinCells, calc.MaxLineWidth(text, dark), "line past the scan limit is ignored")

	calc.MaxScanLines = geometry.DefaultMaxScanLines + 1
	require.Equal(t, 500.0, calc.MaxLineWidth(text, dark))
}

func TestCellMetrics(t *testing.T) {
	calc := geometry.NewCells()
	dark := theme.Dark()

	require.Equal(t, 1.0, calc.LineHeight(dark))
	require.Equal(t, 100.0, calc.MaxLineWidth(strings.Repeat("é", 100), dark))
	require.Equal(t, 120.0, calc.MaxLineWidth(strings.Repeat("漢", 60)+"\r\n", dark))
	require.Equal(t, 85.0, calc.MaxLineWidth("\t"+strings.Repeat("a", 81), dark))
}

func TestContentHeight_EmptyDocumentIsOneLine(t *testing.T) {
	calc, _ := newFontCalculator(t)
	dark := theme.Dark()

	require.Equal(t, calc.LineHeight(dark), calc.ContentHeight("", dark))
	require.Equal(t, 3*calc.LineHeight(dark), calc.ContentHeight("a\nb\nc\n", dark))
}

func TestGutterWidth(t *testing.T) {
	calc := geometry.NewCells()
	dark := theme.Dark()

	require.Equal(t, 2.0, calc.GutterWidth(0, dark))
	require.Equal(t, 2.0, calc.GutterWidth(9, dark))
	require.Equal(t, 4.0, calc.GutterWidth(120, dark))
}
