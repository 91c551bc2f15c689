package adapter_bubbletea

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Zen-Editor/zen/highlighter"
	"github.com/Zen-Editor/zen/internal/log"
)

const tabWidth = 4

// calculateLineNumberWidth computes the width needed for line numbers
func (m *Model) calculateLineNumberWidth(totalLines int) int {
	if !m.showLineNumbers {
		return 0
	}

	maxWidth := len(strconv.Itoa(max(1, totalLines)))
	lineNumWidth := max(4, maxWidth) + 1
	return min(lineNumWidth, 10)
}

// refreshContent pushes the rendered document into the viewport when the
// cached rendering is out of date.
func (m *Model) refreshContent() {
	before := m.content.Computations()
	content := m.content.GetOrCompute(m.editor.Version(), m.renderDocument)
	if m.content.Computations() != before {
		m.viewport.SetContent(content)
	}
}

// renderDocument styles every line of the document with the editor's cached
// runs, behind an optional line number gutter.
func (m *Model) renderDocument() string {
	lines := highlighter.Lines(m.editor.GetStyledRuns())
	lineNumWidth := m.calculateLineNumberWidth(len(lines))

	var contentBuilder strings.Builder
	for i, line := range lines {
		if i > 0 {
			contentBuilder.WriteByte('\n')
		}

		if lineNumWidth > 0 {
			lineNumStr := strconv.Itoa(i + 1)
			contentBuilder.WriteString(m.theme.LineNumberStyle.Width(lineNumWidth-1).Render(lineNumStr) + " ")
		}

		col := 0
		for _, run := range line {
			text := strings.TrimRight(run.Text, "\r\n")
			if text == "" {
				continue
			}
			text, col = expandTabs(text, col)
			contentBuilder.WriteString(m.runStyle(run.Style).Render(text))
		}
	}

	log.Debug(log.CatUI, "rendered document", "lines", len(lines), "version", m.editor.Version())
	return contentBuilder.String()
}

// runStyle converts a resolved run style to a terminal style. Font size has
// no meaning on a terminal grid.
func (m *Model) runStyle(s highlighter.Style) lipgloss.Style {
	if style, ok := m.runStyles[s]; ok {
		return style
	}

	style := lipgloss.NewStyle().
		Foreground(color(s.Color)).
		Bold(s.Bold)

	m.runStyles[s] = style
	return style
}

// expandTabs replaces tabs with spaces up to the next tab stop. col is the
// column the text starts at; the column after it is returned.
func expandTabs(text string, col int) (string, int) {
	if !strings.Contains(text, "\t") {
		return text, col + len([]rune(text))
	}

	var b strings.Builder
	for _, r := range text {
		if r == '\t' {
			n := tabWidth - col%tabWidth
			b.WriteString(strings.Repeat(" ", n))
			col += n
			continue
		}
		b.WriteRune(r)
		col++
	}
	return b.String(), col
}
