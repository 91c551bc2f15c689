package adapter_bubbletea

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	editor "github.com/Zen-Editor/zen/core"
	"github.com/Zen-Editor/zen/geometry"
	"github.com/Zen-Editor/zen/theme"
)

type fakeClipboard struct {
	text string
	err  error
}

func (c *fakeClipboard) Write(text string) error {
	if c.err != nil {
		return c.err
	}
	c.text = text
	return nil
}

func (c *fakeClipboard) Read() (string, error) {
	return c.text, c.err
}

func newTestModel(t *testing.T, text string) (Model, *editor.Session) {
	t.Helper()
	lipgloss.SetColorProfile(termenv.Ascii)

	session := editor.New(theme.Dark(),
		editor.WithCalculator(geometry.NewCells()),
		editor.WithFs(afero.NewMemMapFs()),
	)
	session.SetText(text)

	m := New(session, 80, 12)
	return m, session
}

func press(t *testing.T, m Model, keys string) (Model, tea.Cmd) {
	t.Helper()
	var msg tea.KeyMsg
	switch keys {
	case "ctrl+c":
		msg = tea.KeyMsg{Type: tea.KeyCtrlC}
	case "ctrl+s":
		msg = tea.KeyMsg{Type: tea.KeyCtrlS}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(keys)}
	}
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func drain(s *editor.Session) []editor.Signal {
	var signals []editor.Signal
	for {
		select {
		case sig := <-s.GetUpdateSignalChan():
			signals = append(signals, sig)
		default:
			return signals
		}
	}
}

func TestView_ShowsDocumentWithLineNumbers(t *testing.T) {
	m, _ := newTestModel(t, "fn main() {\n    let x = 1;\n}\n")

	view := m.View()
	require.Contains(t, view, "fn main() {")
	require.Contains(t, view, "let x = 1;")
	require.Contains(t, view, "   1 fn main()")
	require.Contains(t, view, "   3 }")
	require.Contains(t, view, theme.DarkName)
}

func TestToggleLineNumbers(t *testing.T) {
	m, _ := newTestModel(t, "fn main() {}")

	m, _ = press(t, m, "n")
	require.NotContains(t, m.View(), "   1 fn")
	require.Contains(t, m.View(), "fn main() {}")

	m, _ = press(t, m, "n")
	require.Contains(t, m.View(), "   1 fn")
}

func TestNextThemeCyclesAndInvalidates(t *testing.T) {
	m, session := newTestModel(t, "fn main() {}")
	session.GetMaxLineWidth()

	m, _ = press(t, m, "t")
	require.Equal(t, theme.LightName, session.Theme().Name)

	_, _, width := session.States()
	require.NotEqual(t, editor.EntryValid, width, "width is recomputed after a theme change")
	require.Contains(t, m.View(), theme.LightName)

	m, _ = press(t, m, "t")
	require.Equal(t, theme.DarkName, session.Theme().Name)
}

func TestFontSizeKeys(t *testing.T) {
	m, session := newTestModel(t, "x")
	base := session.Theme().Typography.CodeFontSize

	m, _ = press(t, m, "+")
	require.Equal(t, base+1, session.Theme().Typography.CodeFontSize)
	require.Equal(t, base+2, session.Theme().Typography.FontSize)

	m, _ = press(t, m, "t")
	require.Equal(t, base+1, session.Theme().Typography.CodeFontSize, "font size survives a theme switch")

	m, _ = press(t, m, "-")
	m, _ = press(t, m, "-")
	require.Equal(t, base-1, session.Theme().Typography.CodeFontSize)
}

func TestFontSizeClampIsNoOp(t *testing.T) {
	m, session := newTestModel(t, "x")
	for range 30 {
		m, _ = press(t, m, "-")
	}
	require.Equal(t, float64(theme.MinCodeFontSize), session.Theme().Typography.CodeFontSize)

	drain(session)
	_, _ = press(t, m, "-")
	require.Empty(t, drain(session), "no theme change at the lower bound")
}

func TestCopy(t *testing.T) {
	m, session := newTestModel(t, "fn main() {}")
	cb := &fakeClipboard{}
	m.WithClipboard(cb)

	_, _ = press(t, m, "y")
	require.Equal(t, "fn main() {}", cb.text)

	signals := drain(session)
	require.Len(t, signals, 1)
	msg, ok := signals[0].(editor.MessageSignal)
	require.True(t, ok)
	_, text := msg.Value()
	require.Equal(t, editor.CopiedMessage, text)
}

func TestCopyFailure(t *testing.T) {
	m, session := newTestModel(t, "x")
	m.WithClipboard(&fakeClipboard{err: errors.New("no display")})

	_, _ = press(t, m, "y")

	signals := drain(session)
	require.Len(t, signals, 1)
	sig, ok := signals[0].(editor.ErrorSignal)
	require.True(t, ok)
	id, err := sig.Value()
	require.Equal(t, editor.ErrCopyFailedId, id)
	require.ErrorContains(t, err, "no display")
}

func TestSaveThemeEmitsMessage(t *testing.T) {
	m, _ := newTestModel(t, "x")

	_, cmd := press(t, m, "s")
	require.NotNil(t, cmd)
	require.Equal(t, SaveDefaultThemeMsg{Name: theme.DarkName}, cmd())
}

func TestReloadWithoutFile(t *testing.T) {
	m, session := newTestModel(t, "x")

	_, _ = press(t, m, "r")

	signals := drain(session)
	require.Len(t, signals, 1)
	sig, ok := signals[0].(editor.ErrorSignal)
	require.True(t, ok)
	id, _ := sig.Value()
	require.Equal(t, editor.ErrNoFileId, id)
}

func TestSaveWritesFile(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/src/main.rs", []byte("fn main() {}\n"), 0o644))

	session := editor.New(theme.Dark(), editor.WithCalculator(geometry.NewCells()), editor.WithFs(fs))
	require.NoError(t, session.LoadFile("/src/main.rs"))
	session.SetText("fn main() { run(); }\n")
	drain(session)

	m := New(session, 80, 12)
	_, _ = press(t, m, "ctrl+s")

	data, err := afero.ReadFile(fs, "/src/main.rs")
	require.NoError(t, err)
	require.Equal(t, "fn main() { run(); }\n", string(data))

	signals := drain(session)
	require.Len(t, signals, 1)
	msg, ok := signals[0].(editor.MessageSignal)
	require.True(t, ok)
	id, _ := msg.Value()
	require.Equal(t, editor.FileSavedMessage, id)
}

func TestSaveWithoutFile(t *testing.T) {
	m, session := newTestModel(t, "x")

	_, _ = press(t, m, "ctrl+s")

	signals := drain(session)
	require.Len(t, signals, 1)
	sig, ok := signals[0].(editor.ErrorSignal)
	require.True(t, ok)
	id, err := sig.Value()
	require.Equal(t, editor.ErrNoFileId, id)
	require.ErrorIs(t, err, editor.ErrNoFile)
}

func TestQuit(t *testing.T) {
	m, _ := newTestModel(t, "x")

	_, cmd := press(t, m, "q")
	require.NotNil(t, cmd)
	require.IsType(t, tea.QuitMsg{}, cmd())
}

func TestContentIsRenderedOncePerVersion(t *testing.T) {
	m, session := newTestModel(t, "fn main() {}")
	require.Equal(t, 1, m.content.Computations())

	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 20})
	m = next.(Model)
	require.Equal(t, 1, m.content.Computations())
	require.Equal(t, 1, session.Stats().StyledRuns)

	session.SetText("fn other() {}")
	next, _ = m.Update(idleMsg{})
	m = next.(Model)
	require.Equal(t, 2, m.content.Computations())
	require.Contains(t, m.View(), "fn other() {}")
}

func TestSetThemesAppliesUpdatedDefinition(t *testing.T) {
	m, session := newTestModel(t, "x")

	updated := theme.Dark()
	updated.Syntax.Keyword = theme.RGB{1, 2, 3}
	next, _ := m.Update(ThemesChangedMsg{Themes: []theme.Theme{updated, theme.Light()}})
	m = next.(Model)

	require.Equal(t, theme.RGB{1, 2, 3}, session.Theme().Syntax.Keyword)
	require.Len(t, m.Themes(), 2)
}

func TestMessagesAndErrorsShowInCommandLine(t *testing.T) {
	m, _ := newTestModel(t, "x")

	next, _ := m.Update(messageMsg("hello there"))
	m = next.(Model)
	require.Contains(t, m.View(), "hello there")

	next, _ = m.Update(ErrorMsg{ID: editor.ErrReadFileId, Error: errors.New("boom")})
	m = next.(Model)
	require.Contains(t, m.View(), "boom")
	require.NotContains(t, m.View(), "hello there")

	next, _ = m.Update(clearMsg{})
	m = next.(Model)
	require.NotContains(t, m.View(), "boom")
}

func TestPlaceholder(t *testing.T) {
	m, _ := newTestModel(t, "")
	m.SetPlaceholder("open a file with zen FILE")
	require.Contains(t, m.View(), "open a file with zen FILE")
}

func TestExpandTabs(t *testing.T) {
	text, col := expandTabs("\tx", 0)
	require.Equal(t, "    x", text)
	require.Equal(t, 5, col)

	text, col = expandTabs("ab\tc", 0)
	require.Equal(t, "ab  c", text)
	require.Equal(t, 5, col)

	text, _ = expandTabs("\t", 3)
	require.Equal(t, " ", text)
}

func TestCalculateLineNumberWidth(t *testing.T) {
	m, _ := newTestModel(t, "x")
	require.Equal(t, 5, m.calculateLineNumberWidth(1))
	require.Equal(t, 5, m.calculateLineNumberWidth(9999))
	require.Equal(t, 6, m.calculateLineNumberWidth(10000))
	require.Equal(t, 10, m.calculateLineNumberWidth(1<<40))

	m.HideLineNumbers(true)
	require.Equal(t, 0, m.calculateLineNumberWidth(10))
	require.True(t, strings.HasPrefix(m.renderDocument(), "x"))
}
