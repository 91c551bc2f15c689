package adapter_bubbletea

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	editor "github.com/Zen-Editor/zen/core"
	"github.com/Zen-Editor/zen/highlighter"
	"github.com/Zen-Editor/zen/internal/log"
	"github.com/Zen-Editor/zen/theme"
)

const messageDuration = 3 * time.Second

type Model struct {
	editor          editor.Editor
	clipboard       editor.Clipboard
	viewport        viewport.Model
	keys            KeyMap
	themes          []theme.Theme
	theme           Theme
	fontSize        float64 // code font size chosen with +/-, zero when untouched
	width           int
	height          int
	showLineNumbers bool
	showStatusLine  bool
	StatusLineFunc  func() string
	err             error
	message         string
	placeholder     string
	clearMsgCancel  context.CancelFunc
	content         editor.Entry[string]
	runStyles       map[highlighter.Style]lipgloss.Style
}

type ErrorMsg struct {
	ID    editor.ErrorId
	Error error
}

// SaveDefaultThemeMsg asks the host to persist Name as the startup theme.
type SaveDefaultThemeMsg struct {
	Name string
}

// FileChangedMsg tells the editor the open file changed on disk.
type FileChangedMsg struct{}

// ThemesChangedMsg carries a freshly loaded theme list.
type ThemesChangedMsg struct {
	Themes []theme.Theme
}

type messageMsg string

type loadedMsg struct {
	path     string
	language string
}

type themeChangedMsg struct {
	name string
}

type idleMsg struct{}

type clearMsg struct{}

func (m *Model) dispatchClearMsg(duration time.Duration) tea.Cmd {
	if m.clearMsgCancel != nil {
		m.clearMsgCancel()
	}

	ctx, cancel := context.WithTimeout(context.Background(), duration)
	m.clearMsgCancel = cancel

	return func() tea.Msg {
		defer cancel()
		<-ctx.Done()
		if ctx.Err() == context.DeadlineExceeded {
			return clearMsg{}
		}
		return nil
	}
}

// New wraps an editing session in a terminal view of the given size.
func New(ed editor.Editor, width, height int) Model {
	vp := viewport.New(width, height-2)

	m := Model{
		editor:          ed,
		clipboard:       &clipboardImpl{},
		viewport:        vp,
		keys:            DefaultKeyMap(),
		themes:          theme.Builtins(),
		theme:           NewTheme(ed.Theme()),
		showLineNumbers: true,
		showStatusLine:  true,
		runStyles:       make(map[highlighter.Style]lipgloss.Style),
	}
	m.viewport.Style = m.theme.EditorStyle

	m.SetSize(width, height)
	m.refreshContent()

	return m
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width
	m.viewport.Height = max(1, height-2)
}

// WithThemes sets the themes the editor cycles through.
func (m *Model) WithThemes(themes []theme.Theme) {
	if len(themes) == 0 {
		themes = theme.Builtins()
	}
	m.themes = themes
}

// WithClipboard replaces the system clipboard.
func (m *Model) WithClipboard(c editor.Clipboard) {
	m.clipboard = c
}

// WithKeyMap replaces the default bindings.
func (m *Model) WithKeyMap(keys KeyMap) {
	m.keys = keys
}

// HideLineNumbers controls whether to show line numbers in the viewport.
func (m *Model) HideLineNumbers(hide bool) {
	if m.showLineNumbers == !hide {
		return
	}
	m.showLineNumbers = !hide
	m.content.Invalidate()
	m.refreshContent()
}

// HideStatusLine controls whether to show the status line at the bottom of the viewport.
func (m *Model) HideStatusLine(hide bool) {
	m.showStatusLine = !hide
}

// SetPlaceholder sets the text shown while the document is empty.
func (m *Model) SetPlaceholder(placeholder string) {
	m.placeholder = placeholder
}

// GetEditor returns the underlying editor instance
func (m *Model) GetEditor() editor.Editor {
	return m.editor
}

// Themes returns the themes the editor cycles through.
func (m *Model) Themes() []theme.Theme {
	return m.themes
}

// SetThemes replaces the theme list. When the current theme is in the new
// list its new definition is applied.
func (m *Model) SetThemes(themes []theme.Theme) {
	m.WithThemes(themes)

	current := m.editor.Theme()
	idx := theme.Index(m.themes, current.Name)
	if idx < 0 {
		return
	}
	if next := m.withFontSize(m.themes[idx]); next != current {
		m.setTheme(next)
	}
}

// DispatchMessage allows setting a message to be displayed in the command line for a specified duration.
func (m *Model) DispatchMessage(message string, duration time.Duration) tea.Cmd {
	m.message = message
	m.err = nil

	return m.dispatchClearMsg(duration)
}

// DispatchError allows setting an error to be displayed in the command line for a specified duration.
func (m *Model) DispatchError(err error, duration time.Duration) tea.Cmd {
	m.err = err
	m.message = ""

	return m.dispatchClearMsg(duration)
}

func (m Model) Init() tea.Cmd {
	return m.listenForEditorUpdate()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)

	case tea.KeyMsg:
		if cmd, handled := m.handleKey(msg); handled {
			m.refreshContent()
			return m, cmd
		}

	case FileChangedMsg:
		// Read failures arrive as an ErrorSignal.
		if err := m.editor.Reload(); err != nil {
			log.ErrorErr(log.CatUI, "reloading changed file", err)
		}

	case ThemesChangedMsg:
		m.SetThemes(msg.Themes)

	case messageMsg:
		cmds = append(cmds, m.DispatchMessage(string(msg), messageDuration), m.listenForEditorUpdate())

	case ErrorMsg:
		cmds = append(cmds, m.DispatchError(msg.Error, messageDuration), m.listenForEditorUpdate())

	case loadedMsg:
		message := fmt.Sprintf("%s: %s (%s)", editor.FileLoadedMessage, filepath.Base(msg.path), msg.language)
		cmds = append(cmds, m.DispatchMessage(message, messageDuration), m.listenForEditorUpdate())

	case themeChangedMsg:
		message := fmt.Sprintf("%s: %s", editor.ThemeChangedMessage, msg.name)
		cmds = append(cmds, m.DispatchMessage(message, messageDuration), m.listenForEditorUpdate())

	case idleMsg:
		cmds = append(cmds, m.listenForEditorUpdate())

	case clearMsg:
		m.message = ""
		m.err = nil
		m.clearMsgCancel = nil
	}

	var viewportCmd tea.Cmd
	m.viewport, viewportCmd = m.viewport.Update(msg)
	cmds = append(cmds, viewportCmd)

	m.refreshContent()

	return m, tea.Batch(cmds...)
}

// handleKey runs the editor's own bindings. It reports false for keys the
// viewport should handle.
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit, true

	case key.Matches(msg, m.keys.Save):
		// Failures arrive as an ErrorSignal.
		if err := m.editor.Save(); err != nil {
			log.ErrorErr(log.CatUI, "saving file", err, "path", m.editor.Path())
		}
		return nil, true

	case key.Matches(msg, m.keys.NextTheme):
		m.nextTheme()
		return nil, true

	case key.Matches(msg, m.keys.FontUp):
		m.changeFontSize(1)
		return nil, true

	case key.Matches(msg, m.keys.FontDown):
		m.changeFontSize(-1)
		return nil, true

	case key.Matches(msg, m.keys.SaveTheme):
		name := m.editor.Theme().Name
		return func() tea.Msg {
			return SaveDefaultThemeMsg{Name: name}
		}, true

	case key.Matches(msg, m.keys.Copy):
		m.copyDocument()
		return nil, true

	case key.Matches(msg, m.keys.Reload):
		if err := m.editor.Reload(); errors.Is(err, editor.ErrNoFile) {
			m.editor.DispatchError(editor.ErrNoFileId, err)
		}
		return nil, true

	case key.Matches(msg, m.keys.ToggleLineNums):
		m.HideLineNumbers(m.showLineNumbers)
		return nil, true
	}

	return nil, false
}

func (m *Model) nextTheme() {
	if len(m.themes) == 0 {
		return
	}
	idx := theme.Index(m.themes, m.editor.Theme().Name)
	next := m.themes[(idx+1)%len(m.themes)]
	m.setTheme(m.withFontSize(next))
}

func (m *Model) changeFontSize(delta float64) {
	current := m.editor.Theme()
	next := current.WithCodeFontSize(current.Typography.CodeFontSize + delta)
	if next.Typography.CodeFontSize == current.Typography.CodeFontSize {
		return
	}
	m.fontSize = next.Typography.CodeFontSize
	m.setTheme(next)
}

func (m *Model) withFontSize(t theme.Theme) theme.Theme {
	if m.fontSize == 0 {
		return t
	}
	return t.WithCodeFontSize(m.fontSize)
}

// setTheme hands the theme to the editor and rebuilds everything styled by it.
func (m *Model) setTheme(t theme.Theme) {
	m.editor.SetTheme(t)
	m.theme = NewTheme(t)
	m.viewport.Style = m.theme.EditorStyle
	clear(m.runStyles)
	m.content.Invalidate()
}

func (m *Model) copyDocument() {
	if err := m.clipboard.Write(m.editor.Text()); err != nil {
		m.editor.DispatchError(editor.ErrCopyFailedId, fmt.Errorf("copy: %w", err))
		return
	}
	m.editor.DispatchMessage(editor.CopiedMessage)
}

func (m Model) View() string {
	content := m.viewport.View()
	if m.placeholder != "" && m.editor.Text() == "" {
		content = m.theme.EditorStyle.
			Width(m.viewport.Width).
			Height(m.viewport.Height).
			Render(m.theme.PlaceholderStyle.Render(m.placeholder))
	}

	var commandLine string

	if m.message != "" {
		commandLine = m.theme.MessageStyle.
			Background(m.theme.CommandLineStyle.GetBackground()).
			Render(m.message)
	}

	if m.err != nil {
		commandLine = m.theme.ErrorStyle.
			Background(m.theme.CommandLineStyle.GetBackground()).
			Render(m.err.Error())
	}

	statusLine := m.getStatusLine()

	paddingWidth := m.width - lipgloss.Width(statusLine)
	if paddingWidth > 0 && m.showStatusLine {
		statusLine += m.theme.StatusLineStyle.Render(strings.Repeat(" ", paddingWidth))
	}

	paddingWidth = m.width - lipgloss.Width(commandLine)
	if paddingWidth > 0 {
		commandLine += m.theme.CommandLineStyle.Render(strings.Repeat(" ", paddingWidth))
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		content,
		statusLine,
		commandLine,
	)
}

func (m *Model) getStatusLine() string {
	if !m.showStatusLine {
		return ""
	}

	if m.StatusLineFunc != nil {
		return m.StatusLineFunc()
	}

	t := m.editor.Theme()
	name := "[new]"
	if path := m.editor.Path(); path != "" {
		name = filepath.Base(path)
	}

	statusLine := m.theme.StatusLabelStyle.Render(" " + t.Name + " ")
	statusLine += m.theme.StatusLineStyle.Render(fmt.Sprintf(" %s · %s · %.0fpt", name, m.editor.Language(), t.Typography.CodeFontSize))

	stats := m.editor.Stats()
	info := fmt.Sprintf("v%d · lh %.1f · w %.0f · runs %d/%d/%d ",
		stats.Version,
		m.editor.GetLineHeight(),
		m.editor.GetMaxLineWidth(),
		stats.StyledRuns,
		stats.LineHeight,
		stats.MaxLineWidth,
	)

	width := m.width - (lipgloss.Width(info) + lipgloss.Width(statusLine))
	gap := strings.Repeat(" ", max(0, width))

	statusLine += m.theme.StatusLineStyle.Render(
		gap + info,
	)

	return statusLine
}

// listenForEditorUpdate waits for one editor signal. Every message it
// produces re-arms it in Update, so exactly one listener is pending.
func (m *Model) listenForEditorUpdate() tea.Cmd {
	updates := m.editor.GetUpdateSignalChan()

	return func() tea.Msg {
		signal := <-updates

		switch signal := signal.(type) {
		case editor.MessageSignal:
			_, message := signal.Value()
			return messageMsg(message)

		case editor.ErrorSignal:
			id, err := signal.Value()
			return ErrorMsg{ID: id, Error: err}

		case editor.LoadSignal:
			path, language := signal.Value()
			return loadedMsg{path: path, language: language}

		case editor.ThemeSignal:
			return themeChangedMsg{name: signal.Value()}
		}

		return idleMsg{}
	}
}
