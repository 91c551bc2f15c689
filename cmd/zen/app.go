package main

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	editor "github.com/Zen-Editor/zen/adapter-bubbletea"
	"github.com/Zen-Editor/zen/core"
	"github.com/Zen-Editor/zen/internal/config"
	"github.com/Zen-Editor/zen/internal/log"
	"github.com/Zen-Editor/zen/internal/watcher"
	"github.com/Zen-Editor/zen/theme"
)

type fileEventMsg struct{}

type themesEventMsg struct{}

// app hosts the editor and connects it to the disk: config persistence and
// the file and theme watchers.
type app struct {
	editor     editor.Model
	session    *core.Session
	configPath string
	themesDir  string

	watchers     []*watcher.Watcher
	fileChanges  <-chan struct{}
	themeChanges <-chan struct{}
}

func newApp(ed editor.Model, session *core.Session, configPath, themesDir string) *app {
	return &app{
		editor:     ed,
		session:    session,
		configPath: configPath,
		themesDir:  themesDir,
	}
}

// watch starts the file watcher for path (when set) and the themes watcher
// (when the directory exists). Failures only disable reloading.
func (a *app) watch(path string, debounce time.Duration) {
	if path != "" {
		a.fileChanges = a.startWatcher(watcher.ForFile(path, debounce))
	}
	if info, err := os.Stat(a.themesDir); err == nil && info.IsDir() {
		a.themeChanges = a.startWatcher(watcher.ForThemes(a.themesDir, debounce))
	}
}

func (a *app) startWatcher(cfg watcher.Config) <-chan struct{} {
	w, err := watcher.New(cfg)
	if err != nil {
		log.ErrorErr(log.CatWatcher, "creating watcher", err, "dir", cfg.Dir)
		a.session.DispatchError(core.ErrWatchId, err)
		return nil
	}

	changes, err := w.Start()
	if err != nil {
		_ = w.Stop()
		log.ErrorErr(log.CatWatcher, "starting watcher", err, "dir", cfg.Dir)
		a.session.DispatchError(core.ErrWatchId, err)
		return nil
	}

	a.watchers = append(a.watchers, w)
	return changes
}

// Close stops the watchers.
func (a *app) Close() {
	for _, w := range a.watchers {
		if err := w.Stop(); err != nil {
			log.ErrorErr(log.CatWatcher, "stopping watcher", err)
		}
	}
	a.watchers = nil
}

func waitFor(changes <-chan struct{}, msg tea.Msg) tea.Cmd {
	if changes == nil {
		return nil
	}
	return func() tea.Msg {
		if _, ok := <-changes; !ok {
			return nil
		}
		return msg
	}
}

func (a *app) Init() tea.Cmd {
	return tea.Batch(
		a.editor.Init(),
		waitFor(a.fileChanges, fileEventMsg{}),
		waitFor(a.themeChanges, themesEventMsg{}),
	)
}

func (a *app) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch m := msg.(type) {
	case editor.SaveDefaultThemeMsg:
		a.saveDefaultTheme(m.Name)
		return a, nil

	case fileEventMsg:
		log.Debug(log.CatWatcher, "open file changed", "path", a.session.Path())
		msg = editor.FileChangedMsg{}
		cmds = append(cmds, waitFor(a.fileChanges, fileEventMsg{}))

	case themesEventMsg:
		themes := theme.Load(a.themesDir)
		log.Debug(log.CatWatcher, "themes changed", "count", len(themes))
		msg = editor.ThemesChangedMsg{Themes: themes}
		cmds = append(cmds, waitFor(a.themeChanges, themesEventMsg{}))
	}

	editorModel, cmd := a.editor.Update(msg)
	a.editor = editorModel.(editor.Model)
	cmds = append(cmds, cmd)

	return a, tea.Batch(cmds...)
}

func (a *app) saveDefaultTheme(name string) {
	if err := config.SaveDefaultTheme(a.configPath, name); err != nil {
		a.session.DispatchError(core.ErrSaveConfigId, err)
		return
	}
	a.session.DispatchMessage(core.DefaultThemeMessage, fmt.Sprintf("%s: %s", core.DefaultThemeMessage, name))
}

func (a *app) View() string {
	return a.editor.View()
}
