package core

import (
	"fmt"
	"os"

	"github.com/spf13/afero"

	"github.com/Zen-Editor/zen/geometry"
	"github.com/Zen-Editor/zen/highlighter"
	"github.com/Zen-Editor/zen/internal/log"
	"github.com/Zen-Editor/zen/theme"
)

const signalBufferSize = 16

// Stats reports cache activity for a session.
type Stats struct {
	Version      uint64
	StyledRuns   int
	LineHeight   int
	MaxLineWidth int
}

type Option func(*Session)

// WithCalculator sets the geometry used for line height and width.
func WithCalculator(c geometry.Calculator) Option {
	return func(s *Session) {
		s.geometry = c
	}
}

// WithFs sets the filesystem files are loaded from.
func WithFs(fs afero.Fs) Option {
	return func(s *Session) {
		s.fs = fs
	}
}

// WithLanguage sets the initial language id.
func WithLanguage(language string) Option {
	return func(s *Session) {
		s.doc.language = language
	}
}

// Session is one editing session: a document, the theme it is shown in, and
// the cached artifacts derived from both. It is not safe for concurrent use;
// the render loop owns it.
type Session struct {
	doc      *Document
	path     string
	theme    theme.Theme
	styles   *highlighter.StyleTable
	geometry geometry.Calculator
	fs       afero.Fs

	runs       Entry[[]highlighter.StyledRun]
	lineHeight Entry[float64]
	maxWidth   Entry[float64]

	updateSignal chan Signal
}

// New creates an empty session shown in t.
func New(t theme.Theme, opts ...Option) *Session {
	s := &Session{
		doc:          NewDocument("", DefaultLanguage),
		theme:        t,
		styles:       highlighter.Build(t),
		fs:           afero.NewOsFs(),
		updateSignal: make(chan Signal, signalBufferSize),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.geometry.Metrics == nil {
		s.geometry = defaultCalculator()
	}
	return s
}

func defaultCalculator() geometry.Calculator {
	metrics, err := geometry.NewFontMetrics()
	if err != nil {
		log.ErrorErr(log.CatGeometry, "font metrics unavailable, measuring in cells", err)
		return geometry.NewCells()
	}
	return geometry.New(metrics)
}

// --- Mutations ---

// SetText replaces the document text.
func (s *Session) SetText(text string) {
	s.doc.SetText(text)
}

// Insert adds text before the rune at offset.
func (s *Session) Insert(offset int, text string) error {
	return s.doc.Insert(offset, text)
}

// Delete removes count runes at offset.
func (s *Session) Delete(offset, count int) error {
	return s.doc.Delete(offset, count)
}

// SetLanguage switches the grammar. Setting the current language is a no-op.
func (s *Session) SetLanguage(language string) {
	if s.doc.SetLanguage(language) {
		log.Debug(log.CatHighlight, "language changed", "language", language, "version", s.doc.Version())
	}
}

// SetTheme switches the theme. Every cached artifact depends on it, so all
// of them are dropped.
func (s *Session) SetTheme(t theme.Theme) {
	s.theme = t
	s.styles = highlighter.Build(t)

	s.runs.Invalidate()
	s.lineHeight.Invalidate()
	s.maxWidth.Invalidate()

	log.Debug(log.CatCache, "theme changed, caches dropped", "theme", t.Name, "code_font_size", t.Typography.CodeFontSize)
	s.DispatchSignal(ThemeSignal{name: t.Name})
}

// Clear starts a new, unnamed document in the current language.
func (s *Session) Clear() {
	s.doc.Clear()
	s.path = ""
	s.DispatchMessage(NewFileMessage)
}

// LoadFile replaces the document with the contents of path and picks its
// language from the path. On failure nothing changes.
func (s *Session) LoadFile(path string) error {
	if path == "" {
		s.DispatchError(ErrEmptyPathId, ErrEmptyPath)
		return ErrEmptyPath
	}

	data, err := afero.ReadFile(s.fs, path)
	if err != nil {
		err = fmt.Errorf("%w %s: %w", ErrReadFile, path, err)
		log.ErrorErr(log.CatUI, "loading file", err, "path", path)
		s.DispatchError(ErrReadFileId, err)
		return err
	}

	language := LanguageForPath(path)
	changed := s.doc.Replace(string(data), language)
	s.path = path

	log.Info(log.CatUI, "file loaded", "path", path, "language", language, "bytes", len(data), "changed", changed, "version", s.doc.Version())
	s.DispatchSignal(LoadSignal{path: path, language: language})
	return nil
}

// Reload reads the current file again.
func (s *Session) Reload() error {
	if s.path == "" {
		return ErrNoFile
	}
	return s.LoadFile(s.path)
}

// Save writes the document to its file. A document that was never loaded or
// saved has no file and fails with ErrNoFile.
func (s *Session) Save() error {
	if s.path == "" {
		s.DispatchError(ErrNoFileId, ErrNoFile)
		return ErrNoFile
	}
	return s.SaveAs(s.path)
}

// SaveAs writes the document to path and makes path the current file. The
// document itself is unchanged, so no cache is touched.
func (s *Session) SaveAs(path string) error {
	if path == "" {
		s.DispatchError(ErrEmptyPathId, ErrEmptyPath)
		return ErrEmptyPath
	}

	perm := os.FileMode(0o644)
	if info, err := s.fs.Stat(path); err == nil {
		perm = info.Mode().Perm()
	}

	if err := afero.WriteFile(s.fs, path, []byte(s.doc.Text()), perm); err != nil {
		err = fmt.Errorf("%w %s: %w", ErrWriteFile, path, err)
		log.ErrorErr(log.CatUI, "saving file", err, "path", path)
		s.DispatchError(ErrWriteFileId, err)
		return err
	}
	s.path = path

	log.Info(log.CatUI, "file saved", "path", path, "bytes", len(s.doc.Text()), "version", s.doc.Version())
	s.DispatchMessage(FileSavedMessage, fmt.Sprintf("%s: %s", FileSavedMessage, path))
	return nil
}

// --- Reads ---

// GetStyledRuns returns the highlighted document. The slice is shared with
// the cache and must not be modified.
func (s *Session) GetStyledRuns() []highlighter.StyledRun {
	version := s.doc.Version()
	return s.runs.GetOrCompute(version, func() []highlighter.StyledRun {
		runs := highlighter.Highlight(s.doc.Text(), s.doc.Language(), s.styles)
		log.Debug(log.CatCache, "recomputed styled runs", "version", version, "runs", len(runs))
		return runs
	})
}

// GetLineHeight returns the height of one line in the current theme.
func (s *Session) GetLineHeight() float64 {
	version := s.doc.Version()
	return s.lineHeight.GetOrCompute(version, func() float64 {
		h := s.geometry.LineHeight(s.theme)
		log.Debug(log.CatCache, "recomputed line height", "version", version, "height", h)
		return h
	})
}

// GetMaxLineWidth returns the width of the editing surface.
func (s *Session) GetMaxLineWidth() float64 {
	version := s.doc.Version()
	return s.maxWidth.GetOrCompute(version, func() float64 {
		w := s.geometry.MaxLineWidth(s.doc.Text(), s.theme)
		log.Debug(log.CatCache, "recomputed max line width", "version", version, "width", w)
		return w
	})
}

// GetContentHeight returns the height of the whole document.
func (s *Session) GetContentHeight() float64 {
	return float64(geometry.LineCount(s.doc.Text())) * s.GetLineHeight()
}

// GutterWidth returns the width of the line number column.
func (s *Session) GutterWidth() float64 {
	return s.geometry.GutterWidth(geometry.LineCount(s.doc.Text()), s.theme)
}

func (s *Session) Text() string {
	return s.doc.Text()
}

func (s *Session) Language() string {
	return s.doc.Language()
}

func (s *Session) Version() uint64 {
	return s.doc.Version()
}

func (s *Session) Path() string {
	return s.path
}

func (s *Session) Theme() theme.Theme {
	return s.theme
}

func (s *Session) StyleTable() *highlighter.StyleTable {
	return s.styles
}

// States reports each cache entry's state: styled runs, line height, width.
func (s *Session) States() (runs, lineHeight, maxWidth EntryState) {
	v := s.doc.Version()
	return s.runs.State(v), s.lineHeight.State(v), s.maxWidth.State(v)
}

func (s *Session) Stats() Stats {
	return Stats{
		Version:      s.doc.Version(),
		StyledRuns:   s.runs.Computations(),
		LineHeight:   s.lineHeight.Computations(),
		MaxLineWidth: s.maxWidth.Computations(),
	}
}
