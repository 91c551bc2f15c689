package core

import (
	"github.com/Zen-Editor/zen/highlighter"
	"github.com/Zen-Editor/zen/theme"
)

// Editor is what a front end needs from an editing session.
type Editor interface {
	// Mutations
	SetText(text string)
	Insert(offset int, text string) error
	Delete(offset, count int) error
	SetLanguage(language string)
	SetTheme(t theme.Theme)
	Clear()
	LoadFile(path string) error
	Reload() error
	Save() error
	SaveAs(path string) error

	// Derived artifacts, cached per document version
	GetStyledRuns() []highlighter.StyledRun
	GetLineHeight() float64
	GetMaxLineWidth() float64
	GetContentHeight() float64
	GutterWidth() float64

	// State
	Text() string
	Language() string
	Version() uint64
	Path() string
	Theme() theme.Theme
	Stats() Stats

	// Updates
	GetUpdateSignalChan() <-chan Signal
	DispatchMessage(args ...string)
	DispatchError(id ErrorId, err error)
}

// Clipboard is the system clipboard.
type Clipboard interface {
	Write(text string) error
	Read() (string, error)
}

var _ Editor = (*Session)(nil)

// GetUpdateSignalChan returns the read-only channel of session updates.
func (s *Session) GetUpdateSignalChan() <-chan Signal {
	return s.updateSignal
}
