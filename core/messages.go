package core

import "github.com/Zen-Editor/zen/internal/log"

var (
	EmptyMessage        = ""
	FileLoadedMessage   = "file loaded"
	FileReloadedMessage = "file reloaded"
	FileSavedMessage    = "file saved"
	NewFileMessage      = "new file"
	ThemeChangedMessage = "theme changed"
	CopiedMessage       = "copied to clipboard"
	DefaultThemeMessage = "default theme saved"
)

func (s *Session) DispatchMessage(args ...string) {
	if len(args) == 0 {
		return
	}
	id := args[0]
	value := id
	if len(args) > 1 {
		value = args[1]
	}
	select {
	case s.updateSignal <- MessageSignal{id, value}:
	default:
		log.Warn(log.CatUI, "signal channel full, dropping message", "message", value)
	}
}
