// Package log is zen's debug log. It is silent until InitWithTeaLog (the
// --debug flag or ZEN_DEBUG) or InitWriter points it somewhere, so the cache
// and geometry hot paths can log freely.
package log

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Level represents log severity.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

var levelTags = [...]string{"DBG", "INF", "WRN", "ERR"}

func (l Level) String() string {
	if l < LevelDebug || l > LevelError {
		return "???"
	}
	return levelTags[l]
}

// Category names the subsystem a record comes from.
type Category string

const (
	CatConfig    Category = "config"
	CatTheme     Category = "theme"
	CatHighlight Category = "highlight"
	CatCache     Category = "cache"
	CatGeometry  Category = "geometry"
	CatWatcher   Category = "watcher"
	CatUI        Category = "ui"
)

// categoryWidth pads categories so messages line up.
const categoryWidth = 9

// Logger writes one line per record:
//
//	15:04:05.000 DBG cache     recomputed styled runs version=3 runs=12
type Logger struct {
	mu      sync.Mutex
	out     io.Writer
	level   Level
	enabled bool
	now     func() time.Time
}

var defaultLogger *Logger

// InitWithTeaLog sends records to path through tea.LogToFile, which also
// captures bubbletea's own log output. The returned func closes the file.
func InitWithTeaLog(path string, prefix string) (func(), error) {
	f, err := tea.LogToFile(path, prefix)
	if err != nil {
		return nil, err
	}
	defaultLogger = &Logger{out: f, level: LevelDebug, enabled: true, now: time.Now}
	return func() { _ = f.Close() }, nil
}

// InitWriter sends records at or above level to w.
func InitWriter(w io.Writer, level Level) {
	defaultLogger = &Logger{out: w, level: level, enabled: true, now: time.Now}
}

// SetEnabled pauses or resumes logging.
func SetEnabled(enabled bool) {
	if l := defaultLogger; l != nil {
		l.mu.Lock()
		l.enabled = enabled
		l.mu.Unlock()
	}
}

func Debug(cat Category, msg string, fields ...any) {
	defaultLogger.write(LevelDebug, cat, msg, fields)
}

func Info(cat Category, msg string, fields ...any) {
	defaultLogger.write(LevelInfo, cat, msg, fields)
}

func Warn(cat Category, msg string, fields ...any) {
	defaultLogger.write(LevelWarn, cat, msg, fields)
}

func Error(cat Category, msg string, fields ...any) {
	defaultLogger.write(LevelError, cat, msg, fields)
}

// ErrorErr logs at error level with err as the first field.
func ErrorErr(cat Category, msg string, err error, fields ...any) {
	defaultLogger.write(LevelError, cat, msg, append([]any{"error", err}, fields...))
}

func (l *Logger) write(level Level, cat Category, msg string, fields []any) {
	if l == nil {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.enabled || level < l.level || l.out == nil {
		return
	}

	var b strings.Builder
	b.WriteString(l.now().Format("15:04:05.000"))
	b.WriteByte(' ')
	b.WriteString(level.String())
	b.WriteByte(' ')
	fmt.Fprintf(&b, "%-*s ", categoryWidth, cat)
	b.WriteString(msg)

	for i := 0; i < len(fields); i += 2 {
		b.WriteByte(' ')
		b.WriteString(fmt.Sprint(fields[i]))
		b.WriteByte('=')
		if i+1 == len(fields) {
			b.WriteString("<missing>")
			continue
		}
		b.WriteString(formatValue(fields[i+1]))
	}
	b.WriteByte('\n')

	_, _ = io.WriteString(l.out, b.String())
}

// formatValue renders v for a key=value pair, quoting it when it would not
// read back as a single token.
func formatValue(v any) string {
	var s string
	switch v := v.(type) {
	case nil:
		return "<nil>"
	case error:
		s = v.Error()
	case string:
		s = v
	default:
		s = fmt.Sprint(v)
	}
	if s == "" || strings.ContainsAny(s, " \t\n\"=") {
		return strconv.Quote(s)
	}
	return s
}
