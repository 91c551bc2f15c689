package log

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func capture(t *testing.T, level Level) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	InitWriter(&buf, level)
	defaultLogger.now = func() time.Time {
		return time.Date(2025, 1, 2, 10, 45, 0, 123e6, time.UTC)
	}
	t.Cleanup(func() { defaultLogger = nil })
	return &buf
}

func TestLog_LineFormat(t *testing.T) {
	buf := capture(t, LevelDebug)

	Warn(CatTheme, "skipping theme file", "path", "themes/bad.json", "size", 12)

	require.Equal(t, "10:45:00.123 WRN theme     skipping theme file path=themes/bad.json size=12\n", buf.String())
}

func TestLog_QuotesValues(t *testing.T) {
	buf := capture(t, LevelDebug)

	Info(CatUI, "file loaded", "path", "my notes.md", "prefix", "", "expr", "a=b")

	require.Contains(t, buf.String(), `path="my notes.md"`)
	require.Contains(t, buf.String(), `prefix=""`)
	require.Contains(t, buf.String(), `expr="a=b"`)
}

func TestLog_ErrorErr(t *testing.T) {
	buf := capture(t, LevelDebug)

	ErrorErr(CatConfig, "load failed", errors.New("permission denied"), "path", "/etc/zen")
	ErrorErr(CatConfig, "load failed", nil)

	require.Contains(t, buf.String(), `ERR config    load failed error="permission denied" path=/etc/zen`)
	require.Contains(t, buf.String(), "error=<nil>")
}

func TestLog_RespectsLevel(t *testing.T) {
	buf := capture(t, LevelWarn)

	Debug(CatCache, "recomputed")
	Info(CatCache, "recomputed")
	require.Empty(t, buf.String())

	Error(CatCache, "boom")
	require.Contains(t, buf.String(), "ERR cache     boom")
}

func TestLog_OddFieldCount(t *testing.T) {
	buf := capture(t, LevelDebug)

	Info(CatUI, "msg", "orphan")
	require.Contains(t, buf.String(), "orphan=<missing>")
}

func TestLog_Disabled(t *testing.T) {
	buf := capture(t, LevelDebug)

	SetEnabled(false)
	ErrorErr(CatConfig, "load failed", nil)
	require.Empty(t, buf.String())

	SetEnabled(true)
	Info(CatConfig, "back")
	require.Contains(t, buf.String(), "back")
}

func TestLog_NoLoggerIsNoop(t *testing.T) {
	defaultLogger = nil
	require.NotPanics(t, func() { Info(CatUI, "nothing") })
	require.NotPanics(t, func() { SetEnabled(false) })
}

func TestLevelString(t *testing.T) {
	require.Equal(t, "DBG", LevelDebug.String())
	require.Equal(t, "ERR", LevelError.String())
	require.Equal(t, "???", Level(9).String())
}
