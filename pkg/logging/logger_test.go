package logging

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func newTestLogger(verbose bool) (*ConsoleLogger, *bytes.Buffer) {
	color.NoColor = true

	var buf bytes.Buffer
	l := NewConsoleLogger(verbose)
	l.SetOutput(&buf)
	return l, &buf
}

func TestConsoleLogger_LevelsAndFields(t *testing.T) {
	l, buf := newTestLogger(false)

	l.Info("scanning", StringField("package", "a"))
	l.Warn("slow load")
	l.Error("load failed", ErrorField(errors.New("boom")))

	out := buf.String()
	assert.Contains(t, out, "INFO")
	assert.Contains(t, out, "scanning")
	assert.Contains(t, out, "package=a")
	assert.Contains(t, out, "WARN")
	assert.Contains(t, out, "ERROR")
	assert.Contains(t, out, "error=boom")
}

func TestConsoleLogger_DebugGatedByVerbose(t *testing.T) {
	l, buf := newTestLogger(false)
	l.Debug("hidden")
	assert.Empty(t, buf.String())

	l, buf = newTestLogger(true)
	l.Debug("visible", IntField("files", 3))
	assert.Contains(t, buf.String(), "visible")
	assert.Contains(t, buf.String(), "files=3")
}

func TestConsoleLogger_WithFields(t *testing.T) {
	l, buf := newTestLogger(false)

	child := l.WithFields(StringField("run", "xyz"))
	child.Info("done", DurationField("took", 2*time.Second))

	out := buf.String()
	assert.Contains(t, out, "run=xyz")
	assert.Contains(t, out, "took=2s")
}

func TestLogLevel_String(t *testing.T) {
	assert.Equal(t, "DEBUG", LevelDebug.String())
	assert.Equal(t, "INFO", LevelInfo.String())
	assert.Equal(t, "WARN", LevelWarn.String())
	assert.Equal(t, "ERROR", LevelError.String())
}

func TestNullLogger_ImplementsLogger(t *testing.T) {
	var l Logger = NullLogger{}

	l.Info("ignored")
	l = l.WithFields(StringField("k", "v"))
	l.Error("still ignored")
}
