package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/getsentry/sentry-go"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetLevel(t *testing.T) {
	assert.Equal(t, logrus.DebugLevel, GetLevel("debug"))
	assert.Equal(t, logrus.DebugLevel, GetLevel("DEBUG"))
	assert.Equal(t, logrus.InfoLevel, GetLevel("info"))
	assert.Equal(t, logrus.WarnLevel, GetLevel("warn"))
	assert.Equal(t, logrus.WarnLevel, GetLevel("warning"))
	assert.Equal(t, logrus.ErrorLevel, GetLevel("error"))
	assert.Equal(t, logrus.FatalLevel, GetLevel("fatal"))
	assert.Equal(t, logrus.TraceLevel, GetLevel("trace"))
	assert.Equal(t, logrus.TraceLevel, GetLevel("whatever"))
	assert.Equal(t, logrus.TraceLevel, GetLevel(""))
	assert.Equal(t, logrus.InfoLevel, GetLevel(" info "))
}

func TestSetup_FileAndStdout(t *testing.T) {
	defer logrus.SetOutput(os.Stderr)

	logFile := filepath.Join(t.TempDir(), "seefit")
	closeLogs := Setup(LoggerSetupParams{
		LogFileName: logFile,
		LogToStdout: true,
		LogLevel:    "info",
	})
	assert.Equal(t, logrus.InfoLevel, logrus.GetLevel())

	logrus.Info("hiit list served")
	logrus.Debug("not written, level too low")

	content, err := os.ReadFile(logFile + ".log")
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(content), "hiit list served"))
	assert.False(t, strings.Contains(string(content), "not written"))

	logrus.SetOutput(os.Stderr)
	closeLogs()
}

func TestSetup_StdoutOnly(t *testing.T) {
	defer logrus.SetOutput(os.Stderr)
	defer logrus.SetFormatter(&logrus.TextFormatter{})

	closeLogs := Setup(LoggerSetupParams{LogLevel: "debug", LogFormatJSON: true})
	defer closeLogs()

	assert.Equal(t, logrus.DebugLevel, logrus.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, logrus.StandardLogger().Formatter)
	assert.Equal(t, os.Stdout, logrus.StandardLogger().Out)
}

func TestSentryLevel(t *testing.T) {
	assert.Equal(t, sentry.LevelFatal, sentryLevel(logrus.PanicLevel))
	assert.Equal(t, sentry.LevelFatal, sentryLevel(logrus.FatalLevel))
	assert.Equal(t, sentry.LevelError, sentryLevel(logrus.ErrorLevel))
	assert.Equal(t, sentry.LevelWarning, sentryLevel(logrus.WarnLevel))
	assert.Equal(t, sentry.LevelInfo, sentryLevel(logrus.InfoLevel))
	assert.Equal(t, sentry.LevelDebug, sentryLevel(logrus.TraceLevel))
}

func TestSentryHook_Levels(t *testing.T) {
	hook := NewSentryHook([]logrus.Level{logrus.ErrorLevel})
	assert.Equal(t, []logrus.Level{logrus.ErrorLevel}, hook.Levels())
}
