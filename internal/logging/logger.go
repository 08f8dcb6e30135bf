package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/2beens/seefit/pkg"

	"github.com/getsentry/sentry-go"
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

type LoggerSetupParams struct {
	LogFileName      string
	LogToStdout      bool
	LogLevel         string
	LogFormatJSON    bool
	Environment      string
	SentryEnabled    bool
	SentryDSN        string
	SentryServerName string
}

// Setup configures the global logrus logger. The returned func closes the
// log file, if one is used.
func Setup(params LoggerSetupParams) (closeLogs func()) {
	logrus.SetLevel(GetLevel(params.LogLevel))
	if params.LogFormatJSON {
		logrus.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	if params.SentryEnabled {
		if err := setupSentry(params); err != nil {
			logrus.Errorf("sentry init: %s", err)
		} else {
			logrus.Infof("sentry set up for env [%s]", params.Environment)
		}
	}

	out, fileLogger := logsOutput(params.LogFileName, params.LogToStdout)
	logrus.SetOutput(out)
	if fileLogger == nil {
		return func() {}
	}

	logrus.Infof("writing logs to [%s], stdout: %t", fileLogger.Filename, params.LogToStdout)
	return func() {
		if err := fileLogger.Close(); err != nil {
			logrus.SetOutput(os.Stderr)
			logrus.Errorf("close log file: %s", err)
		}
	}
}

func setupSentry(params LoggerSetupParams) error {
	err := sentry.Init(sentry.ClientOptions{
		Environment:      params.Environment,
		Dsn:              params.SentryDSN,
		ServerName:       params.SentryServerName,
		TracesSampleRate: 1.0,
	})
	if err != nil {
		return err
	}

	logrus.AddHook(NewSentryHook([]logrus.Level{
		logrus.PanicLevel,
		logrus.FatalLevel,
		logrus.ErrorLevel,
	}))
	return nil
}

// logsOutput picks stdout, a rotated log file, or both.
func logsOutput(fileName string, toStdout bool) (io.Writer, *lumberjack.Logger) {
	if fileName == "" {
		return os.Stdout, nil
	}
	if !strings.HasSuffix(fileName, ".log") {
		fileName += ".log"
	}

	fileLogger := &lumberjack.Logger{
		Filename:   fileName,
		MaxSize:    50, // megabytes
		MaxBackups: 10,
		Compress:   true,
	}
	if toStdout {
		return pkg.NewCombinedWriter(os.Stdout, fileLogger), fileLogger
	}
	return fileLogger, fileLogger
}

// GetLevel parses the level name, falling back to trace for unknown ones.
func GetLevel(level string) logrus.Level {
	parsed, err := logrus.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		return logrus.TraceLevel
	}
	return parsed
}
