package logging

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/2beens/liftstats/pkg"

	"github.com/getsentry/sentry-go"
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	maxLogFileSizeMB   = 50
	sentryFlushTimeout = 2 * time.Second
)

type Params struct {
	LogFilePath      string
	LogToStdout      bool
	LogLevel         string
	LogFormatJSON    bool
	Environment      string
	SentryEnabled    bool
	SentryDSN        string
	SentryServerName string
}

// Setup configures the global logrus logger for a long running service.
// The returned func flushes buffered sentry events and should be deferred by the caller.
func Setup(params Params) (flush func()) {
	flush = func() {}

	if params.LogFormatJSON {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
	logrus.SetLevel(GetLevel(params.LogLevel))

	if params.SentryEnabled {
		if err := setupSentry(params); err != nil {
			logrus.Errorf("sentry init: %s", err)
		} else {
			flush = func() { sentry.Flush(sentryFlushTimeout) }
			logrus.Infoln("sentry hook installed")
		}
	}

	if params.LogFilePath == "" {
		logrus.SetOutput(os.Stdout)
		logrus.Debugln("logging to stdout only")
		return flush
	}

	fileWriter := rotatingFile(params.LogFilePath)
	if params.LogToStdout {
		logrus.SetOutput(pkg.NewFanOutWriter(os.Stdout, fileWriter))
		logrus.Debugf("logging to stdout and %s", params.LogFilePath)
	} else {
		logrus.SetOutput(fileWriter)
	}

	return flush
}

// SetupCLI is used by the command line tools, where stdout carries the command output.
func SetupCLI(level string, out io.Writer) {
	logrus.SetOutput(out)
	logrus.SetLevel(GetLevel(level))
	logrus.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
}

func setupSentry(params Params) error {
	err := sentry.Init(sentry.ClientOptions{
		Environment:      params.Environment,
		Dsn:              params.SentryDSN,
		TracesSampleRate: 0.2,
		ServerName:       params.SentryServerName,
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

func rotatingFile(path string) *lumberjack.Logger {
	if filepath.Ext(path) != ".log" {
		path += ".log"
	}
	return &lumberjack.Logger{
		Filename:  path,
		MaxSize:   maxLogFileSizeMB,
		LocalTime: false,
		Compress:  true,
	}
}

// GetLevel maps a config level name to a logrus level; unknown names mean trace.
func GetLevel(level string) logrus.Level {
	parsed, err := logrus.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		return logrus.TraceLevel
	}
	return parsed
}
