package logger

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

var log = logrus.New()

func init() {
	Init(os.Getenv("ENVIRONMENT"), "")
}

// Init configures the shared logger. Production logs are JSON; everything else
// gets the text formatter with debug enabled only in development. When logFile
// is set, output is also written to a rotated file.
func Init(environment, logFile string) {
	var out io.Writer = os.Stdout
	if logFile != "" {
		out = io.MultiWriter(os.Stdout, &lumberjack.Logger{
			Filename:   logFile,
			MaxSize:    50, // megabytes
			MaxBackups: 3,
			MaxAge:     7, // days
			Compress:   true,
		})
	}
	log.SetOutput(out)

	switch environment {
	case "production":
		log.SetFormatter(&logrus.JSONFormatter{})
		log.SetLevel(logrus.InfoLevel)
	case "development":
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
		log.SetLevel(logrus.DebugLevel)
	default:
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
		log.SetLevel(logrus.InfoLevel)
	}
}

func Info(format string, v ...interface{}) {
	log.Infof(format, v...)
}

func Error(format string, v ...interface{}) {
	log.Errorf(format, v...)
}

func Debug(format string, v ...interface{}) {
	log.Debugf(format, v...)
}

func Warn(format string, v ...interface{}) {
	log.Warnf(format, v...)
}

func Fatal(format string, v ...interface{}) {
	log.Fatalf(format, v...)
}

func WithFields(fields logrus.Fields) *logrus.Entry {
	return log.WithFields(fields)
}

// Writer exposes the configured output so other components (Echo's request
// logger) write to the same destination.
func Writer() io.Writer {
	return log.Out
}

// LogStoreError records a failed store operation without failing the caller.
func LogStoreError(operation, documentID string, err error) {
	log.WithFields(logrus.Fields{
		"operation": operation,
		"document":  documentID,
	}).Warnf("store operation failed: %v", err)
}
