// Package logger builds the logrus logger used by the frontdesk commands and
// adapts it to [frontdesk.MetricsHook].
package logger

import (
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/tomasbasham/frontdesk/internal/config"
)

// New creates a logger writing to out at the configured level and format.
func New(out io.Writer, cfg config.Log) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(out)
	logger.SetLevel(cfg.Level)

	if cfg.Format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return logger
}

// Open creates a logger for cfg. Logs go to cfg.Log.File when set, falling
// back to stderr if the file cannot be opened; stdout is left to the
// interactive menu. The returned function closes the log file, if any.
func Open(cfg *config.Config) (*logrus.Logger, func() error) {
	logger := New(os.Stderr, cfg.Log)
	closer := func() error { return nil }

	if cfg.Log.File != "" {
		file, err := os.OpenFile(filepath.Clean(cfg.Log.File), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o640)
		if err == nil {
			logger.SetOutput(file)
			closer = file.Close
		} else {
			logger.Infof("Failed to open output file %s. Will use stderr. %s", cfg.Log.File, err.Error())
		}
	}

	return logger, closer
}

// WithSession returns an entry carrying the fields attached to every log
// line of a session.
func WithSession(logger *logrus.Logger, cfg *config.Config) *logrus.Entry {
	return logger.WithFields(logrus.Fields{
		"application": "frontdesk",
		"environment": string(cfg.AppEnv),
	})
}
