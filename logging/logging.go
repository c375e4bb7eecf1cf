package logging

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"
)

// Rotation limits for the log file
const (
	maxSizeMB  = 5
	maxBackups = 3
	maxAgeDays = 7
)

// New builds a logger that never writes to the terminal.
// With a path, entries go to a rotating JSON log file; without one they are dropped.
func New(path string, level logrus.Level) (*logrus.Logger, error) {
	log := logrus.New()
	log.SetOutput(io.Discard)
	log.SetLevel(level)

	if path == "" {
		return log, nil
	}

	hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
		Filename:   path,
		MaxSize:    maxSizeMB,
		MaxBackups: maxBackups,
		MaxAge:     maxAgeDays,
		Level:      level,
		Formatter: &logrus.JSONFormatter{
			TimestampFormat: "2006-01-02T15:04:05.000Z07:00",
		},
	})
	if err != nil {
		return nil, fmt.Errorf("log file %s: %w", path, err)
	}
	log.AddHook(hook)

	return log, nil
}
