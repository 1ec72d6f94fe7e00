// Package logging provides the process-wide leveled logger.
package logging

import (
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

var once sync.Once

var logger *log.Logger

func get() *log.Logger {
	once.Do(func() {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			TimeFormat:      time.RFC3339,
			Prefix:          "core",
		})
		logger.SetLevel(log.InfoLevel)
	})
	return logger
}

// SetLevel sets the logging level from its string form
// (debug, info, warn, error). Unknown levels are ignored with a warning.
func SetLevel(level string) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		get().Warnf("unknown log level %q, keeping current level", level)
		return
	}
	get().SetLevel(lvl)
}

func Debugf(msg string, args ...interface{}) {
	get().Debugf(msg, args...)
}

func Infof(msg string, args ...interface{}) {
	get().Infof(msg, args...)
}

func Warnf(msg string, args ...interface{}) {
	get().Warnf(msg, args...)
}

func Errorf(msg string, args ...interface{}) {
	get().Errorf(msg, args...)
}

func Fatalf(msg string, args ...interface{}) {
	get().Fatalf(msg, args...)
}
