// Package logger builds the process-wide zerolog logger.
package logger

import (
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// New returns the root logger for the given environment.  Development
// gets a human-readable console writer at debug level; everything else
// logs JSON at info level.
func New(env string) zerolog.Logger {
	level := zerolog.InfoLevel
	var log zerolog.Logger
	if strings.EqualFold(env, "dev") || strings.EqualFold(env, "development") {
		level = zerolog.DebugLevel
		out := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
		log = zerolog.New(out)
	} else {
		log = zerolog.New(os.Stderr)
	}
	return log.Level(level).With().Timestamp().Logger()
}
