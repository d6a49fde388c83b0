// Package logging holds the process-wide zerolog logger. The serial
// and records packages never log; persistence and tooling do.
package logging

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// L is the shared logger. It defaults to console output at info level.
var L = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
	With().Timestamp().Logger()

// SetLogLevel adjusts the global level.
func SetLogLevel(level zerolog.Level) {
	zerolog.SetGlobalLevel(level)
}

// ParseLevel maps a config string to a zerolog level, defaulting to
// info for unknown values.
func ParseLevel(s string) zerolog.Level {
	level, err := zerolog.ParseLevel(s)
	if err != nil || level == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return level
}
