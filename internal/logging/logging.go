package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

//go:generate go-enum -f $GOFILE -marshal -names

/*
ENUM(
trace
debug
info
warn
error
)
*/
type LogLevel string

/*
ENUM(
human
json
)
*/
type LogFormat string

type LoggingConfig struct {
	Level  LogLevel
	Format LogFormat
	// Defaults to stderr, stdout is reserved for decrypted output
	Out io.Writer
}

func Init(conf *LoggingConfig) zerolog.Logger {
	out := conf.Out
	if out == nil {
		out = os.Stderr
	}

	var logger zerolog.Logger
	switch conf.Format {
	case LogFormatJson:
		logger = zerolog.New(out)
	default:
		logger = zerolog.New(zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: time.RFC3339,
		})
	}

	return logger.Level(conf.Level.zerolog()).With().Timestamp().Logger()
}

func Component(logger zerolog.Logger, name string) zerolog.Logger {
	return logger.With().Str("component", name).Logger()
}

func (x LogLevel) zerolog() zerolog.Level {
	switch x {
	case LogLevelTrace:
		return zerolog.TraceLevel
	case LogLevelDebug:
		return zerolog.DebugLevel
	case LogLevelInfo:
		return zerolog.InfoLevel
	case LogLevelError:
		return zerolog.ErrorLevel
	default:
		return zerolog.WarnLevel
	}
}
