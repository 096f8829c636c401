// Package logger builds the zerolog logger shared by the server and CLI.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config controls the logger's behaviour.
type Config struct {
	Level        string `mapstructure:"level"`        // debug, info, warn, error
	Format       string `mapstructure:"format"`       // json or pretty
	TimeFormat   string `mapstructure:"time_format"`
	ReportCaller bool   `mapstructure:"report_caller"`
}

// New builds a logger writing to w (os.Stderr when nil) and installs it as the
// zerolog global so library code using log.Logger agrees with it.
func New(config Config, w io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(config.Level)
	if err != nil || config.Level == "" {
		level = zerolog.InfoLevel
	}

	if w == nil {
		w = os.Stderr
	}

	if config.TimeFormat == "" {
		zerolog.TimeFieldFormat = time.RFC3339
	} else {
		zerolog.TimeFieldFormat = config.TimeFormat
	}

	output := w
	if config.Format == "pretty" {
		output = zerolog.ConsoleWriter{Out: w, TimeFormat: zerolog.TimeFieldFormat}
	}

	ctx := zerolog.New(output).Level(level).With().Timestamp()
	if config.ReportCaller {
		ctx = ctx.Caller()
	}

	logger := ctx.Logger()
	log.Logger = logger
	return logger
}
