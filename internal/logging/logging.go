// Package logging configures the global zerolog logger.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.elastic.co/ecszerolog"
)

// Formats accepted by Setup.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
	FormatECS     = "ecs"
)

type Options struct {
	App    string
	Level  string
	Format string
	Out    io.Writer
}

// Setup replaces log.Logger. Every line carries the app name and a timestamp.
func Setup(opts Options) error {
	level := zerolog.InfoLevel
	if opts.Level != "" {
		l, err := zerolog.ParseLevel(strings.ToLower(opts.Level))
		if err != nil {
			return fmt.Errorf("invalid log level %q: %w", opts.Level, err)
		}
		level = l
	}
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}

	var base zerolog.Logger
	switch strings.ToLower(opts.Format) {
	case "", FormatConsole:
		base = zerolog.New(zerolog.ConsoleWriter{Out: out, TimeFormat: "15:04:05"})
	case FormatJSON:
		base = zerolog.New(out)
	case FormatECS:
		base = ecszerolog.New(out)
	default:
		return fmt.Errorf("invalid log format %q", opts.Format)
	}

	zerolog.SetGlobalLevel(level)
	log.Logger = base.With().Str("app", opts.App).Timestamp().Logger()
	return nil
}
