// Package logging sets up the diagnostic logger. The interactive screen owns
// the terminal, so logs go to a rotating file unless a console is requested.
package logging

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options selects where and how much to log.
type Options struct {
	File    string    // rotating log file; empty disables file output
	Console io.Writer // human-readable output, used when File is empty
	Debug   bool
}

// New builds a logger and returns a close function for its file, if any.
func New(opts Options) (zerolog.Logger, func() error, error) {
	level := zerolog.InfoLevel
	if opts.Debug {
		level = zerolog.DebugLevel
	}
	zerolog.TimeFieldFormat = time.RFC3339

	var w io.Writer
	closeFn := func() error { return nil }

	switch {
	case opts.File != "":
		if err := os.MkdirAll(filepath.Dir(opts.File), 0o700); err != nil {
			return zerolog.Nop(), closeFn, err
		}
		lj := &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    10, // MB
			MaxBackups: 3,
			MaxAge:     28, // days
			Compress:   true,
			LocalTime:  true,
		}
		w = lj
		closeFn = lj.Close
	case opts.Console != nil:
		w = zerolog.ConsoleWriter{Out: opts.Console, TimeFormat: time.Kitchen}
	default:
		return zerolog.Nop(), closeFn, nil
	}

	logger := zerolog.New(w).Level(level).With().Timestamp().Logger()
	return logger, closeFn, nil
}
