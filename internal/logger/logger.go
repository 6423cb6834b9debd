// Package logger builds the zerolog logger used by the mule command.
package logger

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// ErrInvalidConfig indicates an unknown format or output.
var ErrInvalidConfig = errors.New("logger: invalid configuration")

// Config selects level, format and destination. Field tags feed
// envconfig with the MULE prefix (MULE_LOG_LEVEL and so on).
type Config struct {
	Level  string `envconfig:"LOG_LEVEL" default:"info"`
	Format string `envconfig:"LOG_FORMAT" default:"console"` // console | json
	Output string `envconfig:"LOG_OUTPUT" default:"stdout"`  // stdout | stderr
}

// Select maps an output name to one of the given streams.
func Select(output string, stdout, stderr io.Writer) (io.Writer, error) {
	switch strings.ToLower(output) {
	case "", "stdout":
		return stdout, nil
	case "stderr":
		return stderr, nil
	}

	return nil, fmt.Errorf("%w: output %q", ErrInvalidConfig, output)
}

// NewWithWriter builds a logger writing to w; cfg.Output is ignored.
func NewWithWriter(w io.Writer, cfg Config) (zerolog.Logger, error) {
	level := zerolog.InfoLevel
	if cfg.Level != "" {
		var err error
		if level, err = zerolog.ParseLevel(strings.ToLower(cfg.Level)); err != nil {
			return zerolog.Nop(), fmt.Errorf("%w: level %q: %v", ErrInvalidConfig, cfg.Level, err)
		}
	}

	switch strings.ToLower(cfg.Format) {
	case "", "console":
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	case "json":
	default:
		return zerolog.Nop(), fmt.Errorf("%w: format %q", ErrInvalidConfig, cfg.Format)
	}

	return zerolog.New(w).Level(level).With().Timestamp().Logger(), nil
}
