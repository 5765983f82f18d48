// Package logging builds the logrus logger used by the command line tools and
// carries it through context.Context.
//
// Algorithm packages never log; orchestration code fetches the logger with
// FromContext and decorates it with fields such as rank, job or strategy.
package logging

import (
	"context"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type loggerContextKey string

const loggerContextKeyVal = loggerContextKey("logrus.FieldLogger")

// Formats accepted by New.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// New returns a logger writing to out at the given level.
// format is "text" (default) or "json"; text output is colored only when out
// is a terminal and NO_COLOR is unset.
func New(level, format string, out io.Writer) (*logrus.Logger, error) {
	if level == "" {
		level = logrus.InfoLevel.String()
	}
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, errors.Wrapf(err, "log level %q", level)
	}

	var formatter logrus.Formatter
	switch format {
	case FormatJSON:
		formatter = &logrus.JSONFormatter{}
	case FormatText, "":
		colors := IsColorable(out)
		formatter = &logrus.TextFormatter{
			ForceColors:   colors,
			DisableColors: !colors,
			FullTimestamp: true,
			PadLevelText:  true,
		}
	default:
		return nil, errors.Errorf("unknown log format %q", format)
	}

	logger := logrus.New()
	logger.SetOutput(out)
	logger.SetLevel(lvl)
	logger.SetFormatter(formatter)

	return logger, nil
}

// IsTerminal reports whether w is a terminal file.
func IsTerminal(w io.Writer) bool {
	switch v := w.(type) {
	case *os.File:
		return isatty.IsTerminal(v.Fd()) || isatty.IsCygwinTerminal(v.Fd())
	default:
		return false
	}
}

// IsColorable reports whether w should receive ANSI colors.
func IsColorable(w io.Writer) bool {
	if !IsTerminal(w) {
		return false
	}
	// https://no-color.org/
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}

	return true
}

// FromContext returns the logger stored in ctx, or the logrus standard logger.
func FromContext(ctx context.Context) logrus.FieldLogger {
	if ctx != nil {
		if logger, ok := ctx.Value(loggerContextKeyVal).(logrus.FieldLogger); ok {
			return logger
		}
	}

	return logrus.StandardLogger()
}

// WithLogger returns a copy of ctx carrying logger.
func WithLogger(ctx context.Context, logger logrus.FieldLogger) context.Context {
	return context.WithValue(ctx, loggerContextKeyVal, logger)
}

// WithFields decorates the context logger with fields and stores the result.
func WithFields(ctx context.Context, fields logrus.Fields) context.Context {
	return WithLogger(ctx, FromContext(ctx).WithFields(fields))
}
