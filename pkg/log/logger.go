package log

import (
	"fmt"
	"os"
	"strings"

	"github.com/YuminosukeSato/mlglue/pkg/errors"
	"github.com/rs/zerolog"
)

// SetupLogger installs a zerolog provider writing JSON to stderr at the given
// level ("debug", "info", "warn", "error"). It also routes library warnings
// (errors.Warn) to the log and makes Error records carry cockroachdb stack traces.
func SetupLogger(level string) error {
	lvl, err := ParseLevel(level)
	if err != nil {
		return err
	}

	zerolog.ErrorStackMarshaler = marshalStack

	p := NewZerologProvider(os.Stderr, lvl)
	SetLoggerProvider(p)

	warnings := p.GetLoggerWithName("warnings")
	errors.SetZerologWarnFunc(func(w error) {
		warnings.Warn(w.Error(), "warning", w)
	})
	return nil
}

// ParseLevel maps a level name to a Level.
func ParseLevel(level string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return LevelDebug, nil
	case "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	default:
		return LevelInfo, errors.NewValidationError("level", fmt.Sprintf("unknown log level %q", level), level)
	}
}

func marshalStack(err error) interface{} {
	details := errors.SafeDetails(err)
	if len(details) == 0 {
		return nil
	}
	return details[0]
}
