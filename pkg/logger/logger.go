// Package logger holds the process-wide zerolog logger.
//
// Call Init once from main with the configured level, then either pass the
// returned logger down or fetch it with Get. Component loggers carry a
// "component" field so log lines can be filtered per subsystem.
package logger

import (
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var (
	mu   sync.Mutex
	root zerolog.Logger
	done bool
)

// Init builds the root logger. Level accepts trace, debug, info, warn and
// error; anything else falls back to info. When pretty is true output goes
// through a console writer instead of raw JSON. Repeated calls keep the
// first configuration.
func Init(level string, pretty bool, out io.Writer) zerolog.Logger {
	mu.Lock()
	defer mu.Unlock()

	if done {
		return root
	}

	if out == nil {
		out = os.Stdout
	}
	if pretty {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	zerolog.TimeFieldFormat = time.RFC3339Nano
	lvl := levelFromString(level)
	zerolog.SetGlobalLevel(lvl)

	root = zerolog.New(out).Level(lvl).With().Timestamp().Logger()
	done = true
	return root
}

// Get returns the root logger. Before Init it returns a usable stdout
// logger at info level so library code never has to nil-check.
func Get() zerolog.Logger {
	mu.Lock()
	defer mu.Unlock()

	if !done {
		return zerolog.New(os.Stdout).With().Timestamp().Logger()
	}
	return root
}

// With returns a child of the root logger tagged with a component name,
// e.g. With("auth") or With("mongo").
func With(component string) zerolog.Logger {
	return Get().With().Str("component", component).Logger()
}

func levelFromString(s string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
