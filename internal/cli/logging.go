package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// LogLevelEnv overrides the log level chosen by --verbose.
const LogLevelEnv = "MSGC_LOG_LEVEL"

// newLogger returns a text logger writing to w. Info by default, Debug
// with verbose; LogLevelEnv (debug|info|warn|error) wins over both.
func newLogger(w io.Writer, verbose bool) (*slog.Logger, error) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	if v := os.Getenv(LogLevelEnv); v != "" {
		if err := level.UnmarshalText([]byte(v)); err != nil {
			return nil, fmt.Errorf("invalid %s %q: %w", LogLevelEnv, v, err)
		}
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})), nil
}
