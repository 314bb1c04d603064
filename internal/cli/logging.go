package cli

import (
	"io"
	"log/slog"

	"github.com/apstndb/pcomb/enums"
)

var slogLevels = map[enums.LogLevel]slog.Level{
	enums.LogLevelDebug: slog.LevelDebug,
	enums.LogLevelInfo:  slog.LevelInfo,
	enums.LogLevelWarn:  slog.LevelWarn,
	enums.LogLevelError: slog.LevelError,
}

// newLogger builds the text logger the command logs through. --trace
// without an explicit level implies DEBUG so the trace is visible.
func newLogger(w io.Writer, level enums.LogLevel, trace bool) *slog.Logger {
	lvl, ok := slogLevels[level]
	switch {
	case ok:
	case trace:
		lvl = slog.LevelDebug
	default:
		lvl = slog.LevelWarn
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}
