package pcomb

import (
	"context"
	"log/slog"

	"github.com/apstndb/pcomb/seq"
)

// Trace wraps p so that every attempt is logged at debug level under name.
// It changes nothing about what p matches. A nil logger uses slog.Default().
func Trace[S seq.Measurable, T any](logger *slog.Logger, name string, p Parser[S, T]) Parser[S, T] {
	if logger == nil {
		logger = slog.Default()
	}
	return func(input S) Result[S, T] {
		ctx := context.Background()
		if !logger.Enabled(ctx, slog.LevelDebug) {
			return p(input)
		}
		tree, rest, ok := Run(p, input)
		if !ok {
			logger.Debug("no match", "parser", name, "input", input, "remaining", input.Len())
			return NoMatch[S, T]()
		}
		logger.Debug("match",
			"parser", name,
			"tree", tree,
			"consumed", input.Len()-rest.Len(),
			"remaining", rest.Len(),
		)
		return Match(tree, rest)
	}
}
