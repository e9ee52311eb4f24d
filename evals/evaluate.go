package evals

import (
	"context"

	"github.com/reusee/arith/arith"
	"github.com/reusee/arith/logs"
	"github.com/reusee/arith/modes"
)

// Evaluate evaluates one expression in its own log span. name is used for
// error positions and may be empty.
type Evaluate func(ctx context.Context, name string, input string) (int64, error)

func (Module) Evaluate(
	logger logs.Logger,
	newSpan logs.NewSpan,
	options arith.Options,
	traceTokens modes.TraceTokens,
) Evaluate {
	return func(ctx context.Context, name string, input string) (int64, error) {
		ctx, _ = newSpan(ctx, "")

		opts := options
		opts.Name = name
		if traceTokens {
			opts.OnToken = func(token arith.Token) {
				logger.DebugContext(ctx, "token",
					"kind", token.Kind.String(),
					"text", token.String(),
					"offset", token.Pos.Offset,
				)
			}
		}

		result, err := arith.Evaluate(input, opts)
		if err != nil {
			// reported by the caller
			logger.DebugContext(ctx, "evaluation failed",
				"input", input,
				"kind", arith.KindOf(err).String(),
			)
			return 0, err
		}

		logger.DebugContext(ctx, "evaluated",
			"input", input,
			"result", result,
		)
		return result, nil
	}
}
