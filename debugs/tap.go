package debugs

import (
	"context"
	"maps"
	"slices"

	"github.com/reusee/arith/arith"
	"github.com/reusee/arith/logs"
	"go.starlark.net/repl"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Tap opens a Starlark REPL over globals.
type Tap func(ctx context.Context, what string, globals map[string]any)

func (Module) Tap(
	logger logs.Logger,
) Tap {
	return func(ctx context.Context, what string, globals map[string]any) {
		logger.InfoContext(ctx, "tap: "+what,
			"globals", slices.Sorted(maps.Keys(globals)),
		)
		defer func() {
			logger.InfoContext(ctx, "tap end: "+what)
		}()

		mappings := make(starlark.StringDict)
		for name, value := range globals {
			mappings[name] = toStarlarkValue(value)
		}

		thread := &starlark.Thread{
			Name: "tap",
		}
		repl.REPLOptions(&syntax.FileOptions{
			Set:             true,
			While:           true,
			TopLevelControl: true,
		}, thread, mappings)
	}
}

// TapFailure inspects a failed evaluation: the input, its tokens up to the
// failure, and the error.
type TapFailure func(ctx context.Context, input string, err error)

func (Module) TapFailure(
	tap Tap,
	options arith.Options,
) TapFailure {
	return func(ctx context.Context, input string, err error) {
		tokens, tokenizeErr := arith.Tokenize(input, options.Overflow)
		globals := map[string]any{
			"input":  input,
			"error":  err,
			"tokens": tokens,
		}
		if tokenizeErr != nil {
			globals["tokenize_error"] = tokenizeErr
		}
		tap(ctx, "evaluation failure", globals)
	}
}
