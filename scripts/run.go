package scripts

import (
	"context"
	"fmt"
	"os"

	"github.com/reusee/arith/arith"
	"github.com/reusee/arith/evals"
	"github.com/reusee/arith/logs"
	"github.com/reusee/e5"
	"github.com/reusee/starlarkutil"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

var wrap = e5.Wrap.With(e5.WrapStacktrace)

type Report struct {
	Checks int
}

// Run executes a Starlark script with these builtins:
//
//	eval(expr)               result of expr, or a script error
//	tokens(expr)             lexemes of expr ending with "EOF", or with an
//	                         "error: ..." entry at the first lexical error
//	check(expr, want)        fails the script unless expr evaluates to want
//	check_error(expr, kind)  fails the script unless expr fails with kind
type Run func(ctx context.Context, name string, src []byte) (Report, error)

func (Module) Run(
	evaluate evals.Evaluate,
	options arith.Options,
	logger logs.Logger,
	newSpan logs.NewSpan,
) Run {
	return func(ctx context.Context, name string, src []byte) (report Report, err error) {
		ctx, _ = newSpan(ctx, "")

		evalBuiltin := starlark.NewBuiltin("eval", func(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			var expr string
			if err := starlark.UnpackArgs(b.Name(), args, kwargs, "expr", &expr); err != nil {
				return nil, err
			}
			result, err := evaluate(ctx, "", expr)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", b.Name(), err)
			}
			return starlark.MakeInt64(result), nil
		})

		checkBuiltin := starlark.NewBuiltin("check", func(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			var expr string
			var want starlark.Int
			if err := starlark.UnpackArgs(b.Name(), args, kwargs, "expr", &expr, "want", &want); err != nil {
				return nil, err
			}
			report.Checks++
			result, err := evaluate(ctx, "", expr)
			if err != nil {
				return nil, fmt.Errorf("%s(%q): %w", b.Name(), expr, err)
			}
			if w, ok := want.Int64(); !ok || w != result {
				return nil, fmt.Errorf("%s(%q): got %d, want %v", b.Name(), expr, result, want)
			}
			return starlark.None, nil
		})

		checkErrorBuiltin := starlark.NewBuiltin("check_error", func(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			var expr, kind string
			if err := starlark.UnpackArgs(b.Name(), args, kwargs, "expr", &expr, "kind", &kind); err != nil {
				return nil, err
			}
			report.Checks++
			result, err := evaluate(ctx, "", expr)
			if err == nil {
				return nil, fmt.Errorf("%s(%q): got %d, want %s", b.Name(), expr, result, kind)
			}
			if got := arith.KindOf(err).String(); got != kind {
				return nil, fmt.Errorf("%s(%q): got %s, want %s", b.Name(), expr, got, kind)
			}
			return starlark.None, nil
		})

		predeclared := starlark.StringDict{
			"eval":        evalBuiltin,
			"check":       checkBuiltin,
			"check_error": checkErrorBuiltin,
			"tokens": starlarkutil.MakeFunc("tokens", func(expr string) []string {
				tokens, err := arith.Tokenize(expr, options.Overflow)
				texts := make([]string, 0, len(tokens)+1)
				for _, token := range tokens {
					texts = append(texts, token.String())
				}
				if err != nil {
					texts = append(texts, "error: "+err.Error())
				}
				return texts
			}),
		}

		thread := &starlark.Thread{
			Name: name,
			Print: func(_ *starlark.Thread, msg string) {
				logger.InfoContext(ctx, "script", "name", name, "msg", msg)
			},
		}
		if _, err := starlark.ExecFileOptions(&syntax.FileOptions{
			Set:             true,
			While:           true,
			TopLevelControl: true,
		}, thread, name, src, predeclared); err != nil {
			return report, logs.WrapSpan(ctx, err)
		}

		logger.InfoContext(ctx, "script done",
			"name", name,
			"checks", report.Checks,
		)
		return report, nil
	}
}

// RunFile reads and runs a script file.
type RunFile func(ctx context.Context, path string) (Report, error)

func (Module) RunFile(
	run Run,
) RunFile {
	return func(ctx context.Context, path string) (Report, error) {
		src, err := os.ReadFile(path)
		if err != nil {
			return Report{}, wrap(err)
		}
		return run(ctx, path, src)
	}
}
