package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/reusee/arith/arith"
	"github.com/reusee/arith/arithconfigs"
	"github.com/reusee/arith/cmds"
	"github.com/reusee/arith/debugs"
	"github.com/reusee/arith/evals"
	"github.com/reusee/arith/logs"
	"github.com/reusee/arith/modes"
	"github.com/reusee/arith/scripts"
	"github.com/reusee/dscope"
	"golang.org/x/term"
)

var (
	debugFlag   = cmds.Switch("-debug", "open a starlark tap after a failed evaluation")
	scriptPaths = cmds.Collect[string]("script", "run a starlark check script")
	tokenExprs  = cmds.Collect[string]("tokens", "dump tokens of an expression")
)

func main() {
	defer func() {
		if p := recover(); p != nil {
			if err, ok := p.(error); ok {
				exit(err)
			}
			panic(p)
		}
	}()

	var exprs []string
	cmds.GlobalExecutor.Fallback = func(arg string) error {
		exprs = append(exprs, arg)
		return nil
	}
	if err := cmds.Execute(os.Args[1:]); err != nil {
		exit(err)
	}

	ctx := context.Background()
	scope := dscope.New(
		new(Module),
		modes.ForProduction(),
	)

	scope.Call(func(
		check arithconfigs.Check,
	) {
		if err := check(); err != nil {
			exit(err)
		}
	})

	scope.Call(func(
		options arith.Options,
	) {
		for _, expr := range *tokenExprs {
			dumpTokens(os.Stdout, expr, options.Overflow)
		}
	})

	ok := true

	if len(*scriptPaths) > 0 {
		scope.Call(func(
			runFile scripts.RunFile,
		) {
			for _, path := range *scriptPaths {
				report, err := runFile(ctx, path)
				if err != nil {
					fmt.Fprintf(os.Stderr, "Error: %s: %v\n", path, err)
					ok = false
					continue
				}
				fmt.Printf("%s: %d checks passed\n", path, report.Checks)
			}
		})
	}

	var session Session
	scope.Call(func(s Session) {
		session = s
	})

	switch {

	case len(exprs) > 0:
		for i, expr := range exprs {
			if !session.Eval(ctx, fmt.Sprintf("argument %d", i+1), expr) {
				ok = false
			}
		}

	case len(*scriptPaths) > 0 || len(*tokenExprs) > 0:

	case term.IsTerminal(int(os.Stdin.Fd())):
		scope.Call(func(
			prompt arithconfigs.Prompt,
			historyFile arithconfigs.HistoryFile,
		) {
			runREPL(ctx, session, string(prompt), string(historyFile))
		})

	default:
		if !session.EvalLines(ctx, os.Stdin) {
			ok = false
		}

	}

	if !ok {
		os.Exit(-1)
	}
}

// Session evaluates inputs and reports results.
type Session struct {
	Evaluate   evals.Evaluate
	TapFailure debugs.TapFailure
	Logger     logs.Logger
	Stdout     io.Writer
	Stderr     io.Writer
}

func (Module) Session(
	evaluate evals.Evaluate,
	tapFailure debugs.TapFailure,
	logger logs.Logger,
) Session {
	return Session{
		Evaluate:   evaluate,
		TapFailure: tapFailure,
		Logger:     logger,
		Stdout:     os.Stdout,
		Stderr:     os.Stderr,
	}
}

func (s Session) Eval(ctx context.Context, name string, input string) bool {
	result, err := s.Evaluate(ctx, name, input)
	if err != nil {
		fmt.Fprintf(s.Stderr, "Error: %s\n", strings.TrimRight(err.Error(), "\n"))
		if *debugFlag {
			s.TapFailure(ctx, input, err)
		}
		return false
	}
	fmt.Fprintf(s.Stdout, "Result: %d\n", result)
	return true
}

// EvalLines evaluates every non-blank line of r.
func (s Session) EvalLines(ctx context.Context, r io.Reader) bool {
	ok := true
	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		if !s.Eval(ctx, fmt.Sprintf("stdin line %d", lineNum), line) {
			ok = false
		}
	}
	if err := scanner.Err(); err != nil {
		s.Logger.ErrorContext(ctx, "read input", "error", err)
		return false
	}
	return ok
}

type tokenDump struct {
	Kind   string
	Text   string
	Value  int64
	Offset int
}

func dumpTokens(w io.Writer, expr string, overflow arith.OverflowPolicy) {
	tokens, err := arith.Tokenize(expr, overflow)
	dumps := make([]tokenDump, 0, len(tokens))
	for _, token := range tokens {
		dumps = append(dumps, tokenDump{
			Kind:   token.Kind.String(),
			Text:   token.String(),
			Value:  token.Value,
			Offset: token.Pos.Offset,
		})
	}
	config := spew.ConfigState{
		Indent:                  "  ",
		DisableMethods:          true,
		DisablePointerAddresses: true,
		DisableCapacities:       true,
	}
	config.Fdump(w, dumps)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
	}
}

func exit(err error) {
	os.Stderr.WriteString(err.Error())
	os.Stderr.WriteString("\n")
	os.Exit(-1)
}
