package evals

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/reusee/arith/arith"
	"github.com/reusee/arith/arithconfigs"
	"github.com/reusee/arith/logs"
	"github.com/reusee/arith/modes"
	"github.com/reusee/dscope"
)

func newTestScope(t *testing.T, buf *bytes.Buffer) dscope.Scope {
	return dscope.New(
		new(Module),
		modes.ForTest(),
	).Fork(
		func() logs.Writer {
			return buf
		},
		func() arithconfigs.SearchDirs {
			return nil
		},
	)
}

func TestEvaluate(t *testing.T) {
	buf := new(bytes.Buffer)
	newTestScope(t, buf).Call(func(
		evaluate Evaluate,
	) {
		result, err := evaluate(context.Background(), "", "3 + 4 * (10 - 2)")
		if err != nil {
			t.Fatal(err)
		}
		if result != 35 {
			t.Fatalf("got %d", result)
		}
	})
}

func TestEvaluateFailure(t *testing.T) {
	buf := new(bytes.Buffer)
	newTestScope(t, buf).Call(func(
		evaluate Evaluate,
	) {
		_, err := evaluate(context.Background(), "", "10 / 0")
		if !errors.Is(err, arith.ErrDivisionByZero) {
			t.Fatalf("got %v", err)
		}
		if arith.KindOf(err) != arith.DivisionByZero {
			t.Fatal()
		}
		if err.Error() != "division by zero" {
			t.Fatalf("got %q", err.Error())
		}
		// failures are reported by callers
		if strings.Contains(buf.String(), "evaluation failed") {
			t.Fatalf("got %q", buf.String())
		}
	})
}

func TestEvaluateFailureDebugLog(t *testing.T) {
	logs.SetLevel(slog.LevelDebug)
	defer logs.SetLevel(slog.LevelInfo)

	buf := new(bytes.Buffer)
	newTestScope(t, buf).Call(func(
		evaluate Evaluate,
	) {
		if _, err := evaluate(context.Background(), "", "10 / 0"); err == nil {
			t.Fatal("should fail")
		}
		out := buf.String()
		if !strings.Contains(out, "level=DEBUG msg=\"evaluation failed\"") {
			t.Fatalf("got %q", out)
		}
		if !strings.Contains(out, "kind=\"division by zero\"") {
			t.Fatalf("got %q", out)
		}
		if !strings.Contains(out, "logs.span=") {
			t.Fatalf("got %q", out)
		}
	})
}

func TestEvaluateTraceTokens(t *testing.T) {
	logs.SetLevel(slog.LevelDebug)
	defer logs.SetLevel(slog.LevelInfo)

	buf := new(bytes.Buffer)
	newTestScope(t, buf).Call(func(
		evaluate Evaluate,
	) {
		if _, err := evaluate(context.Background(), "", "1 + 2"); err != nil {
			t.Fatal(err)
		}
		if n := strings.Count(buf.String(), "msg=token"); n != 4 {
			t.Fatalf("got %d in %q", n, buf.String())
		}
		if !strings.Contains(buf.String(), "msg=evaluated") {
			t.Fatalf("got %q", buf.String())
		}
	})
}

func TestEvaluateOptions(t *testing.T) {
	buf := new(bytes.Buffer)
	newTestScope(t, buf).Fork(
		func() arith.Options {
			return arith.Options{
				Overflow: arith.OverflowSaturate,
				Strict:   true,
			}
		},
	).Call(func(
		evaluate Evaluate,
	) {
		result, err := evaluate(context.Background(), "", "9223372036854775807 + 1")
		if err != nil {
			t.Fatal(err)
		}
		if result != 9223372036854775807 {
			t.Fatalf("got %d", result)
		}
		_, err = evaluate(context.Background(), "", "1 2")
		if !errors.Is(err, arith.ErrTrailingInput) {
			t.Fatalf("got %v", err)
		}
	})
}

func TestEvaluateNamedSource(t *testing.T) {
	buf := new(bytes.Buffer)
	newTestScope(t, buf).Call(func(
		evaluate Evaluate,
	) {
		_, err := evaluate(context.Background(), "line 1", "1 + )")
		if !strings.Contains(err.Error(), "at line 1:1:5\n1 + )\n    ^") {
			t.Fatalf("got %q", err.Error())
		}
	})
}
