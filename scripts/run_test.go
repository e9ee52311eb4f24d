package scripts

import (
	"bytes"
	"strings"
	"testing"

	"github.com/reusee/arith/arith"
	"github.com/reusee/arith/arithconfigs"
	"github.com/reusee/arith/logs"
	"github.com/reusee/arith/modes"
	"github.com/reusee/dscope"
)

func newTestScope(t *testing.T) dscope.Scope {
	buf := new(bytes.Buffer)
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

func TestRunFile(t *testing.T) {
	newTestScope(t).Call(func(
		runFile RunFile,
	) {
		report, err := runFile(t.Context(), "testdata/checks.star")
		if err != nil {
			t.Fatal(err)
		}
		if report.Checks != 16 {
			t.Fatalf("got %d", report.Checks)
		}
	})
}

func TestRunFailedCheck(t *testing.T) {
	newTestScope(t).Call(func(
		run Run,
	) {
		report, err := run(t.Context(), "fail.star", []byte(`
check("1 + 1", 2)
check("1 + 1", 3)
check("1 + 1", 2)
`))
		if err == nil {
			t.Fatal("should error")
		}
		if !strings.Contains(err.Error(), `check("1 + 1"): got 2, want 3`) {
			t.Fatalf("got %v", err)
		}
		if report.Checks != 2 {
			t.Fatalf("got %d", report.Checks)
		}
	})
}

func TestRunEvalError(t *testing.T) {
	newTestScope(t).Call(func(
		run Run,
	) {
		_, err := run(t.Context(), "eval.star", []byte(`eval("1 / 0")`))
		if err == nil {
			t.Fatal("should error")
		}
		if !strings.Contains(err.Error(), "division by zero") {
			t.Fatalf("got %v", err)
		}
	})
}

func TestRunStrict(t *testing.T) {
	newTestScope(t).Fork(
		func() arith.Options {
			return arith.Options{Strict: true}
		},
	).Call(func(
		run Run,
	) {
		_, err := run(t.Context(), "strict.star", []byte(`check_error("1 2", "trailing input")`))
		if err != nil {
			t.Fatal(err)
		}
	})
}

func TestRunFileMissing(t *testing.T) {
	newTestScope(t).Call(func(
		runFile RunFile,
	) {
		_, err := runFile(t.Context(), "testdata/not-exists.star")
		if err == nil {
			t.Fatal("should error")
		}
	})
}

func TestRunTokensError(t *testing.T) {
	newTestScope(t).Call(func(
		run Run,
	) {
		_, err := run(t.Context(), "tokens.star", []byte(`
got = tokens("12 / (3 $ 4)")
if got[-1] != "error: invalid character: '$'":
    fail(got)
if len(got) != 5:
    fail(got)
if tokens("(1)")[-1] != "EOF":
    fail("complete")
`))
		if err != nil {
			t.Fatal(err)
		}
	})
}

func TestRunErrorSpan(t *testing.T) {
	newTestScope(t).Call(func(
		run Run,
	) {
		_, err := run(t.Context(), "span.star", []byte(`fail("boom")`))
		if err == nil {
			t.Fatal("should error")
		}
		if !strings.Contains(err.Error(), "boom") {
			t.Fatalf("got %v", err)
		}
		if !strings.Contains(err.Error(), "span: ") {
			t.Fatalf("got %v", err)
		}
	})
}
