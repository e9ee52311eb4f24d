package cmds

import (
	"fmt"
	"testing"
)

func TestVar(t *testing.T) {
	policy := Var[string]("TestVar-overflow")
	limit := Var[int]("TestVar-limit")
	GlobalExecutor.MustExecute([]string{
		"TestVar-overflow", "saturate",
		"TestVar-limit", "42",
	})
	if *policy != "saturate" {
		t.Fatal()
	}
	if *limit != 42 {
		t.Fatal()
	}
	GlobalExecutor.MustExecute([]string{
		"TestVar-overflow.",
	})
	if *policy != "" {
		t.Fatal()
	}
}

func TestSwitch(t *testing.T) {
	strict := Switch("TestSwitch")
	if err := Execute([]string{
		"TestSwitch",
	}); err != nil {
		t.Fatal(err)
	}
	if !*strict {
		t.Fatal()
	}
	GlobalExecutor.MustExecute([]string{
		"!TestSwitch",
	})
	if *strict {
		t.Fatal()
	}
}

func TestCollect(t *testing.T) {
	exprs := Collect[string]("TestCollect")
	GlobalExecutor.MustExecute([]string{
		"TestCollect", "1+2",
		"TestCollect", "3*4",
	})
	if str := fmt.Sprintf("%v", *exprs); str != "[1+2 3*4]" {
		t.Fatalf("got %s", str)
	}
}

func TestTypedVar(t *testing.T) {
	type Policy string
	v := Var[Policy]("TestTypedVar")
	GlobalExecutor.MustExecute([]string{
		"TestTypedVar", "wrap",
	})
	if *v != "wrap" {
		t.Fatal()
	}
}
