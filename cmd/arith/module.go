package main

import (
	"github.com/reusee/arith/debugs"
	"github.com/reusee/arith/evals"
	"github.com/reusee/arith/scripts"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Evals   evals.Module
	Scripts scripts.Module
	Debugs  debugs.Module
}
