package evals

import (
	"github.com/reusee/arith/arithconfigs"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Configs arithconfigs.Module
}
