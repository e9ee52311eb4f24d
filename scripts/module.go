package scripts

import (
	"github.com/reusee/arith/evals"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Evals evals.Module
}
