package debugs

import (
	"github.com/reusee/arith/arithconfigs"
	"github.com/reusee/arith/logs"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Logs    logs.Module
	Configs arithconfigs.Module
}
