package arithconfigs

import (
	"github.com/reusee/arith/logs"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Logs logs.Module
}
