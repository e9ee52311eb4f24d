package modes

import "github.com/reusee/dscope"

type ModuleForProduction struct {
	dscope.Module
}

func ForProduction() ModuleForProduction {
	return ModuleForProduction{}
}

func (ModuleForProduction) Mode() Mode {
	return ModeProduction
}

func (ModuleForProduction) TraceTokens(
	mode Mode,
) TraceTokens {
	return mode == ModeDevelopment
}
