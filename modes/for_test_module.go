package modes

import "github.com/reusee/dscope"

type ModuleForTest struct {
	dscope.Module
}

func ForTest() ModuleForTest {
	return ModuleForTest{}
}

func (ModuleForTest) Mode() Mode {
	return ModeDevelopment
}

func (ModuleForTest) TraceTokens(
	mode Mode,
) TraceTokens {
	return mode == ModeDevelopment
}
