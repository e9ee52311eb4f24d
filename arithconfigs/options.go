package arithconfigs

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/reusee/arith/arith"
	"github.com/reusee/arith/cmds"
	"github.com/reusee/arith/configs"
	"github.com/reusee/arith/vars"
)

var (
	overflowFlag = cmds.Var[string]("-overflow", "overflow policy: fail, wrap or saturate")
	strictFlag   = cmds.Switch("-strict", "reject input after a complete expression")
)

func overflowPolicyName(loader configs.Loader) string {
	return vars.FirstNonZero(
		*overflowFlag,
		configs.First[string](loader, "overflow"),
		arith.OverflowFail.String(),
	)
}

// OverflowPolicy panics on an unknown policy name; Check reports it first.
func (Module) OverflowPolicy(
	loader configs.Loader,
) arith.OverflowPolicy {
	policy, err := arith.ParseOverflowPolicy(overflowPolicyName(loader))
	if err != nil {
		panic(err)
	}
	return policy
}

type Strict bool

func (Module) Strict(
	loader configs.Loader,
) Strict {
	return Strict(*strictFlag || configs.First[bool](loader, "strict"))
}

type Prompt string

func (Module) Prompt(
	loader configs.Loader,
) Prompt {
	return Prompt(vars.FirstNonZero(
		configs.First[string](loader, "prompt"),
		"> ",
	))
}

type HistoryFile string

func (Module) HistoryFile(
	loader configs.Loader,
) HistoryFile {
	if path := configs.First[string](loader, "history_file"); path != "" {
		return HistoryFile(path)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return HistoryFile(filepath.Join(home, ".arith_history"))
}

// Options assembles evaluation options from flags and config files.
func (Module) Options(
	policy arith.OverflowPolicy,
	strict Strict,
) arith.Options {
	return arith.Options{
		Overflow: policy,
		Strict:   bool(strict),
	}
}

// Check validates the config files and the -overflow flag eagerly.
type Check func() error

func (Module) Check(
	loader configs.Loader,
) Check {
	return func() error {
		if err := loader.Err(); err != nil {
			return fmt.Errorf("config: %w", err)
		}
		if _, err := arith.ParseOverflowPolicy(overflowPolicyName(loader)); err != nil {
			return fmt.Errorf("config: %w", err)
		}
		return nil
	}
}
