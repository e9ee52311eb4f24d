package arithconfigs

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/reusee/arith/cmds"
	"github.com/reusee/arith/configs"
	"github.com/reusee/arith/logs"
)

//go:embed schema.cue
var schema string

var configFlag = cmds.Collect[string]("-config", "load config file, may be repeated")

// SearchDirs lists directories searched for config files, most specific first.
type SearchDirs []string

func (Module) SearchDirs() SearchDirs {
	var dirs []string
	if workingDir, err := os.Getwd(); err == nil {
		dirs = append(dirs, workingDir)
	}
	if configDir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, configDir)
	}
	dirs = append(dirs, "/etc")
	return dirs
}

var fileNames = []string{
	"arith.cue",
	".arith.cue",
}

func (Module) ConfigsLoader(
	logger logs.Logger,
	dirs SearchDirs,
) configs.Loader {

	// explicit files win
	paths := append([]string(nil), *configFlag...)

	for _, dir := range dirs {
		for _, filename := range fileNames {
			path := filepath.Join(dir, filename)
			if _, err := os.Stat(path); err == nil {
				paths = append(paths, path)
			}
		}
	}

	if len(paths) > 0 {
		logger.Debug("config file",
			"paths", paths,
		)
	}

	return configs.NewLoader(paths, schema)
}
