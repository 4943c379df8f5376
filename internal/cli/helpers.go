package cli

import (
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/klauern/plugindex/internal/registry"
	"github.com/klauern/plugindex/internal/util"
)

// buildRegistry resolves the registry root (flag, then config) and builds
// the index. Per-file failures stay inside the returned registry.
func buildRegistry(cmd *cli.Command) (*registry.Registry, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	root := cfg.ResolvedRoot()
	if flagRoot := cmd.String("root"); flagRoot != "" {
		root = util.ExpandHome(flagRoot)
	}

	reg, err := registry.BuildWithOptions(root, registry.Options{
		Ignore: cfg.Registry.Ignore,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build registry: %w", err)
	}
	return reg, nil
}
