package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/klauern/plugindex/internal/model"
	"github.com/klauern/plugindex/internal/scaffold"
	"github.com/klauern/plugindex/internal/ui"
	"github.com/klauern/plugindex/internal/util"
)

func newCommand() *cli.Command {
	return &cli.Command{
		Name:      "new",
		Usage:     "Scaffold a new agent, skill, or command document",
		UsageText: "plugindex new <role> <toolkit> <name>",
		Description: `Create a starter document in the right place inside a toolkit:

   agents go to <toolkit>/agents/<name>.md
   skills go to <toolkit>/skills/<name>/SKILL.md
   commands go to <toolkit>/commands/<name>.md`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "description",
				Aliases: []string{"d"},
				Value:   "TODO: describe this document",
				Usage:   "Description written into the front matter",
			},
			&cli.StringSliceFlag{
				Name:  "tool",
				Usage: "Tool to declare in front matter (repeatable)",
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			args := cmd.Args()
			if args.Len() != 3 {
				return errors.New("new requires exactly 3 arguments: <role> <toolkit> <name>")
			}

			role, err := model.ParseRole(args.Get(0))
			if err != nil {
				return err
			}
			if !role.IsPrimary() {
				return fmt.Errorf("cannot scaffold role %q", role)
			}

			cfg, err := loadConfig(cmd)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			root := cfg.ResolvedRoot()
			if flagRoot := cmd.String("root"); flagRoot != "" {
				root = util.ExpandHome(flagRoot)
			}

			gen, err := scaffold.New()
			if err != nil {
				return err
			}

			target, err := gen.Write(root, args.Get(1), role, scaffold.Data{
				Name:        args.Get(2),
				Description: cmd.String("description"),
				Toolkit:     args.Get(1),
				Tools:       cmd.StringSlice("tool"),
			})
			if err != nil {
				return err
			}

			fmt.Println(ui.StatusSuccess("created " + target))
			return nil
		},
	}
}
