package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/klauern/plugindex/internal/model"
	"github.com/klauern/plugindex/internal/registry"
)

func lookupCommand() *cli.Command {
	return &cli.Command{
		Name:      "lookup",
		Usage:     "Look up a single document by toolkit, role, and name",
		UsageText: "plugindex lookup <toolkit> <role> <name>",
		Description: `Resolve one document and print its path. Exits nonzero when the
   toolkit or document does not exist, with a message distinguishing
   the two cases.

   Examples:
     plugindex lookup ansible-toolkit agent playbook-architect
     plugindex lookup go-toolkit command smart-commit`,
		Action: func(_ context.Context, cmd *cli.Command) error {
			args := cmd.Args()
			if args.Len() != 3 {
				return errors.New("lookup requires exactly 3 arguments: <toolkit> <role> <name>")
			}

			role, err := model.ParseRole(args.Get(1))
			if err != nil {
				return err
			}
			if !role.IsPrimary() {
				return fmt.Errorf("role %q does not participate in lookup", role)
			}

			reg, err := buildRegistry(cmd)
			if err != nil {
				return err
			}

			doc, err := reg.Lookup(args.Get(0), role, args.Get(2))
			if err != nil {
				var notFound *registry.NotFoundError
				if errors.As(err, &notFound) {
					return cli.Exit(notFound.Error(), 1)
				}
				return err
			}

			fmt.Println(doc.Path)
			return nil
		},
	}
}
