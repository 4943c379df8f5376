package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/klauern/plugindex/internal/ui/tui"
)

func browseCommand() *cli.Command {
	return &cli.Command{
		Name:  "browse",
		Usage: "Browse the registry in an interactive terminal UI",
		Action: func(_ context.Context, cmd *cli.Command) error {
			reg, err := buildRegistry(cmd)
			if err != nil {
				return err
			}

			docs := reg.All()
			if len(docs) == 0 {
				fmt.Println("No documents to browse.")
				return nil
			}

			return tui.Browse(docs)
		},
	}
}
