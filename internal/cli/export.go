package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/klauern/plugindex/internal/export"
	"github.com/klauern/plugindex/internal/ui"
)

func exportCommand() *cli.Command {
	return &cli.Command{
		Name:  "export",
		Usage: "Export the registry index for downstream tooling",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Value:   "json",
				Usage:   "Output format: json, yaml, toml",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Write to a file instead of stdout",
			},
			&cli.BoolFlag{
				Name:  "no-errors",
				Usage: "Omit the build error list from the export",
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			format, err := export.ParseFormat(cmd.String("format"))
			if err != nil {
				return err
			}

			reg, err := buildRegistry(cmd)
			if err != nil {
				return err
			}

			opts := export.DefaultOptions()
			opts.Format = format
			opts.IncludeErrors = !cmd.Bool("no-errors")

			out := os.Stdout
			if path := cmd.String("output"); path != "" {
				// #nosec G304 - output path is provided by the user
				f, err := os.Create(path)
				if err != nil {
					return fmt.Errorf("failed to create output file: %w", err)
				}
				defer func() { _ = f.Close() }()
				out = f
			}

			if err := export.New(opts).Export(reg, out); err != nil {
				return fmt.Errorf("export failed: %w", err)
			}

			if path := cmd.String("output"); path != "" {
				fmt.Println(ui.StatusSuccess("exported to " + path))
			}
			return nil
		},
	}
}
