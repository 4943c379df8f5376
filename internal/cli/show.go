package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/klauern/plugindex/internal/model"
	"github.com/klauern/plugindex/internal/registry"
	"github.com/klauern/plugindex/internal/ui"
)

// previewLines is how much of the body the show command prints without --full.
const previewLines = 20

func showCommand() *cli.Command {
	return &cli.Command{
		Name:      "show",
		Usage:     "Show one document's front matter and body",
		UsageText: "plugindex show <toolkit> <role> <name>",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "full",
				Usage: "Print the entire body instead of a preview",
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			args := cmd.Args()
			if args.Len() != 3 {
				return errors.New("show requires exactly 3 arguments: <toolkit> <role> <name>")
			}

			role, err := model.ParseRole(args.Get(1))
			if err != nil {
				return err
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

			printDocument(doc, cmd.Bool("full"))
			return nil
		},
	}
}

func printDocument(doc *model.Document, full bool) {
	fmt.Printf("%s %s\n", ui.Bold(ui.RoleTitle(doc.Role)+":"), doc.Name)
	fmt.Printf("%s %s\n", ui.Bold("Toolkit:"), doc.Toolkit)
	fmt.Printf("%s %s\n", ui.Bold("Path:"), doc.RelPath)

	if doc.FrontMatter.Len() > 0 {
		fmt.Printf("\n%s\n", ui.Header("Front matter"))
		for _, key := range doc.FrontMatter.Keys() {
			fmt.Printf("  %s: %s\n", key, doc.FrontMatter.GetString(key))
		}
	}

	body := strings.TrimSpace(doc.Body)
	if body == "" {
		return
	}

	fmt.Printf("\n%s\n", ui.Header("Body"))
	lines := strings.Split(body, "\n")
	if !full && len(lines) > previewLines {
		for _, line := range lines[:previewLines] {
			fmt.Println(line)
		}
		fmt.Println(ui.Dim(fmt.Sprintf("... (%d more lines, use --full)", len(lines)-previewLines)))
		return
	}
	fmt.Println(body)
}
