package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/klauern/plugindex/internal/model"
	"github.com/klauern/plugindex/internal/registry"
	"github.com/klauern/plugindex/internal/ui"
)

func listCommand() *cli.Command {
	return &cli.Command{
		Name:      "list",
		Aliases:   []string{"ls"},
		Usage:     "List toolkits, or the documents of one toolkit",
		UsageText: "plugindex list [toolkit]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "role",
				Usage: "Filter documents by role: agent, skill, command",
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Value:   "table",
				Usage:   "Output format: table, json",
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			reg, err := buildRegistry(cmd)
			if err != nil {
				return err
			}

			if cmd.Args().Len() == 0 {
				return listToolkits(reg, cmd.String("format"))
			}
			return listDocuments(reg, cmd.Args().Get(0), cmd.String("role"), cmd.String("format"))
		},
	}
}

func listToolkits(reg *registry.Registry, format string) error {
	names := make([]string, 0)
	for name := range reg.Toolkits() {
		names = append(names, name)
	}

	if format == "json" {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(names)
	}

	if len(names) == 0 {
		fmt.Println("No toolkits found.")
		return nil
	}
	for _, name := range names {
		line := name
		if tk, ok := reg.Toolkit(name); ok && tk.Manifest != nil && tk.Manifest.Description != "" {
			line += "  " + ui.Dim(tk.Manifest.Description)
		}
		fmt.Println(line)
	}
	return nil
}

func listDocuments(reg *registry.Registry, toolkit, roleFilter, format string) error {
	roles := model.PrimaryRoles()
	if roleFilter != "" {
		role, err := model.ParseRole(roleFilter)
		if err != nil {
			return err
		}
		roles = []model.Role{role}
	}

	var docs []*model.Document
	for _, role := range roles {
		roleDocs, err := reg.Documents(toolkit, role)
		if err != nil {
			return err
		}
		docs = append(docs, roleDocs...)
	}

	if format == "json" {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(docs)
	}

	if len(docs) == 0 {
		fmt.Printf("No documents found in toolkit %q.\n", toolkit)
		return nil
	}

	descWidth := max(ui.TermWidth()-48, 20)
	fmt.Printf("%s  %s  %s\n",
		ui.Header(ui.Pad("ROLE", 8)),
		ui.Header(ui.Pad("NAME", 30)),
		ui.Header("DESCRIPTION"))
	for _, d := range docs {
		fmt.Printf("%s  %s  %s\n",
			ui.Pad(string(d.Role), 8),
			ui.Pad(d.Name, 30),
			ui.Truncate(strings.ReplaceAll(d.Description, "\n", " "), descWidth))
	}
	fmt.Printf("\nTotal: %d document(s)\n", len(docs))
	return nil
}
