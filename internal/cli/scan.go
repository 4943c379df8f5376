package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/klauern/plugindex/internal/model"
	"github.com/klauern/plugindex/internal/registry"
	"github.com/klauern/plugindex/internal/ui"
)

// toolkitSummary holds per-toolkit counts for scan output.
type toolkitSummary struct {
	Name     string `json:"name"`
	Agents   int    `json:"agents"`
	Skills   int    `json:"skills"`
	Commands int    `json:"commands"`
}

// scanSummary holds the scan command's JSON output shape.
type scanSummary struct {
	Root     string           `json:"root"`
	Toolkits []toolkitSummary `json:"toolkits"`
	Errors   []string         `json:"errors,omitempty"`
	Warnings []string         `json:"warnings,omitempty"`
}

func scanCommand() *cli.Command {
	return &cli.Command{
		Name:  "scan",
		Usage: "Scan the plugins tree and report what was indexed",
		Description: `Build the registry from the plugins directory and print a summary
   of the toolkits, documents, and any files that failed to parse.

   A malformed file never aborts the scan; it is reported alongside the
   successfully indexed documents.`,
		Flags: []cli.Flag{
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

			summary := summarize(reg)

			switch cmd.String("format") {
			case "json":
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(summary)
			case "table":
				printScanTable(reg, summary)
				return nil
			default:
				return fmt.Errorf("unsupported format: %s (use table or json)", cmd.String("format"))
			}
		},
	}
}

func summarize(reg *registry.Registry) scanSummary {
	summary := scanSummary{Root: reg.Root()}

	for name := range reg.Toolkits() {
		tk, _ := reg.Toolkit(name)
		summary.Toolkits = append(summary.Toolkits, toolkitSummary{
			Name:     name,
			Agents:   tk.Count(model.RoleAgent),
			Skills:   tk.Count(model.RoleSkill),
			Commands: tk.Count(model.RoleCommand),
		})
	}
	for _, be := range reg.Errors() {
		summary.Errors = append(summary.Errors, be.Error())
	}
	for _, w := range reg.Warnings() {
		summary.Warnings = append(summary.Warnings, w.String())
	}

	return summary
}

func printScanTable(reg *registry.Registry, summary scanSummary) {
	fmt.Printf("%s %s\n\n", ui.Bold("Registry:"), reg.Root())

	fmt.Printf("%s  %s  %s  %s\n",
		ui.Header(ui.Pad("TOOLKIT", 24)),
		ui.Header(ui.Pad("AGENTS", 6)),
		ui.Header(ui.Pad("SKILLS", 6)),
		ui.Header(ui.Pad("COMMANDS", 8)))

	for _, tk := range summary.Toolkits {
		fmt.Printf("%s  %-6d  %-6d  %-8d\n", ui.Pad(tk.Name, 24), tk.Agents, tk.Skills, tk.Commands)
	}

	total := reg.Len()
	fmt.Printf("\n%s\n", ui.StatusSuccess(fmt.Sprintf("%d document(s) indexed", total)))

	for _, w := range summary.Warnings {
		fmt.Println(ui.StatusWarning(w))
	}
	for _, e := range summary.Errors {
		fmt.Println(ui.StatusError(e))
	}
}
