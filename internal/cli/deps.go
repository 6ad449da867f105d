package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	pkgio "github.com/matzehuels/nugraph/pkg/io"
	"github.com/matzehuels/nugraph/pkg/nuget"
	"github.com/matzehuels/nugraph/pkg/pipeline"
)

// depsCommand creates the deps command for listing dependency records.
func (c *CLI) depsCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "deps <package>",
		Short: "List the dependencies declared by a package",
		Long: `List the dependencies declared in a package's .nuspec manifest,
one row per dependency in manifest order.

With --json the list is written in the format accepted by --package, so it
can be edited and drawn again:

  nugraph deps --json Serilog.3.1.1.nupkg > deps.json
  nugraph --package deps.json --output deps.png`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			runner := pipeline.NewRunner(nil, loggerFromContext(ctx))

			result, err := runner.Describe(ctx, args[0], "")
			if err != nil {
				return err
			}

			if asJSON {
				return pkgio.WriteJSON(result.Manifest, cmd.OutOrStdout())
			}
			printDependencies(cmd, result.Name, result.Manifest)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "write JSON instead of a table")

	return cmd
}

func printDependencies(cmd *cobra.Command, name string, m *nuget.Manifest) {
	out := cmd.OutOrStdout()

	title := StyleTitle.Render(name)
	if m.Version != "" {
		title += " " + StyleDim.Render(m.Version)
	}
	fmt.Fprintln(out, title)

	if len(m.Dependencies) == 0 {
		printWarning(out, "no dependencies declared")
		return
	}

	rows := make([][]string, len(m.Dependencies))
	for i, d := range m.Dependencies {
		rows[i] = []string{d.TargetFramework, d.ID, d.Version}
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(StyleDim).
		Headers("Framework", "Dependency", "Version").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styleHeader
			}
			if col == 0 {
				return StyleDim
			}
			return StyleValue
		})
	fmt.Fprintln(out, t.Render())
	printDetail(out, "%s dependencies", StyleNumber.Render(fmt.Sprint(len(m.Dependencies))))
}
