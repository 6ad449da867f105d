package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/nugraph/pkg/pipeline"
)

// dotCommand creates the dot command for printing the graph description.
func (c *CLI) dotCommand() *cobra.Command {
	var name, output string

	cmd := &cobra.Command{
		Use:   "dot <package>",
		Short: "Print the DOT description of a package's dependencies",
		Long: `Print the Graphviz DOT description of a package's dependencies
without rendering it.

The output is exactly what the root command hands to Graphviz, so it can be
piped into another layout program:

  nugraph dot Serilog.3.1.1.nupkg | neato -Tsvg -o serilog.svg`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			runner := pipeline.NewRunner(nil, loggerFromContext(ctx))

			result, err := runner.Describe(ctx, args[0], name)
			if err != nil {
				return err
			}

			if output == "" || output == "-" {
				_, err := io.WriteString(cmd.OutOrStdout(), result.DOT)
				return err
			}
			if err := os.WriteFile(output, []byte(result.DOT), 0o644); err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}
			printSuccess(cmd.OutOrStdout(), "DOT written to %s", output)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "root node label (default: package id)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")

	return cmd
}
