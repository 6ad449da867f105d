package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/nugraph/pkg/catalog"
	"github.com/matzehuels/nugraph/pkg/errors"
	"github.com/matzehuels/nugraph/pkg/pipeline"
)

// treeCommand creates the tree command for drawing catalog packages.
func (c *CLI) treeCommand() *cobra.Command {
	var (
		opts  pipeline.TreeOptions
		flags renderFlags
	)

	cmd := &cobra.Command{
		Use:   "tree",
		Short: "Draw a package from the built-in catalog",
		Long: fmt.Sprintf(`Draw the transitive dependencies of a package from the built-in catalog.

The catalog is a fixed demonstration table; no package archive is read.
Packages: %s

Without --package, an interactive picker is shown when stdin is a terminal.`,
			strings.Join(catalog.Default().Packages(), ", ")),
		Example: `  nugraph tree --package PackageA --output tree.png`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.Package == "" {
				name, err := c.pickPackage(cmd)
				if err != nil {
					return err
				}
				opts.Package = name
			}
			return c.runTree(cmd, opts, flags)
		},
	}

	cmd.Flags().StringVar(&opts.Package, "package", "", "catalog package to draw")
	cmd.Flags().StringVar(&opts.Output, "output", "", "output image path")
	_ = cmd.MarkFlagRequired("output")
	flags.register(cmd)

	_ = cmd.RegisterFlagCompletionFunc("package", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return catalog.Default().Packages(), cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

func (c *CLI) runTree(cmd *cobra.Command, opts pipeline.TreeOptions, flags renderFlags) error {
	ctx := cmd.Context()
	runner, err := c.newRunner(ctx, flags)
	if err != nil {
		return err
	}

	result, err := withSpinner(cmd, fmt.Sprintf("Rendering %s...", opts.Package), func() (*pipeline.Result, error) {
		return runner.Tree(ctx, opts)
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if result.Stats.DependencyCount == 0 {
		printWarning(out, "%s has no dependencies in the catalog", opts.Package)
	}
	printSuccess(out, "Dependency graph saved to %s", opts.Output)
	return nil
}

// pickPackage asks the user to choose a catalog package.
func (c *CLI) pickPackage(cmd *cobra.Command) (string, error) {
	if !c.interactive() {
		return "", errors.New(errors.ErrCodeInvalidInput, "--package is required")
	}

	p := tea.NewProgram(
		NewPackageListModel(catalog.Default()),
		tea.WithContext(cmd.Context()),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.ErrOrStderr()),
	)
	final, err := p.Run()
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInternal, err, "package picker")
	}

	m, ok := final.(PackageListModel)
	if !ok || m.Selected == "" {
		return "", errors.New(errors.ErrCodeInvalidInput, "no package selected")
	}
	return m.Selected, nil
}
