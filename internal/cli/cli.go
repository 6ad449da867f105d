// Package cli implements the nugraph command-line interface.
//
// The root command draws the dependency graph of a NuGet package archive:
//
//	nugraph --graphviz dot --package Serilog.3.1.1.nupkg --output serilog.png
//
// Subcommands:
//   - tree: draw a package from the built-in catalog
//   - dot: print the DOT description without rendering it
//   - deps: list the dependency records of a package
//   - completion: generate shell completion scripts
//
// All commands support --verbose (-v) for debug-level logging. The logger is
// attached to the command context.
package cli

import (
	"context"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/matzehuels/nugraph/internal/config"
	"github.com/matzehuels/nugraph/pkg/buildinfo"
	"github.com/matzehuels/nugraph/pkg/pipeline"
	"github.com/matzehuels/nugraph/pkg/render"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// interactive reports whether prompts may be shown.
	interactive func() bool
}

// New creates a CLI that logs to w at the given level.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger:      newLogger(w, level),
		interactive: stdinIsTerminal,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	var (
		verbose bool
		opts    pipeline.Options
		flags   renderFlags
	)

	root := &cobra.Command{
		Use:   "nugraph",
		Short: "nugraph draws the dependency graph of a NuGet package",
		Long: `nugraph reads the .nuspec manifest inside a NuGet package archive and
draws the package's declared dependencies as a PNG image.

Each dependency group becomes a set of edges from the package to its
dependencies, labeled with the group's target framework. Images are laid out
by Graphviz.`,
		Example: `  nugraph --graphviz dot --package Serilog.3.1.1.nupkg --output serilog.png
  nugraph --package deps.json --output deps.png --renderer embedded`,
		Args:          cobra.NoArgs,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := LogInfo
			if verbose {
				level = LogDebug
			}
			c.SetLogLevel(level)
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.Archive == "" && opts.Output == "" {
				return cmd.Help()
			}
			return c.runVisualize(cmd, opts, flags)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.Flags().StringVar(&opts.Archive, "package", "", "package archive (.nupkg) or exported dependency list (.json)")
	root.Flags().StringVar(&opts.Output, "output", "", "output image path")
	root.Flags().StringVar(&opts.Name, "name", "", "root node label (default: package id)")
	flags.register(root)

	root.AddCommand(c.treeCommand())
	root.AddCommand(c.dotCommand())
	root.AddCommand(c.depsCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// renderFlags are the flags of commands that render an image.
type renderFlags struct {
	graphviz string
	renderer string
}

func (f *renderFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.graphviz, "graphviz", "", "path to the Graphviz layout program (default \"dot\")")
	cmd.Flags().StringVar(&f.renderer, "renderer", "", "renderer: exec (run Graphviz) or embedded (built-in)")
}

// newRunner resolves the configuration and creates a pipeline runner.
func (c *CLI) newRunner(ctx context.Context, flags renderFlags) (*pipeline.Runner, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	cfg.Override(flags.graphviz, flags.renderer)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger := loggerFromContext(ctx)
	logger.Debug("resolved configuration", "renderer", cfg.Renderer, "graphviz", cfg.Graphviz)

	r, err := render.New(cfg.Renderer, cfg.Graphviz)
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(r, logger), nil
}

func stdinIsTerminal() bool {
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// stderrIsTerminal reports whether progress animation can be shown.
func stderrIsTerminal() bool {
	fd := os.Stderr.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
