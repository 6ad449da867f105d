package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/matzehuels/nugraph/pkg/errors"
	"github.com/matzehuels/nugraph/pkg/pipeline"
)

// runVisualize draws the dependency graph of one package archive.
func (c *CLI) runVisualize(cmd *cobra.Command, opts pipeline.Options, flags renderFlags) error {
	if opts.Archive == "" {
		return errors.New(errors.ErrCodeInvalidInput, "--package is required")
	}
	if opts.Output == "" {
		return errors.New(errors.ErrCodeInvalidInput, "--output is required")
	}

	ctx := cmd.Context()
	runner, err := c.newRunner(ctx, flags)
	if err != nil {
		return err
	}

	prog := newProgress(loggerFromContext(ctx))
	result, err := withSpinner(cmd, fmt.Sprintf("Rendering %s...", filepath.Base(opts.Archive)), func() (*pipeline.Result, error) {
		return runner.Visualize(ctx, opts)
	})
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Drew %s with %d dependencies", result.Name, result.Stats.DependencyCount))

	printSuccess(cmd.OutOrStdout(), "Dependency graph saved to %s", opts.Output)
	return nil
}

// withSpinner runs fn while a spinner is shown on a terminal stderr.
func withSpinner[T any](cmd *cobra.Command, message string, fn func() (T, error)) (T, error) {
	if !stderrIsTerminal() {
		return fn()
	}
	s := newSpinner(cmd.Context(), cmd.ErrOrStderr(), message)
	s.Start()
	defer s.Stop()
	return fn()
}
