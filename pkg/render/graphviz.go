package render

import (
	"bytes"
	"context"
	stderrors "errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/matzehuels/nugraph/pkg/errors"
)

// Graphviz renders by running an external Graphviz layout binary.
type Graphviz struct {
	// Path is the layout binary, either a path or a name looked up in PATH.
	Path string

	// TempDir holds the temporary DOT file. Empty means os.TempDir().
	TempDir string
}

// Render writes dot to a temporary file and runs
// "<Path> -Tpng <file> -o <outputPath>". The temporary file is removed
// before Render returns.
func (g *Graphviz) Render(ctx context.Context, dot, outputPath string) error {
	tmp, err := os.CreateTemp(g.TempDir, "nugraph-*.dot")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.WriteString(dot); err != nil {
		tmp.Close()
		return fmt.Errorf("write %s: %w", tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", tmp.Name(), err)
	}

	return g.run(ctx, "-Tpng", tmp.Name(), "-o", outputPath)
}

func (g *Graphviz) run(ctx context.Context, args ...string) error {
	cmd := exec.CommandContext(ctx, g.Path, args...)

	var errBuf bytes.Buffer
	cmd.Stderr = &errBuf

	if err := cmd.Run(); err != nil {
		te := &errors.ToolError{
			Tool:     g.Path,
			Args:     args,
			ExitCode: -1,
			Stderr:   strings.TrimSpace(errBuf.String()),
			Err:      err,
		}
		var exitErr *exec.ExitError
		if stderrors.As(err, &exitErr) {
			te.ExitCode = exitErr.ExitCode()
		}
		return errors.Wrap(errors.ErrCodeExternalTool, te, "render graph")
	}
	return nil
}
