package render

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/nugraph/pkg/errors"
)

// Embedded renders in-process with the WebAssembly build of Graphviz.
type Embedded struct {
	// Format is the output format. Empty means PNG.
	Format graphviz.Format
}

// Render lays out dot and writes the image to outputPath.
func (e *Embedded) Render(ctx context.Context, dot, outputPath string) error {
	format := e.Format
	if format == "" {
		format = graphviz.PNG
	}

	gv, err := graphviz.New(ctx)
	if err != nil {
		return fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return errors.Wrap(errors.ErrCodeMalformedInput, err, "parse DOT")
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return errors.Wrap(errors.ErrCodeExternalTool, err, "render graph")
	}

	if err := os.WriteFile(outputPath, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", outputPath, err)
	}
	return nil
}
