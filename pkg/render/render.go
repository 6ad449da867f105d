package render

import (
	"context"

	"github.com/matzehuels/nugraph/pkg/errors"
)

// Renderer lays out a DOT description and writes the image to outputPath.
type Renderer interface {
	Render(ctx context.Context, dot, outputPath string) error
}

// Func adapts an ordinary function to the [Renderer] interface.
type Func func(ctx context.Context, dot, outputPath string) error

// Render calls f(ctx, dot, outputPath).
func (f Func) Render(ctx context.Context, dot, outputPath string) error {
	return f(ctx, dot, outputPath)
}

// Renderer kinds accepted by [New].
const (
	KindExec     = "exec"
	KindEmbedded = "embedded"
)

// DefaultTool is the layout binary used when no path is configured.
const DefaultTool = "dot"

// New returns the renderer for kind. toolPath is the layout binary used by
// [KindExec]; empty means [DefaultTool]. An empty kind selects [KindExec].
func New(kind, toolPath string) (Renderer, error) {
	switch kind {
	case "", KindExec:
		if toolPath == "" {
			toolPath = DefaultTool
		}
		return &Graphviz{Path: toolPath}, nil
	case KindEmbedded:
		return &Embedded{}, nil
	default:
		return nil, errors.New(errors.ErrCodeUnsupported, "unknown renderer %q (must be %q or %q)", kind, KindExec, KindEmbedded)
	}
}
