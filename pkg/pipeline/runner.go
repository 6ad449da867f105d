package pipeline

import (
	"context"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/nugraph/pkg/catalog"
	pkgio "github.com/matzehuels/nugraph/pkg/io"
	"github.com/matzehuels/nugraph/pkg/nuget"
	"github.com/matzehuels/nugraph/pkg/observability"
	"github.com/matzehuels/nugraph/pkg/render"
	"github.com/matzehuels/nugraph/pkg/render/nodelink"
)

// Runner executes the pipeline with a fixed renderer.
//
// The Runner keeps no per-run state. Multiple goroutines can use the same
// Runner as long as the renderer allows it.
type Runner struct {
	Renderer render.Renderer
	Logger   *log.Logger
}

// NewRunner creates a runner. A nil renderer runs [render.DefaultTool];
// a nil logger uses log.Default().
func NewRunner(r render.Renderer, logger *log.Logger) *Runner {
	if r == nil {
		r = &render.Graphviz{Path: render.DefaultTool}
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Renderer: r, Logger: logger}
}

// Visualize runs the parse → render pipeline for one package archive.
func (r *Runner) Visualize(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	runID := newRunID()
	logger := r.Logger.With("run", runID)

	result, err := r.describe(ctx, logger, opts.Archive, opts.Name)
	if err != nil {
		return nil, err
	}
	result.RunID = runID

	if err := r.render(ctx, logger, result, opts.Output); err != nil {
		return nil, err
	}
	return result, nil
}

// Describe runs only the parse stage: it reads the archive and builds the
// DOT description without rendering it. An empty name selects [DefaultName].
func (r *Runner) Describe(ctx context.Context, archive, name string) (*Result, error) {
	if err := validateSource(archive, name); err != nil {
		return nil, err
	}
	runID := newRunID()

	result, err := r.describe(ctx, r.Logger.With("run", runID), archive, name)
	if err != nil {
		return nil, err
	}
	result.RunID = runID
	return result, nil
}

// Tree renders the dependency tree of a catalog package. A package missing
// from the catalog renders as an empty graph.
func (r *Runner) Tree(ctx context.Context, opts TreeOptions) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	runID := newRunID()
	logger := r.Logger.With("run", runID)

	cat := catalog.Default()
	if !cat.Has(opts.Package) {
		logger.Warn("package not in catalog", "package", opts.Package)
	}

	result := &Result{
		RunID: runID,
		Name:  opts.Package,
		DOT:   cat.ToDOT(opts.Package),
	}
	result.Stats.DependencyCount = len(cat.Edges(opts.Package))

	if err := r.render(ctx, logger, result, opts.Output); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *Runner) describe(ctx context.Context, logger *log.Logger, archive, name string) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	hooks := observability.Pipeline()
	hooks.OnParseStart(ctx, archive)

	start := time.Now()
	m, err := loadManifest(archive)
	elapsed := time.Since(start)

	count := 0
	if m != nil {
		count = len(m.Dependencies)
	}
	hooks.OnParseComplete(ctx, archive, count, elapsed, err)
	if err != nil {
		return nil, err
	}

	if name == "" {
		name = DefaultName(m, archive)
	}
	logger.Info("parsed dependencies",
		"package", name,
		"dependencies", count,
		"duration", elapsed)

	return &Result{
		Name:     name,
		Manifest: m,
		DOT:      nodelink.ToDOT(name, m.Dependencies),
		Stats: Stats{
			DependencyCount: count,
			ParseTime:       elapsed,
		},
	}, nil
}

func (r *Runner) render(ctx context.Context, logger *log.Logger, result *Result, output string) error {
	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, output)

	start := time.Now()
	err := r.Renderer.Render(ctx, result.DOT, output)
	result.Stats.RenderTime = time.Since(start)

	hooks.OnRenderComplete(ctx, output, result.Stats.RenderTime, err)
	if err != nil {
		return err
	}

	logger.Info("rendered graph",
		"output", output,
		"duration", result.Stats.RenderTime)
	return nil
}

func loadManifest(path string) (*nuget.Manifest, error) {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return pkgio.ImportJSON(path)
	}
	return nuget.LoadPackage(path)
}

// newRunID returns the first block of a random UUID.
func newRunID() string {
	id := uuid.New().String()
	return id[:8]
}
