// Package pipeline provides the visualization pipeline for nugraph.
//
// The pipeline has two stages:
//
//  1. Parse: extract the .nuspec manifest from a package archive and read its
//     dependency groups, then build the DOT description
//  2. Render: hand the DOT text to a [render.Renderer] that writes the image
//
// # Usage
//
//	r, _ := render.New(render.KindExec, "dot")
//	runner := pipeline.NewRunner(r, logger)
//	result, err := runner.Visualize(ctx, pipeline.Options{
//	    Archive: "Serilog.3.1.1.nupkg",
//	    Output:  "serilog.png",
//	})
//
// [Runner.Describe] runs only the parse stage, and [Runner.Tree] renders a
// package from the built-in catalog instead of an archive.
//
// Archives whose name ends in .json are read as manifests exported by
// [github.com/matzehuels/nugraph/pkg/io.ExportJSON].
package pipeline

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/matzehuels/nugraph/pkg/errors"
	"github.com/matzehuels/nugraph/pkg/nuget"
)

// Options configures a [Runner.Visualize] run.
type Options struct {
	Archive string // Package archive (.nupkg) or exported manifest (.json)
	Output  string // Image path written by the renderer
	Name    string // Root node label; see [DefaultName]
}

// Validate checks that the paths are usable and that Name, if set, is a
// valid display name.
func (o *Options) Validate() error {
	if err := validateSource(o.Archive, o.Name); err != nil {
		return err
	}
	return validatePath("output", o.Output)
}

// TreeOptions configures a [Runner.Tree] run.
type TreeOptions struct {
	Package string // Catalog package used as the root
	Output  string // Image path written by the renderer
}

// Validate checks the package name and output path.
func (o *TreeOptions) Validate() error {
	if err := errors.ValidatePackageName(o.Package); err != nil {
		return err
	}
	return validatePath("output", o.Output)
}

func validateSource(archive, name string) error {
	if err := validatePath("archive", archive); err != nil {
		return err
	}
	if name != "" {
		return errors.ValidatePackageName(name)
	}
	return nil
}

// validatePath prefixes path validation errors with the role of the path.
func validatePath(role, path string) error {
	if err := errors.ValidateFilePath(path); err != nil {
		return errors.New(errors.GetCode(err), "%s %s", role, errors.UserMessage(err))
	}
	return nil
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// RunID tags the log lines of this run.
	RunID string

	// Name is the label of the root node.
	Name string

	// Manifest is the parsed manifest. It is nil for catalog runs.
	Manifest *nuget.Manifest

	// DOT is the generated graph description.
	DOT string

	// Stats contains timing and size information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	DependencyCount int
	ParseTime       time.Duration
	RenderTime      time.Duration
}

// DefaultName returns the root label used when none is given: the manifest
// id, or the archive file name without its extension when the id is empty.
func DefaultName(m *nuget.Manifest, archive string) string {
	if m != nil && m.ID != "" {
		return m.ID
	}
	base := filepath.Base(archive)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
