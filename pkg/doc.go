// Package pkg provides the libraries behind the nugraph command.
//
// # Overview
//
// nugraph draws the declared dependencies of a NuGet package. The pkg
// directory is organized by pipeline stage:
//
//  1. [nuget] - Read the .nuspec manifest from a package archive
//  2. [render/nodelink] - Describe the dependencies as a DOT graph
//  3. [render] - Turn DOT into an image with Graphviz
//  4. [pipeline] - Orchestration (parse → render)
//
// Supporting packages:
//   - [catalog]: built-in package table for the tree command
//   - [io]: JSON export and import of dependency lists
//   - [errors]: structured errors with machine-readable codes
//   - [observability]: pipeline hooks for metrics and tracing
//   - [buildinfo]: version information
//
// # Data Flow
//
//	package.nupkg
//	     ↓
//	[nuget] ExtractManifest → ParseDependencies
//	     ↓
//	[render/nodelink] ToDOT
//	     ↓
//	[render] Graphviz: dot -Tpng <tmp.dot> -o <output.png>
//
// # Quick Start
//
//	import (
//	    "github.com/matzehuels/nugraph/pkg/nuget"
//	    "github.com/matzehuels/nugraph/pkg/render"
//	    "github.com/matzehuels/nugraph/pkg/render/nodelink"
//	)
//
//	m, err := nuget.LoadPackage("Serilog.3.1.1.nupkg")
//	if err != nil {
//	    return err
//	}
//	dot := nodelink.ToDOT(m.ID, m.Dependencies)
//	r := &render.Graphviz{Path: "dot"}
//	err = r.Render(ctx, dot, "serilog.png")
//
// [pipeline.Runner] runs the same steps with logging and hooks.
//
// [nuget]: https://pkg.go.dev/github.com/matzehuels/nugraph/pkg/nuget
// [render]: https://pkg.go.dev/github.com/matzehuels/nugraph/pkg/render
// [render/nodelink]: https://pkg.go.dev/github.com/matzehuels/nugraph/pkg/render/nodelink
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/nugraph/pkg/pipeline
// [pipeline.Runner]: https://pkg.go.dev/github.com/matzehuels/nugraph/pkg/pipeline#Runner
// [catalog]: https://pkg.go.dev/github.com/matzehuels/nugraph/pkg/catalog
// [io]: https://pkg.go.dev/github.com/matzehuels/nugraph/pkg/io
// [errors]: https://pkg.go.dev/github.com/matzehuels/nugraph/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/nugraph/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/nugraph/pkg/buildinfo
package pkg
