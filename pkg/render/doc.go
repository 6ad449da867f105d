// Package render turns DOT graph descriptions into image files.
//
// # Overview
//
// [Renderer] is the capability the pipeline depends on. Two implementations
// are provided:
//
//   - [Graphviz] shells out to a Graphviz layout binary such as dot. The
//     description is written to a temporary file that is removed after the
//     tool exits, whether it succeeded or not.
//   - [Embedded] lays the graph out in-process with
//     [github.com/goccy/go-graphviz] and needs no installed binary.
//
// Use [New] to build one by name:
//
//	r, err := render.New(render.KindExec, "/usr/bin/dot")
//	err = r.Render(ctx, dot, "graph.png")
//
// # Tool Contract
//
// [Graphviz] runs exactly
//
//	<Path> -Tpng <temp .dot file> -o <output>
//
// and waits for it. A nonzero exit status or a failure to start the process
// is returned as an ErrCodeExternalTool error whose cause is a
// [github.com/matzehuels/nugraph/pkg/errors.ToolError] carrying the exit
// status and captured standard error. No timeout is applied; cancelling ctx
// kills the process.
package render
