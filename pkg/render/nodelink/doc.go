// Package nodelink turns a package and its dependency records into a
// Graphviz DOT node-link diagram.
//
// # Usage
//
//	deps, err := nuget.ParseDependencies(data)
//	dot := nodelink.ToDOT("MyPackage", deps)
//
// The result is handed to a [github.com/matzehuels/nugraph/pkg/render.Renderer]
// to produce an image.
//
// # DOT Format
//
// The root package is a boxed node. Every dependency record becomes one edge
// from the root to a node labeled with the dependency ID and version on two
// lines, and the edge is labeled with the record's target framework:
//
//	digraph Dependencies {
//	  "MyPackage" [shape=box];
//	  "MyPackage" -> "TestDep1\nv1.0.0" [label="net5.0"];
//	}
//
// Edges appear in record order and the output ends with a newline. A
// dependency declared under several target frameworks yields one edge per
// declaration; Graphviz merges them into parallel edges on the same node.
package nodelink
