package nodelink

import (
	"bytes"
	"fmt"

	"github.com/matzehuels/nugraph/pkg/nuget"
)

// ToDOT renders pkg and its dependency records as a DOT digraph.
// The output is a pure function of its arguments.
func ToDOT(pkg string, deps []nuget.Dependency) string {
	var buf bytes.Buffer
	buf.WriteString("digraph Dependencies {\n")
	fmt.Fprintf(&buf, "  %q [shape=box];\n", pkg)
	for _, d := range deps {
		fmt.Fprintf(&buf, "  %q -> %q [label=%q];\n", pkg, nodeLabel(d), d.TargetFramework)
	}
	buf.WriteString("}\n")
	return buf.String()
}

// nodeLabel is the dependency node ID; %q turns the newline into DOT's \n escape.
func nodeLabel(d nuget.Dependency) string {
	return d.ID + "\nv" + d.Version
}
