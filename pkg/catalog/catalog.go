// Package catalog builds dependency graphs from a fixed package table.
//
// It backs the "tree" command, which draws a package's transitive
// dependencies without reading any archive. Traversal is depth-first and
// guarded by a visited set, so cyclic tables terminate.
//
//	dot := catalog.Default().ToDOT("PackageA")
package catalog

import (
	"fmt"
	"slices"
	"strings"
)

// Catalog maps a package name to its direct dependencies, in order.
type Catalog map[string][]string

// Edge is a dependency from one package to another.
type Edge struct {
	From string
	To   string
}

// Default returns the built-in demonstration catalog.
func Default() Catalog {
	return Catalog{
		"PackageA": {"PackageB", "PackageC"},
		"PackageB": {"PackageD", "PackageE"},
		"PackageC": {"PackageF"},
		"PackageD": {},
		"PackageE": {"PackageF", "PackageG"},
		"PackageF": {},
		"PackageG": {},
	}
}

// Packages returns the catalog's package names, sorted.
func (c Catalog) Packages() []string {
	names := make([]string, 0, len(c))
	for name := range c {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Has reports whether name is a catalog entry.
func (c Catalog) Has(name string) bool {
	_, ok := c[name]
	return ok
}

// Edges walks the graph reachable from root. Each package is expanded once;
// an edge is emitted before its target is expanded. A root missing from the
// catalog has no edges.
func (c Catalog) Edges(root string) []Edge {
	var edges []Edge
	visited := make(map[string]bool)

	var walk func(pkg string)
	walk = func(pkg string) {
		if visited[pkg] {
			return
		}
		visited[pkg] = true
		for _, dep := range c[pkg] {
			edges = append(edges, Edge{From: pkg, To: dep})
			walk(dep)
		}
	}
	walk(root)

	return edges
}

// ToDOT renders the graph reachable from root as a DOT digraph named G.
// The output has no trailing newline.
func (c Catalog) ToDOT(root string) string {
	lines := []string{"digraph G {"}
	for _, e := range c.Edges(root) {
		lines = append(lines, fmt.Sprintf("    %q -> %q;", e.From, e.To))
	}
	lines = append(lines, "}")
	return strings.Join(lines, "\n")
}
