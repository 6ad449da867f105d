package catalog

import (
	"reflect"
	"testing"
)

func TestEdges_Default(t *testing.T) {
	got := Default().Edges("PackageA")
	want := []Edge{
		{"PackageA", "PackageB"},
		{"PackageB", "PackageD"},
		{"PackageB", "PackageE"},
		{"PackageE", "PackageF"},
		{"PackageE", "PackageG"},
		{"PackageA", "PackageC"},
		{"PackageC", "PackageF"},
	}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("Edges(PackageA) = %v, want %v", got, want)
	}
}

func TestEdges_Leaf(t *testing.T) {
	if got := Default().Edges("PackageD"); len(got) != 0 {
		t.Errorf("Edges(PackageD) = %v, want none", got)
	}
}

func TestEdges_Unknown(t *testing.T) {
	if got := Default().Edges("Newtonsoft.Json"); len(got) != 0 {
		t.Errorf("Edges(unknown) = %v, want none", got)
	}
}

func TestEdges_Cycle(t *testing.T) {
	c := Catalog{
		"a": {"b"},
		"b": {"c"},
		"c": {"a", "b"},
	}

	got := c.Edges("a")
	want := []Edge{{"a", "b"}, {"b", "c"}, {"c", "a"}, {"c", "b"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Edges(a) = %v, want %v", got, want)
	}
}

func TestEdges_SelfLoop(t *testing.T) {
	c := Catalog{"a": {"a"}}

	got := c.Edges("a")
	want := []Edge{{"a", "a"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Edges(a) = %v, want %v", got, want)
	}
}

func TestToDOT(t *testing.T) {
	got := Default().ToDOT("PackageC")
	want := "digraph G {\n" +
		"    \"PackageC\" -> \"PackageF\";\n" +
		"}"

	if got != want {
		t.Errorf("ToDOT(PackageC) = %q, want %q", got, want)
	}
}

func TestToDOT_Unknown(t *testing.T) {
	if got := Default().ToDOT("Missing"); got != "digraph G {\n}" {
		t.Errorf("ToDOT(Missing) = %q, want empty graph", got)
	}
}

func TestDefault_IsFresh(t *testing.T) {
	c := Default()
	c["PackageA"] = nil

	if len(Default()["PackageA"]) != 2 {
		t.Error("Default() should return an independent catalog")
	}
}

func TestPackages(t *testing.T) {
	got := Catalog{"b": nil, "a": nil, "c": nil}.Packages()
	want := []string{"a", "b", "c"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Packages() = %v, want %v", got, want)
	}
	if !Default().Has("PackageG") || Default().Has("PackageZ") {
		t.Error("Has() mismatch for default catalog")
	}
}
