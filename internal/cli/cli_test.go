package cli

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/nugraph/internal/config"
	"github.com/matzehuels/nugraph/pkg/catalog"
	"github.com/matzehuels/nugraph/pkg/errors"
)

const testNuspec = `<?xml version="1.0" encoding="utf-8"?>
<package xmlns="http://schemas.microsoft.com/packaging/2013/05/nuspec.xsd">
  <metadata>
    <id>MyPackage</id>
    <version>1.2.3</version>
    <dependencies>
      <group targetFramework="net5.0">
        <dependency id="TestDep1" version="1.0.0" />
        <dependency id="TestDep2" version="2.0.0" />
      </group>
    </dependencies>
  </metadata>
</package>`

const wantDOT = "digraph Dependencies {\n" +
	"  \"MyPackage\" [shape=box];\n" +
	"  \"MyPackage\" -> \"TestDep1\\nv1.0.0\" [label=\"net5.0\"];\n" +
	"  \"MyPackage\" -> \"TestDep2\\nv2.0.0\" [label=\"net5.0\"];\n" +
	"}\n"

// isolate keeps user config and .env files out of the test and returns a
// scratch directory that is also the working directory.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "xdg"))
	t.Setenv(config.EnvConfig, "")
	t.Setenv(config.EnvGraphviz, "")
	t.Setenv(config.EnvRenderer, "")
	return dir
}

func writePackage(t *testing.T, dir string, entries map[string]string) string {
	t.Helper()
	path := filepath.Join(dir, "MyPackage.1.2.3.nupkg")
	f, err := os.Create(path)
	require.NoError(t, err)
	zw := zip.NewWriter(f)
	for name, body := range entries {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = io.WriteString(w, body)
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())
	return path
}

// fakeDot writes a stand-in layout tool that copies its DOT input to the
// output path, or fails with exitCode when it is non-zero.
func fakeDot(t *testing.T, dir string, exitCode int) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake tool is a POSIX shell script")
	}
	path := filepath.Join(dir, "fake-dot")
	script := "#!/bin/sh\n"
	if exitCode != 0 {
		script += "echo 'syntax error in line 1' >&2\nexit " + strconv.Itoa(exitCode) + "\n"
	} else {
		script += "cp \"$2\" \"$4\"\n"
	}
	require.NoError(t, os.WriteFile(path, []byte(script), 0o755))
	return path
}

func newTestCLI() *CLI {
	c := New(io.Discard, LogInfo)
	c.interactive = func() bool { return false }
	return c
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newTestCLI().RootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestRoot_Visualize(t *testing.T) {
	dir := isolate(t)
	pkg := writePackage(t, dir, map[string]string{"MyPackage.nuspec": testNuspec})
	tool := fakeDot(t, dir, 0)
	output := filepath.Join(dir, "graph.png")

	out, err := execute(t, "--graphviz", tool, "--package", pkg, "--output", output)
	require.NoError(t, err)
	assert.Contains(t, out, "✓ Dependency graph saved to "+output)

	got, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, wantDOT, string(got))
}

func TestRoot_GraphvizFromEnvironment(t *testing.T) {
	dir := isolate(t)
	pkg := writePackage(t, dir, map[string]string{"MyPackage.nuspec": testNuspec})
	t.Setenv(config.EnvGraphviz, fakeDot(t, dir, 0))
	output := filepath.Join(dir, "graph.png")

	_, err := execute(t, "--package", pkg, "--output", output)
	require.NoError(t, err)
	assert.FileExists(t, output)
}

func TestRoot_NameFlag(t *testing.T) {
	dir := isolate(t)
	pkg := writePackage(t, dir, map[string]string{"MyPackage.nuspec": testNuspec})
	output := filepath.Join(dir, "graph.png")

	_, err := execute(t, "--graphviz", fakeDot(t, dir, 0), "--package", pkg, "--output", output, "--name", "Renamed")
	require.NoError(t, err)

	got, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(got), `"Renamed" [shape=box];`)
}

func TestRoot_NoFlagsShowsHelp(t *testing.T) {
	isolate(t)

	out, err := execute(t)
	require.NoError(t, err)
	assert.Contains(t, out, "Usage:")
}

func TestRoot_MissingOutput(t *testing.T) {
	isolate(t)

	_, err := execute(t, "--package", "x.nupkg")
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidInput), "error = %v", err)
}

func TestRoot_ManifestNotFound(t *testing.T) {
	dir := isolate(t)
	pkg := writePackage(t, dir, map[string]string{"lib/net5.0/My.dll": "binary"})

	_, err := execute(t, "--graphviz", fakeDot(t, dir, 0), "--package", pkg, "--output", filepath.Join(dir, "out.png"))
	assert.True(t, errors.Is(err, errors.ErrCodeManifestNotFound), "error = %v", err)
}

func TestRoot_ToolFailure(t *testing.T) {
	dir := isolate(t)
	pkg := writePackage(t, dir, map[string]string{"MyPackage.nuspec": testNuspec})

	_, err := execute(t, "--graphviz", fakeDot(t, dir, 2), "--package", pkg, "--output", filepath.Join(dir, "out.png"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeExternalTool), "error = %v", err)
	assert.Contains(t, errors.UserMessage(err), "syntax error in line 1")
}

func TestRoot_InvalidRenderer(t *testing.T) {
	dir := isolate(t)
	pkg := writePackage(t, dir, map[string]string{"MyPackage.nuspec": testNuspec})

	_, err := execute(t, "--renderer", "cairo", "--package", pkg, "--output", filepath.Join(dir, "out.png"))
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidInput), "error = %v", err)
}

func TestRoot_Version(t *testing.T) {
	out, err := execute(t, "--version")
	require.NoError(t, err)
	assert.Contains(t, out, "nugraph version")
}

func TestTree(t *testing.T) {
	dir := isolate(t)
	output := filepath.Join(dir, "tree.png")

	out, err := execute(t, "tree", "--graphviz", fakeDot(t, dir, 0), "--package", "PackageA", "--output", output)
	require.NoError(t, err)
	assert.Contains(t, out, "Dependency graph saved to")

	got, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, catalog.Default().ToDOT("PackageA"), string(got))
}

func TestTree_UnknownPackageWarns(t *testing.T) {
	dir := isolate(t)

	out, err := execute(t, "tree", "--graphviz", fakeDot(t, dir, 0), "--package", "Missing", "--output", filepath.Join(dir, "tree.png"))
	require.NoError(t, err)
	assert.Contains(t, out, "Missing has no dependencies in the catalog")
}

func TestTree_PackageRequiredWithoutTerminal(t *testing.T) {
	dir := isolate(t)

	_, err := execute(t, "tree", "--output", filepath.Join(dir, "tree.png"))
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidInput), "error = %v", err)
}

func TestDot_Stdout(t *testing.T) {
	dir := isolate(t)
	pkg := writePackage(t, dir, map[string]string{"MyPackage.nuspec": testNuspec})

	out, err := execute(t, "dot", pkg)
	require.NoError(t, err)
	assert.Equal(t, wantDOT, out)
}

func TestDot_File(t *testing.T) {
	dir := isolate(t)
	pkg := writePackage(t, dir, map[string]string{"MyPackage.nuspec": testNuspec})
	output := filepath.Join(dir, "graph.dot")

	out, err := execute(t, "dot", pkg, "-o", output)
	require.NoError(t, err)
	assert.Contains(t, out, "DOT written to "+output)

	got, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, wantDOT, string(got))
}

func TestDeps_Table(t *testing.T) {
	dir := isolate(t)
	pkg := writePackage(t, dir, map[string]string{"MyPackage.nuspec": testNuspec})

	out, err := execute(t, "deps", pkg)
	require.NoError(t, err)
	for _, want := range []string{"MyPackage", "1.2.3", "Framework", "TestDep1", "TestDep2", "2.0.0", "net5.0", "2 dependencies"} {
		assert.Contains(t, out, want)
	}
	assert.Less(t, strings.Index(out, "TestDep1"), strings.Index(out, "TestDep2"), "rows keep manifest order")
}

func TestDeps_JSON(t *testing.T) {
	dir := isolate(t)
	pkg := writePackage(t, dir, map[string]string{"MyPackage.nuspec": testNuspec})

	out, err := execute(t, "deps", "--json", pkg)
	require.NoError(t, err)

	var decoded struct {
		ID           string `json:"id"`
		Dependencies []struct {
			TargetFramework string `json:"targetFramework"`
			ID              string `json:"id"`
		} `json:"dependencies"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, "MyPackage", decoded.ID)
	require.Len(t, decoded.Dependencies, 2)
	assert.Equal(t, "TestDep1", decoded.Dependencies[0].ID)
	assert.Equal(t, "net5.0", decoded.Dependencies[0].TargetFramework)
}

func TestDeps_JSONRoundTrip(t *testing.T) {
	dir := isolate(t)
	pkg := writePackage(t, dir, map[string]string{"MyPackage.nuspec": testNuspec})

	out, err := execute(t, "deps", "--json", pkg)
	require.NoError(t, err)
	exported := filepath.Join(dir, "deps.json")
	require.NoError(t, os.WriteFile(exported, []byte(out), 0o644))

	dot, err := execute(t, "dot", exported)
	require.NoError(t, err)
	assert.Equal(t, wantDOT, dot)
}

func TestDeps_NoDependencies(t *testing.T) {
	dir := isolate(t)
	pkg := writePackage(t, dir, map[string]string{
		"x.nuspec": `<package xmlns="http://schemas.microsoft.com/packaging/2013/05/nuspec.xsd"><metadata><id>Solo</id></metadata></package>`,
	})

	out, err := execute(t, "deps", pkg)
	require.NoError(t, err)
	assert.Contains(t, out, "no dependencies declared")
}

func TestCompletion(t *testing.T) {
	out, err := execute(t, "completion", "bash")
	require.NoError(t, err)
	assert.Contains(t, out, "nugraph")

	_, err = execute(t, "completion", "tcsh")
	assert.Error(t, err)
}

func TestPrintError(t *testing.T) {
	var buf bytes.Buffer
	PrintError(&buf, errors.New(errors.ErrCodeManifestNotFound, "no .nuspec entry in x.nupkg"))
	assert.Equal(t, "✗ no .nuspec entry in x.nupkg\n", buf.String())
}
