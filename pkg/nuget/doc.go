// Package nuget reads dependency metadata from NuGet packages.
//
// # Overview
//
// A NuGet package (.nupkg) is a zip archive holding a single XML manifest,
// the .nuspec file. This package locates that manifest and turns its
// dependency groups into a flat, ordered list of [Dependency] records:
//
//	data, err := nuget.ExtractManifest("Serilog.3.1.1.nupkg")
//	deps, err := nuget.ParseDependencies(data)
//
// [LoadPackage] does both steps and also returns the package identity:
//
//	m, err := nuget.LoadPackage("Serilog.3.1.1.nupkg")
//	fmt.Println(m.ID, m.Version, len(m.Dependencies))
//
// # Manifest Location
//
// [ExtractManifest] returns the first archive entry, in central-directory
// order, whose name ends with [ManifestSuffix]. The match is case-sensitive.
// An archive with no such entry fails with an
// [github.com/matzehuels/nugraph/pkg/errors.ErrCodeManifestNotFound] error
// before any parsing happens.
//
// # Dependency Groups
//
// Dependencies are read from the element path
// metadata/dependencies/group/dependency, with every element in the
// [Namespace] XML namespace. Each record inherits the targetFramework
// attribute of its group, or [UnknownFramework] when the group has none.
// Records keep document order: groups first, then dependencies within a group.
//
// Attribute presence is not validated. A dependency without an id or version
// attribute produces a record with an empty ID or Version.
package nuget
