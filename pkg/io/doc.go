// Package io reads and writes dependency manifests as JSON.
//
// # Export
//
// [WriteJSON] and [ExportJSON] encode a [nuget.Manifest] with two-space
// indentation:
//
//	{
//	  "id": "Serilog.Sinks.File",
//	  "version": "5.0.0",
//	  "dependencies": [
//	    {"targetFramework": ".NETStandard2.0", "id": "Serilog", "version": "2.10.0"}
//	  ]
//	}
//
// # Import
//
// [ReadJSON] and [ImportJSON] decode the same format, so an exported
// dependency list can be edited and rendered again without the original
// package archive. Dependency order is preserved in both directions.
//
// [nuget.Manifest]: github.com/matzehuels/nugraph/pkg/nuget.Manifest
package io
