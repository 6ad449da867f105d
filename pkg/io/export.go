package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/nugraph/pkg/nuget"
)

// WriteJSON encodes m as indented JSON and writes it to w.
func WriteJSON(m *nuget.Manifest, w io.Writer) error {
	out := *m
	if out.Dependencies == nil {
		out.Dependencies = []nuget.Dependency{}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes m to a JSON file at path.
func ExportJSON(m *nuget.Manifest, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := WriteJSON(m, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
