package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/nugraph/pkg/errors"
	"github.com/matzehuels/nugraph/pkg/nuget"
)

// ReadJSON decodes a manifest written by [WriteJSON] from r.
// Invalid JSON fails with an ErrCodeMalformedInput error. ReadJSON does not
// close r.
func ReadJSON(r io.Reader) (*nuget.Manifest, error) {
	var m nuget.Manifest
	if err := json.NewDecoder(r).Decode(&m); err != nil {
		return nil, errors.Wrap(errors.ErrCodeMalformedInput, err, "decode manifest JSON")
	}
	if m.Dependencies == nil {
		m.Dependencies = []nuget.Dependency{}
	}
	return &m, nil
}

// ImportJSON reads the JSON manifest file at path.
func ImportJSON(path string) (*nuget.Manifest, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadJSON(f)
}
