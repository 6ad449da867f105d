package nuget

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"

	"golang.org/x/net/html/charset"

	"github.com/matzehuels/nugraph/pkg/errors"
)

// Namespace is the XML namespace of the manifest elements that are read.
const Namespace = "http://schemas.microsoft.com/packaging/2013/05/nuspec.xsd"

// UnknownFramework is the target framework of dependencies declared in a
// group without a targetFramework attribute.
const UnknownFramework = "Unknown"

// Dependency is one dependency declaration from a manifest.
// The zero value of ID or Version means the attribute was absent.
type Dependency struct {
	TargetFramework string `json:"targetFramework"`
	ID              string `json:"id"`
	Version         string `json:"version"`
}

// Manifest is the package identity and dependency list of a .nuspec document.
type Manifest struct {
	ID           string       `json:"id"`
	Version      string       `json:"version"`
	Dependencies []Dependency `json:"dependencies"`
}

// LoadPackage extracts and parses the manifest of the package archive at path.
func LoadPackage(path string) (*Manifest, error) {
	data, err := ExtractManifest(path)
	if err != nil {
		return nil, err
	}
	return ParseManifest(data)
}

// ParseDependencies parses manifest bytes into dependency records in document
// order. A well-formed document without matching elements yields an empty
// slice and no error.
func ParseDependencies(data []byte) ([]Dependency, error) {
	m, err := ParseManifest(data)
	if err != nil {
		return nil, err
	}
	return m.Dependencies, nil
}

// ParseDependenciesString is [ParseDependencies] for manifest text.
func ParseDependenciesString(s string) ([]Dependency, error) {
	return ParseDependencies([]byte(s))
}

// ParseManifest parses manifest bytes into a [Manifest].
// Malformed XML fails with an ErrCodeMalformedInput error.
func ParseManifest(data []byte) (*Manifest, error) {
	data = bytes.TrimPrefix(data, utf8BOM)

	dec := xml.NewDecoder(bytes.NewReader(data))
	dec.CharsetReader = charset.NewReaderLabel

	var doc nuspecDocument
	if err := dec.Decode(&doc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeMalformedInput, err, "parse manifest")
	}
	if err := expectEOF(dec); err != nil {
		return nil, errors.Wrap(errors.ErrCodeMalformedInput, err, "parse manifest")
	}

	return &Manifest{
		ID:           doc.Metadata.ID,
		Version:      doc.Metadata.Version,
		Dependencies: doc.Metadata.Dependencies.records(),
	}, nil
}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// expectEOF consumes the tokens after the root element. Only whitespace,
// comments and processing instructions may follow it.
func expectEOF(dec *xml.Decoder) error {
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			return fmt.Errorf("unexpected element <%s> after document element", t.Name.Local)
		case xml.CharData:
			if len(bytes.TrimSpace(t)) > 0 {
				return fmt.Errorf("unexpected text after document element")
			}
		}
	}
}

// The root element name is not checked; only its descendants must be in
// the manifest namespace.
type nuspecDocument struct {
	Metadata nuspecMetadata `xml:"http://schemas.microsoft.com/packaging/2013/05/nuspec.xsd metadata"`
}

type nuspecMetadata struct {
	ID           string             `xml:"http://schemas.microsoft.com/packaging/2013/05/nuspec.xsd id"`
	Version      string             `xml:"http://schemas.microsoft.com/packaging/2013/05/nuspec.xsd version"`
	Dependencies nuspecDependencies `xml:"http://schemas.microsoft.com/packaging/2013/05/nuspec.xsd dependencies"`
}

type nuspecDependencies struct {
	Groups []nuspecGroup `xml:"http://schemas.microsoft.com/packaging/2013/05/nuspec.xsd group"`
}

type nuspecGroup struct {
	// nil when the attribute is absent; an empty attribute stays empty.
	TargetFramework *string            `xml:"targetFramework,attr"`
	Dependencies    []nuspecDependency `xml:"http://schemas.microsoft.com/packaging/2013/05/nuspec.xsd dependency"`
}

type nuspecDependency struct {
	ID      string `xml:"id,attr"`
	Version string `xml:"version,attr"`
}

func (d nuspecDependencies) records() []Dependency {
	out := []Dependency{}
	for _, g := range d.Groups {
		framework := UnknownFramework
		if g.TargetFramework != nil {
			framework = *g.TargetFramework
		}
		for _, dep := range g.Dependencies {
			out = append(out, Dependency{
				TargetFramework: framework,
				ID:              dep.ID,
				Version:         dep.Version,
			})
		}
	}
	return out
}
