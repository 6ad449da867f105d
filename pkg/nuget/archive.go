package nuget

import (
	"archive/zip"
	stderrors "errors"
	"fmt"
	"io"
	"strings"

	"github.com/matzehuels/nugraph/pkg/errors"
)

// ManifestSuffix is the file name suffix of the manifest entry in a package.
const ManifestSuffix = ".nuspec"

// ExtractManifest opens the zip archive at path and returns the decompressed
// content of its first entry whose name ends with [ManifestSuffix].
//
// Invalid archives fail with an ErrCodeMalformedInput error wrapping the zip
// error. Other I/O errors, such as a missing file, are returned wrapped with
// the path.
func ExtractManifest(path string) ([]byte, error) {
	r, err := zip.OpenReader(path)
	if err != nil {
		if isZipFormatError(err) {
			return nil, errors.Wrap(errors.ErrCodeMalformedInput, err, "read archive %s", path)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer r.Close()

	return readManifest(&r.Reader, path)
}

// ReadManifest is like [ExtractManifest] for an archive already in memory
// or otherwise accessible through r.
func ReadManifest(r io.ReaderAt, size int64) ([]byte, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		if isZipFormatError(err) {
			return nil, errors.Wrap(errors.ErrCodeMalformedInput, err, "read archive")
		}
		return nil, err
	}
	return readManifest(zr, "package")
}

// readManifest reads the manifest entry of zr; label names the archive in errors.
func readManifest(zr *zip.Reader, label string) ([]byte, error) {
	f := findManifest(zr.File)
	if f == nil {
		return nil, errors.New(errors.ErrCodeManifestNotFound, "no %s entry in %s", ManifestSuffix, label)
	}

	rc, err := f.Open()
	if err != nil {
		return nil, classify(err, f.Name)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, classify(err, f.Name)
	}
	return data, nil
}

func findManifest(files []*zip.File) *zip.File {
	for _, f := range files {
		if strings.HasSuffix(f.Name, ManifestSuffix) {
			return f
		}
	}
	return nil
}

func classify(err error, entry string) error {
	if isZipFormatError(err) {
		return errors.Wrap(errors.ErrCodeMalformedInput, err, "read entry %s", entry)
	}
	return fmt.Errorf("read entry %s: %w", entry, err)
}

func isZipFormatError(err error) bool {
	return stderrors.Is(err, zip.ErrFormat) ||
		stderrors.Is(err, zip.ErrAlgorithm) ||
		stderrors.Is(err, zip.ErrChecksum) ||
		stderrors.Is(err, io.ErrUnexpectedEOF)
}
