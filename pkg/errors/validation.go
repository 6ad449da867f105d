package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// maxPackageIDLength is the longest package ID nuget.org accepts.
const maxPackageIDLength = 100

// ValidatePackageName validates a display name for a graph root.
// It rejects names that could not be written into a DOT node statement
// or a file name safely.
//
// The validation rules are intentionally conservative:
//   - No empty names
//   - No control characters or null bytes
//   - Maximum length of 256 characters
func ValidatePackageName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidPackage, "package name cannot be empty")
	}

	if len(name) > 256 {
		return New(ErrCodeInvalidPackage, "package name too long (max 256 characters)")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidPackage, "package name contains invalid control characters")
		}
	}

	return nil
}

// packageIDRegex matches NuGet package IDs: word characters separated by
// single dots, dashes or underscores.
var packageIDRegex = regexp.MustCompile(`^\w+([_.-]\w+)*$`)

// ValidatePackageID validates a NuGet package ID.
func ValidatePackageID(id string) error {
	if err := ValidatePackageName(id); err != nil {
		return err
	}

	if len(id) > maxPackageIDLength {
		return New(ErrCodeInvalidPackage, "package ID too long (max %d characters)", maxPackageIDLength)
	}

	if !packageIDRegex.MatchString(id) {
		return New(ErrCodeInvalidPackage, "invalid NuGet package ID: %q", id)
	}

	return nil
}

// ValidateFilePath validates a user-supplied file path.
//
// Validation rules:
//   - Path cannot be empty
//   - No null bytes or control characters
func ValidateFilePath(path string) error {
	if strings.TrimSpace(path) == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	return nil
}
