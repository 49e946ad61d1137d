// Package fileutil provides small file and path helpers shared by the
// capture pipeline and the CLI.
package fileutil

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

var (
	ErrExtensionEmpty         = errors.New("temp file extension cannot be empty")
	ErrExtensionPathTraversal = errors.New("temp file extension contains a separator or null byte")
)

// WriteTempFile stages content in the system temp directory so headless
// Chrome can load it from a file:// URL. The returned cleanup removes the
// file; callers defer it so the document never outlives its capture.
func WriteTempFile(content, extension string) (path string, cleanup func(), err error) {
	if err := ValidateExtension(extension); err != nil {
		return "", nil, err
	}

	tmp, err := os.CreateTemp("", "invoicepdf-*."+extension)
	if err != nil {
		return "", nil, fmt.Errorf("creating temp file: %w", err)
	}
	path = tmp.Name()
	cleanup = func() { _ = os.Remove(path) }

	_, err = tmp.WriteString(content)
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		cleanup()
		return "", nil, fmt.Errorf("writing temp file: %w", err)
	}
	return path, cleanup, nil
}

// ValidateExtension rejects extensions that could place the temp file
// outside the temp directory or truncate its name.
func ValidateExtension(extension string) error {
	if extension == "" {
		return ErrExtensionEmpty
	}
	if strings.ContainsAny(extension, "/\\\x00") {
		return ErrExtensionPathTraversal
	}
	return nil
}

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// IsFilePath reports whether a style argument looks like a path rather than
// a built-in name. Anything containing a path separator is a path.
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// IsCSS reports whether a style argument looks like raw CSS content rather
// than a name or path.
func IsCSS(s string) bool {
	return strings.Contains(s, "{")
}
