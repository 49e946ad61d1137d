package assets

import (
	"fmt"
	"os"
	"path/filepath"
)

// FilesystemLoader loads assets from a directory tree with the layout:
//
//	<base>/styles/<name>.css
//	<base>/templates/<name>.html
//
// Names missing on disk fall back to the embedded assets, so a custom
// directory only needs to contain the assets it overrides.
type FilesystemLoader struct {
	base     string
	fallback *EmbeddedLoader
}

// NewFilesystemLoader creates a FilesystemLoader rooted at base.
// Returns ErrInvalidBasePath if base is not an existing directory.
func NewFilesystemLoader(base string) (*FilesystemLoader, error) {
	info, err := os.Stat(base)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidBasePath, base)
	}
	return &FilesystemLoader{base: base, fallback: NewEmbeddedLoader()}, nil
}

// LoadStyle loads a CSS style by name, falling back to embedded assets.
func (f *FilesystemLoader) LoadStyle(name string) (string, error) {
	if err := ValidateAssetName(name); err != nil {
		return "", err
	}

	path := filepath.Join(f.base, "styles", name+".css")
	content, err := os.ReadFile(path) // #nosec G304 -- name is validated, base is user-chosen
	if err != nil {
		return f.fallback.LoadStyle(name)
	}
	return string(content), nil
}

// LoadTemplate loads an HTML template by name, falling back to embedded assets.
func (f *FilesystemLoader) LoadTemplate(name string) (string, error) {
	if err := ValidateAssetName(name); err != nil {
		return "", err
	}

	path := filepath.Join(f.base, "templates", name+".html")
	content, err := os.ReadFile(path) // #nosec G304 -- name is validated, base is user-chosen
	if err != nil {
		return f.fallback.LoadTemplate(name)
	}
	return string(content), nil
}

// Compile-time interface check.
var _ AssetLoader = (*FilesystemLoader)(nil)
