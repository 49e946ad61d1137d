// Package yamlutil wraps YAML parsing for invoice documents and tool
// configuration behind one seam, isolating the goccy/go-yaml dependency
// from its callers.
package yamlutil

import (
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"
)

// MaxDocumentSize bounds a single YAML document. Invoice files and configs
// are small; the cap matches the render service's request body limit so a
// file that parses here is also accepted over HTTP.
var MaxDocumentSize = 4 << 20

var (
	ErrEmptyDocument  = errors.New("yamlutil: document is empty")
	ErrNilDestination = errors.New("yamlutil: destination must be a non-nil pointer")
	ErrDocumentTooBig = errors.New("yamlutil: document exceeds size limit")
)

func check(data []byte, v any) error {
	switch {
	case len(data) == 0:
		return ErrEmptyDocument
	case len(data) > MaxDocumentSize:
		return fmt.Errorf("%w: %d bytes (max %d)", ErrDocumentTooBig, len(data), MaxDocumentSize)
	case v == nil:
		return ErrNilDestination
	}
	return nil
}

// Unmarshal parses a YAML document leniently. Unknown fields are ignored,
// so invoice files written against a newer API shape still load.
func Unmarshal(data []byte, v any) error {
	if err := check(data, v); err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, v); err != nil {
		return fmt.Errorf("yamlutil: %w", err)
	}
	return nil
}

// UnmarshalStrict rejects unknown fields. Used for configuration, where a
// misspelled key silently ignored would mask an operator error.
func UnmarshalStrict(data []byte, v any) error {
	if err := check(data, v); err != nil {
		return err
	}
	if err := yaml.UnmarshalWithOptions(data, v, yaml.Strict()); err != nil {
		return fmt.Errorf("yamlutil: %w", err)
	}
	return nil
}
