// Package assets provides the embedded document template and CSS styles,
// and the loader abstraction for overriding them from the filesystem.
package assets

// AssetLoader defines the contract for loading CSS styles and HTML templates.
// Implementations may load from embedded assets or the filesystem.
type AssetLoader interface {
	// LoadStyle loads a CSS style by name (without .css extension).
	// Returns ErrStyleNotFound if the style doesn't exist.
	LoadStyle(name string) (string, error)

	// LoadTemplate loads an HTML template by name (without .html extension).
	// Returns ErrTemplateNotFound if the template doesn't exist.
	LoadTemplate(name string) (string, error)
}

// DefaultStyleName is the name of the built-in CSS style.
const DefaultStyleName = "default"

// DocumentTemplateName is the name of the invoice document template.
const DocumentTemplateName = "invoice"
