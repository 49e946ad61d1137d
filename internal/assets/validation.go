package assets

import "fmt"

// ValidateAssetName checks that a style or template name is usable as the
// stem of an asset file. Names carry no extension and no path: the loaders
// append ".css" or ".html" themselves, so a separator or dot in the name
// would escape the styles/ and templates/ directories or swap extensions.
func ValidateAssetName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidAssetName)
	}
	for _, r := range name {
		switch r {
		case '/', '\\', '.':
			return fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
		}
	}
	return nil
}
