package assets

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEmbeddedLoaderStyles(t *testing.T) {
	loader := NewEmbeddedLoader()

	for _, name := range []string{DefaultStyleName, "compact"} {
		css, err := loader.LoadStyle(name)
		if err != nil {
			t.Errorf("LoadStyle(%q) error = %v", name, err)
			continue
		}
		if !strings.Contains(css, "{") {
			t.Errorf("style %q does not look like CSS", name)
		}
	}

	if _, err := loader.LoadStyle("missing"); !errors.Is(err, ErrStyleNotFound) {
		t.Errorf("LoadStyle(missing) error = %v, want ErrStyleNotFound", err)
	}
}

func TestEmbeddedLoaderTemplate(t *testing.T) {
	loader := NewEmbeddedLoader()

	tmpl, err := loader.LoadTemplate(DocumentTemplateName)
	if err != nil {
		t.Fatalf("LoadTemplate() error = %v", err)
	}
	if !strings.Contains(tmpl, "{{.Invoice.Number}}") {
		t.Error("invoice template missing invoice number placeholder")
	}

	if _, err := loader.LoadTemplate("missing"); !errors.Is(err, ErrTemplateNotFound) {
		t.Errorf("LoadTemplate(missing) error = %v, want ErrTemplateNotFound", err)
	}
}

func TestValidateAssetName(t *testing.T) {
	valid := []string{"default", "compact", "my-style", "style_2"}
	for _, name := range valid {
		if err := ValidateAssetName(name); err != nil {
			t.Errorf("ValidateAssetName(%q) = %v, want nil", name, err)
		}
	}

	invalid := []string{"", "../etc/passwd", "a/b", "a\\b", "style.css", "."}
	for _, name := range invalid {
		if err := ValidateAssetName(name); !errors.Is(err, ErrInvalidAssetName) {
			t.Errorf("ValidateAssetName(%q) = %v, want ErrInvalidAssetName", name, err)
		}
	}
}

func TestFilesystemLoaderOverrideAndFallback(t *testing.T) {
	base := t.TempDir()
	if err := os.MkdirAll(filepath.Join(base, "styles"), 0o750); err != nil {
		t.Fatal(err)
	}
	custom := ".document { width: 600px }"
	if err := os.WriteFile(filepath.Join(base, "styles", "default.css"), []byte(custom), 0o600); err != nil {
		t.Fatal(err)
	}

	loader, err := NewFilesystemLoader(base)
	if err != nil {
		t.Fatalf("NewFilesystemLoader() error = %v", err)
	}

	// Override wins.
	css, err := loader.LoadStyle(DefaultStyleName)
	if err != nil {
		t.Fatalf("LoadStyle() error = %v", err)
	}
	if css != custom {
		t.Errorf("LoadStyle() = %q, want override content", css)
	}

	// Names missing on disk fall back to embedded assets.
	if _, err := loader.LoadStyle("compact"); err != nil {
		t.Errorf("fallback LoadStyle(compact) error = %v", err)
	}
	if _, err := loader.LoadTemplate(DocumentTemplateName); err != nil {
		t.Errorf("fallback LoadTemplate() error = %v", err)
	}

	// Unknown everywhere still errors.
	if _, err := loader.LoadStyle("nowhere"); !errors.Is(err, ErrStyleNotFound) {
		t.Errorf("LoadStyle(nowhere) error = %v, want ErrStyleNotFound", err)
	}
}

func TestNewFilesystemLoaderBadBase(t *testing.T) {
	if _, err := NewFilesystemLoader("/no/such/directory"); !errors.Is(err, ErrInvalidBasePath) {
		t.Errorf("error = %v, want ErrInvalidBasePath", err)
	}

	file := filepath.Join(t.TempDir(), "f")
	if err := os.WriteFile(file, []byte("x"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := NewFilesystemLoader(file); !errors.Is(err, ErrInvalidBasePath) {
		t.Errorf("file base error = %v, want ErrInvalidBasePath", err)
	}
}
