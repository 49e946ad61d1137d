package fileutil

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestWriteTempFile(t *testing.T) {
	path, cleanup, err := WriteTempFile("<html></html>", "html")
	if err != nil {
		t.Fatalf("WriteTempFile() error = %v", err)
	}
	defer cleanup()

	if !strings.HasSuffix(path, ".html") {
		t.Errorf("path %q missing extension", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading temp file: %v", err)
	}
	if string(data) != "<html></html>" {
		t.Errorf("content = %q", data)
	}

	cleanup()
	if FileExists(path) {
		t.Error("cleanup did not remove the file")
	}
}

func TestValidateExtension(t *testing.T) {
	tests := []struct {
		name string
		ext  string
		want error
	}{
		{"valid", "html", nil},
		{"empty", "", ErrExtensionEmpty},
		{"forward slash", "a/b", ErrExtensionPathTraversal},
		{"backslash", "a\\b", ErrExtensionPathTraversal},
		{"null byte", "a\x00b", ErrExtensionPathTraversal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := ValidateExtension(tt.ext); !errors.Is(err, tt.want) {
				t.Errorf("ValidateExtension(%q) = %v, want %v", tt.ext, err, tt.want)
			}
		})
	}
}

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "a.txt")
	if err := os.WriteFile(file, []byte("x"), 0o600); err != nil {
		t.Fatal(err)
	}

	if !FileExists(file) {
		t.Error("FileExists(existing file) = false")
	}
	if FileExists(dir) {
		t.Error("FileExists(directory) = true")
	}
	if FileExists(filepath.Join(dir, "missing")) {
		t.Error("FileExists(missing) = true")
	}
}

func TestClassifiers(t *testing.T) {
	if !IsFilePath("./styles/custom.css") || IsFilePath("compact") {
		t.Error("IsFilePath misclassified")
	}
	if !IsCSS("body { margin: 0 }") || IsCSS("compact") {
		t.Error("IsCSS misclassified")
	}
}
