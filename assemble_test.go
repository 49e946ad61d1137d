package invoicepdf

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"
)

// makePNG encodes a white widthxheight PNG for assembly tests.
func makePNG(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.White)
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encoding test PNG: %v", err)
	}
	return buf.Bytes()
}

func TestAssembleSinglePage(t *testing.T) {
	// 210x297 px scales to exactly one A4 page height.
	a := &fpdfAssembler{}
	pdf, pages, err := a.Assemble(makePNG(t, 210, 297))
	if err != nil {
		t.Fatalf("Assemble() error = %v", err)
	}
	if pages != 1 {
		t.Errorf("pages = %d, want 1", pages)
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF")) {
		t.Errorf("output does not start with %%PDF header")
	}
}

// Content height equal to exactly one page must not produce a trailing
// empty second page.
func TestAssembleExactPageBoundary(t *testing.T) {
	a := &fpdfAssembler{}

	// Exactly two page heights: 210 wide, 594 = 2*297 tall.
	_, pages, err := a.Assemble(makePNG(t, 210, 594))
	if err != nil {
		t.Fatalf("Assemble() error = %v", err)
	}
	if pages != 2 {
		t.Errorf("pages = %d, want 2", pages)
	}
}

func TestAssembleMultiPage(t *testing.T) {
	// One pixel over a single page height spills onto a second page.
	a := &fpdfAssembler{}
	_, pages, err := a.Assemble(makePNG(t, 210, 298))
	if err != nil {
		t.Fatalf("Assemble() error = %v", err)
	}
	if pages != 2 {
		t.Errorf("pages = %d, want 2", pages)
	}
}

func TestAssembleInvalidBitmap(t *testing.T) {
	a := &fpdfAssembler{}

	tests := []struct {
		name  string
		input []byte
	}{
		{"empty", nil},
		{"garbage", []byte("not a png")},
		{"truncated header", []byte{0x89, 'P', 'N', 'G'}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := a.Assemble(tt.input)
			if err == nil {
				t.Fatal("Assemble() succeeded on invalid input")
			}
			if !errors.Is(err, ErrInvalidBitmap) {
				t.Errorf("error = %v, want ErrInvalidBitmap", err)
			}
		})
	}
}

func TestPageCountFor(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		want          int
	}{
		{"exactly one page", 210, 297, 1},
		{"exactly two pages", 210, 594, 2},
		{"just over one page", 210, 298, 2},
		{"short document", 210, 100, 1},
		{"wide bitmap scales down", 420, 594, 1},
		{"zero width", 0, 297, 0},
		{"zero height", 210, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := pageCountFor(tt.width, tt.height); got != tt.want {
				t.Errorf("pageCountFor(%d, %d) = %d, want %d", tt.width, tt.height, got, tt.want)
			}
		})
	}
}
