package invoicepdf

import (
	"bytes"
	"fmt"
	"image/png"
	"math"

	"github.com/jung-kurt/gofpdf"
)

// assembler abstracts bitmap-to-PDF assembly.
type assembler interface {
	Assemble(image []byte) (pdf []byte, pages int, err error)
}

// A4 portrait page geometry in millimeters.
const (
	pageWidthMM  = 210.0
	pageHeightMM = 297.0
)

// fpdfAssembler slices a bitmap into successive A4 page-height windows.
//
// The full image is scaled to the page width and placed once per page at a
// cumulative negative vertical offset, so each page reveals the next slice.
// Content beyond the page boundary falls outside the media box and is not
// shown. The page count is the ceiling of the scaled height over the page
// height, so a document whose height is an exact page multiple produces
// exactly that many pages with no trailing empty page.
type fpdfAssembler struct{}

// Assemble builds the paginated PDF from a PNG bitmap.
// Returns ErrInvalidBitmap for undecodable or zero-dimension input.
func (a *fpdfAssembler) Assemble(image []byte) ([]byte, int, error) {
	cfg, err := png.DecodeConfig(bytes.NewReader(image))
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrInvalidBitmap, err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, 0, fmt.Errorf("%w: %dx%d", ErrInvalidBitmap, cfg.Width, cfg.Height)
	}

	imgWidth := pageWidthMM
	imgHeight := float64(cfg.Height) * pageWidthMM / float64(cfg.Width)

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, 0)

	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("document", opts, bytes.NewReader(image))
	if pdf.Err() {
		return nil, 0, fmt.Errorf("%w: %v", ErrAssembly, pdf.Error())
	}

	pages := pageCountFor(cfg.Width, cfg.Height)
	offset := 0.0
	for page := 0; page < pages; page++ {
		pdf.AddPage()
		pdf.ImageOptions("document", 0, -offset, imgWidth, imgHeight, false, opts, 0, "")
		offset += pageHeightMM
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrAssembly, err)
	}
	return buf.Bytes(), pages, nil
}

// pageCountFor returns how many A4 pages a bitmap of the given pixel size
// occupies once scaled to page width.
func pageCountFor(widthPx, heightPx int) int {
	if widthPx <= 0 || heightPx <= 0 {
		return 0
	}
	imgHeight := float64(heightPx) * pageWidthMM / float64(widthPx)
	return int(math.Ceil(imgHeight / pageHeightMM))
}

// Compile-time interface check.
var _ assembler = (*fpdfAssembler)(nil)
