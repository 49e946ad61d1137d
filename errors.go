package invoicepdf

import "errors"

// Sentinel errors for library operations.
var (
	ErrNilInvoice     = errors.New("invoice cannot be nil")
	ErrRenderFailed   = errors.New("invoice rendering failed")
	ErrCaptureFailed  = errors.New("bitmap capture failed")
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")

	// Assembly errors.
	ErrInvalidBitmap = errors.New("invalid bitmap")
	ErrAssembly      = errors.New("document assembly failed")

	// Option validation errors.
	ErrInvalidScale         = errors.New("invalid capture scale")
	ErrInvalidDocumentWidth = errors.New("invalid document width")

	// Asset loading errors.
	ErrInvalidAssetPath = errors.New("invalid asset path")
)
