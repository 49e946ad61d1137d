package invoicepdf

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"

	"github.com/alnah/go-invoicepdf/internal/fileutil"
)

// capturer abstracts HTML-to-bitmap capture to allow different backends.
type capturer interface {
	CaptureImage(ctx context.Context, htmlContent string) ([]byte, error)
	Close() error
}

// Capture defaults. The document width matches A4 at 96 DPI; the scale
// factor supersamples the bitmap so text stays legible after it is
// compressed into page slices.
const (
	DefaultDocumentWidth = 794
	DefaultScale         = 2.0
	captureViewportHigh  = 1123 // initial viewport height; full-page capture extends it
)

// rodCapturer captures rendered HTML as a full-page PNG using headless
// Chrome via go-rod. Rod automatically downloads Chromium on first run.
type rodCapturer struct {
	browser *rod.Browser
	timeout time.Duration
	width   int
	scale   float64
}

// newRodCapturer creates a rodCapturer with the given settings.
func newRodCapturer(timeout time.Duration, width int, scale float64) *rodCapturer {
	return &rodCapturer{timeout: timeout, width: width, scale: scale}
}

// ensureBrowser lazily connects to the browser.
func (c *rodCapturer) ensureBrowser() error {
	if c.browser != nil {
		return nil
	}

	l := launcher.New()

	// Use pre-installed browser if specified (Docker/containerized environments)
	if bin := os.Getenv("ROD_BROWSER_BIN"); bin != "" {
		l = l.Bin(bin)
	}

	// NoSandbox required for CI and containerized environments
	if os.Getenv("CI") == "true" || os.Getenv("ROD_BROWSER_BIN") != "" {
		l = l.NoSandbox(true)
	}

	u, err := l.Launch()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}

	c.browser = rod.New().ControlURL(u)
	if err := c.browser.Connect(); err != nil {
		c.browser = nil
		return fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}
	return nil
}

// Close releases browser resources.
func (c *rodCapturer) Close() error {
	if c.browser != nil {
		err := c.browser.Close()
		c.browser = nil
		return err
	}
	return nil
}

// CaptureImage loads the HTML in headless Chrome and captures a full-page
// PNG at the configured width and scale factor.
//
// The HTML is written to a temp file for the duration of the capture and
// removed on every exit path, including errors. A broken or cross-origin
// image inside the document does not fail the page load event, so a missing
// logo degrades to a blank image slot instead of aborting the capture.
func (c *rodCapturer) CaptureImage(ctx context.Context, htmlContent string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := c.ensureBrowser(); err != nil {
		return nil, err
	}

	tmpPath, cleanup, err := fileutil.WriteTempFile(htmlContent, "html")
	if err != nil {
		return nil, err
	}
	defer cleanup()

	page, err := c.browser.Page(proto.TargetCreateTarget{URL: "file://" + tmpPath})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageCreate, err)
	}
	defer page.Close()

	// Off-screen documents have no natural layout width; force a fixed
	// document-style width before capture.
	if err := page.SetViewport(&proto.EmulationSetDeviceMetricsOverride{
		Width:             c.width,
		Height:            captureViewportHigh,
		DeviceScaleFactor: c.scale,
		Mobile:            false,
	}); err != nil {
		return nil, fmt.Errorf("%w: setting viewport: %v", ErrCaptureFailed, err)
	}

	// Wait for page load with timeout from context or default
	timeout := c.timeout
	if deadline, ok := ctx.Deadline(); ok {
		timeout = time.Until(deadline)
		if timeout <= 0 {
			return nil, context.DeadlineExceeded
		}
	}

	if err := page.Timeout(timeout).WaitLoad(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageLoad, err)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	img, err := page.Screenshot(true, &proto.PageCaptureScreenshot{
		Format: proto.PageCaptureScreenshotFormatPng,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCaptureFailed, err)
	}

	return img, nil
}

// Compile-time interface check.
var _ capturer = (*rodCapturer)(nil)
