package invoicepdf

import (
	"context"
	"errors"
	"testing"
	"time"
)

// Capture with an already-cancelled context must fail before touching the
// browser; no Chrome launch happens in unit tests.
func TestCaptureImageCancelledContext(t *testing.T) {
	c := newRodCapturer(time.Second, DefaultDocumentWidth, DefaultScale)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.CaptureImage(ctx, "<html></html>")
	if !errors.Is(err, context.Canceled) {
		t.Errorf("CaptureImage() error = %v, want context.Canceled", err)
	}
	if c.browser != nil {
		t.Error("browser was connected despite cancelled context")
	}
}

func TestCaptureCloseWithoutBrowser(t *testing.T) {
	c := newRodCapturer(time.Second, DefaultDocumentWidth, DefaultScale)
	if err := c.Close(); err != nil {
		t.Errorf("Close() on unconnected capturer error = %v", err)
	}
}

func TestNewRodCapturerDefaults(t *testing.T) {
	c := newRodCapturer(5*time.Second, 600, 1.5)
	if c.timeout != 5*time.Second || c.width != 600 || c.scale != 1.5 {
		t.Errorf("capturer settings = %+v", c)
	}
}
