//go:build !windows

package winshot

import (
	"errors"
	"image"
	"testing"

	"soteshot/internal/core/capture"
)

type noopLogger struct{}

func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}

func TestStubCaptureFailsWithoutGrabbing(t *testing.T) {
	grabbed := false
	grab := func(image.Rectangle) (*image.RGBA, error) {
		grabbed = true
		return nil, nil
	}

	c, err := capture.NewCapturer(NewLocator(), grab, noopLogger{})
	if err != nil {
		t.Fatalf("NewCapturer returned error: %v", err)
	}
	if _, err := c.Capture(); !errors.Is(err, capture.ErrNoForegroundWindow) {
		t.Fatalf("Capture() err=%v, want ErrNoForegroundWindow", err)
	}
	if grabbed {
		t.Fatalf("grabber must not run without a foreground window")
	}
}

func TestStubDarkTitleBarIsNoop(t *testing.T) {
	if err := EnableDarkTitleBar(0); err != nil {
		t.Fatalf("EnableDarkTitleBar returned error: %v", err)
	}
}
