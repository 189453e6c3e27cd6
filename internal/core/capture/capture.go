package capture

import (
	"errors"
	"fmt"
	"image"

	"github.com/kbinani/screenshot"

	"soteshot/internal/core/trigger"
)

var (
	ErrNoForegroundWindow = errors.New("no foreground window")
	ErrEmptyClientArea    = errors.New("client area is empty")
	ErrGrabFailed         = errors.New("screen grab failed")
)

// Error is returned for every failed capture attempt.
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("capture %s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Locator resolves the client area of the foreground window in screen
// coordinates.
type Locator interface {
	ForegroundClientRect() (image.Rectangle, error)
}

type Grabber func(bounds image.Rectangle) (*image.RGBA, error)

type Capturer struct {
	locator Locator
	grab    Grabber
	logger  trigger.Logger
}

func NewCapturer(locator Locator, grab Grabber, logger trigger.Logger) (*Capturer, error) {
	if locator == nil {
		return nil, fmt.Errorf("locator is nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger is nil")
	}
	if grab == nil {
		grab = screenshot.CaptureRect
	}
	return &Capturer{locator: locator, grab: grab, logger: logger}, nil
}

func (c *Capturer) Capture() (*image.RGBA, error) {
	rect, err := c.locator.ForegroundClientRect()
	if err != nil {
		return nil, &Error{Op: "locate", Err: wrapSentinel(err, ErrNoForegroundWindow)}
	}
	if rect.Dx() <= 0 || rect.Dy() <= 0 {
		return nil, &Error{Op: "locate", Err: fmt.Errorf("%w: %dx%d", ErrEmptyClientArea, rect.Dx(), rect.Dy())}
	}

	img, err := c.grab(rect)
	if err != nil {
		return nil, &Error{Op: "grab", Err: fmt.Errorf("%w: %w", ErrGrabFailed, err)}
	}
	if img == nil {
		return nil, &Error{Op: "grab", Err: fmt.Errorf("%w: no image", ErrGrabFailed)}
	}
	if got := img.Bounds().Size(); got != rect.Size() {
		return nil, &Error{Op: "grab", Err: fmt.Errorf("%w: got %v, want %v", ErrGrabFailed, got, rect.Size())}
	}

	c.logger.Debug("Captured client area", "rect", rect.String())
	return img, nil
}

func wrapSentinel(err, sentinel error) error {
	if errors.Is(err, ErrNoForegroundWindow) || errors.Is(err, ErrEmptyClientArea) {
		return err
	}
	return fmt.Errorf("%w: %w", sentinel, err)
}
