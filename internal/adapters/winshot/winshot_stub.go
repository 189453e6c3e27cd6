//go:build !windows

package winshot

import (
	"fmt"
	"image"
)

type Locator struct{}

func NewLocator() *Locator {
	return &Locator{}
}

func (l *Locator) ForegroundClientRect() (image.Rectangle, error) {
	return image.Rectangle{}, fmt.Errorf("foreground window lookup is only available on Windows")
}

// EnableDarkTitleBar does nothing outside Windows.
func EnableDarkTitleBar(uintptr) error {
	return nil
}
