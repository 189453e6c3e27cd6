//go:build windows

package winshot

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

// EnableDarkTitleBar asks DWM to draw the title bar of hwnd in dark mode.
// Builds older than Windows 10 20H1 reject the attribute.
func EnableDarkTitleBar(hwnd uintptr) error {
	if hwnd == 0 {
		return fmt.Errorf("window handle is nil")
	}
	value := int32(1)
	if err := windows.DwmSetWindowAttribute(
		windows.HWND(hwnd),
		windows.DWMWA_USE_IMMERSIVE_DARK_MODE,
		unsafe.Pointer(&value),
		uint32(unsafe.Sizeof(value)),
	); err != nil {
		return fmt.Errorf("DwmSetWindowAttribute: %w", err)
	}
	return nil
}
