//go:build windows

package winshot

import (
	"fmt"
	"image"
	"unsafe"

	"golang.org/x/sys/windows"

	"soteshot/internal/core/capture"
)

var (
	user32 = windows.NewLazySystemDLL("user32.dll")

	procIsWindow       = user32.NewProc("IsWindow")
	procGetClientRect  = user32.NewProc("GetClientRect")
	procClientToScreen = user32.NewProc("ClientToScreen")
)

type rect struct {
	Left   int32
	Top    int32
	Right  int32
	Bottom int32
}

type point struct {
	X int32
	Y int32
}

// Locator reports the client area of the foreground window.
type Locator struct{}

func NewLocator() *Locator {
	return &Locator{}
}

func (l *Locator) ForegroundClientRect() (image.Rectangle, error) {
	hwnd := windows.GetForegroundWindow()
	if hwnd == 0 {
		return image.Rectangle{}, capture.ErrNoForegroundWindow
	}
	if ok, _, _ := procIsWindow.Call(uintptr(hwnd)); ok == 0 {
		return image.Rectangle{}, fmt.Errorf("%w: invalid handle 0x%x", capture.ErrNoForegroundWindow, hwnd)
	}

	var client rect
	if ok, _, err := procGetClientRect.Call(uintptr(hwnd), uintptr(unsafe.Pointer(&client))); ok == 0 {
		return image.Rectangle{}, fmt.Errorf("GetClientRect: %w", err)
	}

	var origin point
	if ok, _, err := procClientToScreen.Call(uintptr(hwnd), uintptr(unsafe.Pointer(&origin))); ok == 0 {
		return image.Rectangle{}, fmt.Errorf("ClientToScreen: %w", err)
	}

	topLeft := image.Pt(int(origin.X), int(origin.Y))
	size := image.Pt(int(client.Right-client.Left), int(client.Bottom-client.Top))
	return image.Rectangle{Min: topLeft, Max: topLeft.Add(size)}, nil
}
