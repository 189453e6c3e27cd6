package main

import (
	"errors"
	"image"
	"image/color"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"soteshot/internal/adapters/singleinstance"
	"soteshot/internal/adapters/winshot"
	"soteshot/internal/core/capture"
	"soteshot/internal/core/preview"
	"soteshot/internal/core/shotter"
	"soteshot/internal/settings"
)

const windowTitle = "Soteseg Maze Screenshotter"

type screenshotTheme struct {
	base fyne.Theme
}

func newScreenshotTheme() fyne.Theme {
	return &screenshotTheme{base: theme.DarkTheme()}
}

func (t *screenshotTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameBackground:
		return color.NRGBA{R: 0x12, G: 0x12, B: 0x12, A: 0xff}
	case theme.ColorNameHeaderBackground, theme.ColorNameOverlayBackground:
		return color.NRGBA{R: 0x18, G: 0x18, B: 0x18, A: 0xff}
	case theme.ColorNameButton:
		return color.NRGBA{R: 0x1e, G: 0x1e, B: 0x1e, A: 0xff}
	case theme.ColorNameDisabledButton:
		return color.NRGBA{R: 0x17, G: 0x17, B: 0x17, A: 0xff}
	case theme.ColorNameInputBorder, theme.ColorNameSeparator:
		return color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff}
	case theme.ColorNameHover:
		return color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0x14}
	case theme.ColorNamePressed:
		return color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0x28}
	case theme.ColorNameForeground:
		return color.White
	case theme.ColorNameError:
		return color.NRGBA{R: 0xff, G: 0x82, B: 0x82, A: 0xff}
	}
	return t.base.Color(name, variant)
}

func (t *screenshotTheme) Font(style fyne.TextStyle) fyne.Resource {
	return t.base.Font(style)
}

func (t *screenshotTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return t.base.Icon(name)
}

func (t *screenshotTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNameInnerPadding:
		return 5
	case theme.SizeNameInputRadius:
		return 0
	}
	return t.base.Size(name)
}

// screenshotView shows either the status text or the last screenshot in the
// same area, the way a single label holds either text or a picture.
type screenshotView struct {
	window   fyne.Window
	status   *widget.Label
	picture  *canvas.Image
	pictures *fyne.Container
	controls fyne.CanvasObject
}

func newScreenshotView(window fyne.Window) *screenshotView {
	status := widget.NewLabel("")
	status.Alignment = fyne.TextAlignCenter
	status.Wrapping = fyne.TextWrapWord

	picture := canvas.NewImageFromImage(nil)
	picture.FillMode = canvas.ImageFillContain
	picture.ScaleMode = canvas.ImageScaleSmooth

	pictures := container.NewCenter(picture)
	pictures.Hide()

	return &screenshotView{
		window:   window,
		status:   status,
		picture:  picture,
		pictures: pictures,
	}
}

func (v *screenshotView) content() fyne.CanvasObject {
	return container.NewStack(container.NewCenter(v.status), v.pictures)
}

func (v *screenshotView) SetStatus(text string) {
	v.status.SetText(text)
	v.pictures.Hide()
	v.status.Show()
}

func (v *screenshotView) ShowImage(img image.Image) {
	size := preview.WindowSize(img.Bounds().Size())
	v.window.Resize(fyne.NewSize(float32(size.X), float32(size.Y)))

	rendered := preview.Render(img, v.displayArea(size))
	fit := rendered.Bounds().Size()

	v.picture.Image = rendered
	v.picture.SetMinSize(fyne.NewSize(float32(fit.X), float32(fit.Y)))
	v.picture.Refresh()
	v.status.Hide()
	v.pictures.Show()
}

func (v *screenshotView) displayArea(window image.Point) image.Point {
	pad := int(theme.Padding())
	controls := 0
	if v.controls != nil {
		controls = int(v.controls.MinSize().Height)
	}
	return image.Pt(max(1, window.X-2*pad), max(1, window.Y-controls-3*pad))
}

func applyDarkTitleBar(window fyne.Window, logger *slog.Logger) {
	native, ok := window.(driver.NativeWindow)
	if !ok {
		logger.Debug("Native window handle unavailable; skipping dark title bar")
		return
	}

	native.RunNative(func(ctx any) {
		wc, ok := ctx.(driver.WindowsWindowContext)
		if !ok {
			return
		}
		if err := winshot.EnableDarkTitleBar(wc.HWND); err != nil {
			logger.Warn("Failed to enable dark mode", "err", err)
		}
	})
}

func startErrorText(err error) string {
	if isPermissionError(err) {
		return permissionDeniedHint()
	}
	msg := err.Error()
	if msg == "" {
		return msg
	}
	return strings.ToUpper(msg[:1]) + msg[1:]
}

func runUI(cfg config) error {
	lock, err := singleinstance.TryLock(singleinstance.DefaultMutexName())
	if err != nil {
		return err
	}
	defer func() { _ = lock.Release() }()

	fApp := app.New()
	fApp.Settings().SetTheme(newScreenshotTheme())

	window := fApp.NewWindow(windowTitle)
	window.Resize(fyne.NewSize(preview.MinWindowWidth, preview.MinWindowHeight))
	window.CenterOnScreen()

	logGrid := widget.NewTextGrid()
	logGrid.SetText("")
	logScroll := container.NewVScroll(logGrid)
	logScroll.SetMinSize(fyne.NewSize(0, 120))

	const maxUILogLines = 50
	var logMu sync.Mutex
	logLines := make([]string, 0, maxUILogLines)
	debugLogs := debugLogsEnabled()
	appendLogLine := func(line string) {
		if !debugLogs {
			return
		}

		line = strings.TrimSpace(line)
		if line == "" {
			return
		}

		logMu.Lock()
		logLines = append(logLines, line)
		if len(logLines) > maxUILogLines {
			logLines = logLines[len(logLines)-maxUILogLines:]
		}
		logText := strings.Join(logLines, "\n")
		logMu.Unlock()

		fyne.Do(func() {
			logGrid.SetText(logText)
			logScroll.ScrollToBottom()
		})
	}

	logger := newSlogLogger(cfg.logLevel, appendLogLine)
	if warning := platformWarning(); warning != "" {
		logger.Warn(warning)
	}

	capturer, err := capture.NewCapturer(winshot.NewLocator(), nil, logger)
	if err != nil {
		return err
	}

	view := newScreenshotView(window)
	ctrl, err := shotter.NewController(shotter.Config{
		Store:       settings.NewStore(cfg.settingsPath, logger),
		NewListener: newListenerFactory(logger),
		Capturer:    capturer,
		View:        view,
		Dispatch:    fyne.Do,
	}, logger)
	if err != nil {
		return err
	}

	customizeBtn := widget.NewButton("Customize Screenshot Button", func() {
		if err := ctrl.Customize(); err != nil && !errors.Is(err, shotter.ErrBindingPending) {
			logger.Error("Failed to start screenshot button capture", "err", err)
		}
	})
	revertBtn := widget.NewButton("Revert to Default Button", func() {
		if err := ctrl.Revert(); err != nil {
			logger.Error("Failed to revert screenshot button", "err", err)
		}
	})
	controls := container.NewVBox(customizeBtn, revertBtn)
	view.controls = controls

	var closeOnce sync.Once
	cleanup := func() {
		closeOnce.Do(func() {
			ctrl.Shutdown()
		})
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	requestQuit := func() {
		fyne.Do(func() {
			cleanup()
			fApp.Quit()
		})
	}

	go func() {
		<-sigCh
		requestQuit()
	}()

	// Some GUI backends can leave Ctrl+C as raw ETX byte instead of SIGINT.
	go func() {
		buf := make([]byte, 1)
		for {
			n, err := os.Stdin.Read(buf)
			if err != nil {
				return
			}
			if n == 1 && buf[0] == 3 {
				requestQuit()
				return
			}
		}
	}()

	window.SetCloseIntercept(func() {
		cleanup()
		fApp.Quit()
	})

	fApp.Lifecycle().SetOnStarted(func() {
		applyDarkTitleBar(window, logger)
		if err := ctrl.Start(); err != nil {
			logger.Error("Failed to start input listener", "err", err)
			view.SetStatus(startErrorText(err))
		}
	})

	mainPanel := container.NewBorder(nil, controls, nil, nil, view.content())

	var rootContent fyne.CanvasObject = container.NewPadded(mainPanel)
	if debugLogs {
		logsCard := widget.NewCard("Logs", "", logScroll)
		split := container.NewVSplit(rootContent, logsCard)
		split.SetOffset(0.8)
		rootContent = split
	}

	window.SetContent(rootContent)
	window.ShowAndRun()
	cleanup()
	return nil
}
