//go:build windows

package wininput

import (
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"
	"unsafe"

	"golang.org/x/sys/windows"

	"soteshot/internal/core/trigger"
)

const (
	whKeyboardLL = 13
	whMouseLL    = 14

	wmQuit = 0x0012

	llmhfInjected        = 0x00000001
	llkhfInjected        = 0x00000010
	llkhfLowerILInjected = 0x00000002

	tuDontChangeState = 0x0004
)

var (
	user32 = windows.NewLazySystemDLL("user32.dll")

	procSetWindowsHookExW        = user32.NewProc("SetWindowsHookExW")
	procUnhookWindowsHookEx      = user32.NewProc("UnhookWindowsHookEx")
	procCallNextHookEx           = user32.NewProc("CallNextHookEx")
	procGetMessageW              = user32.NewProc("GetMessageW")
	procTranslateMessage         = user32.NewProc("TranslateMessage")
	procDispatchMessageW         = user32.NewProc("DispatchMessageW")
	procPostThreadMessageW       = user32.NewProc("PostThreadMessageW")
	procGetAsyncKeyState         = user32.NewProc("GetAsyncKeyState")
	procGetKeyState              = user32.NewProc("GetKeyState")
	procGetKeyboardLayout        = user32.NewProc("GetKeyboardLayout")
	procGetWindowThreadProcessID = user32.NewProc("GetWindowThreadProcessId")
	procToUnicodeEx              = user32.NewProc("ToUnicodeEx")

	mouseHookCallback    = windows.NewCallback(mouseLLCallback)
	keyboardHookCallback = windows.NewCallback(keyboardLLCallback)

	activeListener atomic.Pointer[Listener]
)

type point struct {
	X int32
	Y int32
}

type mouseLLHookStruct struct {
	Pt          point
	MouseData   uint32
	Flags       uint32
	Time        uint32
	DwExtraInfo uintptr
}

type keyboardLLHookStruct struct {
	VkCode      uint32
	ScanCode    uint32
	Flags       uint32
	Time        uint32
	DwExtraInfo uintptr
}

type message struct {
	Hwnd     uintptr
	Message  uint32
	WParam   uintptr
	LParam   uintptr
	Time     uint32
	Pt       point
	LPrivate uint32
}

// Listener installs process-wide low-level mouse and keyboard hooks. Only one
// Listener can be started at a time; a stopped Listener cannot be restarted.
type Listener struct {
	logger trigger.Logger

	onMouse func(trigger.Input)
	onKey   func(trigger.Input)

	stopOnce sync.Once
	started  atomic.Bool
	stopped  atomic.Bool

	threadID atomic.Uint32
	loopMu   sync.Mutex
	loopDone chan struct{}
}

func NewListener(logger trigger.Logger) (*Listener, error) {
	if logger == nil {
		return nil, fmt.Errorf("logger is nil")
	}
	return &Listener{
		logger:   logger,
		loopDone: closedSignalChan(),
	}, nil
}

func (l *Listener) Start(onMouse, onKey func(trigger.Input)) error {
	if onMouse == nil || onKey == nil {
		return fmt.Errorf("listener callbacks are nil")
	}
	if l.stopped.Load() || !l.started.CompareAndSwap(false, true) {
		return fmt.Errorf("listener cannot be restarted")
	}
	l.onMouse = onMouse
	l.onKey = onKey

	if !activeListener.CompareAndSwap(nil, l) {
		return fmt.Errorf("windows input listener is already active")
	}

	l.loopMu.Lock()
	l.loopDone = make(chan struct{})
	l.loopMu.Unlock()

	ready := make(chan error, 1)
	go l.hookLoop(ready)

	if err := <-ready; err != nil {
		l.Stop()
		return err
	}
	l.logger.Debug("Input hooks installed", "mode", "windows-global-hooks")
	return nil
}

func (l *Listener) Stop() {
	l.stopOnce.Do(func() {
		l.stopped.Store(true)
		threadID := l.threadID.Load()
		if threadID != 0 {
			_, _, _ = procPostThreadMessageW.Call(uintptr(threadID), uintptr(wmQuit), 0, 0)
		}

		l.loopMu.Lock()
		done := l.loopDone
		l.loopMu.Unlock()
		if done != nil {
			<-done
		}

		activeListener.CompareAndSwap(l, nil)
		l.logger.Debug("Input hooks removed")
	})
}

func (l *Listener) hookLoop(ready chan<- error) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	defer func() {
		l.loopMu.Lock()
		done := l.loopDone
		l.loopMu.Unlock()
		if done != nil {
			close(done)
		}
	}()
	defer activeListener.CompareAndSwap(l, nil)

	l.threadID.Store(windows.GetCurrentThreadId())

	mouseHook, _, mouseErr := procSetWindowsHookExW.Call(uintptr(whMouseLL), mouseHookCallback, 0, 0)
	if mouseHook == 0 {
		ready <- fmt.Errorf("failed to install mouse hook: %w", mouseErr)
		return
	}
	defer func() {
		_, _, _ = procUnhookWindowsHookEx.Call(mouseHook)
	}()

	keyboardHook, _, keyboardErr := procSetWindowsHookExW.Call(uintptr(whKeyboardLL), keyboardHookCallback, 0, 0)
	if keyboardHook == 0 {
		ready <- fmt.Errorf("failed to install keyboard hook: %w", keyboardErr)
		return
	}
	defer func() {
		_, _, _ = procUnhookWindowsHookEx.Call(keyboardHook)
	}()

	ready <- nil

	var msg message
	for {
		ret, _, callErr := procGetMessageW.Call(uintptr(unsafe.Pointer(&msg)), 0, 0, 0)
		switch int32(ret) {
		case -1:
			l.logger.Warn("Windows message loop failed", "err", callErr)
			return
		case 0:
			return
		default:
			_, _, _ = procTranslateMessage.Call(uintptr(unsafe.Pointer(&msg)))
			_, _, _ = procDispatchMessageW.Call(uintptr(unsafe.Pointer(&msg)))
		}
	}
}

func mouseLLCallback(code int, wParam uintptr, lParam uintptr) uintptr {
	if code >= 0 {
		if l := activeListener.Load(); l != nil && !l.stopped.Load() {
			l.handleMouseHook(wParam, lParam)
		}
	}
	ret, _, _ := procCallNextHookEx.Call(0, uintptr(code), wParam, lParam)
	return ret
}

func keyboardLLCallback(code int, wParam uintptr, lParam uintptr) uintptr {
	if code >= 0 {
		if l := activeListener.Load(); l != nil && !l.stopped.Load() {
			l.handleKeyboardHook(wParam, lParam)
		}
	}
	ret, _, _ := procCallNextHookEx.Call(0, uintptr(code), wParam, lParam)
	return ret
}

func (l *Listener) handleMouseHook(wParam uintptr, lParam uintptr) {
	if lParam == 0 {
		return
	}

	event := (*mouseLLHookStruct)(unsafe.Pointer(lParam))
	if event.Flags&llmhfInjected != 0 {
		return
	}

	in, ok := MouseInput(uint32(wParam), event.MouseData)
	if !ok {
		return
	}
	l.onMouse(in)
}

func (l *Listener) handleKeyboardHook(wParam uintptr, lParam uintptr) {
	if lParam == 0 {
		return
	}

	event := (*keyboardLLHookStruct)(unsafe.Pointer(lParam))
	if event.Flags&llkhfInjected != 0 || event.Flags&llkhfLowerILInjected != 0 {
		return
	}

	var ch rune
	if _, named := namedKeys[event.VkCode]; !named {
		ch = translateChar(event.VkCode, event.ScanCode)
	}

	in, ok := KeyInput(uint32(wParam), event.VkCode, ch)
	if !ok {
		return
	}
	l.onKey(in)
}

// translateChar resolves vk with the foreground window's keyboard layout.
// Only Shift and Caps Lock are applied so that Ctrl chords still yield the
// plain character.
func translateChar(vk, scanCode uint32) rune {
	var state [256]byte
	if isDown(procGetAsyncKeyState, vkSHIFT) {
		state[vkSHIFT] = 0x80
	}
	if toggled, _, _ := procGetKeyState.Call(uintptr(vkCAPITAL)); toggled&0x0001 != 0 {
		state[vkCAPITAL] = 0x01
	}

	threadID, _, _ := procGetWindowThreadProcessID.Call(uintptr(windows.GetForegroundWindow()), 0)
	layout, _, _ := procGetKeyboardLayout.Call(threadID)

	var buf [4]uint16
	n, _, _ := procToUnicodeEx.Call(
		uintptr(vk),
		uintptr(scanCode),
		uintptr(unsafe.Pointer(&state[0])),
		uintptr(unsafe.Pointer(&buf[0])),
		uintptr(len(buf)),
		tuDontChangeState,
		layout,
	)
	if int32(n) != 1 {
		return 0
	}
	return rune(buf[0])
}

func isDown(proc *windows.LazyProc, vk uint32) bool {
	state, _, _ := proc.Call(uintptr(vk))
	return uint16(state)&0x8000 != 0
}

func closedSignalChan() chan struct{} {
	ch := make(chan struct{})
	close(ch)
	return ch
}
