package shotter

import (
	"errors"
	"image"

	"soteshot/internal/core/trigger"
)

var ErrBindingPending = errors.New("screenshot button capture already in progress")

// Listener delivers global mouse and keyboard notifications on its own
// goroutine until Stop returns.
type Listener interface {
	Start(onMouse, onKey func(trigger.Input)) error
	Stop()
}

// ListenerFactory returns a fresh subscription for every Start.
type ListenerFactory func() Listener

// Dispatcher schedules fn on the UI thread.
type Dispatcher func(fn func())

type Capturer interface {
	Capture() (*image.RGBA, error)
}

type BindingStore interface {
	Load() trigger.Binding
	Save(b trigger.Binding) error
}

// View is the part of the window the controller writes to. It is only
// called on the UI thread.
type View interface {
	SetStatus(text string)
	ShowImage(img image.Image)
}

type Config struct {
	Store       BindingStore
	NewListener ListenerFactory
	Capturer    Capturer
	View        View
	Dispatch    Dispatcher
}
