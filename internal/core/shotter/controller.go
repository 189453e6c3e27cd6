package shotter

import (
	"fmt"
	"image"

	"soteshot/internal/core/trigger"
)

const (
	bindingPrompt = "Press the key or mouse button you want to use for screenshots."
	revertedText  = "Screenshot button reverted to default."
)

// Controller owns the active binding and the binding capture state. Every
// method must run on the UI thread; listener callbacks only reach it through
// Config.Dispatch.
type Controller struct {
	cfg    Config
	logger trigger.Logger

	binding    trigger.Binding
	awaiting   bool
	stopped    bool
	listener   Listener
	generation uint64
	lastImage  image.Image
}

func NewController(cfg Config, logger trigger.Logger) (*Controller, error) {
	if logger == nil {
		return nil, fmt.Errorf("logger is nil")
	}
	switch {
	case cfg.Store == nil:
		return nil, fmt.Errorf("binding store is nil")
	case cfg.NewListener == nil:
		return nil, fmt.Errorf("listener factory is nil")
	case cfg.Capturer == nil:
		return nil, fmt.Errorf("capturer is nil")
	case cfg.View == nil:
		return nil, fmt.Errorf("view is nil")
	case cfg.Dispatch == nil:
		return nil, fmt.Errorf("dispatcher is nil")
	}

	return &Controller{
		cfg:     cfg,
		logger:  logger,
		binding: trigger.DefaultBinding,
	}, nil
}

// Start loads the persisted binding and begins listening for it.
func (c *Controller) Start() error {
	c.binding = c.cfg.Store.Load()
	c.logger.Info("Trigger", "binding", string(c.binding), "name", trigger.DisplayName(c.binding))
	c.cfg.View.SetStatus(c.idlePrompt())
	return c.startListener(false)
}

func (c *Controller) Binding() trigger.Binding {
	return c.binding
}

func (c *Controller) Awaiting() bool {
	return c.awaiting
}

func (c *Controller) LastImage() image.Image {
	return c.lastImage
}

// Customize swaps the normal listener for one that records the next press
// of any key or button as the new binding.
func (c *Controller) Customize() error {
	if c.stopped {
		return fmt.Errorf("controller is shut down")
	}
	if c.awaiting {
		return ErrBindingPending
	}

	c.stopListener()
	c.awaiting = true
	if err := c.startListener(true); err != nil {
		c.awaiting = false
		c.cfg.View.SetStatus(fmt.Sprintf("Failed to start input capture: %v", err))
		if restartErr := c.startListener(false); restartErr != nil {
			c.logger.Error("Failed to restore input listener", "err", restartErr)
		}
		return err
	}

	c.cfg.View.SetStatus(bindingPrompt)
	c.logger.Info("Waiting for screenshot button input")
	return nil
}

// Revert persists the default binding. It is rejected while a binding
// capture is pending.
func (c *Controller) Revert() error {
	if c.awaiting {
		return ErrBindingPending
	}
	if err := c.cfg.Store.Save(trigger.DefaultBinding); err != nil {
		c.cfg.View.SetStatus(fmt.Sprintf("Failed to save screenshot button: %v", err))
		return err
	}

	c.binding = trigger.DefaultBinding
	c.cfg.View.SetStatus(revertedText)
	c.logger.Info("Trigger reverted", "binding", string(c.binding))
	return nil
}

// CaptureNow grabs the foreground window. On failure the displayed image is
// left untouched.
func (c *Controller) CaptureNow() error {
	img, err := c.cfg.Capturer.Capture()
	if err != nil {
		c.logger.Warn("Screenshot failed", "err", err)
		return err
	}

	c.lastImage = img
	c.cfg.View.ShowImage(img)
	c.logger.Debug("Screenshot displayed", "size", img.Bounds().Size().String())
	return nil
}

// Shutdown stops the active listener. Queued notifications are dropped.
func (c *Controller) Shutdown() {
	c.stopped = true
	c.awaiting = false
	c.stopListener()
}

func (c *Controller) idlePrompt() string {
	return fmt.Sprintf("Press '%s' to take a screenshot.", trigger.DisplayName(c.binding))
}

func (c *Controller) startListener(capturing bool) error {
	c.generation++
	gen := c.generation

	handle := c.handleTrigger
	if capturing {
		handle = c.handleBindingInput
	}
	forward := func(in trigger.Input) {
		if !in.Pressed {
			return
		}
		c.cfg.Dispatch(func() {
			handle(gen, in)
		})
	}

	listener := c.cfg.NewListener()
	if err := listener.Start(forward, forward); err != nil {
		return fmt.Errorf("failed to start input listener: %w", err)
	}
	c.listener = listener
	return nil
}

func (c *Controller) stopListener() {
	// Bumping the generation drops closures that are already queued.
	c.generation++
	if c.listener == nil {
		return
	}
	c.listener.Stop()
	c.listener = nil
}

func (c *Controller) handleTrigger(gen uint64, in trigger.Input) {
	if gen != c.generation || c.awaiting || c.stopped {
		return
	}
	if !trigger.Matches(in, c.binding) {
		return
	}
	_ = c.CaptureNow()
}

func (c *Controller) handleBindingInput(gen uint64, in trigger.Input) {
	if gen != c.generation || !c.awaiting {
		return
	}
	c.awaiting = false

	binding, err := trigger.BindingFor(in)
	switch {
	case err != nil:
		c.cfg.View.SetStatus(fmt.Sprintf("Failed to set key: %v", err))
		c.logger.Warn("Unsupported screenshot button", "err", err)
	default:
		if err := c.cfg.Store.Save(binding); err != nil {
			c.cfg.View.SetStatus(fmt.Sprintf("Failed to save screenshot button: %v", err))
			c.logger.Error("Failed to save screenshot button", "err", err)
			break
		}
		c.binding = binding
		c.cfg.View.SetStatus(fmt.Sprintf("Screenshot button set to: %s", trigger.DisplayName(binding)))
		c.logger.Info("Captured trigger", "binding", string(binding))
	}

	c.stopListener()
	if err := c.startListener(false); err != nil {
		c.logger.Error("Failed to restart input listener", "err", err)
		c.cfg.View.SetStatus(err.Error())
	}
}
