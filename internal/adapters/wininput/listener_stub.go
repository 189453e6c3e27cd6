//go:build !windows

package wininput

import (
	"fmt"

	"soteshot/internal/core/trigger"
)

type Listener struct{}

func NewListener(logger trigger.Logger) (*Listener, error) {
	return nil, fmt.Errorf("windows input listener is only available on Windows")
}

func (l *Listener) Start(onMouse, onKey func(trigger.Input)) error {
	return fmt.Errorf("windows input listener is only available on Windows")
}

func (l *Listener) Stop() {}
