package main

import (
	"soteshot/internal/adapters/wininput"
	"soteshot/internal/core/shotter"
	"soteshot/internal/core/trigger"
)

type failedListener struct {
	err error
}

func (l failedListener) Start(func(trigger.Input), func(trigger.Input)) error {
	return l.err
}

func (l failedListener) Stop() {}

func newListenerFactory(logger trigger.Logger) shotter.ListenerFactory {
	return func() shotter.Listener {
		listener, err := wininput.NewListener(logger)
		if err != nil {
			return failedListener{err: err}
		}
		return listener
	}
}
