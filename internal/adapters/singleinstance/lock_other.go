//go:build !windows

package singleinstance

// Lock is a no-op outside Windows.
type Lock struct{}

func TryLock(string) (*Lock, error) { return &Lock{}, nil }

func (l *Lock) Release() error { return nil }
