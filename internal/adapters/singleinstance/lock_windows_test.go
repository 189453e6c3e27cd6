//go:build windows

package singleinstance

import (
	"errors"
	"testing"
)

func TestSecondLockReportsAlreadyRunning(t *testing.T) {
	name := MutexName("second-lock-test")
	first, err := TryLock(name)
	if err != nil {
		t.Fatalf("first TryLock failed: %v", err)
	}
	defer first.Release()

	second, err := TryLock(name)
	if !errors.Is(err, ErrAlreadyRunning) {
		t.Fatalf("second TryLock err=%v, want ErrAlreadyRunning", err)
	}
	if second != nil {
		t.Fatalf("second TryLock returned a lock")
	}
}

func TestLockReacquirableAfterRelease(t *testing.T) {
	name := MutexName("reacquire-test")
	first, err := TryLock(name)
	if err != nil {
		t.Fatalf("first TryLock failed: %v", err)
	}
	if err := first.Release(); err != nil {
		t.Fatalf("Release failed: %v", err)
	}

	second, err := TryLock(name)
	if err != nil {
		t.Fatalf("TryLock after release failed: %v", err)
	}
	_ = second.Release()
}

func TestEmptyNameRejected(t *testing.T) {
	if _, err := TryLock(""); err == nil {
		t.Fatalf("TryLock(\"\") succeeded")
	}
}
