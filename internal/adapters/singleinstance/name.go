package singleinstance

import (
	"errors"
	"os"
	"os/user"
	"regexp"
	"strings"
)

// ErrAlreadyRunning is returned by TryLock when another instance holds the mutex.
var ErrAlreadyRunning = errors.New("another screenshotter instance is already running")

var invalidNameRune = regexp.MustCompile(`[^a-zA-Z0-9._-]+`)

// MutexName returns the per-session mutex name for username.
func MutexName(username string) string {
	username = strings.TrimSpace(username)
	if username == "" {
		username = "unknown"
	}
	return `Local\soteshot-` + invalidNameRune.ReplaceAllString(username, "_")
}

// DefaultMutexName derives the mutex name from the current user.
func DefaultMutexName() string {
	username := os.Getenv("USERNAME")
	if strings.TrimSpace(username) == "" {
		if current, err := user.Current(); err == nil {
			username = current.Username
		}
	}
	return MutexName(username)
}
