//go:build !windows

package main

func permissionDeniedHint() string {
	return "Permission denied opening input backend."
}

func platformWarning() string {
	return "Global input hooks and window capture are only supported on Windows."
}
