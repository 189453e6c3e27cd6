//go:build windows

package main

func permissionDeniedHint() string {
	return "Permission denied registering global input hooks. Run as Administrator and ensure input-hooking is allowed."
}

func platformWarning() string {
	return ""
}
