package main

import (
	"errors"
	"flag"
	"io"
	"log/slog"
	"os"
	"strings"
	"testing"

	"soteshot/internal/settings"
)

func TestParseConfigDefaults(t *testing.T) {
	cfg, err := parseConfig(nil, io.Discard)
	if err != nil {
		t.Fatalf("parseConfig returned error: %v", err)
	}
	if cfg.settingsPath != settings.DefaultPath {
		t.Fatalf("settingsPath=%q, want %q", cfg.settingsPath, settings.DefaultPath)
	}
	if cfg.logLevel != slog.LevelInfo {
		t.Fatalf("logLevel=%v, want info", cfg.logLevel)
	}
}

func TestParseConfigFlags(t *testing.T) {
	cfg, err := parseConfig([]string{"-config", "alt.json", "-log-level", "WARNING"}, io.Discard)
	if err != nil {
		t.Fatalf("parseConfig returned error: %v", err)
	}
	if cfg.settingsPath != "alt.json" || cfg.logLevel != slog.LevelWarn {
		t.Fatalf("parseConfig=%+v, want alt.json/warn", cfg)
	}
}

func TestParseConfigErrors(t *testing.T) {
	cases := [][]string{
		{"-log-level", "loud"},
		{"-config", " "},
		{"extra"},
	}
	for _, args := range cases {
		if _, err := parseConfig(args, io.Discard); err == nil {
			t.Fatalf("parseConfig(%q) expected error", args)
		}
	}

	if _, err := parseConfig([]string{"-h"}, io.Discard); !errors.Is(err, flag.ErrHelp) {
		t.Fatalf("parseConfig(-h) err=%v, want flag.ErrHelp", err)
	}
}

func TestRunExitCodesForFlagErrors(t *testing.T) {
	if code := run([]string{"-h"}, io.Discard); code != 0 {
		t.Fatalf("run(-h)=%d, want 0", code)
	}
	if code := run([]string{"-bogus"}, io.Discard); code != 2 {
		t.Fatalf("run(-bogus)=%d, want 2", code)
	}
}

func TestLineSinkWriterSplitsLines(t *testing.T) {
	var got []string
	w := &lineSinkWriter{sink: func(line string) { got = append(got, line) }}

	_, _ = w.Write([]byte("level=INFO msg=one\nlevel=WARN "))
	_, _ = w.Write([]byte("msg=two\n\n"))

	want := []string{"level=INFO msg=one", "level=WARN msg=two"}
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Fatalf("lines=%q, want %q", got, want)
	}
}

func TestStartErrorText(t *testing.T) {
	if got := startErrorText(os.ErrPermission); got != permissionDeniedHint() {
		t.Fatalf("startErrorText(ErrPermission)=%q", got)
	}
	if got := startErrorText(errors.New("failed to start input listener: boom")); got != "Failed to start input listener: boom" {
		t.Fatalf("startErrorText=%q", got)
	}
}
