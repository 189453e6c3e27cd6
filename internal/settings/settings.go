package settings

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"

	"soteshot/internal/core/trigger"
)

// DefaultPath is resolved against the working directory.
const DefaultPath = "config.json"

// ErrInvalidBinding is returned by Save for bindings JSON cannot hold
// losslessly.
var ErrInvalidBinding = errors.New("binding is not valid UTF-8")

type fileSettings struct {
	ScreenshotButton *string `json:"screenshot_button"`
}

type Store struct {
	path   string
	logger trigger.Logger
}

func NewStore(path string, logger trigger.Logger) *Store {
	if path == "" {
		path = DefaultPath
	}
	return &Store{path: path, logger: logger}
}

func (s *Store) Path() string {
	return s.path
}

// Load returns the persisted binding, or trigger.DefaultBinding if the file
// cannot be read or does not hold a string screenshot_button.
func (s *Store) Load() trigger.Binding {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			s.logger.Debug("No settings file, using default trigger", "path", s.path)
		} else {
			s.logger.Warn("Failed to read settings, using default trigger", "path", s.path, "err", err)
		}
		return trigger.DefaultBinding
	}

	var cfg fileSettings
	if err := json.Unmarshal(data, &cfg); err != nil {
		s.logger.Warn("Failed to parse settings, using default trigger", "path", s.path, "err", err)
		return trigger.DefaultBinding
	}
	if cfg.ScreenshotButton == nil {
		return trigger.DefaultBinding
	}
	return trigger.Binding(*cfg.ScreenshotButton)
}

// Save persists b. Bindings that are not valid UTF-8 are rejected with
// ErrInvalidBinding so that Load always returns exactly what was saved.
func (s *Store) Save(b trigger.Binding) error {
	value := string(b)
	if !utf8.ValidString(value) {
		return fmt.Errorf("%w: %q", ErrInvalidBinding, value)
	}
	data, err := json.Marshal(fileSettings{ScreenshotButton: &value})
	if err != nil {
		return err
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create settings dir: %w", err)
		}
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write settings: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("failed to persist settings: %w", err)
	}
	return nil
}
