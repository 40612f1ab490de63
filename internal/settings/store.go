package settings

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"retro-clock/internal/logger"
)

const component = "SettingsStore"

// Store persists a Config to a single file. Failures never propagate: Load
// falls back to Defaults and Save/Update report false, logging the cause.
type Store struct {
	path   string
	codec  codec
	logger logger.Logger
}

// NewStore returns a store backed by path, or DefaultFile when path is empty.
func NewStore(path string, log logger.Logger) *Store {
	if path == "" {
		path = DefaultFile
	}
	return &Store{
		path:   path,
		codec:  codecFor(path),
		logger: log,
	}
}

// Path returns the backing file.
func (s *Store) Path() string {
	return s.path
}

// Load returns the persisted configuration, or the defaults when the file is
// absent or cannot be read.
func (s *Store) Load() Config {
	cfg, err := s.read()
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.logger.Error(component, fmt.Errorf("error loading config: %w", err), map[string]interface{}{
				"path": s.path,
			})
		}
		return Defaults()
	}

	if err := Validate(cfg); err != nil {
		s.logger.Warning(component, err.Error(), map[string]interface{}{
			"path": s.path,
		})
	}
	return cfg
}

func (s *Store) read() (Config, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, err
	}

	cfg, err := s.codec.Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", s.path, err)
	}
	if cfg == nil {
		cfg = Config{}
	}
	return cfg, nil
}

// Save overwrites the settings file with cfg.
func (s *Store) Save(cfg Config) bool {
	if err := s.write(cfg); err != nil {
		s.logger.Error(component, fmt.Errorf("error saving config: %w", err), map[string]interface{}{
			"path": s.path,
		})
		return false
	}

	s.logger.Debug(component, "settings saved", map[string]interface{}{
		"path": s.path,
	})
	return true
}

func (s *Store) write(cfg Config) error {
	data, err := s.codec.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return os.WriteFile(s.path, data, 0o644)
}

// Update sets section/key to value and persists the whole document. Unknown
// sections or keys are skipped and report false.
func (s *Store) Update(section, key string, value interface{}) bool {
	cfg := s.Load()
	if !cfg.Set(section, key, value) {
		s.logger.Debug(component, "ignoring update of unknown setting", map[string]interface{}{
			"section": section,
			"key":     key,
		})
		return false
	}

	return s.Save(cfg)
}
