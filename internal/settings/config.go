package settings

import (
	"fmt"
)

// Section names.
const (
	SectionAppearance = "appearance"
	SectionClock      = "clock"
	SectionWindow     = "window"
)

// Clock section values understood by the clock face.
const (
	TimeFormat24h = "24h"
	TimeFormat12h = "12h"
)

// DefaultFile is the settings file used when no path is given.
const DefaultFile = "clock_settings.json"

// Section holds the keys of one configuration section.
type Section = map[string]interface{}

// Config is the persisted settings document, addressed by section then key.
// Top-level entries that are not objects are kept as they are so a save
// writes them back unchanged.
type Config map[string]interface{}

// Defaults returns a fresh copy of the built-in configuration.
func Defaults() Config {
	return Config{
		SectionAppearance: Section{
			"background_color": "black",
			"text_color":       "lime",
			"font_family":      "Courier New",
			"font_size":        48,
			"relief_style":     "ridge",
		},
		SectionClock: Section{
			"time_format": TimeFormat24h,
			"show_date":   true,
			"date_format": "%Y-%m-%d",
		},
		SectionWindow: Section{
			"title":     "Reloj Retro 1980's",
			"width":     800,
			"height":    400,
			"resizable": true,
		},
	}
}

// Clone returns a copy that shares no section maps with c.
func (c Config) Clone() Config {
	out := make(Config, len(c))
	for name, entry := range c {
		section, ok := entry.(Section)
		if !ok {
			out[name] = entry
			continue
		}
		copied := make(Section, len(section))
		for k, v := range section {
			copied[k] = v
		}
		out[name] = copied
	}
	return out
}

// Section returns the named section. An entry that exists but is not an
// object is a *TypeError.
func (c Config) Section(name string) (Section, error) {
	entry, ok := c[name]
	if !ok {
		return nil, &KeyError{Section: name}
	}
	section, ok := entry.(Section)
	if !ok {
		return nil, &TypeError{Section: name, Want: "object", Value: entry}
	}
	return section, nil
}

// Has reports whether both section and key exist.
func (c Config) Has(section, key string) bool {
	s, err := c.Section(section)
	if err != nil {
		return false
	}
	_, ok := s[key]
	return ok
}

// Set stores value at section/key only when that key already exists.
func (c Config) Set(section, key string, value interface{}) bool {
	if !c.Has(section, key) {
		return false
	}
	c[section].(Section)[key] = value
	return true
}

// Value returns the raw value stored at section/key.
func (c Config) Value(section, key string) (interface{}, error) {
	s, err := c.Section(section)
	if err != nil {
		return nil, err
	}
	v, ok := s[key]
	if !ok {
		return nil, &KeyError{Section: section, Key: key}
	}
	return v, nil
}

func (c Config) String(section, key string) (string, error) {
	v, err := c.Value(section, key)
	if err != nil {
		return "", err
	}
	s, ok := v.(string)
	if !ok {
		return "", &TypeError{Section: section, Key: key, Want: "string", Value: v}
	}
	return s, nil
}

func (c Config) Bool(section, key string) (bool, error) {
	v, err := c.Value(section, key)
	if err != nil {
		return false, err
	}
	b, ok := v.(bool)
	if !ok {
		return false, &TypeError{Section: section, Key: key, Want: "bool", Value: v}
	}
	return b, nil
}

// Int accepts any whole number, including float64 values produced by
// documents that were never normalised.
func (c Config) Int(section, key string) (int, error) {
	v, err := c.Value(section, key)
	if err != nil {
		return 0, err
	}
	switch n := v.(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case float64:
		if n == float64(int(n)) {
			return int(n), nil
		}
	}
	return 0, &TypeError{Section: section, Key: key, Want: "integer", Value: v}
}

// KeyError reports a section or key missing from a configuration.
type KeyError struct {
	Section string
	Key     string
}

func (e *KeyError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("missing settings section %q", e.Section)
	}
	return fmt.Sprintf("missing settings key %q in section %q", e.Key, e.Section)
}

// TypeError reports a value of an unexpected type.
type TypeError struct {
	Section string
	Key     string
	Want    string
	Value   interface{}
}

func (e *TypeError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("settings %s: want %s, got %T", e.Section, e.Want, e.Value)
	}
	return fmt.Sprintf("settings %s.%s: want %s, got %T", e.Section, e.Key, e.Want, e.Value)
}
