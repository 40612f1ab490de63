package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInfoCarriesComponentAndFields(t *testing.T) {
	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", JSON: true, Writer: buf})
	require.NoError(t, err)

	log.Info("SettingsStore", "settings saved", map[string]interface{}{"path": "clock_settings.json"})

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "info", entry["level"])
	require.Equal(t, "SettingsStore", entry["component"])
	require.Equal(t, "settings saved", entry["message"])
	require.Equal(t, "clock_settings.json", entry["path"])
}

func TestDebugFilteredAtInfo(t *testing.T) {
	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "INFO", JSON: true, Writer: buf})
	require.NoError(t, err)

	log.Debug("ClockPanel", "tick", nil)
	require.Empty(t, strings.TrimSpace(buf.String()))
}

func TestErrorIncludesCause(t *testing.T) {
	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "debug", JSON: true, Writer: buf})
	require.NoError(t, err)

	log.Error("SettingsStore", errors.New("disk full"), nil)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "error", entry["level"])
	require.Equal(t, "disk full", entry["error"])
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	_, err := New(Options{Level: "loud"})
	require.Error(t, err)
}

func TestConsoleOutputIsHumanReadable(t *testing.T) {
	buf := &bytes.Buffer{}
	log, err := New(Options{Writer: buf})
	require.NoError(t, err)

	log.Warning("Navigator", "unknown panel", map[string]interface{}{"panel": "bogus"})
	out := buf.String()
	require.Contains(t, out, "unknown panel")
	require.Contains(t, out, "bogus")
}
