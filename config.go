package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"

	"github.com/rs/zerolog"
)

// KeyMap maps a function key name ("F1".."F12") to a short description
// of what pressing it does on this machine. Descriptions may be empty.
// The map is not schema-enforced; whatever key set a stored file
// contains is used as-is.
type KeyMap map[string]string

const configName = "fn_key_helper.json"

// keyOrder is the canonical display order for the twelve function keys.
var keyOrder = []string{
	"F1", "F2", "F3", "F4", "F5", "F6",
	"F7", "F8", "F9", "F10", "F11", "F12",
}

func defaultKeys() KeyMap {
	return KeyMap{
		"F1":  "Dim Screen",
		"F2":  "Brighten Screen",
		"F3":  "??",
		"F4":  "?",
		"F5":  "Dim keyboard LED",
		"F6":  "Brighten keyboard LED",
		"F7":  "Rewind",
		"F8":  "Play/Pause",
		"F9":  "Fastforward",
		"F10": "Mute",
		"F11": "Lower Volume",
		"F12": "Increase Volume",
	}
}

// orderedKeys returns the keys of m in display order: the canonical
// F1..F12 sequence first, then any other keys the file supplied, sorted.
func orderedKeys(m KeyMap) []string {
	keys := make([]string, 0, len(m))
	for _, k := range keyOrder {
		if _, ok := m[k]; ok {
			keys = append(keys, k)
		}
	}
	var extra []string
	for k := range m {
		if !isCanonical(k) {
			extra = append(extra, k)
		}
	}
	sort.Strings(extra)
	return append(keys, extra...)
}

func isCanonical(key string) bool {
	for _, k := range keyOrder {
		if k == key {
			return true
		}
	}
	return false
}

// Store reads and writes the key map at a single file path.
type Store struct {
	path string
	log  zerolog.Logger
}

func NewStore(path string, log zerolog.Logger) *Store {
	return &Store{path: path, log: log}
}

// DefaultPath is the config file location under the platform user
// configuration directory.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configName), nil
}

// Load returns the stored key map, or the default map when the file is
// missing or unreadable. A broken config file never keeps the overlay
// from starting; the error is logged and swallowed here.
func (s *Store) Load() KeyMap {
	m, err := s.read()
	if err != nil {
		s.log.Warn().Err(err).Str("path", s.path).Msg("using default key map")
		return defaultKeys()
	}
	s.log.Debug().Str("path", s.path).Int("keys", len(m)).Msg("loaded key map")
	return m
}

func (s *Store) read() (KeyMap, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, err
	}

	m := KeyMap{}
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}

	return m, nil
}

// Save rewrites the whole config file with m, creating the parent
// directory if needed. The previous content is not backed up.
func (s *Store) Save(m KeyMap) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}

	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return err
	}

	s.log.Info().Str("path", s.path).Int("keys", len(m)).Msg("saved key map")
	return nil
}
