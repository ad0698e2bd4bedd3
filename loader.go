package bankroll

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
)

// The durable store is a directory-backed key-value slot: one JSON document
// per key, mirroring the web app's localStorage layout.

const (
	// StorageKey is the slot holding the current multi-bankroll document.
	StorageKey = "bankroll_manager_v3"
	// LegacyStorageKey is the slot the old flat schema was stored under.
	LegacyStorageKey = "bankroll_manager_v2"
)

// Slot is a durable key-value slot backed by a directory.
type Slot struct {
	dir string
}

// OpenSlot opens (creating if needed) the slot directory.
func OpenSlot(dir string) (*Slot, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("could not create state directory %q: %w", dir, err)
	}
	return &Slot{dir: dir}, nil
}

// Dir returns the slot directory.
func (s *Slot) Dir() string { return s.dir }

func (s *Slot) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

// Load reads the persisted state. When the current key is absent it falls
// back to the legacy key and migrates the flat document; when both are absent
// it returns the fresh-install default state.
func (s *Slot) Load() (AppState, error) {
	f, err := os.Open(s.path(StorageKey))
	switch {
	case err == nil:
		defer f.Close()
		st, err := DecodeState(f)
		if err != nil {
			return AppState{}, fmt.Errorf("could not load state from %q: %w", s.path(StorageKey), err)
		}
		return st, nil
	case errors.Is(err, fs.ErrNotExist):
		// fall through to the legacy slot
	default:
		return AppState{}, fmt.Errorf("could not open state file %q: %w", s.path(StorageKey), err)
	}

	data, err := os.ReadFile(s.path(LegacyStorageKey))
	switch {
	case err == nil:
		var old legacyState
		if err := json.Unmarshal(data, &old); err != nil {
			return AppState{}, fmt.Errorf("could not load legacy state from %q: %w", s.path(LegacyStorageKey), err)
		}
		log.Printf("migrating legacy single-bankroll state from %q", s.path(LegacyStorageKey))
		return migrateLegacy(old), nil
	case errors.Is(err, fs.ErrNotExist):
		return DefaultState(), nil
	default:
		return AppState{}, fmt.Errorf("could not open legacy state file %q: %w", s.path(LegacyStorageKey), err)
	}
}

// Save writes the full state snapshot under the current key.
func (s *Slot) Save(st AppState) error {
	file, err := os.Create(s.path(StorageKey))
	if err != nil {
		return fmt.Errorf("error opening state file %q for writing: %w", s.path(StorageKey), err)
	}
	defer file.Close()
	return EncodeState(file, st)
}

var _ Persister = (*Slot)(nil)
