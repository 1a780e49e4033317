// Package jsonfile provides JSON-file-backed stores.
package jsonfile

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog/log"
)

// PrefsFile is the root JSON structure stored on disk.
type PrefsFile struct {
	Values map[string]string `json:"values"`
}

// PrefStore implements prefs.Store using a JSON file for persistence.
//
// Reads and writes load and rewrite the whole file under a lock. IO and
// parse failures are logged and swallowed: a broken file reads as
// empty, and a failed write loses that flush. A missing preference is
// always recoverable from defaults.
type PrefStore struct {
	path string
	mu   sync.RWMutex
}

// NewPrefStore creates a JSON file preference store at the given path.
func NewPrefStore(path string) *PrefStore {
	return &PrefStore{path: path}
}

// Get returns the stored value for key, if any.
func (s *PrefStore) Get(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	file := s.load()
	v, ok := file.Values[key]
	return v, ok
}

// Set stores value under key.
func (s *PrefStore) Set(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	file := s.load()
	if file.Values == nil {
		file.Values = make(map[string]string)
	}
	file.Values[key] = value

	s.save(file)
}

// load reads the prefs file from disk. Returns an empty PrefsFile if
// the file doesn't exist or cannot be parsed.
func (s *PrefStore) load() PrefsFile {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Warn().Err(err).Str("path", s.path).Msg("read prefs file")
		}
		return PrefsFile{}
	}

	if len(data) == 0 {
		return PrefsFile{}
	}

	var file PrefsFile
	if err := json.Unmarshal(data, &file); err != nil {
		log.Warn().Err(err).Str("path", s.path).Msg("parse prefs file")
		return PrefsFile{}
	}

	return file
}

// save writes the prefs file to disk, creating the parent directory if
// needed.
func (s *PrefStore) save(file PrefsFile) {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		log.Warn().Err(err).Str("path", s.path).Msg("create prefs dir")
		return
	}

	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		log.Warn().Err(err).Msg("marshal prefs")
		return
	}

	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		log.Warn().Err(err).Str("path", s.path).Msg("write prefs file")
	}
}
