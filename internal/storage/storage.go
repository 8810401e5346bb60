// Package storage persists the day log as a single JSON state file.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/xolan/tante/internal/entry"
	"github.com/xolan/tante/internal/logger"
	"github.com/xolan/tante/internal/osutil"
)

const (
	// DBDir is the directory below the application home holding state files
	DBDir = "db"
	// DefaultDatabaseName is the state file name without extension
	DefaultDatabaseName = "db"
	// StateVersion is written into freshly initialised state files
	StateVersion = "alpha"
)

// ErrArchiveExists is returned when an archive was already created for the day.
var ErrArchiveExists = errors.New("there was already an archive created today")

// State is the persisted document.
type State struct {
	Version string       `json:"version"`
	Days    entry.DayLog `json:"days"`
}

// NewState returns an empty state.
func NewState() State {
	return State{Version: StateVersion, Days: entry.DayLog{}}
}

// GetStoragePath returns the path of the state file for databaseName,
// creating the database directory if it doesn't exist.
func GetStoragePath(databaseName string) (string, error) {
	if databaseName == "" {
		databaseName = DefaultDatabaseName
	}
	dir, err := osutil.AppDir(DBDir)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, databaseName+".json"), nil
}

// Store reads and writes one state file.
type Store struct {
	Path string
}

// NewStore returns a store for the state file at path.
func NewStore(path string) *Store {
	return &Store{Path: path}
}

// ReadState loads the state, creating an empty file first if none exists.
func (s *Store) ReadState() (State, error) {
	if err := s.ensureFile(); err != nil {
		return State{}, err
	}

	data, err := os.ReadFile(s.Path)
	if err != nil {
		return State{}, err
	}

	state := NewState()
	if err := json.Unmarshal(data, &state); err != nil {
		return State{}, fmt.Errorf("failed to parse %s: %w", s.Path, err)
	}
	if state.Days == nil {
		state.Days = entry.DayLog{}
	}
	logger.Debug("state read", "path", s.Path, "days", len(state.Days))
	return state, nil
}

// WriteState backs up the current file and atomically replaces it.
func (s *Store) WriteState(state State) error {
	if err := s.ensureDir(); err != nil {
		return err
	}
	if err := CreateBackup(s.Path); err != nil {
		return fmt.Errorf("failed to create backup: %w", err)
	}
	if err := writeAtomic(s.Path, state); err != nil {
		return err
	}
	logger.Debug("state written", "path", s.Path, "days", len(state.Days))
	return nil
}

// ReadRaw returns the file content as stored.
func (s *Store) ReadRaw() ([]byte, error) {
	if err := s.ensureFile(); err != nil {
		return nil, err
	}
	return os.ReadFile(s.Path)
}

// ArchivePath returns the name the state file gets when archived on day.
func (s *Store) ArchivePath(day time.Time) string {
	ext := filepath.Ext(s.Path)
	base := s.Path[:len(s.Path)-len(ext)]
	return base + day.Format("-2006-01-02") + ext
}

// Archive moves the state file to its dated archive name and starts a fresh one.
// It returns ErrArchiveExists and leaves everything untouched when an archive
// for now's date already exists.
func (s *Store) Archive(now time.Time) (string, error) {
	if err := s.ensureFile(); err != nil {
		return "", err
	}

	archivePath := s.ArchivePath(now)
	if _, err := os.Stat(archivePath); err == nil {
		logger.Warn("archive already exists", "path", archivePath)
		return archivePath, ErrArchiveExists
	} else if !os.IsNotExist(err) {
		return "", err
	}

	if err := os.Rename(s.Path, archivePath); err != nil {
		return "", err
	}
	if err := s.ensureFile(); err != nil {
		return archivePath, err
	}
	logger.Info("state archived", "from", s.Path, "to", archivePath)
	return archivePath, nil
}

func (s *Store) ensureFile() error {
	if _, err := os.Stat(s.Path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return err
	}
	if err := s.ensureDir(); err != nil {
		return err
	}
	logger.Info("initialising state file", "path", s.Path)
	return writeAtomic(s.Path, NewState())
}

func (s *Store) ensureDir() error {
	return os.MkdirAll(filepath.Dir(s.Path), 0755)
}

// writeAtomic writes state to a temp file next to path and renames it into place.
func writeAtomic(path string, state State) error {
	data, err := json.MarshalIndent(state, "", " ")
	if err != nil {
		return err
	}

	tmpFile := path + ".tmp"
	if err := os.WriteFile(tmpFile, data, 0644); err != nil {
		_ = os.Remove(tmpFile)
		return err
	}
	if err := os.Rename(tmpFile, path); err != nil {
		_ = os.Remove(tmpFile)
		return err
	}
	return nil
}
