package service

import (
	"bytes"
	"encoding/json"
	"errors"
	"time"

	"github.com/xolan/tante/internal/storage"
)

// StorageService exposes maintenance operations on the state file.
type StorageService struct {
	store *storage.Store
}

// NewStorageService creates a new StorageService
func NewStorageService(store *storage.Store) *StorageService {
	return &StorageService{store: store}
}

// Path returns the state file path.
func (s *StorageService) Path() string {
	return s.store.Path
}

// Dump returns the state file re-indented with two spaces.
func (s *StorageService) Dump() (string, error) {
	data, err := s.store.ReadRaw()
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, bytes.TrimSpace(data), "", "  "); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// ArchiveResult describes the outcome of an archive request.
type ArchiveResult struct {
	From          string
	To            string
	AlreadyExists bool
}

// Archive moves the state file aside. An archive that already exists for
// today is reported in the result, not as an error.
func (s *StorageService) Archive(now time.Time) (ArchiveResult, error) {
	to, err := s.store.Archive(now)
	if errors.Is(err, storage.ErrArchiveExists) {
		return ArchiveResult{From: s.store.Path, To: to, AlreadyExists: true}, nil
	}
	if err != nil {
		return ArchiveResult{}, err
	}
	return ArchiveResult{From: s.store.Path, To: to}, nil
}

// Validate checks the state file for malformed data.
func (s *StorageService) Validate(now time.Time) (storage.StorageHealth, error) {
	return storage.ValidateStorage(s.store, now)
}

// Backups lists the rotating backups of the state file.
func (s *StorageService) Backups() []storage.BackupInfo {
	return storage.ListBackups(s.store.Path)
}

// Restore replaces the state file with backup n.
func (s *StorageService) Restore(n int) error {
	return storage.RestoreBackup(s.store.Path, n)
}
