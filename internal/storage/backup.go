package storage

import (
	"fmt"
	"io"
	"os"

	"github.com/xolan/tante/internal/logger"
)

const (
	// BackupSuffix is the file extension for backup files
	BackupSuffix = ".bak"
	// MaxBackupCount is the maximum number of backup files to keep
	MaxBackupCount = 3
)

// GetBackupPath returns the path of backup n for the given state file.
// Lower numbers are more recent (.bak.1 is the most recent backup).
func GetBackupPath(storagePath string, n int) string {
	return fmt.Sprintf("%s%s.%d", storagePath, BackupSuffix, n)
}

// rotateBackups shifts .bak.1 -> .bak.2 -> .bak.3, dropping the oldest.
// Missing files are skipped.
func rotateBackups(storagePath string) error {
	if err := os.Remove(GetBackupPath(storagePath, MaxBackupCount)); err != nil && !os.IsNotExist(err) {
		return err
	}

	for i := MaxBackupCount - 1; i >= 1; i-- {
		err := os.Rename(GetBackupPath(storagePath, i), GetBackupPath(storagePath, i+1))
		if err != nil && !os.IsNotExist(err) {
			return err
		}
	}

	return nil
}

// CreateBackup copies the state file to .bak.1 after rotating older backups.
// A missing state file is not an error; nothing is backed up.
func CreateBackup(storagePath string) error {
	if _, err := os.Stat(storagePath); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	if err := rotateBackups(storagePath); err != nil {
		return err
	}

	backupPath := GetBackupPath(storagePath, 1)
	if err := copyFile(storagePath, backupPath); err != nil {
		return err
	}
	logger.Debug("backup created", "path", backupPath)
	return nil
}

// BackupInfo contains information about a backup file
type BackupInfo struct {
	Number int    // The backup number (1, 2, or 3)
	Path   string // The full path to the backup file
}

// ListBackups returns the existing backups, most recent first.
func ListBackups(storagePath string) []BackupInfo {
	var backups []BackupInfo
	for i := 1; i <= MaxBackupCount; i++ {
		backupPath := GetBackupPath(storagePath, i)
		if _, err := os.Stat(backupPath); err == nil {
			backups = append(backups, BackupInfo{Number: i, Path: backupPath})
		}
	}
	return backups
}

// RestoreBackup replaces the state file with backup n (1 is most recent).
// The current state is backed up first, so a restore can itself be undone.
func RestoreBackup(storagePath string, n int) error {
	if n < 1 || n > MaxBackupCount {
		return fmt.Errorf("invalid backup number %d, must be between 1 and %d", n, MaxBackupCount)
	}

	backupPath := GetBackupPath(storagePath, n)
	if _, err := os.Stat(backupPath); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("backup %d does not exist", n)
		}
		return err
	}

	// Keep the content to restore: the rotation below renames backupPath.
	data, err := os.ReadFile(backupPath)
	if err != nil {
		return err
	}

	if err := CreateBackup(storagePath); err != nil {
		return err
	}

	tmpFile := storagePath + ".tmp"
	if err := os.WriteFile(tmpFile, data, 0644); err != nil {
		_ = os.Remove(tmpFile)
		return err
	}
	if err := os.Rename(tmpFile, storagePath); err != nil {
		_ = os.Remove(tmpFile)
		return err
	}
	logger.Info("backup restored", "backup", n, "path", storagePath)
	return nil
}

func copyFile(src, dst string) error {
	sourceFile, err := os.Open(src)
	if err != nil {
		return err
	}
	defer func() { _ = sourceFile.Close() }()

	destFile, err := os.Create(dst)
	if err != nil {
		return err
	}

	if _, err := io.Copy(destFile, sourceFile); err != nil {
		_ = destFile.Close()
		return err
	}
	return destFile.Close()
}
