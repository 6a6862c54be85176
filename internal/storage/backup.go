package storage

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/pstuifzand/tui-datagrid/internal/memtable"
)

const (
	backupExt        = ".tdg"
	backupTimeLayout = "20060102_150405"
)

// BackupManager writes a timestamped copy of a grid every time it is saved.
type BackupManager struct {
	backupDir string
	now       func() time.Time
}

// NewBackupManager returns a manager for ~/.local/share/tui-datagrid/backups.
func NewBackupManager() (*BackupManager, error) {
	return NewBackupManagerAt(GetBackupDir())
}

// NewBackupManagerAt returns a manager writing to dir.
func NewBackupManagerAt(dir string) (*BackupManager, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create backup directory: %w", err)
	}
	return &BackupManager{backupDir: dir, now: time.Now}, nil
}

// GetBackupDir returns the default backup directory.
func GetBackupDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), ".tui-datagrid", "backups")
	}
	return filepath.Join(homeDir, ".local", "share", "tui-datagrid", "backups")
}

// Dir returns the directory backups are written to.
func (bm *BackupManager) Dir() string { return bm.backupDir }

// CreateBackup writes t as YYYYMMDD_HHMMSS_<sessionID>.tdg, recording the
// absolute path of the file it came from.
func (bm *BackupManager) CreateBackup(t *memtable.Table, originalPath, sessionID string) (string, error) {
	absPath, err := filepath.Abs(originalPath)
	if err != nil {
		absPath = originalPath
	}
	data, err := Encode(t, absPath)
	if err != nil {
		return "", fmt.Errorf("failed to marshal backup: %w", err)
	}

	path := filepath.Join(bm.backupDir, bm.generateBackupFilename(sessionID))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write backup file: %w", err)
	}
	return path, nil
}

func (bm *BackupManager) generateBackupFilename(sessionID string) string {
	return fmt.Sprintf("%s_%s%s", bm.now().Format(backupTimeLayout), sessionID, backupExt)
}

// IsBackupFile reports whether path lies in the backup directory and is
// named like a backup.
func (bm *BackupManager) IsBackupFile(path string) bool {
	if path == "" {
		return false
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return false
	}
	if filepath.Dir(abs) != filepath.Clean(bm.backupDir) {
		return false
	}
	_, _, err = parseBackupFilename(filepath.Base(abs))
	return err == nil
}

// BackupMetadata describes one backup file.
type BackupMetadata struct {
	FilePath     string
	Timestamp    time.Time
	SessionID    string
	OriginalFile string
}

// FindBackupsForFile returns the backups of originalFilePath, oldest
// first. An empty path returns every backup.
func (bm *BackupManager) FindBackupsForFile(originalFilePath string) ([]BackupMetadata, error) {
	entries, err := os.ReadDir(bm.backupDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read backup directory: %w", err)
	}

	var searchPath string
	if originalFilePath != "" {
		if abs, err := filepath.Abs(originalFilePath); err == nil {
			searchPath = filepath.Clean(abs)
		} else {
			searchPath = originalFilePath
		}
	}

	var backups []BackupMetadata
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), backupExt) {
			continue
		}
		ts, session, err := parseBackupFilename(entry.Name())
		if err != nil {
			continue
		}
		full := filepath.Join(bm.backupDir, entry.Name())
		meta := BackupMetadata{FilePath: full, Timestamp: ts, SessionID: session, OriginalFile: readOriginalFilename(full)}
		if searchPath != "" && filepath.Clean(meta.OriginalFile) != searchPath {
			continue
		}
		backups = append(backups, meta)
	}

	slices.SortFunc(backups, func(a, b BackupMetadata) int {
		if c := a.Timestamp.Compare(b.Timestamp); c != 0 {
			return c
		}
		return strings.Compare(a.FilePath, b.FilePath)
	})
	return backups, nil
}

// LoadBackup reads the table stored in a backup.
func (bm *BackupManager) LoadBackup(b BackupMetadata) (*memtable.Table, error) {
	data, err := os.ReadFile(b.FilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read backup: %w", err)
	}
	t, _, err := Decode(data)
	return t, err
}

// parseBackupFilename splits YYYYMMDD_HHMMSS_<sessionID>.tdg.
func parseBackupFilename(name string) (time.Time, string, error) {
	base, ok := strings.CutSuffix(name, backupExt)
	if !ok || len(base) < len(backupTimeLayout)+2 || base[len(backupTimeLayout)] != '_' {
		return time.Time{}, "", fmt.Errorf("not a backup name: %q", name)
	}
	ts, err := time.ParseInLocation(backupTimeLayout, base[:len(backupTimeLayout)], time.Local)
	if err != nil {
		return time.Time{}, "", fmt.Errorf("invalid timestamp format: %w", err)
	}
	return ts, base[len(backupTimeLayout)+1:], nil
}

func readOriginalFilename(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	_, original, err := Decode(data)
	if err != nil {
		return ""
	}
	return original
}

// GenerateSessionID returns a random 8-character name for one editing
// session's backups.
func GenerateSessionID() string {
	const charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	b := make([]byte, 8)
	for i := range b {
		b[i] = charset[rand.Intn(len(charset))]
	}
	return string(b)
}
