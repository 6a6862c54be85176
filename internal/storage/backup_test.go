package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/pstuifzand/tui-datagrid/internal/memtable"
)

func newTestBackupManager(t *testing.T) (*BackupManager, *time.Time) {
	t.Helper()
	bm, err := NewBackupManagerAt(t.TempDir())
	if err != nil {
		t.Fatalf("Failed to create backup manager: %v", err)
	}
	now := time.Date(2024, 1, 15, 14, 30, 45, 0, time.Local)
	bm.now = func() time.Time { return now }
	return bm, &now
}

func TestBackupManagerCreateBackup(t *testing.T) {
	bm, _ := newTestBackupManager(t)

	table := memtable.NewFromStrings([]string{"Year", "Title"}, [][]string{{"1968", "Locus Solus"}})
	path, err := bm.CreateBackup(table, "/tmp/test_grid.json", "test1234")
	if err != nil {
		t.Fatalf("Failed to create backup: %v", err)
	}

	if got := filepath.Base(path); got != "20240115_143045_test1234.tdg" {
		t.Errorf("backup name = %q", got)
	}
	if filepath.Dir(path) != bm.Dir() {
		t.Errorf("backup written to %q, want %q", filepath.Dir(path), bm.Dir())
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read backup file: %v", err)
	}
	restored, original, err := Decode(data)
	if err != nil {
		t.Fatalf("Failed to decode backup: %v", err)
	}
	if original != "/tmp/test_grid.json" {
		t.Errorf("original filename = %q", original)
	}
	if restored.RowCount() != 1 || restored.Row(0).Cell(1) != "Locus Solus" {
		t.Errorf("restored rows = %v", restored.Values())
	}
}

func TestParseBackupFilename(t *testing.T) {
	tests := []struct {
		name    string
		session string
		ok      bool
	}{
		{"20240115_143045_abc12345.tdg", "abc12345", true},
		{"20240115_143045_a_b.tdg", "a_b", true},
		{"20240115_143045_.tdg", "", false},
		{"20240115_143045_abc12345.json", "", false},
		{"2024-01-15_abc.tdg", "", false},
		{"20241315_143045_abc.tdg", "", false},
	}
	for _, tt := range tests {
		ts, session, err := parseBackupFilename(tt.name)
		if (err == nil) != tt.ok {
			t.Errorf("parseBackupFilename(%q) err = %v, want ok=%v", tt.name, err, tt.ok)
			continue
		}
		if !tt.ok {
			continue
		}
		if session != tt.session {
			t.Errorf("parseBackupFilename(%q) session = %q, want %q", tt.name, session, tt.session)
		}
		if ts.Year() != 2024 || ts.Month() != time.January || ts.Day() != 15 || ts.Hour() != 14 || ts.Minute() != 30 || ts.Second() != 45 {
			t.Errorf("parseBackupFilename(%q) time = %v", tt.name, ts)
		}
	}
}

func TestFindBackupsForFile(t *testing.T) {
	bm, now := newTestBackupManager(t)
	table := memtable.NewFromStrings([]string{"A"}, [][]string{{"x"}})

	// Write out of order to check sorting.
	*now = now.Add(time.Hour)
	if _, err := bm.CreateBackup(table, "/data/a.json", "late"); err != nil {
		t.Fatal(err)
	}
	*now = now.Add(-2 * time.Hour)
	if _, err := bm.CreateBackup(table, "/data/a.json", "early"); err != nil {
		t.Fatal(err)
	}
	if _, err := bm.CreateBackup(table, "/data/b.json", "other"); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(bm.Dir(), "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	backups, err := bm.FindBackupsForFile("/data/a.json")
	if err != nil {
		t.Fatalf("FindBackupsForFile: %v", err)
	}
	if len(backups) != 2 {
		t.Fatalf("got %d backups, want 2", len(backups))
	}
	if backups[0].SessionID != "early" || backups[1].SessionID != "late" {
		t.Errorf("backups not sorted oldest first: %s, %s", backups[0].SessionID, backups[1].SessionID)
	}
	if backups[0].OriginalFile != "/data/a.json" {
		t.Errorf("OriginalFile = %q", backups[0].OriginalFile)
	}

	all, err := bm.FindBackupsForFile("")
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 3 {
		t.Errorf("got %d backups for all files, want 3", len(all))
	}
}

func TestIsBackupFile(t *testing.T) {
	bm, _ := newTestBackupManager(t)
	table := memtable.NewFromStrings([]string{"A"}, nil)
	path, err := bm.CreateBackup(table, "/data/a.json", "sess0001")
	if err != nil {
		t.Fatal(err)
	}

	if !bm.IsBackupFile(path) {
		t.Errorf("%s should be a backup file", path)
	}
	if bm.IsBackupFile("") {
		t.Errorf("empty path is not a backup")
	}
	if bm.IsBackupFile("/data/a.json") {
		t.Errorf("a regular file is not a backup")
	}
	if bm.IsBackupFile(filepath.Join(t.TempDir(), filepath.Base(path))) {
		t.Errorf("a backup name outside the backup directory is not a backup")
	}
}

func TestLoadBackup(t *testing.T) {
	bm, _ := newTestBackupManager(t)
	table := memtable.NewFromStrings([]string{"Year", "Title"}, [][]string{{"1968", "Locus Solus"}, {"1981", "Lanark"}})
	table.AllowAddColumns = true
	if _, err := bm.CreateBackup(table, "/data/books.json", "sess0002"); err != nil {
		t.Fatal(err)
	}

	backups, err := bm.FindBackupsForFile("/data/books.json")
	if err != nil || len(backups) != 1 {
		t.Fatalf("FindBackupsForFile = %v, %v", backups, err)
	}
	restored, err := bm.LoadBackup(backups[0])
	if err != nil {
		t.Fatalf("LoadBackup: %v", err)
	}
	if restored.RowCount() != 2 || restored.Row(1).Cell(0) != "1981" {
		t.Errorf("restored rows = %v", restored.Values())
	}
	if !restored.AllowAddColumns {
		t.Errorf("flags should survive a backup")
	}
}

func TestGenerateSessionID(t *testing.T) {
	const charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	seen := map[string]bool{}
	for range 20 {
		id := GenerateSessionID()
		if len(id) != 8 {
			t.Errorf("session ID %q should have 8 characters", id)
		}
		for _, c := range id {
			if !strings.ContainsRune(charset, c) {
				t.Errorf("session ID %q has unexpected character %q", id, c)
			}
		}
		seen[id] = true
	}
	if len(seen) < 2 {
		t.Errorf("session IDs should differ")
	}
}
