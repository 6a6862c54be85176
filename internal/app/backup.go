package app

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/pstuifzand/tui-datagrid/internal/grid"
	"github.com/pstuifzand/tui-datagrid/internal/storage"
)

// currentEntry stands for the unsaved grid in the backup list.
const currentEntry = "(current)"

// backupsForFile returns the backups of the open file, oldest first.
func (a *App) backupsForFile() ([]storage.BackupMetadata, error) {
	if a.backups == nil {
		return nil, fmt.Errorf("backups are disabled")
	}
	if a.filePath == "" {
		return nil, fmt.Errorf("no file to find backups for")
	}
	backups, err := a.backups.FindBackupsForFile(a.filePath)
	if err != nil {
		return nil, err
	}
	if len(backups) == 0 {
		return nil, fmt.Errorf("no backups found for %s", filepath.Base(a.filePath))
	}
	return backups, nil
}

// showBackups opens the backup selector with a diff of each backup
// against the grid on screen.
func (a *App) showBackups() {
	backups, err := a.backupsForFile()
	if err != nil {
		a.SetStatus(err.Error())
		return
	}

	// The grid itself comes last so it is listed first.
	backups = append(backups, storage.BackupMetadata{
		FilePath:     currentEntry,
		Timestamp:    time.Now(),
		SessionID:    "current",
		OriginalFile: a.filePath,
	})

	load := func(b storage.BackupMetadata) (grid.DataSource, error) {
		if b.FilePath == currentEntry {
			return a.table, nil
		}
		return a.backups.LoadBackup(b)
	}
	a.backupSelector.Show(backups, a.table, load,
		func(b storage.BackupMetadata) {
			if b.FilePath == currentEntry {
				a.SetStatus("Already at current state")
				return
			}
			a.restoreBackup(b)
		},
		func() { a.SetStatus("Restore cancelled") },
	)
}

// restoreBackup replaces the grid with the backup. The file is not written
// until the next save.
func (a *App) restoreBackup(b storage.BackupMetadata) bool {
	t, err := a.backups.LoadBackup(b)
	if err != nil {
		a.SetStatus(fmt.Sprintf("Failed to load backup: %v", err))
		return false
	}
	saved := a.savedSig
	a.setTable(t)
	a.savedSig = saved
	a.updateDirty()
	a.backupIndex = -1
	a.SetStatus(fmt.Sprintf("Restored backup from %s", b.Timestamp.Format("2006-01-02 15:04:05")))
	return true
}

// stepBackup restores the backup before (delta -1) or after (delta 1) the
// one restored last. Starting from the saved file, -1 is the newest backup.
// With sameSession only this session's backups are visited.
func (a *App) stepBackup(delta int, sameSession bool) {
	all, err := a.backupsForFile()
	if err != nil {
		a.SetStatus(err.Error())
		return
	}
	var backups []storage.BackupMetadata
	for _, b := range all {
		if !sameSession || b.SessionID == a.sessionID {
			backups = append(backups, b)
		}
	}
	if len(backups) == 0 {
		a.SetStatus("No backups in this session")
		return
	}

	idx := a.backupIndex
	if idx < 0 || idx >= len(backups) {
		idx = len(backups)
	}
	idx += delta
	if idx < 0 {
		a.SetStatus("Already at oldest backup")
		return
	}
	if idx >= len(backups) {
		a.SetStatus("Already at newest backup")
		return
	}
	if a.restoreBackup(backups[idx]) {
		a.backupIndex = idx
		a.SetStatus(fmt.Sprintf("Backup %d/%d from %s", idx+1, len(backups), backups[idx].Timestamp.Format("2006-01-02 15:04:05")))
	}
}
