package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/pstuifzand/tui-datagrid/internal/diff"
	"github.com/pstuifzand/tui-datagrid/internal/memtable"
	"github.com/pstuifzand/tui-datagrid/internal/storage"
)

func main() {
	verbose := flag.Bool("v", false, "Verbose output (show previous row positions)")
	summary := flag.Bool("s", false, "Summary only (no row-level details)")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: grid-diff [options] <file.json>
       grid-diff [options] <old.json> <new.json>

Compares grid files and shows changed columns and rows.

Single-file mode: compares the file against its newest backup
Two-file mode: compares two specific files (backups included)

Options:
`)
		flag.PrintDefaults()
	}
	flag.Parse()

	var oldT, newT *memtable.Table
	var err error
	switch flag.NArg() {
	case 1:
		oldT, newT, err = againstBackup(flag.Arg(0))
	case 2:
		oldT, err = load(flag.Arg(0))
		if err == nil {
			newT, err = load(flag.Arg(1))
		}
	default:
		flag.Usage()
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	result := diff.ComputeDiff(oldT, newT)
	if result.Empty() {
		fmt.Println("No changes")
		return
	}
	lines := diff.BuildDiffLines(result, *verbose)
	if *summary {
		var kept []diff.DiffLine
		for _, l := range lines {
			if l.Type == diff.DiffTypeSummary {
				kept = append(kept, l)
			}
		}
		lines = kept
	}
	fmt.Print(diff.FormatText(lines))
}

// load reads a grid file or a backup; both use the same format.
func load(path string) (*memtable.Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	t, _, err := storage.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

func againstBackup(path string) (*memtable.Table, *memtable.Table, error) {
	bm, err := storage.NewBackupManager()
	if err != nil {
		return nil, nil, err
	}
	backups, err := bm.FindBackupsForFile(path)
	if err != nil {
		return nil, nil, err
	}
	if len(backups) == 0 {
		return nil, nil, fmt.Errorf("no backups found for %s", path)
	}
	oldT, err := bm.LoadBackup(backups[len(backups)-1])
	if err != nil {
		return nil, nil, err
	}
	newT, err := load(path)
	return oldT, newT, err
}
