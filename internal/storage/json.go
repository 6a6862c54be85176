// Package storage reads and writes grid files and their backups.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gdamore/tcell/v2"

	"github.com/pstuifzand/tui-datagrid/internal/grid"
	"github.com/pstuifzand/tui-datagrid/internal/memtable"
	"github.com/pstuifzand/tui-datagrid/internal/schema"
	"github.com/pstuifzand/tui-datagrid/internal/theme"
)

// FormatVersion is the version written to new grid files.
const FormatVersion = 1

// gridFile is the JSON form of a table.
type gridFile struct {
	Version          int          `json:"version"`
	Columns          *schema.List `json:"columns"`
	Rows             []fileRow    `json:"rows"`
	Editable         []grid.Cell  `json:"editable,omitempty"`
	AllowAddColumns  bool         `json:"allow_add_columns,omitempty"`
	AllowHeaderEdits bool         `json:"allow_header_edits,omitempty"`
	FixedColumns     bool         `json:"fixed_columns,omitempty"`
	TextColor        string       `json:"text_color,omitempty"`
	OriginalFilename string       `json:"original_filename,omitempty"`
}

type fileRow struct {
	Cells []string `json:"cells"`
	Text  bool     `json:"text,omitempty"`
	Link  bool     `json:"link,omitempty"`
}

// JSONStore handles JSON file persistence
type JSONStore struct {
	FilePath string
}

// NewJSONStore creates a new JSON store for the given file path
func NewJSONStore(filePath string) *JSONStore {
	return &JSONStore{FilePath: filePath}
}

// NewTable returns the table a new file starts with: three plain columns
// that may grow.
func NewTable() *memtable.Table {
	t := memtable.New(
		schema.NewColDefinition("A"),
		schema.NewColDefinition("B"),
		schema.NewColDefinition("C"),
	)
	t.AllowAddColumns = true
	t.AllowHeaderEdits = true
	return t
}

// Load reads the table. A missing file gives NewTable.
func (s *JSONStore) Load() (*memtable.Table, error) {
	data, err := os.ReadFile(s.FilePath)
	if errors.Is(err, os.ErrNotExist) {
		return NewTable(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	t, _, err := Decode(data)
	return t, err
}

// Save writes the table.
func (s *JSONStore) Save(t *memtable.Table) error {
	data, err := Encode(t, "")
	if err != nil {
		return err
	}
	return writeFile(s.FilePath, data)
}

// FileExists checks if the grid file exists
func (s *JSONStore) FileExists() bool {
	_, err := os.Stat(s.FilePath)
	return err == nil
}

func writeFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}

// Encode converts t to its file form. originalPath is recorded in backups
// and left empty otherwise.
func Encode(t *memtable.Table, originalPath string) ([]byte, error) {
	f := gridFile{
		Version:          FormatVersion,
		Columns:          t.Schema(),
		Editable:         t.Overlay().Cells(),
		AllowAddColumns:  t.AllowAddColumns,
		AllowHeaderEdits: t.AllowHeaderEdits,
		FixedColumns:     t.FixedColumns,
		OriginalFilename: originalPath,
	}
	if t.TextColor != nil {
		f.TextColor = theme.ColorToHex(*t.TextColor)
	}
	for _, r := range t.Rows() {
		f.Rows = append(f.Rows, fileRow{
			Cells: r.Cells(),
			Text:  grid.IsTextRow(r),
			Link:  grid.IsLinkRow(r),
		})
	}

	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal JSON: %w", err)
	}
	return data, nil
}

// Decode parses a grid file and returns the table and the original
// filename recorded in it.
func Decode(data []byte) (*memtable.Table, string, error) {
	var f gridFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, "", fmt.Errorf("%w: %w", ErrBadFormat, err)
	}
	if f.Version > FormatVersion {
		return nil, "", fmt.Errorf("%w: version %d is newer than %d", ErrBadFormat, f.Version, FormatVersion)
	}
	if f.Columns == nil {
		return nil, "", fmt.Errorf("%w: no columns", ErrBadFormat)
	}

	t := memtable.New(f.Columns.All()...)
	t.AllowAddColumns = f.AllowAddColumns
	t.AllowHeaderEdits = f.AllowHeaderEdits
	t.FixedColumns = f.FixedColumns
	if f.TextColor != "" {
		c := theme.ParseColorString(f.TextColor)
		if c != tcell.ColorDefault {
			t.TextColor = &c
		}
	}
	for _, fr := range f.Rows {
		r := memtable.NewRow(fr.Cells...)
		r.Text = fr.Text
		r.Link = fr.Link
		t.AppendRow(r)
	}
	for _, c := range f.Editable {
		if c.Row < 0 || c.Row >= t.RowCount() || c.Col < 0 || c.Col >= t.Schema().Len() {
			continue
		}
		t.Overlay().Allow(c.Row, c.Col)
	}
	return t, f.OriginalFilename, nil
}
