// Package import_parser turns delimited and markdown text into tables.
package import_parser

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/pstuifzand/tui-datagrid/internal/memtable"
	"github.com/pstuifzand/tui-datagrid/internal/schema"
)

// ErrEmptyInput is returned when there is no header to read.
var ErrEmptyInput = errors.New("empty input")

// ImportFormat represents different file formats that can be imported
type ImportFormat string

const (
	FormatCSV      ImportFormat = "csv"
	FormatTSV      ImportFormat = "tsv"
	FormatMarkdown ImportFormat = "markdown"
	FormatAuto     ImportFormat = "auto" // Auto-detect from extension
)

// Parser interface for different import formats
type Parser interface {
	Parse(content string) (*memtable.Table, error)
	Name() string
}

// ImportFile parses content as a table in the given format.
func ImportFile(content string, format ImportFormat) (*memtable.Table, error) {
	var parser Parser

	switch format {
	case FormatCSV:
		parser = &DelimitedParser{Comma: ','}
	case FormatTSV:
		parser = &DelimitedParser{Comma: '\t'}
	case FormatMarkdown:
		parser = &MarkdownParser{}
	default:
		return nil, fmt.Errorf("unsupported import format: %s", format)
	}

	t, err := parser.Parse(content)
	if err != nil {
		return nil, fmt.Errorf("parse error (%s): %w", parser.Name(), err)
	}
	return t, nil
}

// DetectFormat picks a format from the file extension. Unknown extensions
// are read as CSV.
func DetectFormat(filename string) ImportFormat {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".md", ".markdown":
		return FormatMarkdown
	case ".tsv", ".tab":
		return FormatTSV
	}
	return FormatCSV
}

// ParseFormat accepts a format name as typed on a command line.
func ParseFormat(name string) (ImportFormat, error) {
	switch f := ImportFormat(strings.ToLower(name)); f {
	case FormatCSV, FormatTSV, FormatMarkdown, FormatAuto:
		return f, nil
	case "md":
		return FormatMarkdown, nil
	}
	return "", fmt.Errorf("unsupported import format: %s", name)
}

// headerColumn turns a header cell into a column definition. A cell of the
// form "Name:type" also sets the column type, so "Year:year" makes a year
// column. Unknown types leave the whole cell as the name.
func headerColumn(cell string) schema.ColDefinition {
	cell = strings.TrimSpace(cell)
	if i := strings.LastIndexByte(cell, ':'); i > 0 {
		if typ, err := schema.ParseColumnType(cell[i+1:]); err == nil {
			def := schema.NewColDefinition(strings.TrimSpace(cell[:i]))
			def.Type = typ
			return def
		}
	}
	return schema.NewColDefinition(cell)
}

func buildTable(header []string, records [][]string) *memtable.Table {
	cols := make([]schema.ColDefinition, len(header))
	for i, h := range header {
		cols[i] = headerColumn(h)
		if cols[i].Name == "" {
			cols[i].Name = fmt.Sprintf("Column %d", i+1)
		}
	}
	t := memtable.New(cols...)
	for _, rec := range records {
		t.AppendRow(memtable.NewRow(rec...))
	}
	t.AllowAddColumns = true
	t.AllowHeaderEdits = true
	return t
}
