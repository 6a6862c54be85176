package import_parser

import (
	"encoding/csv"
	"errors"
	"io"
	"strings"

	"github.com/pstuifzand/tui-datagrid/internal/memtable"
)

// DelimitedParser reads CSV, or TSV when Comma is a tab. The first record
// is the header.
type DelimitedParser struct {
	Comma rune
}

func (p *DelimitedParser) Name() string {
	if p.Comma == '\t' {
		return "TSV"
	}
	return "CSV"
}

// Parse reads every record. Short records are kept short and long ones
// widen the header with generated names.
func (p *DelimitedParser) Parse(content string) (*memtable.Table, error) {
	r := csv.NewReader(strings.NewReader(content))
	if p.Comma != 0 {
		r.Comma = p.Comma
	}
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	header, err := r.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrEmptyInput
	}
	if err != nil {
		return nil, err
	}

	var records [][]string
	for {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		records = append(records, trimTrailingEmpty(rec))
		for len(header) < len(rec) {
			header = append(header, "")
		}
	}
	return buildTable(header, records), nil
}

func trimTrailingEmpty(rec []string) []string {
	n := len(rec)
	for n > 0 && rec[n-1] == "" {
		n--
	}
	return rec[:n]
}
