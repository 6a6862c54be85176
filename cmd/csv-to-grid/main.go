package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	import_parser "github.com/pstuifzand/tui-datagrid/internal/import"
	"github.com/pstuifzand/tui-datagrid/internal/storage"
)

func main() {
	format := flag.String("format", "auto", "Input format: csv, tsv, markdown or auto")
	output := flag.String("o", "", "Output grid file (default: input name with .json)")
	addColumns := flag.Bool("grow", true, "Let the grid grow new columns when edited")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: csv-to-grid [options] <input>

Converts a CSV, TSV or markdown table into a grid file. The first line is
the header; a header cell like "Year:year" also sets the column type.

Options:
`)
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	input := flag.Arg(0)

	f, err := import_parser.ParseFormat(*format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	if f == import_parser.FormatAuto {
		f = import_parser.DetectFormat(input)
	}

	content, err := os.ReadFile(input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	t, err := import_parser.ImportFile(string(content), f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	t.AllowAddColumns = *addColumns
	t.AllowHeaderEdits = true

	out := *output
	if out == "" {
		out = strings.TrimSuffix(input, extOf(input)) + ".json"
	}
	if err := storage.NewJSONStore(out).Save(t); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %d rows, %d columns to %s\n", t.RowCount(), t.Schema().Len(), out)
}

func extOf(path string) string {
	if i := strings.LastIndexByte(path, '.'); i > strings.LastIndexByte(path, '/') {
		return path[i:]
	}
	return ""
}
