package import_parser

import (
	"bufio"
	"strings"

	"github.com/pstuifzand/tui-datagrid/internal/memtable"
)

// MarkdownParser imports the first pipe table in a markdown document.
type MarkdownParser struct{}

func (p *MarkdownParser) Name() string {
	return "Markdown"
}

// Parse reads the header, skips the delimiter row and reads rows until the
// table ends. Text before the table is ignored.
func (p *MarkdownParser) Parse(content string) (*memtable.Table, error) {
	scanner := bufio.NewScanner(strings.NewReader(content))

	var header []string
	var records [][]string
	inTable := false

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if !strings.HasPrefix(line, "|") {
			if inTable {
				break
			}
			continue
		}

		cells := splitTableRow(line)
		switch {
		case !inTable:
			header = cells
			inTable = true
		case len(records) == 0 && isDelimiterRow(cells):
			continue
		default:
			records = append(records, trimTrailingEmpty(cells))
			for len(header) < len(cells) {
				header = append(header, "")
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if header == nil {
		return nil, ErrEmptyInput
	}
	return buildTable(header, records), nil
}

// splitTableRow splits "| a | b \| c |" into ["a", "b | c"].
func splitTableRow(line string) []string {
	line = strings.TrimPrefix(line, "|")
	if strings.HasSuffix(line, "|") && !strings.HasSuffix(line, `\|`) {
		line = line[:len(line)-1]
	}

	var cells []string
	var cur strings.Builder
	escaped := false
	for _, r := range line {
		switch {
		case escaped:
			if r != '|' {
				cur.WriteRune('\\')
			}
			cur.WriteRune(r)
			escaped = false
		case r == '\\':
			escaped = true
		case r == '|':
			cells = append(cells, strings.TrimSpace(cur.String()))
			cur.Reset()
		default:
			cur.WriteRune(r)
		}
	}
	if escaped {
		cur.WriteRune('\\')
	}
	return append(cells, strings.TrimSpace(cur.String()))
}

func isDelimiterRow(cells []string) bool {
	for _, c := range cells {
		c = strings.TrimSuffix(strings.TrimPrefix(c, ":"), ":")
		if c == "" || strings.Trim(c, "-") != "" {
			return false
		}
	}
	return true
}
