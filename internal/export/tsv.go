package export

import "strings"

var cellBreaks = strings.NewReplacer("\t", " ", "\r\n", " ", "\n", " ")

// ToTSV joins a block of cells into tab-separated lines, the format other
// spreadsheets put on the clipboard. Tabs and newlines inside cells are
// replaced by spaces.
func ToTSV(cells [][]string) string {
	var sb strings.Builder
	for i, row := range cells {
		if i > 0 {
			sb.WriteString("\n")
		}
		for j, c := range row {
			if j > 0 {
				sb.WriteString("\t")
			}
			sb.WriteString(cellBreaks.Replace(c))
		}
	}
	return sb.String()
}

// FromTSV splits tab-separated text back into a block of cells. A trailing
// newline does not produce an empty row; ragged rows are padded to the
// widest one.
func FromTSV(text string) [][]string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil
	}

	lines := strings.Split(text, "\n")
	out := make([][]string, len(lines))
	width := 0
	for i, line := range lines {
		out[i] = strings.Split(line, "\t")
		width = max(width, len(out[i]))
	}
	for i := range out {
		for len(out[i]) < width {
			out[i] = append(out[i], "")
		}
	}
	return out
}
