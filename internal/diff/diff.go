package diff

import (
	"slices"
	"strings"

	"github.com/pstuifzand/tui-datagrid/internal/grid"
)

// maxLCSCells bounds the row-matching table. Larger grids are matched by
// position instead.
const maxLCSCells = 4_000_000

// ComputeDiff compares old with new. Columns are matched by name; rows are
// matched by their values in the columns both grids share, and unmatched
// rows sitting between the same two matches are paired up as
// modifications.
func ComputeDiff(old, new grid.DataSource) *DiffResult {
	result := &DiffResult{}

	oldNames := old.Schema().Names()
	newNames := new.Schema().Names()
	for _, n := range newNames {
		if !slices.Contains(oldNames, n) {
			result.AddedColumns = append(result.AddedColumns, n)
		}
	}
	for _, n := range oldNames {
		if !slices.Contains(newNames, n) {
			result.RemovedColumns = append(result.RemovedColumns, n)
		}
	}

	var shared []string
	for _, n := range newNames {
		if slices.Contains(oldNames, n) {
			shared = append(shared, n)
		}
	}
	oldRows := rowData(old, shared)
	newRows := rowData(new, shared)
	oldKeys := keys(old, oldRows, shared)
	newKeys := keys(new, newRows, shared)

	pairs := matchRows(oldKeys, newKeys)
	pairs = append(pairs, [2]int{len(oldKeys), len(newKeys)})

	i, j := 0, 0
	for _, p := range pairs {
		analyzeGap(result, old, new, shared, oldRows[i:p[0]], newRows[j:p[1]])
		i, j = p[0]+1, p[1]+1
	}
	return result
}

func rowData(ds grid.DataSource, shared []string) []RowData {
	out := make([]RowData, ds.RowCount())
	for i := range out {
		r := ds.Row(i)
		out[i] = RowData{Index: i, Cells: r.Cells(), Text: grid.IsTextRow(r), Link: grid.IsLinkRow(r)}
	}
	return out
}

// keys renders each row's shared-column values and flags as one string.
func keys(ds grid.DataSource, rows []RowData, shared []string) []string {
	cols := ds.Schema()
	idx := make([]int, len(shared))
	for k, name := range shared {
		idx[k], _ = cols.IndexOf(name)
	}

	out := make([]string, len(rows))
	for i, r := range rows {
		var sb strings.Builder
		if r.Text {
			sb.WriteString("T")
		}
		if r.Link {
			sb.WriteString("L")
		}
		for _, c := range idx {
			sb.WriteByte(0x1f)
			if c >= 0 && c < len(r.Cells) {
				sb.WriteString(r.Cells[c])
			}
		}
		out[i] = sb.String()
	}
	return out
}

// matchRows returns the index pairs of a longest common subsequence of a
// and b, in order.
func matchRows(a, b []string) [][2]int {
	n, m := len(a), len(b)
	if n == 0 || m == 0 {
		return nil
	}
	if n*m > maxLCSCells {
		var pairs [][2]int
		for i := 0; i < min(n, m); i++ {
			if a[i] == b[i] {
				pairs = append(pairs, [2]int{i, i})
			}
		}
		return pairs
	}

	// lcs[i][j] is the LCS length of a[i:] and b[j:].
	lcs := make([][]int32, n+1)
	for i := range lcs {
		lcs[i] = make([]int32, m+1)
	}
	for i := n - 1; i >= 0; i-- {
		for j := m - 1; j >= 0; j-- {
			if a[i] == b[j] {
				lcs[i][j] = lcs[i+1][j+1] + 1
			} else {
				lcs[i][j] = max(lcs[i+1][j], lcs[i][j+1])
			}
		}
	}

	var pairs [][2]int
	for i, j := 0, 0; i < n && j < m; {
		switch {
		case a[i] == b[j]:
			pairs = append(pairs, [2]int{i, j})
			i++
			j++
		case lcs[i+1][j] >= lcs[i][j+1]:
			i++
		default:
			j++
		}
	}
	return pairs
}

// analyzeGap classifies the rows between two matched rows: the first
// min(len) are modifications, the rest deletions or additions.
func analyzeGap(result *DiffResult, old, new grid.DataSource, shared []string, oldRows, newRows []RowData) {
	n := min(len(oldRows), len(newRows))
	for k := 0; k < n; k++ {
		result.ModifiedRows = append(result.ModifiedRows, compareRows(old, new, shared, oldRows[k], newRows[k]))
	}
	result.DeletedRows = append(result.DeletedRows, oldRows[n:]...)
	result.NewRows = append(result.NewRows, newRows[n:]...)
}

func compareRows(old, new grid.DataSource, shared []string, o, n RowData) RowChange {
	change := RowChange{Old: o, New: n, FlagsChanged: o.Text != n.Text || o.Link != n.Link}
	for _, name := range shared {
		oi, _ := old.Schema().IndexOf(name)
		ni, _ := new.Schema().IndexOf(name)
		ov, nv := cellAt(o.Cells, oi), cellAt(n.Cells, ni)
		if ov != nv {
			change.Cells = append(change.Cells, CellChange{Column: name, Old: ov, New: nv})
		}
	}
	return change
}

func cellAt(cells []string, i int) string {
	if i < 0 || i >= len(cells) {
		return ""
	}
	return cells[i]
}
