package diff

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pstuifzand/tui-datagrid/internal/memtable"
)

func books(rows ...[]string) *memtable.Table {
	return memtable.NewFromStrings([]string{"Year", "Title"}, rows)
}

func TestComputeDiffIdentical(t *testing.T) {
	a := books([]string{"1968", "Locus Solus"}, []string{"1981", "Lanark"})
	b := books([]string{"1968", "Locus Solus"}, []string{"1981", "Lanark"})
	result := ComputeDiff(a, b)
	assert.True(t, result.Empty())
	assert.Empty(t, BuildDiffLines(result, false))
}

func TestComputeDiffRows(t *testing.T) {
	old := books(
		[]string{"1968", "Locus Solus"},
		[]string{"1981", "Lanark"},
		[]string{"1999", "Gone"},
	)
	new := books(
		[]string{"1960", "Zazie"},
		[]string{"1968", "Locus Solus"},
		[]string{"1982", "Lanark"},
		[]string{"1999", "Gone"},
	)
	result := ComputeDiff(old, new)

	require.Len(t, result.NewRows, 1)
	assert.Equal(t, 0, result.NewRows[0].Index)
	assert.Empty(t, result.DeletedRows)
	require.Len(t, result.ModifiedRows, 1)
	change := result.ModifiedRows[0]
	assert.Equal(t, 1, change.Old.Index)
	assert.Equal(t, 2, change.New.Index)
	assert.Equal(t, []CellChange{{Column: "Year", Old: "1981", New: "1982"}}, change.Cells)
}

func TestComputeDiffDeletedRows(t *testing.T) {
	old := books([]string{"1"}, []string{"2"}, []string{"3"})
	new := books([]string{"1"})
	result := ComputeDiff(old, new)
	assert.Len(t, result.DeletedRows, 2)
	assert.Empty(t, result.ModifiedRows)
	assert.Empty(t, result.NewRows)
}

func TestComputeDiffColumns(t *testing.T) {
	old := memtable.NewFromStrings([]string{"Year", "Title", "Notes"}, [][]string{{"1968", "Locus Solus", "x"}})
	new := memtable.NewFromStrings([]string{"Title", "Year", "Publisher"}, [][]string{{"Locus Solus", "1968", "Lemerre"}})
	result := ComputeDiff(old, new)

	assert.Equal(t, []string{"Publisher"}, result.AddedColumns)
	assert.Equal(t, []string{"Notes"}, result.RemovedColumns)
	// Rows agree on every shared column.
	assert.Empty(t, result.ModifiedRows)
	assert.Empty(t, result.NewRows)
}

func TestComputeDiffRowKind(t *testing.T) {
	old := books([]string{"1970s"})
	new := books([]string{"1970s"})
	banner := memtable.NewRow("1970s")
	banner.Text = true
	new.SetRow(0, banner)

	result := ComputeDiff(old, new)
	require.Len(t, result.ModifiedRows, 1)
	assert.True(t, result.ModifiedRows[0].FlagsChanged)
	assert.Empty(t, result.ModifiedRows[0].Cells)
}

func TestMatchRows(t *testing.T) {
	pairs := matchRows([]string{"a", "b", "c", "d"}, []string{"b", "x", "d"})
	assert.Equal(t, [][2]int{{1, 0}, {3, 2}}, pairs)
	assert.Nil(t, matchRows(nil, []string{"a"}))
}

func TestBuildDiffLines(t *testing.T) {
	old := books([]string{"1968", "Locus Solus"}, []string{"1981", "Lanark"})
	new := memtable.NewFromStrings([]string{"Year", "Title", "Notes"}, [][]string{
		{"1968", "Locus Solus"},
		{"1982", "Lanark"},
		{"2001", "Austerlitz"},
	})
	lines := BuildDiffLines(ComputeDiff(old, new), true)
	text := FormatText(lines)

	assert.Contains(t, text, "Columns:\n  + Notes\n")
	assert.Contains(t, text, "Modified Rows:\n  2: 1982 | Lanark\n")
	assert.Contains(t, text, `Year: "1981" -> "1982"`)
	assert.Contains(t, text, "WAS: 1981 | Lanark")
	assert.Contains(t, text, "New Rows:\n  3: 2001 | Austerlitz\n")
	assert.Equal(t, DiffTypeSummary, lines[len(lines)-1].Type)
	assert.Equal(t, "  1 modified, 1 added, 0 deleted rows; 1 added, 0 removed columns", lines[len(lines)-1].Content)
}

func TestTruncateText(t *testing.T) {
	assert.Equal(t, "short", truncateText("short", 10))
	assert.Equal(t, "first ...", truncateText("first\nsecond", 20))
	assert.Equal(t, "abcdefg...", truncateText("abcdefghijklmnop", 10))
}
