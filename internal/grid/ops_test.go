package grid_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pstuifzand/tui-datagrid/internal/grid"
	"github.com/pstuifzand/tui-datagrid/internal/memtable"
	"github.com/pstuifzand/tui-datagrid/internal/schema"
)

// tagged returns a table whose column 0 holds a unique tag per row.
func tagged(nrows int) *memtable.Table {
	t := memtable.New(
		schema.NewColDefinition("Tag"),
		schema.ColDefinition{Name: "Note", Width: 10, Editable: schema.EditableMaybe},
	)
	for i := 0; i < nrows; i++ {
		t.AppendRow(memtable.NewRow(fmt.Sprintf("r%d", i), ""))
	}
	return t
}

// overlayTags returns the tags of the rows the overlay points at.
func overlayTags(t *memtable.Table) map[string]bool {
	tags := map[string]bool{}
	for _, c := range t.Overlay().Cells() {
		tags[t.Row(c.Row).Cell(0)] = true
	}
	return tags
}

func TestInsertColumnScenario(t *testing.T) {
	tbl := memtable.NewFromStrings([]string{"A", "B"}, [][]string{
		{"a0", "b0"}, {"a1", "b1"}, {"a2", "b2"},
	})

	grid.InsertColumn(tbl, 1, schema.NewColDefinition("Notes"))

	assert.Equal(t, []string{"A", "Notes", "B"}, tbl.Schema().Names())
	for i, r := range tbl.Rows() {
		assert.Equal(t, []string{fmt.Sprintf("a%d", i), "", fmt.Sprintf("b%d", i)}, r.Cells())
	}
}

func TestInsertColumnAppend(t *testing.T) {
	tbl := memtable.NewFromStrings([]string{"A"}, [][]string{{"x"}, {"y"}})
	grid.InsertColumn(tbl, -1, schema.NewColDefinition("Z"))
	assert.Equal(t, []string{"A", "Z"}, tbl.Schema().Names())
	assert.Equal(t, [][]string{{"x", ""}, {"y", ""}}, tbl.Values())
}

func TestInsertColumnHeaderLeavesCells(t *testing.T) {
	tbl := memtable.NewFromStrings([]string{"A"}, [][]string{{"x"}})
	grid.InsertColumnHeader(tbl, 0, schema.NewColDefinition("First"))
	assert.Equal(t, []string{"First", "A"}, tbl.Schema().Names())
	assert.Equal(t, [][]string{{"x"}}, tbl.Values())
}

func TestInsertColumnShiftsOverlay(t *testing.T) {
	tbl := tagged(2)
	tbl.Overlay().Allow(1, 1)
	grid.InsertColumn(tbl, 1, schema.NewColDefinition("New"))
	assert.True(t, tbl.Overlay().Allowed(1, 2))
	assert.False(t, tbl.Overlay().Allowed(1, 1))
}

func TestDeleteColumn(t *testing.T) {
	tbl := memtable.NewFromStrings([]string{"A", "B", "C"}, [][]string{{"a", "b", "c"}})
	tbl.Overlay().Allow(0, 1)
	tbl.Overlay().Allow(0, 2)
	grid.DeleteColumn(tbl, 1)
	assert.Equal(t, []string{"A", "C"}, tbl.Schema().Names())
	assert.Equal(t, [][]string{{"a", "c"}}, tbl.Values())
	assert.Equal(t, []grid.Cell{{Row: 0, Col: 1}}, tbl.Overlay().Cells())
}

func TestMoveColumns(t *testing.T) {
	tbl := memtable.NewFromStrings([]string{"A", "B", "C", "D"}, [][]string{{"a", "b", "c", "d"}})
	tbl.Overlay().Allow(0, 0)
	grid.MoveColumns(tbl, 0, 2, 2)
	assert.Equal(t, []string{"C", "D", "A", "B"}, tbl.Schema().Names())
	assert.Equal(t, [][]string{{"c", "d", "a", "b"}}, tbl.Values())
	assert.True(t, tbl.Overlay().Allowed(0, 2))
}

func TestMoveColumnsTargetOutOfRangePanics(t *testing.T) {
	tbl := memtable.NewFromStrings([]string{"A", "B"}, nil)
	assert.Panics(t, func() { grid.MoveColumns(tbl, 0, 1, 2) })
	assert.Panics(t, func() { grid.MoveColumns(tbl, 0, 1, -1) })
}

func TestInsertRowsKeepsOverlayOnSameRow(t *testing.T) {
	tbl := tagged(5)
	tbl.Overlay().Allow(1, 1)
	tbl.Overlay().Allow(3, 1)
	before := overlayTags(tbl)

	grid.InsertRows(tbl, 2, 3)

	assert.Equal(t, 8, tbl.RowCount())
	assert.Equal(t, before, overlayTags(tbl))
	assert.True(t, tbl.Overlay().Allowed(1, 1))
	assert.True(t, tbl.Overlay().Allowed(6, 1))
}

func TestDeleteRowsDropsAndShifts(t *testing.T) {
	tbl := tagged(6)
	tbl.Overlay().Allow(1, 1)
	tbl.Overlay().Allow(2, 1)
	tbl.Overlay().Allow(5, 1)

	n := grid.DeleteRows(tbl, 2, 2)
	require.Equal(t, 2, n)

	assert.Equal(t, 4, tbl.RowCount())
	assert.Equal(t, map[string]bool{"r1": true, "r5": true}, overlayTags(tbl))
}

func TestDeleteRowsClamps(t *testing.T) {
	tbl := tagged(3)
	assert.Equal(t, 0, grid.DeleteRows(tbl, 5, 1))
	assert.Equal(t, 2, grid.DeleteRows(tbl, 1, 10))
	assert.Equal(t, 1, tbl.RowCount())
}

func TestMoveRowsRemapsOverlay(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for trial := 0; trial < 200; trial++ {
		n := 2 + rng.Intn(10)
		tbl := tagged(n)
		for i := 0; i < n; i++ {
			if rng.Intn(2) == 0 {
				tbl.Overlay().Allow(i, 1)
			}
		}
		before := overlayTags(tbl)

		start := rng.Intn(n)
		count := 1 + rng.Intn(n-start)
		dest := rng.Intn(n - count + 1)
		grid.MoveRows(tbl, start, count, dest)

		require.Equal(t, before, overlayTags(tbl), "n=%d start=%d count=%d dest=%d", n, start, count, dest)

		grid.MoveRows(tbl, dest, count, start)
		for i, r := range tbl.Rows() {
			require.Equal(t, fmt.Sprintf("r%d", i), r.Cell(0))
		}
	}
}

func TestMoveRowsDropsStaleOverlay(t *testing.T) {
	tbl := tagged(3)
	tbl.Overlay().Allow(7, 1)
	tbl.Overlay().Allow(0, 1)
	grid.MoveRows(tbl, 0, 1, 1)
	assert.Equal(t, []grid.Cell{{Row: 1, Col: 1}}, tbl.Overlay().Cells())
}

func TestAppendEmptyRows(t *testing.T) {
	tbl := tagged(2)
	added := grid.AppendEmptyRows(tbl, 3)
	assert.Len(t, added, 3)
	assert.Equal(t, 5, tbl.RowCount())
	for _, r := range added {
		assert.True(t, r.IsEmptyRow())
	}
}

func TestExpandToInclude(t *testing.T) {
	tbl := memtable.NewFromStrings([]string{"A"}, [][]string{{"x"}})
	grid.ExpandToInclude(tbl, 3, 0)
	assert.Equal(t, 4, tbl.RowCount())

	assert.Panics(t, func() { grid.ExpandToInclude(tbl, 0, 2) })

	tbl.AllowAddColumns = true
	grid.ExpandToInclude(tbl, 0, 2)
	assert.Equal(t, 3, tbl.Schema().Len())
	assert.Equal(t, "", tbl.Row(3).Cell(2))
	assert.Len(t, tbl.Row(0).Cells(), 3)
}

func TestLimitBoxToActuals(t *testing.T) {
	tbl := memtable.NewFromStrings([]string{"A", "B"}, [][]string{{"", ""}, {"", ""}, {"", ""}})
	b := grid.LimitBoxToActuals(tbl, grid.Box{Top: -2, Left: -1, Bottom: 10, Right: 9})
	assert.Equal(t, grid.Box{Top: 0, Left: 0, Bottom: 2, Right: 1}, b)
}

func TestMakeTextLinesEditable(t *testing.T) {
	tbl := tagged(3)
	tbl.Row(1).(*memtable.Row).Text = true
	tbl.Row(2).(*memtable.Row).Link = true
	grid.MakeTextLinesEditable(tbl)
	assert.Equal(t, []grid.Cell{{Row: 1, Col: 1}, {Row: 2, Col: 1}}, tbl.Overlay().Cells())
}

func TestCanEdit(t *testing.T) {
	tbl := memtable.New(
		schema.NewColDefinition("Yes"),
		schema.ColDefinition{Name: "No", Editable: schema.EditableNo},
		schema.ColDefinition{Name: "Maybe", Editable: schema.EditableMaybe},
	)
	tbl.AppendRow(memtable.NewRow("", "", ""))
	tbl.Overlay().Allow(0, 2)

	assert.True(t, grid.CanEdit(tbl, 0, 0))
	assert.False(t, grid.CanEdit(tbl, 0, 1))
	assert.True(t, grid.CanEdit(tbl, 0, 2))
	assert.False(t, grid.CanEdit(tbl, 1, 2))
	assert.False(t, grid.CanEdit(tbl, 0, 3))
}

func TestCapabilityDefaults(t *testing.T) {
	tbl := memtable.New()
	assert.False(t, grid.CanAddColumns(tbl))
	assert.False(t, grid.CanEditColumnHeaders(tbl))
	assert.True(t, grid.CanMoveColumns(tbl))
	_, ok := grid.SpecialTextColor(tbl)
	assert.False(t, ok)

	tbl.FixedColumns = true
	assert.False(t, grid.CanMoveColumns(tbl))
}

func TestRowCapabilityDefaults(t *testing.T) {
	var r grid.Row = plainRow{}
	assert.False(t, grid.IsTextRow(r))
	assert.False(t, grid.IsLinkRow(r))
	assert.Equal(t, uint64(0), grid.RowSignature(r))

	mr := memtable.NewRow("a")
	mr.Text = true
	assert.True(t, grid.IsTextRow(mr))
	assert.NotZero(t, grid.RowSignature(mr))
}

type plainRow struct{}

func (plainRow) Cell(int) string     { return "" }
func (plainRow) SetCell(int, string) {}
func (plainRow) Cells() []string     { return nil }
func (plainRow) SetCells([]string)   {}
func (plainRow) DelCols(int, int)    {}
func (plainRow) Append(string)       {}
func (plainRow) IsEmptyRow() bool    { return true }
