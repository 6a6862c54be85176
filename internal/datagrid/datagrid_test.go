package datagrid_test

import (
	"strconv"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pstuifzand/tui-datagrid/internal/datagrid"
	"github.com/pstuifzand/tui-datagrid/internal/grid"
	"github.com/pstuifzand/tui-datagrid/internal/memtable"
	"github.com/pstuifzand/tui-datagrid/internal/schema"
	"github.com/pstuifzand/tui-datagrid/internal/theme"
	"github.com/pstuifzand/tui-datagrid/internal/ui"
	"github.com/pstuifzand/tui-datagrid/internal/validate"
)

var palette = theme.DefaultGridPalette()

type stubPrompter struct {
	answer string
	ok     bool
	asked  []string
}

func (p *stubPrompter) Prompt(message, title, initial string) (string, bool) {
	p.asked = append(p.asked, message)
	return p.answer, p.ok
}

type sinkFunc func(string) error

func (f sinkFunc) WriteText(text string) error { return f(text) }

func newController(ds grid.DataSource, opts ...datagrid.Option) (*datagrid.DataGrid, *ui.GridView) {
	v := ui.NewGridView()
	g := datagrid.New(v, opts...)
	g.SetDataSource(ds)
	g.Refresh(datagrid.FullRefresh())
	return g, v
}

func col(name string, typ schema.ColumnType, ed schema.Editability) schema.ColDefinition {
	return schema.ColDefinition{Name: name, Width: 4, Type: typ, Editable: ed}
}

// threeByThree returns a 3x3 table whose cells are named by position.
func threeByThree() *memtable.Table {
	return memtable.NewFromStrings([]string{"A", "B", "C"}, [][]string{
		{"a0", "b0", "c0"},
		{"a1", "b1", "c1"},
		{"a2", "b2", "c2"},
	})
}

func TestYearMonthColoring(t *testing.T) {
	tbl := memtable.New(
		col("Year", schema.TypeYear, schema.EditableYes),
		col("Month", schema.TypeMonth, schema.EditableYes),
	)
	tbl.AppendRow(memtable.NewRow("2030", "Jan"))

	strict := validate.NewSet(nil)
	strict.MaxYear = 2020
	_, v := newController(tbl, datagrid.WithValidators(strict))
	assert.Equal(t, palette.Pink, v.CellStyle(0, 0).Background, "2030 is after 2020")
	assert.Equal(t, palette.White, v.CellStyle(0, 1).Background)

	g, v := newController(tbl)
	assert.Equal(t, palette.White, v.CellStyle(0, 0).Background, "2030 is inside the default bounds")

	for _, val := range []string{"2051", "1925", "19x"} {
		g.OnCellValueChanged(0, 0, val)
		assert.Equal(t, palette.Pink, v.CellStyle(0, 0).Background, val)
	}
	g.OnCellValueChanged(0, 1, "13")
	assert.Equal(t, palette.Pink, v.CellStyle(0, 1).Background)
	g.OnCellValueChanged(0, 1, " summer ")
	assert.Equal(t, palette.White, v.CellStyle(0, 1).Background)
}

func TestValidationPerType(t *testing.T) {
	tbl := memtable.New(
		col("Int", schema.TypeInt, schema.EditableYes),
		col("Float", schema.TypeFloat, schema.EditableYes),
		col("Day", schema.TypeDay, schema.EditableYes),
		col("Req", schema.TypeRequiredString, schema.EditableYes),
		col("Str", schema.TypeString, schema.EditableYes),
	)
	tbl.AppendRow(memtable.NewRow("1.5", "abc", "32", "", "anything"))
	tbl.AppendRow(memtable.NewRow(" 7 ", "-2.5e3", "31", "x", ""))
	tbl.AppendRow(memtable.NewRow())

	_, v := newController(tbl)
	for icol := 0; icol < 4; icol++ {
		assert.Equal(t, palette.Pink, v.CellStyle(0, icol).Background, "row 0 col %d", icol)
	}
	assert.Equal(t, palette.White, v.CellStyle(0, 4).Background)
	for icol := 0; icol < 5; icol++ {
		assert.Equal(t, palette.White, v.CellStyle(1, icol).Background, "row 1 col %d", icol)
		assert.Equal(t, palette.White, v.CellStyle(2, icol).Background, "empty rows are not validated")
	}
}

func TestColoringIsIdempotent(t *testing.T) {
	tbl := memtable.New(
		col("Year", schema.TypeYear, schema.EditableYes),
		col("Display Name", schema.TypeString, schema.EditableMaybe),
		col("URL", schema.TypeURL, schema.EditableNo),
	)
	tbl.AppendRow(memtable.NewRow("1800", "x", "https://example.com"))
	text := memtable.NewRow("Banner")
	text.Text = true
	tbl.AppendRow(text)
	link := memtable.NewRow("1999", "Link")
	link.Link = true
	tbl.AppendRow(link)

	g, v := newController(tbl, datagrid.WithSpareRows(2))
	snapshot := func() []datagrid.CellStyle {
		var out []datagrid.CellStyle
		for r := 0; r < v.NumberRows(); r++ {
			for c := 0; c < v.NumberCols(); c++ {
				out = append(out, v.CellStyle(r, c))
			}
		}
		return out
	}
	first := snapshot()
	g.ColorCellsByValue(-1, -1, -1, -1)
	assert.Equal(t, first, snapshot())
	g.ColorCellsByValue(-1, -1, -1, -1)
	assert.Equal(t, first, snapshot())
}

func TestEditabilityShading(t *testing.T) {
	tbl := memtable.New(
		col("Yes", schema.TypeString, schema.EditableYes),
		col("Maybe", schema.TypeString, schema.EditableMaybe),
		col("No", schema.TypeString, schema.EditableNo),
	)
	tbl.AppendRow(memtable.NewRow("a", "b", "c"))
	g, v := newController(tbl, datagrid.WithSpareRows(1))

	assert.Equal(t, palette.White, v.CellStyle(0, 0).Background)
	assert.Equal(t, palette.LightGray, v.CellStyle(0, 1).Background)
	assert.Equal(t, palette.LightGray, v.CellStyle(0, 2).Background)
	assert.True(t, g.CanEditCell(0, 0))
	assert.False(t, g.CanEditCell(0, 1))
	assert.False(t, g.CanEditCell(0, 2))

	g.AllowCellEdit(0, 1)
	g.ColorCell(0, 1)
	assert.True(t, g.CanEditCell(0, 1))
	assert.Equal(t, palette.White, v.CellStyle(0, 1).Background)

	// Filler row below the data.
	assert.Equal(t, palette.White, v.CellStyle(1, 0).Background)
	assert.Equal(t, palette.LightGray, v.CellStyle(1, 1).Background)
	assert.Equal(t, palette.LightGray, v.CellStyle(1, 2).Background)
}

func TestTextAndLinkRows(t *testing.T) {
	tbl := memtable.New(
		col("Year", schema.TypeYear, schema.EditableYes),
		col(grid.DisplayNameColumn, schema.TypeString, schema.EditableMaybe),
		col("Notes", schema.TypeString, schema.EditableYes),
	)
	text := memtable.NewRow("The seventies")
	text.Text = true
	tbl.AppendRow(text)
	link := memtable.NewRow("1970", "Other grid")
	link.Link = true
	tbl.AppendRow(link)
	tbl.AppendRow(memtable.NewRow("1971", "plain"))

	g, v := newController(tbl)
	g.MakeTextLinesEditable()

	rows, cols := v.CellSpan(0, 0)
	assert.Equal(t, [2]int{1, 3}, [2]int{rows, cols})
	assert.True(t, v.CellStyle(0, 0).Bold)

	rows, cols = v.CellSpan(1, 0)
	assert.Equal(t, [2]int{1, 1}, [2]int{rows, cols})
	rows, cols = v.CellSpan(1, 1)
	assert.Equal(t, [2]int{1, 2}, [2]int{rows, cols})
	assert.True(t, v.CellStyle(1, 0).Underline)
	assert.False(t, v.CellStyle(1, 1).Underline)

	rows, cols = v.CellSpan(2, 0)
	assert.Equal(t, [2]int{1, 1}, [2]int{rows, cols})

	assert.True(t, g.CanEditCell(0, 1), "text rows open their Maybe cells")
	assert.True(t, g.CanEditCell(1, 1))
	assert.False(t, g.CanEditCell(2, 1))
}

func TestSpecialTextColor(t *testing.T) {
	tbl := memtable.NewFromStrings([]string{"A", "B"}, nil)
	banner := memtable.NewRow("x")
	banner.Text = true
	tbl.AppendRow(banner)
	c := theme.RGBToColor(240, 255, 240)
	tbl.TextColor = &c

	_, v := newController(tbl)
	assert.Equal(t, c, v.CellStyle(0, 0).Background)
	assert.False(t, v.CellStyle(0, 0).Bold)
}

func TestURLColumn(t *testing.T) {
	tbl := memtable.New(col("Link", schema.TypeURL, schema.EditableYes))
	tbl.AppendRow(memtable.NewRow("https://example.com"))
	tbl.AppendRow(memtable.NewRow(""))

	_, v := newController(tbl)
	assert.Equal(t, palette.Blue, v.CellStyle(0, 0).Foreground)
	assert.True(t, v.CellStyle(0, 0).Underline)
	assert.False(t, v.CellStyle(1, 0).Underline)
}

func TestColorOverride(t *testing.T) {
	var v *ui.GridView
	calls := 0
	override := func(icol, irow int) {
		calls++
		if icol == 1 && irow == 0 {
			v.SetCellStyle(irow, icol, datagrid.CellStyle{Background: tcell.ColorGreen})
		}
	}
	v = ui.NewGridView()
	g := datagrid.New(v, datagrid.WithColorOverride(override), datagrid.WithSpareRows(0))
	g.SetDataSource(threeByThree())
	g.Refresh(datagrid.FullRefresh())

	assert.Equal(t, 9, calls)
	assert.Equal(t, tcell.ColorGreen, v.CellStyle(0, 1).Background)
}

func TestFullRefreshSizesWidget(t *testing.T) {
	_, v := newController(threeByThree())
	assert.Equal(t, 3+datagrid.DefaultSpareRows, v.NumberRows())
	assert.Equal(t, 3, v.NumberCols())
	assert.Equal(t, "B", v.ColLabel(1))
	assert.Equal(t, "c2", v.CellValue(2, 2))

	_, v = newController(threeByThree(), datagrid.WithSpareRows(5))
	assert.Equal(t, 8, v.NumberRows())
}

func TestFullRefreshRetainsSelectionAndCursor(t *testing.T) {
	tbl := threeByThree()
	g, v := newController(tbl)
	v.SetCursor(2, 1)
	v.SelectRow(1, false)

	tbl.Row(1).SetCell(0, "changed")
	g.Refresh(datagrid.FullRefresh())

	assert.Equal(t, "changed", v.CellValue(1, 0))
	assert.Equal(t, []int{1}, v.SelectedRows())
	assert.Equal(t, 2, v.CursorRow())
	assert.Equal(t, 1, v.CursorCol())
}

func TestRangedRefresh(t *testing.T) {
	tbl := threeByThree()
	g, v := newController(tbl)

	tbl.Row(0).SetCell(0, "x")
	tbl.Row(2).SetCell(2, "y")
	g.Refresh(datagrid.BoxRange(grid.Box{Top: 0, Left: 0, Bottom: 0, Right: 0}))
	assert.Equal(t, "x", v.CellValue(0, 0))
	assert.Equal(t, "c2", v.CellValue(2, 2), "outside the box")

	g.Refresh(datagrid.RowRange(2, 2))
	assert.Equal(t, "y", v.CellValue(2, 2))

	tbl.Row(1).SetCell(1, "z")
	g.Refresh(datagrid.ColRange(1, 1))
	assert.Equal(t, "z", v.CellValue(1, 1))
}

func TestCopyPasteScenario(t *testing.T) {
	tbl := threeByThree()
	tbl.AllowAddColumns = true
	g, v := newController(tbl)

	g.CopyCells(0, 0, 1, 1)
	assert.Equal(t, [][]string{{"a0", "b0"}, {"a1", "b1"}}, g.Clipboard())

	g.PasteCells(2, 2)
	require.Equal(t, 4, tbl.RowCount())
	assert.Equal(t, 4, tbl.Schema().Len())
	assert.Equal(t, "a0", tbl.Row(2).Cell(2))
	assert.Equal(t, "b0", tbl.Row(2).Cell(3))
	assert.Equal(t, "a1", tbl.Row(3).Cell(2))
	assert.Equal(t, "b1", tbl.Row(3).Cell(3))
	assert.Equal(t, "b1", v.CellValue(3, 3))
	assert.Equal(t, []string{"a0", "b0", "c0", ""}, tbl.Row(0).Cells())
}

func TestPasteTruncatesAtFixedSchema(t *testing.T) {
	tbl := threeByThree()
	g, _ := newController(tbl)

	g.CopyCells(0, 0, 1, 1)
	g.PasteCells(2, 2)
	require.Equal(t, 4, tbl.RowCount())
	assert.Equal(t, 3, tbl.Schema().Len())
	assert.Equal(t, []string{"a2", "b2", "a0"}, tbl.Row(2).Cells())
	assert.Equal(t, "a1", tbl.Row(3).Cell(2))
}

func TestPastePastFixedSchemaChangesNothing(t *testing.T) {
	tbl := threeByThree()
	before := tbl.Values()
	g, v := newController(tbl)

	g.CopyCells(0, 0, 1, 1)
	g.PasteCells(4, 5)
	assert.Equal(t, 3, tbl.RowCount())
	assert.Equal(t, before, tbl.Values())
	assert.Equal(t, 3, v.NumberCols())
}

func TestPasteGrowth(t *testing.T) {
	for _, tc := range []struct{ top, rows int }{{0, 2}, {2, 1}, {2, 3}, {3, 2}, {5, 4}} {
		tbl := threeByThree()
		before := tbl.Values()
		g, _ := newController(tbl)

		clip := make([][]string, tc.rows)
		for i := range clip {
			clip[i] = []string{"p"}
		}
		g.SetClipboard(clip)
		g.PasteCells(tc.top, 1)

		want := max(3, tc.top+tc.rows)
		assert.Equal(t, want, tbl.RowCount(), "top=%d rows=%d", tc.top, tc.rows)
		for i := 0; i < min(tc.top, 3); i++ {
			assert.Equal(t, before[i], tbl.Row(i).Cells(), "row %d above the paste", i)
		}
	}
}

func TestClipboardSink(t *testing.T) {
	var got string
	g, _ := newController(threeByThree(), datagrid.WithClipboardSink(sinkFunc(func(s string) error {
		got = s
		return nil
	})))
	g.CopyCells(1, 1, 2, 2)
	assert.Equal(t, "b1\tc1\nb2\tc2", got)
}

func TestEraseSelection(t *testing.T) {
	tbl := threeByThree()
	g, v := newController(tbl)
	v.SelectBlock(grid.Box{Top: 1, Left: 0, Bottom: 5, Right: 1}, false)
	g.EraseSelection()
	assert.Equal(t, [][]string{{"a0", "b0", "c0"}, {"", "", "c1"}, {"", "", "c2"}}, tbl.Values())
	assert.Equal(t, "", v.CellValue(2, 1))
}

func TestCopyPasteKeys(t *testing.T) {
	tbl := threeByThree()
	g, v := newController(tbl)

	v.SetCursor(0, 2)
	require.True(t, g.OnKeyDown(tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl)))
	v.SetCursor(1, 0)
	require.True(t, g.OnKeyDown(tcell.NewEventKey(tcell.KeyCtrlV, 0, tcell.ModCtrl)))
	assert.Equal(t, "c0", tbl.Row(1).Cell(0))

	g.OnModifierDown(tcell.ModCtrl)
	v.SetCursor(2, 0)
	assert.True(t, g.OnKeyDown(tcell.NewEventKey(tcell.KeyRune, 'v', tcell.ModNone)))
	assert.Equal(t, "c0", tbl.Row(2).Cell(0))
	g.OnModifierUp(tcell.ModCtrl)
	assert.False(t, g.OnKeyDown(tcell.NewEventKey(tcell.KeyRune, 'v', tcell.ModNone)))
}

func TestArrowKeysMoveSelectedRows(t *testing.T) {
	tbl := threeByThree()
	tbl.Overlay().Allow(1, 0)
	g, v := newController(tbl)

	assert.False(t, g.OnKeyDown(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone)), "no selection")

	v.SelectCell(1, 2, false)
	require.True(t, g.OnKeyDown(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone)))
	assert.Equal(t, "a1", tbl.Row(0).Cell(0))
	assert.Equal(t, "a0", tbl.Row(1).Cell(0))
	assert.Equal(t, []int{0}, v.SelectedRows())
	assert.True(t, tbl.Overlay().Allowed(0, 0), "overlay follows the row")
	assert.Equal(t, "a1", v.CellValue(0, 0))

	g.OnKeyDown(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone))
	assert.Equal(t, "a1", tbl.Row(0).Cell(0), "already at the top")

	g.SelectRows(1, 2)
	g.OnKeyDown(tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone))
	assert.Equal(t, "a0", tbl.Row(1).Cell(0), "already at the bottom")
}

func TestArrowKeysMoveSelectedColumns(t *testing.T) {
	tbl := threeByThree()
	g, v := newController(tbl)

	g.SelectCols(0, 0)
	require.True(t, g.OnKeyDown(tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone)))
	assert.Equal(t, []string{"B", "A", "C"}, tbl.Schema().Names())
	assert.Equal(t, []string{"b0", "a0", "c0"}, tbl.Row(0).Cells())
	assert.Equal(t, []int{1}, v.SelectedCols())
	assert.Equal(t, "A", v.ColLabel(1))

	tbl.FixedColumns = true
	g.OnKeyDown(tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone))
	assert.Equal(t, []string{"B", "A", "C"}, tbl.Schema().Names())
}

func TestInsertColumnScenario(t *testing.T) {
	tbl := memtable.NewFromStrings([]string{"Year", "Title"}, [][]string{
		{"1968", "Locus Solus"}, {"1981", "Lanark"}, {"1979", "Winter"},
	})
	g, v := newController(tbl)

	require.True(t, g.InsertColumnMaybeQuery(0, "Notes"))
	assert.Equal(t, []string{"Year", "Notes", "Title"}, tbl.Schema().Names())
	for i, title := range []string{"Locus Solus", "Lanark", "Winter"} {
		assert.Equal(t, "", tbl.Row(i).Cell(1))
		assert.Equal(t, title, tbl.Row(i).Cell(2))
	}
	assert.Equal(t, "Notes", v.ColLabel(1))
	assert.Equal(t, 3, v.NumberCols())
}

func TestInsertColumnPrompts(t *testing.T) {
	tbl := threeByThree()
	p := &stubPrompter{answer: "  ", ok: true}
	g, _ := newController(tbl, datagrid.WithPrompter(p))

	assert.False(t, g.InsertColumnMaybeQuery(1, ""), "blank answer")
	assert.Len(t, p.asked, 1)

	p.answer, p.ok = "D", false
	assert.False(t, g.InsertColumnMaybeQuery(1, ""), "cancelled")

	p.ok = true
	g.SaveClickLocation(0, 2, datagrid.ClickLabel)
	assert.True(t, g.InsertColRight())
	assert.Equal(t, []string{"A", "B", "C", "D"}, tbl.Schema().Names())

	noPrompt, _ := newController(threeByThree())
	assert.False(t, noPrompt.InsertColumnMaybeQuery(0, ""))
}

func TestRenameColumn(t *testing.T) {
	tbl := threeByThree()
	p := &stubPrompter{answer: "Alpha", ok: true}
	g, v := newController(tbl, datagrid.WithPrompter(p))

	assert.False(t, g.RenameColumn(0), "header edits not allowed")
	assert.Empty(t, p.asked)

	tbl.AllowHeaderEdits = true
	assert.True(t, g.RenameColumn(0))
	assert.Equal(t, "Alpha", tbl.Schema().Names()[0])
	assert.Equal(t, "Alpha", v.ColLabel(0))

	assert.False(t, g.RenameColumn(7))
}

func TestDeleteSelectedRows(t *testing.T) {
	tbl := threeByThree()
	tbl.Overlay().Allow(2, 1)
	g, v := newController(tbl)

	g.SelectRows(0, 0)
	g.DeleteSelectedRows()
	assert.Equal(t, [][]string{{"a1", "b1", "c1"}, {"a2", "b2", "c2"}}, tbl.Values())
	assert.Empty(t, v.SelectedRows())
	assert.Equal(t, []grid.Cell{{Row: 1, Col: 1}}, tbl.Overlay().Cells())

	g.SaveClickLocation(1, 0, datagrid.ClickRight)
	g.DeleteSelectedRows()
	assert.Equal(t, [][]string{{"a1", "b1", "c1"}}, tbl.Values())

	g.SaveClickLocation(9, 0, datagrid.ClickRight)
	g.DeleteSelectedRows()
	assert.Equal(t, 1, tbl.RowCount(), "rows past the data are ignored")
}

func TestDeleteSelectedColumns(t *testing.T) {
	tbl := threeByThree()
	g, v := newController(tbl)

	v.SelectBlock(grid.Box{Top: 0, Left: 1, Bottom: 0, Right: 5}, false)
	g.DeleteSelectedColumns()
	assert.Equal(t, []string{"A"}, tbl.Schema().Names())
	assert.Equal(t, []string{"a0"}, tbl.Row(0).Cells())
	assert.Equal(t, 1, v.NumberCols())
}

func TestOnCellValueChangedGrowsSource(t *testing.T) {
	tbl := threeByThree()
	g, v := newController(tbl, datagrid.WithSpareRows(4))

	g.OnCellValueChanged(5, 0, "new")
	assert.Equal(t, 6, tbl.RowCount())
	assert.Equal(t, "new", tbl.Row(5).Cell(0))
	assert.Equal(t, "new", v.CellValue(5, 0))

	g.OnCellValueChanged(0, 3, "past")
	assert.Equal(t, 3, tbl.Schema().Len(), "schema is fixed")

	tbl.AllowAddColumns = true
	g.OnCellValueChanged(0, 3, "past")
	assert.Equal(t, 4, tbl.Schema().Len())
	assert.Equal(t, "past", tbl.Row(0).Cell(3))
	assert.Equal(t, 4, v.NumberCols())
}

func TestCanEditCellPastSchema(t *testing.T) {
	tbl := threeByThree()
	g, _ := newController(tbl)
	assert.True(t, g.CanEditCell(0, 2))
	assert.False(t, g.CanEditCell(0, 3), "fixed schema")

	tbl.AllowAddColumns = true
	assert.True(t, g.CanEditCell(0, 3))
}

func TestMakeRowsVisibleAndSelectedRowRange(t *testing.T) {
	rows := make([][]string, 40)
	for i := range rows {
		rows[i] = []string{strconv.Itoa(i)}
	}
	g, v := newController(memtable.NewFromStrings([]string{"N"}, rows))
	v.SetViewport(10, 40)

	_, _, ok := g.SelectedRowRange()
	assert.False(t, ok)

	g.SelectRows(25, 28)
	first, last, ok := g.SelectedRowRange()
	require.True(t, ok)
	assert.Equal(t, 25, first)
	assert.Equal(t, 28, last)

	g.MakeRowsVisible([]int{28, 25})
	assert.True(t, v.IsVisible(25, 0))
	assert.True(t, v.IsVisible(28, 0))
	top, _ := v.ScrollOffset()
	assert.Equal(t, 19, top)

	g.MakeRowsVisible([]int{3})
	top, _ = v.ScrollOffset()
	assert.Equal(t, 3, top)
}

func TestLabelClickAndPopup(t *testing.T) {
	g, v := newController(threeByThree())

	g.OnLabelLeftClick(-1, 2)
	assert.Equal(t, []int{2}, v.SelectedCols())
	_, icol, kind := g.ClickedCell()
	assert.Equal(t, 2, icol)
	assert.Equal(t, datagrid.ClickLabel, kind)

	st := g.PopupState(0, 0)
	assert.True(t, st.Copy)
	assert.False(t, st.Paste)

	g.CopySelection()
	st = g.PopupState(0, 0)
	assert.True(t, st.Paste)
	assert.Equal(t, datagrid.PopupState{}, g.PopupState(0, 9))
}

func TestLocateSelection(t *testing.T) {
	g, v := newController(threeByThree())
	v.SetCursor(2, 1)
	assert.Equal(t, grid.Box{Top: 2, Left: 1, Bottom: 2, Right: 1}, g.LocateSelection())

	v.SelectCell(0, 0, false)
	v.SelectCell(1, 2, true)
	assert.Equal(t, grid.Box{Top: 0, Left: 0, Bottom: 1, Right: 2}, g.LocateSelection())
}

func TestSelectionDump(t *testing.T) {
	_, v := newController(threeByThree())
	v.SelectRow(1, false)
	sel := datagrid.CaptureSelection(v)
	assert.False(t, sel.Empty())
	assert.Contains(t, sel.Dump("test"), "Rows")
}
