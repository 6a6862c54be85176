package search

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/pstuifzand/tui-datagrid/internal/grid"
	"github.com/pstuifzand/tui-datagrid/internal/schema"
)

// FilterExpr is a parsed query. Column names are resolved against cols at
// match time, so a query keeps working after columns move.
type FilterExpr interface {
	Matches(row grid.Row, cols *schema.List) bool
	String() string
}

// anyCell reports whether fn holds for some cell of row.
func anyCell(row grid.Row, fn func(string) bool) bool {
	for _, c := range row.Cells() {
		if fn(c) {
			return true
		}
	}
	return false
}

// TextExpr matches rows with a cell containing the term, ignoring case.
type TextExpr struct {
	term string
}

func NewTextExpr(term string) *TextExpr {
	return &TextExpr{term: strings.ToLower(term)}
}

func (e *TextExpr) Matches(row grid.Row, cols *schema.List) bool {
	return anyCell(row, func(c string) bool {
		return strings.Contains(strings.ToLower(c), e.term)
	})
}

func (e *TextExpr) String() string {
	return fmt.Sprintf("text(%q)", e.term)
}

// FuzzyExpr matches rows with a cell containing the term's characters in
// order.
type FuzzyExpr struct {
	term string
}

func NewFuzzyExpr(term string) *FuzzyExpr {
	return &FuzzyExpr{term: term}
}

func (e *FuzzyExpr) Matches(row grid.Row, cols *schema.List) bool {
	return anyCell(row, func(c string) bool {
		return fuzzy.MatchFold(e.term, c)
	})
}

func (e *FuzzyExpr) String() string {
	return fmt.Sprintf("fuzzy(%q)", e.term)
}

// RegexExpr matches rows with a cell matching the pattern.
type RegexExpr struct {
	pattern string
	re      *regexp.Regexp
}

func NewRegexExpr(pattern string) (*RegexExpr, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid regex /%s/: %w", pattern, err)
	}
	return &RegexExpr{pattern: pattern, re: re}, nil
}

func (e *RegexExpr) Matches(row grid.Row, cols *schema.List) bool {
	return anyCell(row, e.re.MatchString)
}

func (e *RegexExpr) String() string {
	return fmt.Sprintf("regex(/%s/)", e.pattern)
}

// AlwaysMatchExpr matches every row.
type AlwaysMatchExpr struct{}

func NewAlwaysMatchExpr() *AlwaysMatchExpr {
	return &AlwaysMatchExpr{}
}

func (e *AlwaysMatchExpr) Matches(row grid.Row, cols *schema.List) bool {
	return true
}

func (e *AlwaysMatchExpr) String() string {
	return "all"
}

type AndExpr struct {
	left, right FilterExpr
}

func NewAndExpr(left, right FilterExpr) *AndExpr {
	return &AndExpr{left: left, right: right}
}

func (e *AndExpr) Matches(row grid.Row, cols *schema.List) bool {
	return e.left.Matches(row, cols) && e.right.Matches(row, cols)
}

func (e *AndExpr) String() string {
	return fmt.Sprintf("(%s AND %s)", e.left, e.right)
}

type OrExpr struct {
	left, right FilterExpr
}

func NewOrExpr(left, right FilterExpr) *OrExpr {
	return &OrExpr{left: left, right: right}
}

func (e *OrExpr) Matches(row grid.Row, cols *schema.List) bool {
	return e.left.Matches(row, cols) || e.right.Matches(row, cols)
}

func (e *OrExpr) String() string {
	return fmt.Sprintf("(%s OR %s)", e.left, e.right)
}

type NotExpr struct {
	expr FilterExpr
}

func NewNotExpr(expr FilterExpr) *NotExpr {
	return &NotExpr{expr: expr}
}

func (e *NotExpr) Matches(row grid.Row, cols *schema.List) bool {
	return !e.expr.Matches(row, cols)
}

func (e *NotExpr) String() string {
	return fmt.Sprintf("NOT %s", e.expr)
}

// ColumnFilter compares one column's value. ":" tests containment, "=" and
// "!=" test equality ignoring case, and the ordering operators compare
// numerically against a number and as text otherwise. Underscores
// in the column name stand for spaces.
type ColumnFilter struct {
	Column string
	Op     ComparisonOp
	Value  string
}

func NewColumnFilter(column string, op ComparisonOp, value string) *ColumnFilter {
	return &ColumnFilter{Column: column, Op: op, Value: value}
}

func (e *ColumnFilter) Matches(row grid.Row, cols *schema.List) bool {
	icol := resolveColumn(cols, e.Column)
	if icol < 0 {
		return false
	}
	cell := strings.TrimSpace(row.Cell(icol))

	switch e.Op {
	case OpContains:
		return strings.Contains(strings.ToLower(cell), strings.ToLower(e.Value))
	case OpEqual:
		return strings.EqualFold(cell, e.Value)
	case OpNotEqual:
		return !strings.EqualFold(cell, e.Value)
	}
	if cell == "" {
		return false
	}
	c, ok := cmpValues(cell, e.Value)
	return ok && compare(c, e.Op)
}

func (e *ColumnFilter) String() string {
	return fmt.Sprintf("%s%s%q", e.Column, e.Op, e.Value)
}

func resolveColumn(cols *schema.List, name string) int {
	if i, err := cols.IndexOf(name); err == nil {
		return i
	}
	if strings.Contains(name, "_") {
		if i, err := cols.IndexOf(strings.ReplaceAll(name, "_", " ")); err == nil {
			return i
		}
	}
	return -1
}

// cmpValues orders a against b. A numeric b only compares with numeric
// cells.
func cmpValues(a, b string) (int, bool) {
	fb, errB := strconv.ParseFloat(strings.TrimSpace(b), 64)
	if errB != nil {
		return strings.Compare(strings.ToLower(a), strings.ToLower(b)), true
	}
	fa, errA := strconv.ParseFloat(a, 64)
	if errA != nil {
		return 0, false
	}
	switch {
	case fa < fb:
		return -1, true
	case fa > fb:
		return 1, true
	}
	return 0, true
}

func compare(c int, op ComparisonOp) bool {
	switch op {
	case OpGreater:
		return c > 0
	case OpGreaterEqual:
		return c >= 0
	case OpLess:
		return c < 0
	case OpLessEqual:
		return c <= 0
	}
	return false
}

// RowKind selects rows by their flags.
type RowKind string

const (
	RowKindText  RowKind = "text"
	RowKindLink  RowKind = "link"
	RowKindEmpty RowKind = "empty"
)

// RowKindFilter matches text, link or empty rows.
type RowKindFilter struct {
	Kind RowKind
}

func NewRowKindFilter(kind string) (*RowKindFilter, error) {
	switch k := RowKind(strings.ToLower(kind)); k {
	case RowKindText, RowKindLink, RowKindEmpty:
		return &RowKindFilter{Kind: k}, nil
	}
	return nil, fmt.Errorf("unknown row kind %q (want text, link or empty)", kind)
}

func (e *RowKindFilter) Matches(row grid.Row, cols *schema.List) bool {
	switch e.Kind {
	case RowKindText:
		return grid.IsTextRow(row)
	case RowKindLink:
		return grid.IsLinkRow(row)
	}
	return row.IsEmptyRow()
}

func (e *RowKindFilter) String() string {
	return "row:" + string(e.Kind)
}

// GetMatchingRows returns the indices of the rows of ds matching expr.
func GetMatchingRows(ds grid.DataSource, expr FilterExpr) []int {
	var out []int
	cols := ds.Schema()
	for i := 0; i < ds.RowCount(); i++ {
		if expr.Matches(ds.Row(i), cols) {
			out = append(out, i)
		}
	}
	return out
}

// FindNext returns the first matching row after from, wrapping around to
// the top, or -1. With backward it searches upwards instead.
func FindNext(ds grid.DataSource, expr FilterExpr, from int, backward bool) int {
	n := ds.RowCount()
	if n == 0 {
		return -1
	}
	cols := ds.Schema()
	step := 1
	if backward {
		step = -1
	}
	for k := 1; k <= n; k++ {
		i := ((from+step*k)%n + n) % n
		if expr.Matches(ds.Row(i), cols) {
			return i
		}
	}
	return -1
}

// GetAllByQuery parses query and returns the matching rows.
func GetAllByQuery(ds grid.DataSource, query string) ([]int, error) {
	expr, err := ParseQuery(query)
	if err != nil {
		return nil, err
	}
	return GetMatchingRows(ds, expr), nil
}
