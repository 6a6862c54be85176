package search

import (
	"fmt"
	"strings"

	"github.com/pstuifzand/tui-datagrid/internal/grid"
	"github.com/pstuifzand/tui-datagrid/internal/schema"
)

// ExpressionString returns a pretty-printed representation of the filter expression
func ExpressionString(expr FilterExpr) string {
	return prettyPrintExpr(expr, 0)
}

func prettyPrintExpr(expr FilterExpr, indent int) string {
	indentStr := strings.Repeat("  ", indent)

	switch e := expr.(type) {
	case *AndExpr:
		left := prettyPrintExpr(e.left, indent+1)
		right := prettyPrintExpr(e.right, indent+1)
		return fmt.Sprintf("%s(and\n%s\n%s\n%s)", indentStr, left, right, indentStr)

	case *OrExpr:
		left := prettyPrintExpr(e.left, indent+1)
		right := prettyPrintExpr(e.right, indent+1)
		return fmt.Sprintf("%s(or\n%s\n%s\n%s)", indentStr, left, right, indentStr)

	case *NotExpr:
		inner := prettyPrintExpr(e.expr, indent+1)
		return fmt.Sprintf("%s(not\n%s\n%s)", indentStr, inner, indentStr)

	default:
		return indentStr + expr.String()
	}
}

// Explain says why row does or does not match expr, one line per leaf.
func Explain(row grid.Row, cols *schema.List, expr FilterExpr) string {
	var sb strings.Builder
	explain(&sb, row, cols, expr, 0)
	return strings.TrimRight(sb.String(), "\n")
}

func explain(sb *strings.Builder, row grid.Row, cols *schema.List, expr FilterExpr, indent int) {
	mark := "no "
	if expr.Matches(row, cols) {
		mark = "yes"
	}
	prefix := strings.Repeat("  ", indent)

	switch e := expr.(type) {
	case *AndExpr:
		fmt.Fprintf(sb, "%s%s and\n", prefix, mark)
		explain(sb, row, cols, e.left, indent+1)
		explain(sb, row, cols, e.right, indent+1)
	case *OrExpr:
		fmt.Fprintf(sb, "%s%s or\n", prefix, mark)
		explain(sb, row, cols, e.left, indent+1)
		explain(sb, row, cols, e.right, indent+1)
	case *NotExpr:
		fmt.Fprintf(sb, "%s%s not\n", prefix, mark)
		explain(sb, row, cols, e.expr, indent+1)
	case *ColumnFilter:
		icol := resolveColumn(cols, e.Column)
		if icol < 0 {
			fmt.Fprintf(sb, "%s%s %s (no such column)\n", prefix, mark, e)
			return
		}
		fmt.Fprintf(sb, "%s%s %s (cell %q)\n", prefix, mark, e, row.Cell(icol))
	default:
		fmt.Fprintf(sb, "%s%s %s\n", prefix, mark, e)
	}
}
