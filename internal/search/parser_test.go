package search

import (
	"fmt"
	"strings"
	"testing"

	"github.com/pstuifzand/tui-datagrid/internal/memtable"
	"github.com/pstuifzand/tui-datagrid/internal/schema"
)

func TestTokenizer(t *testing.T) {
	tests := []struct {
		input  string
		tokens []TokenType
	}{
		{"locus", []TokenType{TokenText, TokenEOF}},
		{"locus solus", []TokenType{TokenText, TokenText, TokenEOF}},
		{"locus | lanark", []TokenType{TokenText, TokenOr, TokenText, TokenEOF}},
		{"locus +lanark", []TokenType{TokenText, TokenAnd, TokenText, TokenEOF}},
		{"-locus", []TokenType{TokenNot, TokenText, TokenEOF}},
		{"- locus", []TokenType{TokenText, TokenText, TokenEOF}},
		{"Year>1970", []TokenType{TokenFilter, TokenEOF}},
		{"Year>=1970 Title:lo", []TokenType{TokenFilter, TokenFilter, TokenEOF}},
		{`Title="Locus Solus"`, []TokenType{TokenFilter, TokenEOF}},
		{"(a | b)", []TokenType{TokenLParen, TokenText, TokenOr, TokenText, TokenRParen, TokenEOF}},
		{`"multi word"`, []TokenType{TokenText, TokenEOF}},
		{"/^19[67]/", []TokenType{TokenRegex, TokenEOF}},
		{"~lcs", []TokenType{TokenFuzzy, TokenEOF}},
		{"wow!", []TokenType{TokenText, TokenEOF}},
		{"1968-1970", []TokenType{TokenText, TokenEOF}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tokens := NewTokenizer(tt.input).AllTokens()
			if len(tokens) != len(tt.tokens) {
				t.Fatalf("expected %d tokens, got %d: %v", len(tt.tokens), len(tokens), tokens)
			}
			for i, expectedType := range tt.tokens {
				if tokens[i].Type != expectedType {
					t.Errorf("token %d: expected %d, got %d", i, expectedType, tokens[i].Type)
				}
			}
		})
	}
}

func TestParser(t *testing.T) {
	tests := []struct {
		query    string
		wantType string
		wantErr  bool
	}{
		{"", "*search.AlwaysMatchExpr", false},
		{"locus", "*search.TextExpr", false},
		{"a b", "*search.AndExpr", false},
		{"a | b", "*search.OrExpr", false},
		{"-a", "*search.NotExpr", false},
		{"Year>1970", "*search.ColumnFilter", false},
		{"row:text", "*search.RowKindFilter", false},
		{"~lcs", "*search.FuzzyExpr", false},
		{"/x+/", "*search.RegexExpr", false},
		{"row:banner", "", true},
		{"/[/", "", true},
		{"(a", "", true},
		{"a)", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			expr, err := ParseQuery(tt.query)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %s", expr)
				}
				return
			}
			if err != nil {
				t.Fatalf("parse error: %v", err)
			}
			if got := typeOf(expr); got != tt.wantType {
				t.Errorf("expected %s, got %s", tt.wantType, got)
			}
		})
	}
}

func TestFilterTokens(t *testing.T) {
	tests := []struct {
		in    string
		name  string
		op    ComparisonOp
		value string
	}{
		{"Year>1970", "Year", OpGreater, "1970"},
		{"Year>=1970", "Year", OpGreaterEqual, "1970"},
		{"Year!=1970", "Year", OpNotEqual, "1970"},
		{"Title:lo", "Title", OpContains, "lo"},
		{`Title="Locus Solus"`, "Title", OpEqual, "Locus Solus"},
		{"Month<=6", "Month", OpLessEqual, "6"},
		{"a:b:c", "a", OpContains, "b:c"},
	}
	for _, tt := range tests {
		tok := NewTokenizer(tt.in).NextToken()
		if tok.Type != TokenFilter {
			t.Errorf("%q: expected a filter token, got %d", tt.in, tok.Type)
			continue
		}
		if tok.Name != tt.name || tok.Op != tt.op || tok.Value != tt.value {
			t.Errorf("%q = %q %q %q", tt.in, tok.Name, tok.Op, tok.Value)
		}
	}
}

func bookTable() *memtable.Table {
	t := memtable.New(
		schema.ColDefinition{Name: "Year", Type: schema.TypeYear},
		schema.ColDefinition{Name: "Display Name", PreferredName: "Title"},
		schema.NewColDefinition("Pages"),
	)
	t.AppendRow(memtable.NewRow("1914", "Locus Solus", "240"))
	t.AppendRow(memtable.NewRow("1981", "Lanark", "560"))
	banner := memtable.NewRow("Later")
	banner.Text = true
	t.AppendRow(banner)
	t.AppendRow(memtable.NewRow("2001", "Austerlitz", "98"))
	t.AppendRow(memtable.NewRow())
	return t
}

func TestMatches(t *testing.T) {
	tbl := bookTable()
	tests := []struct {
		query string
		rows  []int
	}{
		{"locus", []int{0}},
		{"LANARK", []int{1}},
		{"Year>1970", []int{1, 3}},
		{"Year>=1981 Pages<100", []int{3}},
		{"Pages>99", []int{0, 1}},
		{"Title:an", []int{1}},
		{"Display_Name:aus", []int{3}},
		{`Title="locus solus"`, []int{0}},
		{"Year!=1914 -row:empty -row:text", []int{1, 3}},
		{"row:text", []int{2}},
		{"row:empty", []int{4}},
		{"locus | austerlitz", []int{0, 3}},
		{"(locus | lanark) Year>1950", []int{1}},
		{"~lsl", []int{0}},
		{"/^19[0-9]{2}$/", []int{0, 1}},
		{"Nope:x", nil},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			got, err := GetAllByQuery(tbl, tt.query)
			if err != nil {
				t.Fatalf("parse error: %v", err)
			}
			if fmt.Sprint(got) != fmt.Sprint(tt.rows) {
				t.Errorf("query %q matched rows %v, want %v", tt.query, got, tt.rows)
			}
		})
	}
}

func TestFindNext(t *testing.T) {
	tbl := bookTable()
	expr, err := ParseQuery("Year>1900")
	if err != nil {
		t.Fatal(err)
	}
	if got := FindNext(tbl, expr, 0, false); got != 1 {
		t.Errorf("FindNext from 0 = %d, want 1", got)
	}
	if got := FindNext(tbl, expr, 3, false); got != 0 {
		t.Errorf("FindNext should wrap, got %d", got)
	}
	if got := FindNext(tbl, expr, 0, true); got != 3 {
		t.Errorf("FindNext backward from 0 = %d, want 3", got)
	}
	none, _ := ParseQuery("zzz")
	if got := FindNext(tbl, none, 0, false); got != -1 {
		t.Errorf("FindNext without match = %d", got)
	}
}

func TestExplain(t *testing.T) {
	tbl := bookTable()
	expr, err := ParseQuery("Year>1970 -Title:lanark")
	if err != nil {
		t.Fatal(err)
	}
	out := Explain(tbl.Row(1), tbl.Schema(), expr)
	if !strings.HasPrefix(out, "no  and") {
		t.Errorf("Explain should start with the failed conjunction:\n%s", out)
	}
	if !strings.Contains(out, `(cell "1981")`) {
		t.Errorf("Explain should show the compared cell:\n%s", out)
	}
	if s := ExpressionString(expr); !strings.Contains(s, "(and") || !strings.Contains(s, "(not") {
		t.Errorf("ExpressionString = %s", s)
	}
}

func typeOf(v interface{}) string {
	return fmt.Sprintf("%T", v)
}
