// Package search parses row queries such as `Year>1970 -text:yes "locus"`
// and matches them against the rows of a data source.
package search

import (
	"fmt"
	"strings"
)

type TokenType int

const (
	TokenEOF TokenType = iota
	TokenText
	TokenFilter // Name Op Value
	TokenRegex  // /pattern/
	TokenFuzzy  // ~term
	TokenAnd    // +
	TokenOr     // |
	TokenNot    // -
	TokenLParen
	TokenRParen
)

// Token is one lexical item of a query. Name and Op are only set for
// filters. Value holds the text, pattern, fuzzy term or filter value
// with any quotes removed.
type Token struct {
	Type  TokenType
	Value string
	Name  string
	Op    ComparisonOp
}

func (t Token) String() string {
	if t.Type == TokenFilter {
		return t.Name + string(t.Op) + t.Value
	}
	return t.Value
}

// ComparisonOp is the operator of a column filter.
type ComparisonOp string

const (
	OpContains     ComparisonOp = ":"
	OpEqual        ComparisonOp = "="
	OpNotEqual     ComparisonOp = "!="
	OpGreater      ComparisonOp = ">"
	OpGreaterEqual ComparisonOp = ">="
	OpLess         ComparisonOp = "<"
	OpLessEqual    ComparisonOp = "<="
)

// Tokenizer splits a query into tokens.
type Tokenizer struct {
	src []rune
	pos int
}

func NewTokenizer(input string) *Tokenizer {
	return &Tokenizer{src: []rune(input)}
}

// AllTokens returns every token up to and including TokenEOF.
func (t *Tokenizer) AllTokens() []Token {
	var out []Token
	for {
		tok := t.NextToken()
		out = append(out, tok)
		if tok.Type == TokenEOF {
			return out
		}
	}
}

func (t *Tokenizer) peek(off int) (rune, bool) {
	if i := t.pos + off; i < len(t.src) {
		return t.src[i], true
	}
	return 0, false
}

var punctuation = map[rune]TokenType{'(': TokenLParen, ')': TokenRParen, '|': TokenOr, '+': TokenAnd}

func (t *Tokenizer) NextToken() Token {
	for t.pos < len(t.src) && isSpace(t.src[t.pos]) {
		t.pos++
	}
	ch, ok := t.peek(0)
	if !ok {
		return Token{Type: TokenEOF}
	}

	if typ, ok := punctuation[ch]; ok {
		t.pos++
		return Token{Type: typ, Value: string(ch)}
	}

	switch ch {
	case '-':
		// A lone dash is a word, not a negation.
		if next, ok := t.peek(1); ok && !isSpace(next) {
			t.pos++
			return Token{Type: TokenNot, Value: "-"}
		}
	case '"':
		return Token{Type: TokenText, Value: t.quoted()}
	case '/':
		return t.regex()
	case '~':
		t.pos++
		if term := t.bare(); term != "" {
			return Token{Type: TokenFuzzy, Value: term}
		}
		return Token{Type: TokenText, Value: "~"}
	}
	return t.word()
}

// quoted consumes a double quoted string. An unterminated quote runs to
// the end of the input.
func (t *Tokenizer) quoted() string {
	t.pos++
	start := t.pos
	for t.pos < len(t.src) && t.src[t.pos] != '"' {
		t.pos++
	}
	s := string(t.src[start:t.pos])
	if t.pos < len(t.src) {
		t.pos++
	}
	return s
}

// bare consumes up to whitespace or a grouping character.
func (t *Tokenizer) bare() string {
	start := t.pos
	for t.pos < len(t.src) && !isSpace(t.src[t.pos]) && !isBreak(t.src[t.pos]) {
		t.pos++
	}
	return string(t.src[start:t.pos])
}

// word consumes plain text or a column filter. The first operator after
// at least one name character turns the word into a filter.
func (t *Tokenizer) word() Token {
	start := t.pos
	for t.pos < len(t.src) && !isSpace(t.src[t.pos]) && !isBreak(t.src[t.pos]) {
		if op := t.operator(); op != "" && t.pos > start {
			name := string(t.src[start:t.pos])
			t.pos += len(op)
			val := ""
			if ch, ok := t.peek(0); ok && ch == '"' {
				val = t.quoted()
			} else {
				val = t.bare()
			}
			return Token{Type: TokenFilter, Name: name, Op: op, Value: val}
		}
		t.pos++
	}
	return Token{Type: TokenText, Value: string(t.src[start:t.pos])}
}

// operator reports the comparison operator starting at the current
// position, or "" when there is none.
func (t *Tokenizer) operator() ComparisonOp {
	ch, _ := t.peek(0)
	next, _ := t.peek(1)
	switch ch {
	case ':':
		return OpContains
	case '=':
		return OpEqual
	case '!':
		if next == '=' {
			return OpNotEqual
		}
	case '<':
		if next == '=' {
			return OpLessEqual
		}
		return OpLess
	case '>':
		if next == '=' {
			return OpGreaterEqual
		}
		return OpGreater
	}
	return ""
}

// regex consumes /pattern/. Backslash escapes a slash. A missing closing
// slash takes the rest of the input; an empty one leaves a plain "/".
func (t *Tokenizer) regex() Token {
	open := t.pos
	t.pos++
	var sb strings.Builder
	for t.pos < len(t.src) {
		ch := t.src[t.pos]
		t.pos++
		if ch == '/' {
			return Token{Type: TokenRegex, Value: sb.String()}
		}
		sb.WriteRune(ch)
		if ch == '\\' && t.pos < len(t.src) {
			sb.WriteRune(t.src[t.pos])
			t.pos++
		}
	}
	if sb.Len() == 0 {
		t.pos = open + 1
		return Token{Type: TokenText, Value: "/"}
	}
	return Token{Type: TokenRegex, Value: sb.String()}
}

func isSpace(ch rune) bool {
	return ch == ' ' || ch == '\t' || ch == '\n'
}

func isBreak(ch rune) bool {
	return ch == '|' || ch == '(' || ch == ')'
}

// parser is a recursive descent parser with one token of lookahead.
// From loosest to tightest: or, and (explicit + or juxtaposition), not,
// atoms.
type parser struct {
	lex *Tokenizer
	tok Token
}

func (p *parser) next() { p.tok = p.lex.NextToken() }

// ParseQuery parses query into an expression tree. The empty query
// matches every row.
func ParseQuery(query string) (FilterExpr, error) {
	p := &parser{lex: NewTokenizer(query)}
	p.next()
	if p.tok.Type == TokenEOF {
		return NewAlwaysMatchExpr(), nil
	}
	expr, err := p.or()
	if err != nil {
		return nil, err
	}
	if p.tok.Type != TokenEOF {
		return nil, fmt.Errorf("unexpected token: %s", p.tok)
	}
	return expr, nil
}

func (p *parser) or() (FilterExpr, error) {
	expr, err := p.and()
	for err == nil && p.tok.Type == TokenOr {
		p.next()
		var right FilterExpr
		if right, err = p.and(); err == nil {
			expr = NewOrExpr(expr, right)
		}
	}
	return expr, err
}

func (p *parser) and() (FilterExpr, error) {
	expr, err := p.not()
	for err == nil {
		switch p.tok.Type {
		case TokenEOF, TokenRParen, TokenOr:
			return expr, nil
		case TokenAnd:
			p.next()
		}
		var right FilterExpr
		if right, err = p.not(); err == nil {
			expr = NewAndExpr(expr, right)
		}
	}
	return nil, err
}

func (p *parser) not() (FilterExpr, error) {
	if p.tok.Type != TokenNot {
		return p.atom()
	}
	p.next()
	inner, err := p.not()
	if err != nil {
		return nil, err
	}
	return NewNotExpr(inner), nil
}

func (p *parser) atom() (FilterExpr, error) {
	tok := p.tok
	switch tok.Type {
	case TokenEOF:
		return nil, fmt.Errorf("unexpected end of input")
	case TokenLParen:
		p.next()
		expr, err := p.or()
		if err != nil {
			return nil, err
		}
		if p.tok.Type != TokenRParen {
			return nil, fmt.Errorf("expected ')', got %q", p.tok.String())
		}
		p.next()
		return expr, nil
	case TokenText, TokenFuzzy, TokenFilter, TokenRegex:
		p.next()
		return leaf(tok)
	}
	return nil, fmt.Errorf("unexpected token: %s", tok)
}

// leaf builds the expression for a single term. `row:text`, `row:link`
// and `row:empty` select rows by kind.
func leaf(tok Token) (FilterExpr, error) {
	switch tok.Type {
	case TokenFuzzy:
		return NewFuzzyExpr(tok.Value), nil
	case TokenRegex:
		return NewRegexExpr(tok.Value)
	case TokenFilter:
		if tok.Op == OpContains && strings.EqualFold(tok.Name, "row") {
			return NewRowKindFilter(tok.Value)
		}
		return NewColumnFilter(tok.Name, tok.Op, tok.Value), nil
	}
	return NewTextExpr(tok.Value), nil
}
