// Package template expands {{...}} expressions in cell values as they are
// entered, so a cell can be filled with today's date, the clipboard, or an
// answer to a prompt.
package template

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ErrCancelled is returned when the user cancels a prompt.
var ErrCancelled = errors.New("template cancelled")

var exprPattern = regexp.MustCompile(`\{\{([^}]+)\}\}`)

// Env supplies what expressions read. Nil funcs make their expressions
// expand to "".
type Env struct {
	Now       func() time.Time
	WeekStart time.Weekday
	Clipboard func() (string, error)
	Prompt    func(question string) (string, bool)
	// Cell returns the value of the named column in the edited row.
	Cell func(column string) (string, bool)
	// Row is the 1-based row being edited.
	Row int
}

func (e Env) now() time.Time {
	if e.Now == nil {
		return time.Now()
	}
	return e.Now()
}

// HasExpressions reports whether text contains anything to expand.
func HasExpressions(text string) bool {
	return exprPattern.MatchString(text)
}

// Expand replaces every {{expression}} in text. Expressions are
// "function", "function:args" or "function(args)", optionally piped into
// date formatting as in {{weekday(1)|date:%d %b}}.
func Expand(text string, env Env) (string, error) {
	var firstErr error
	out := exprPattern.ReplaceAllStringFunc(text, func(m string) string {
		if firstErr != nil {
			return m
		}
		v, err := evaluateExpression(exprPattern.FindStringSubmatch(m)[1], env)
		if err != nil {
			firstErr = err
			return m
		}
		return v
	})
	if firstErr != nil {
		return "", firstErr
	}
	return out, nil
}

// evaluateExpression evaluates one expression and its pipes.
func evaluateExpression(expr string, env Env) (string, error) {
	parts := strings.Split(expr, "|")
	value, err := processFunction(parts[0], env)
	if err != nil {
		return "", err
	}
	for _, pipe := range parts[1:] {
		value, err = applyPipe(strings.TrimSpace(pipe), value)
		if err != nil {
			return "", err
		}
	}
	return convertToString(value), nil
}

// convertToString converts a value (string or DateValue) to string
func convertToString(val any) string {
	switch v := val.(type) {
	case string:
		return v
	case *DateValue:
		return FormatDateValue(v, "")
	}
	return ""
}

// applyPipe applies a pipe operation to a value from the previous step
func applyPipe(pipeExpr string, prev any) (any, error) {
	function, args := splitCall(pipeExpr)
	switch function {
	case "date":
		if dv, ok := prev.(*DateValue); ok {
			return FormatDateValue(dv, args), nil
		}
	case "upper":
		return strings.ToUpper(convertToString(prev)), nil
	case "lower":
		return strings.ToLower(convertToString(prev)), nil
	case "trim":
		return strings.TrimSpace(convertToString(prev)), nil
	}
	return nil, fmt.Errorf("unknown pipe function: %s", function)
}

// splitCall parses "function(args)" or "function:args".
func splitCall(expr string) (function, args string) {
	expr = strings.TrimSpace(expr)
	if open := strings.Index(expr, "("); open > 0 {
		if closeIdx := strings.LastIndex(expr, ")"); closeIdx > open {
			return strings.TrimSpace(expr[:open]), strings.TrimSpace(expr[open+1 : closeIdx])
		}
	}
	function, args, _ = strings.Cut(expr, ":")
	return strings.TrimSpace(function), strings.TrimSpace(args)
}

// processFunction evaluates a single call. The result is a string or a
// *DateValue.
func processFunction(funcExpr string, env Env) (any, error) {
	function, args := splitCall(funcExpr)
	switch function {
	case "now":
		return env.now().Format(time.RFC3339), nil
	case "today":
		return &DateValue{t: env.now()}, nil
	case "date":
		return FormatDateValue(&DateValue{t: env.now()}, args), nil
	case "weekday":
		n, _ := strconv.Atoi(args)
		return WeekdayWithStart(env.now(), time.Weekday(n), env.WeekStart), nil
	case "row":
		return strconv.Itoa(env.Row), nil
	case "col":
		if env.Cell == nil {
			return "", nil
		}
		v, ok := env.Cell(unquoteString(args))
		if !ok {
			return nil, fmt.Errorf("no column %q", unquoteString(args))
		}
		return v, nil
	case "clipboard":
		if env.Clipboard == nil {
			return "", nil
		}
		v, err := env.Clipboard()
		if err != nil {
			return nil, fmt.Errorf("clipboard read error: %w", err)
		}
		return strings.TrimSpace(v), nil
	case "prompt":
		if env.Prompt == nil {
			return "", nil
		}
		v, ok := env.Prompt(unquoteString(args))
		if !ok {
			return nil, ErrCancelled
		}
		return v, nil
	}
	return nil, fmt.Errorf("unknown function: %s", function)
}

// unquoteString removes surrounding quotes from a string
func unquoteString(s string) string {
	if len(s) >= 2 && (s[0] == '"' || s[0] == '\'') && s[len(s)-1] == s[0] {
		return s[1 : len(s)-1]
	}
	return s
}
