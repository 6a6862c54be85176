package template

import (
	"errors"
	"testing"
	"time"
)

// Thursday 14 November 2024
var fixedNow = time.Date(2024, 11, 14, 9, 30, 0, 0, time.UTC)

func testEnv() Env {
	return Env{
		Now:       func() time.Time { return fixedNow },
		WeekStart: time.Monday,
		Clipboard: func() (string, error) { return "  Lanark \n", nil },
		Cell: func(col string) (string, bool) {
			if col == "Year" {
				return "1981", true
			}
			return "", false
		},
		Row: 7,
	}
}

func TestExpand(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"plain", "plain"},
		{"{{date}}", "2024-11-14"},
		{"{{date:%Y}}", "2024"},
		{"{{today}}", "2024-11-14"},
		{"{{today|date:%d %b}}", "14 Nov"},
		{"{{weekday(1)|date:%Y-%m-%d}}", "2024-11-11"},
		{"{{weekday(0)|date:%Y-%m-%d}}", "2024-11-17"},
		{"{{now}}", "2024-11-14T09:30:00Z"},
		{"{{clipboard}}", "Lanark"},
		{"{{clipboard|upper}}", "LANARK"},
		{"{{col:Year}}-{{row}}", "1981-7"},
		{`{{col:"Year"}}`, "1981"},
	}
	for _, tt := range tests {
		got, err := Expand(tt.input, testEnv())
		if err != nil {
			t.Errorf("Expand(%q) error: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Expand(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestExpandErrors(t *testing.T) {
	for _, input := range []string{"{{bogus}}", "{{col:Title}}", "{{date|upperish}}"} {
		if _, err := Expand(input, testEnv()); err == nil {
			t.Errorf("Expand(%q) should fail", input)
		}
	}
}

func TestExpandPrompt(t *testing.T) {
	env := testEnv()
	var asked string
	env.Prompt = func(q string) (string, bool) {
		asked = q
		return "Canongate", true
	}
	got, err := Expand(`Pub: {{prompt:"Publisher?"}}`, env)
	if err != nil || got != "Pub: Canongate" {
		t.Fatalf("got %q, %v", got, err)
	}
	if asked != "Publisher?" {
		t.Errorf("asked %q", asked)
	}

	env.Prompt = func(string) (string, bool) { return "", false }
	if _, err := Expand("{{prompt:x}}", env); !errors.Is(err, ErrCancelled) {
		t.Errorf("cancelled prompt should return ErrCancelled, got %v", err)
	}
}

func TestMissingCollaboratorsExpandEmpty(t *testing.T) {
	got, err := Expand("[{{clipboard}}{{prompt:q}}{{col:Year}}]", Env{})
	if err != nil || got != "[]" {
		t.Errorf("got %q, %v", got, err)
	}
}

func TestHasExpressions(t *testing.T) {
	if !HasExpressions("a {{date}} b") {
		t.Error("expected an expression")
	}
	if HasExpressions("{single}") {
		t.Error("single braces are plain text")
	}
}
