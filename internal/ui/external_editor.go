package ui

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/pstuifzand/tui-datagrid/internal/config"
)

// CellFrontmatter describes the cell being edited. It is written above the
// value and read back so a mangled header is caught.
type CellFrontmatter struct {
	Column string `toml:"column"`
	Type   string `toml:"type"`
	Row    int    `toml:"row"`
}

// ValidateValueFunc checks an edited value. It returns an error message,
// or "" when the value is acceptable.
type ValidateValueFunc func(value string) string

// runEditor starts the editor on path and waits for it.
var runEditor = func(editorCmd, path string) error {
	// sh -c so commands with flags like "vim --clean" work
	cmd := exec.Command("sh", "-c", editorCmd+" "+path)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// EditCellInExternalEditor opens value in the configured editor. It
// returns the edited value and whether it changed. The caller must release
// the terminal around the call.
func EditCellInExternalEditor(meta CellFrontmatter, value string, cfg *config.Config, validate ValidateValueFunc) (string, bool, error) {
	tmpFile, err := os.CreateTemp("", "tdg-cell-*.txt")
	if err != nil {
		return "", false, fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer os.Remove(tmpPath)

	original, err := serializeCell(meta, value)
	if err != nil {
		tmpFile.Close()
		return "", false, fmt.Errorf("failed to serialize cell: %w", err)
	}
	if _, err := tmpFile.Write(original); err != nil {
		tmpFile.Close()
		return "", false, fmt.Errorf("failed to write temp file: %w", err)
	}
	tmpFile.Close()

	if err := runEditor(resolveEditor(cfg), tmpPath); err != nil {
		// A non-zero exit still leaves a file worth reading.
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return "", false, fmt.Errorf("failed to launch editor: %w", err)
		}
	}

	edited, err := os.ReadFile(tmpPath)
	if err != nil {
		return "", false, fmt.Errorf("failed to read edited file: %w", err)
	}
	if bytes.Equal(original, edited) || len(edited) == 0 {
		return value, false, nil
	}

	text, _, err := deserializeCell(edited)
	if err != nil {
		return "", false, fmt.Errorf("failed to parse edited content: %w (keeping original)", err)
	}
	if validate != nil {
		if msg := validate(text); msg != "" {
			return "", false, fmt.Errorf("%s (keeping original)", msg)
		}
	}
	return text, text != value, nil
}

func serializeCell(meta CellFrontmatter, value string) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("+++\n")
	if err := toml.NewEncoder(&buf).Encode(meta); err != nil {
		return nil, err
	}
	buf.WriteString("+++\n")
	buf.WriteString(value)
	buf.WriteString("\n")
	return buf.Bytes(), nil
}

// deserializeCell splits the frontmatter from the value. Content without
// frontmatter is taken as the value. Cells hold one line, so line breaks
// become spaces.
func deserializeCell(content []byte) (string, *CellFrontmatter, error) {
	s := string(content)
	meta := &CellFrontmatter{}

	if rest, ok := strings.CutPrefix(s, "+++\n"); ok {
		if end := strings.Index(rest, "+++\n"); end != -1 {
			if err := toml.Unmarshal([]byte(rest[:end]), meta); err != nil {
				return "", nil, err
			}
			s = rest[end+4:]
		}
	}

	lines := strings.Fields(strings.ReplaceAll(strings.TrimSpace(s), "\n", " "))
	return strings.Join(lines, " "), meta, nil
}

// resolveEditor determines which editor to use
func resolveEditor(cfg *config.Config) string {
	if cfg != nil {
		if editorVal := cfg.Get("editor"); editorVal != "" {
			return editorVal
		}
	}
	if editor := os.Getenv("EDITOR"); editor != "" {
		return editor
	}
	return "vi"
}
