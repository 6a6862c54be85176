package history

import (
	"os"
	"path/filepath"
	"testing"
)

func TestManagerRoundTrip(t *testing.T) {
	m, err := NewManagerAt(filepath.Join(t.TempDir(), "hist"))
	if err != nil {
		t.Fatalf("NewManagerAt: %v", err)
	}

	entries, err := m.Load("command.toml")
	if err != nil || len(entries) != 0 {
		t.Fatalf("missing file: got %v, %v", entries, err)
	}

	if err := m.Save("command.toml", []string{"insrow 3", "w"}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	entries, err = m.Load("command.toml")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(entries) != 2 || entries[0] != "insrow 3" || entries[1] != "w" {
		t.Errorf("got %v", entries)
	}
}

func TestManagerCorruptFile(t *testing.T) {
	dir := t.TempDir()
	m, err := NewManagerAt(dir)
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "bad.toml"), []byte("entries = [unterminated"), 0644); err != nil {
		t.Fatal(err)
	}
	entries, err := m.Load("bad.toml")
	if err != nil || len(entries) != 0 {
		t.Errorf("corrupt file: got %v, %v", entries, err)
	}
}
