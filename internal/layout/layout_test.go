package layout

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dshills/framekey/internal/input/key"
)

func TestDefaultLayout(t *testing.T) {
	l := Default()

	if l.Name != "ansi" {
		t.Errorf("Name = %q, want %q", l.Name, "ansi")
	}
	if len(l.Rows) != 7 {
		t.Fatalf("len(Rows) = %d, want 7", len(l.Rows))
	}
	if l.Rows[0][0] != key.CodeEscape {
		t.Errorf("Rows[0][0] = %v, want Escape", l.Rows[0][0])
	}

	var hasSpace bool
	for _, row := range l.Rows {
		if len(row) == 0 {
			t.Error("default layout contains an empty row")
		}
		for _, c := range row {
			if c == key.CodeNone {
				t.Error("default layout contains CodeNone")
			}
			if c == key.CodeSpace {
				hasSpace = true
			}
		}
	}
	if !hasSpace {
		t.Error("default layout is missing the space bar")
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pad.yaml")
	data := `name: "pad"
rows:
  - ["numlock", "numpad-divide", "numpad-multiply"]
  - ["numpad7", "numpad8", "numpad9"]
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	l, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if l.Name != "pad" {
		t.Errorf("Name = %q, want %q", l.Name, "pad")
	}
	if len(l.Rows) != 2 {
		t.Fatalf("len(Rows) = %d, want 2", len(l.Rows))
	}
	if l.Rows[0][0] != key.CodeNumlock {
		t.Errorf("Rows[0][0] = %v, want Numlock", l.Rows[0][0])
	}
	if l.Rows[1][2] != key.CodeNumpad9 {
		t.Errorf("Rows[1][2] = %v, want Numpad9", l.Rows[1][2])
	}
}

func TestLoadUnknownKeyName(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	data := `name: "bad"
rows:
  - ["escape", "hyperdrive"]
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := Load(path)
	if err == nil {
		t.Fatal("Load() error = nil, want unknown key error")
	}
	if !strings.Contains(err.Error(), "hyperdrive") {
		t.Errorf("error %q does not name the unknown key", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("Load() error = nil, want error")
	}
}

func TestLoadEmptyRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.yaml")
	if err := os.WriteFile(path, []byte("name: \"empty\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load() error = nil, want no-rows error")
	}
}
