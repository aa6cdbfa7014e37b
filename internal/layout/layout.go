// Package layout describes the keyboard grid the inspector renders.
//
// A layout file is YAML: a name plus rows of key names. Names resolve
// through the key catalog, so "escape", "lshift", or "numpad-add"
// style spellings all work. The built-in ANSI layout is embedded; a
// configuration can point at a replacement file.
package layout

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dshills/framekey/internal/input/key"
)

//go:embed ansi.yaml
var ansiData []byte

// Layout is a keyboard arranged as rows of keys.
type Layout struct {
	Name string
	Rows [][]key.Code
}

// layoutFile is the on-disk schema.
type layoutFile struct {
	Name string     `yaml:"name"`
	Rows [][]string `yaml:"rows"`
}

var defaultLayout = mustParse(ansiData)

// Default returns the embedded ANSI layout.
func Default() Layout {
	return defaultLayout
}

// Load reads a layout from a YAML file.
func Load(path string) (Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Layout{}, fmt.Errorf("reading layout %s: %w", path, err)
	}
	l, err := parse(data)
	if err != nil {
		return Layout{}, fmt.Errorf("layout %s: %w", path, err)
	}
	return l, nil
}

func parse(data []byte) (Layout, error) {
	var lf layoutFile
	if err := yaml.Unmarshal(data, &lf); err != nil {
		return Layout{}, fmt.Errorf("parsing layout: %w", err)
	}
	if len(lf.Rows) == 0 {
		return Layout{}, errors.New("layout has no rows")
	}

	l := Layout{
		Name: lf.Name,
		Rows: make([][]key.Code, 0, len(lf.Rows)),
	}
	for i, row := range lf.Rows {
		if len(row) == 0 {
			return Layout{}, fmt.Errorf("row %d is empty", i+1)
		}
		codes := make([]key.Code, 0, len(row))
		for _, name := range row {
			c := key.FromName(name)
			if c == key.CodeNone {
				return Layout{}, fmt.Errorf("row %d: unknown key %q", i+1, name)
			}
			codes = append(codes, c)
		}
		l.Rows = append(l.Rows, codes)
	}
	return l, nil
}

func mustParse(data []byte) Layout {
	l, err := parse(data)
	if err != nil {
		panic(fmt.Sprintf("layout: embedded default: %v", err))
	}
	return l
}
