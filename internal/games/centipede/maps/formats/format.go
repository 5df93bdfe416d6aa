// Package formats decodes level files into rows of map characters.
//
// Two encodings are supported: the plain text grid (map<N>.txt) and a YAML
// document carrying the same grid in a block scalar plus metadata
// (map<N>.yaml). Both produce a Map; turning characters into tiles and
// creatures is left to the caller.
package formats

import (
	"errors"
	"fmt"
	"path"
	"strings"
)

// ErrUnsupportedFormat is returned for file extensions with no decoder.
var ErrUnsupportedFormat = errors.New("formats: unsupported map format")

// Map is a decoded level file.
type Map struct {
	Name   string
	Author string
	Rows   []string
}

// Width returns the length of the longest row.
func (m *Map) Width() int {
	w := 0
	for _, r := range m.Rows {
		if n := len([]rune(r)); n > w {
			w = n
		}
	}
	return w
}

// Height returns the number of rows.
func (m *Map) Height() int {
	return len(m.Rows)
}

// Extensions lists the file extensions Decode understands, in lookup order.
var Extensions = []string{".txt", ".yaml", ".yml"}

// Decode picks a decoder from the file extension of name.
func Decode(name string, data []byte) (*Map, error) {
	switch strings.ToLower(path.Ext(name)) {
	case ".txt":
		return ParseText(strings.NewReader(string(data)))
	case ".yaml", ".yml":
		return ParseYAML(data)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, name)
	}
}
