package formats

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

type yamlMap struct {
	Name   string `yaml:"name"`
	Author string `yaml:"author"`
	Tiles  string `yaml:"tiles"`
}

// ParseYAML reads a map document:
//
//	name: Garden
//	author: someone
//	tiles: |
//	  ....A....
//	  ..o...o..
func ParseYAML(data []byte) (*Map, error) {
	var doc yamlMap
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("formats: parse yaml map: %w", err)
	}

	m := &Map{Name: doc.Name, Author: doc.Author}
	for _, line := range strings.Split(doc.Tiles, "\n") {
		m.Rows = append(m.Rows, strings.TrimRight(line, "\r"))
	}
	trimTrailingBlank(m)
	if len(m.Rows) == 0 {
		return nil, fmt.Errorf("formats: yaml map has no tiles")
	}
	return m, nil
}
