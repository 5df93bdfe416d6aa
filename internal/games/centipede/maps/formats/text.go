package formats

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ParseText reads the line-oriented grid format. Lines starting with '#'
// are comments; a comment of the form "# name: X" names the map.
// Trailing carriage returns are dropped.
func ParseText(r io.Reader) (*Map, error) {
	m := &Map{}
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if strings.HasPrefix(line, "#") {
			if name, ok := strings.CutPrefix(strings.TrimSpace(line[1:]), "name:"); ok && m.Name == "" {
				m.Name = strings.TrimSpace(name)
			}
			continue
		}
		m.Rows = append(m.Rows, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("formats: read text map: %w", err)
	}
	trimTrailingBlank(m)
	if len(m.Rows) == 0 {
		return nil, fmt.Errorf("formats: text map has no rows")
	}
	return m, nil
}

func trimTrailingBlank(m *Map) {
	for len(m.Rows) > 0 && strings.TrimSpace(m.Rows[len(m.Rows)-1]) == "" {
		m.Rows = m.Rows[:len(m.Rows)-1]
	}
}
