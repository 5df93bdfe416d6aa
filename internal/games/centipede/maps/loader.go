// Package maps loads Centipede levels from a directory of numbered map
// files (map1.txt, map2.yaml, ...) and implements sim.MapProvider.
package maps

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/vovakirdan/tui-centipede/internal/games/centipede/maps/formats"
	"github.com/vovakirdan/tui-centipede/internal/games/centipede/sim"
)

//go:embed defaults/*
var defaultFS embed.FS

// Default returns the maps shipped with the binary.
func Default() fs.FS {
	sub, err := fs.Sub(defaultFS, "defaults")
	if err != nil {
		panic(err) // the embed pattern guarantees the directory
	}
	return sub
}

// Loader walks the numbered map sequence. It wraps back to map 1 after the
// last map and reports sim.ErrNoMap when map 1 itself is missing.
type Loader struct {
	fsys     fs.FS
	tileSize int
	current  int // index of the last loaded map; 0 before the first load
}

// NewLoader reads maps from fsys.
func NewLoader(fsys fs.FS, tileSize int) *Loader {
	return &Loader{fsys: fsys, tileSize: tileSize}
}

// Open reads maps from dir, or from the embedded set when dir is empty.
func Open(dir string, tileSize int) (*Loader, error) {
	if dir == "" {
		return NewLoader(Default(), tileSize), nil
	}
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("maps: open %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("maps: open %s: not a directory", dir)
	}
	return NewLoader(os.DirFS(dir), tileSize), nil
}

// Current returns the index of the last loaded map.
func (l *Loader) Current() int {
	return l.current
}

// LoadNext loads the map after the current one.
func (l *Loader) LoadNext() (*sim.Level, error) {
	for {
		l.current++
		lvl, err := l.load(l.current)
		if err == nil {
			return lvl, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
		if l.current == 1 {
			l.current = 0
			return nil, fmt.Errorf("%w: %v", sim.ErrNoMap, err)
		}
		l.current = 0
	}
}

// Reload parses the current map again.
func (l *Loader) Reload() (*sim.Level, error) {
	if l.current == 0 {
		return nil, sim.ErrNoMap
	}
	lvl, err := l.load(l.current)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %v", sim.ErrNoMap, err)
	}
	return lvl, err
}

func (l *Loader) load(index int) (*sim.Level, error) {
	name, data, err := l.read(index)
	if err != nil {
		return nil, err
	}
	m, err := formats.Decode(name, data)
	if err != nil {
		return nil, fmt.Errorf("maps: %s: %w", name, err)
	}
	if m.Name == "" {
		m.Name = fmt.Sprintf("map%d", index)
	}
	return Build(m, index, l.tileSize), nil
}

// read finds map<index> under any supported extension.
func (l *Loader) read(index int) (string, []byte, error) {
	for _, ext := range formats.Extensions {
		name := fmt.Sprintf("map%d%s", index, ext)
		data, err := fs.ReadFile(l.fsys, name)
		if err == nil {
			return name, data, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return "", nil, fmt.Errorf("maps: read %s: %w", name, err)
		}
	}
	return "", nil, fmt.Errorf("maps: map%d: %w", index, fs.ErrNotExist)
}

// Info summarizes one map file.
type Info struct {
	Index      int
	Name       string
	W, H       int
	Tiles      int
	Placements int
}

// List describes every map in the sequence, stopping at the first gap.
func (l *Loader) List() ([]Info, error) {
	var out []Info
	for i := 1; ; i++ {
		lvl, err := l.load(i)
		if errors.Is(err, fs.ErrNotExist) {
			break
		}
		if err != nil {
			return out, err
		}
		info := Info{
			Index:      i,
			Name:       lvl.Name,
			W:          lvl.Grid.W,
			H:          lvl.Grid.H,
			Placements: len(lvl.Placements),
		}
		for y := range lvl.Grid.H {
			for x := range lvl.Grid.W {
				if lvl.Grid.Tile(x, y) != sim.NoTile {
					info.Tiles++
				}
			}
		}
		out = append(out, info)
	}
	return out, nil
}
