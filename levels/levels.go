package levels

import (
	"bufio"
	"bytes"
	"embed"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
)

//go:embed *.txt
var LevelsFS embed.FS

type TileKind int

const (
	TileDirt TileKind = iota
	TileGrass
	TileWall
)

func (k TileKind) String() string {
	switch k {
	case TileDirt:
		return "dirt"
	case TileGrass:
		return "grass"
	case TileWall:
		return "wall"
	}
	return "unknown"
}

// Collidable reports whether the tile blocks movement.
func (k TileKind) Collidable() bool {
	return k == TileDirt || k == TileWall
}

type SpawnKind int

const (
	SpawnPlayer SpawnKind = iota
	SpawnPursuer
	SpawnWanderer
)

func (k SpawnKind) String() string {
	switch k {
	case SpawnPlayer:
		return "player"
	case SpawnPursuer:
		return "pursuer"
	case SpawnWanderer:
		return "wanderer"
	}
	return "unknown"
}

// Tile is one terrain cell; Column and Row are grid coordinates.
type Tile struct {
	Column int
	Row    int
	Kind   TileKind
}

type Spawn struct {
	Column int
	Row    int
	Kind   SpawnKind
}

// Map is a parsed row-of-characters level. Rows and Columns are the extent
// of the text, which may be smaller than the configured grid.
type Map struct {
	Name    string
	Rows    int
	Columns int
	Tiles   []Tile
	Spawns  []Spawn
}

// Parse reads a level. Unknown characters are logged and skipped.
//
//	d dirt (blocks)   g grass   # wall (blocks)
//	P player   E pursuer   W wanderer   . or space empty
func Parse(r io.Reader) (*Map, error) {
	m := &Map{}
	sc := bufio.NewScanner(r)
	row := 0
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		for col, ch := range []byte(line) {
			switch ch {
			case 'd':
				m.Tiles = append(m.Tiles, Tile{Column: col, Row: row, Kind: TileDirt})
			case 'g':
				m.Tiles = append(m.Tiles, Tile{Column: col, Row: row, Kind: TileGrass})
			case '#':
				m.Tiles = append(m.Tiles, Tile{Column: col, Row: row, Kind: TileWall})
			case 'P':
				m.Spawns = append(m.Spawns, Spawn{Column: col, Row: row, Kind: SpawnPlayer})
			case 'E':
				m.Spawns = append(m.Spawns, Spawn{Column: col, Row: row, Kind: SpawnPursuer})
			case 'W':
				m.Spawns = append(m.Spawns, Spawn{Column: col, Row: row, Kind: SpawnWanderer})
			case '.', ' ':
			default:
				log.Printf("levels: skipping unknown tile %q at (%d,%d)", ch, col, row)
			}
		}
		if len(line) > m.Columns {
			m.Columns = len(line)
		}
		row++
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("levels: read map: %w", err)
	}
	m.Rows = row
	return m, nil
}

// Load reads a level from ./levels on disk when present, falling back to
// the embedded copy.
func Load(name string) (*Map, error) {
	clean := cleanLevelPath(name)
	data, err := os.ReadFile(filepath.Join("levels", filepath.FromSlash(clean)))
	if err != nil {
		data, err = LevelsFS.ReadFile(clean)
		if err != nil {
			return nil, fmt.Errorf("levels: load %s: %w", name, err)
		}
	}
	m, err := Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("levels: parse %s: %w", name, err)
	}
	m.Name = clean
	return m, nil
}

// Player returns the first player spawn.
func (m *Map) Player() (Spawn, bool) {
	if m == nil {
		return Spawn{}, false
	}
	for _, s := range m.Spawns {
		if s.Kind == SpawnPlayer {
			return s, true
		}
	}
	return Spawn{}, false
}

func cleanLevelPath(path string) string {
	s := filepath.ToSlash(path)
	if after, ok := strings.CutPrefix(s, "levels/"); ok {
		return after
	}
	return s
}
