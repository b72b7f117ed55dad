package levels

import (
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	src := "dg#\n.P?\nE W\n"
	m, err := Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if m.Rows != 3 || m.Columns != 3 {
		t.Fatalf("extent = %dx%d, want 3x3", m.Columns, m.Rows)
	}
	wantTiles := []Tile{
		{Column: 0, Row: 0, Kind: TileDirt},
		{Column: 1, Row: 0, Kind: TileGrass},
		{Column: 2, Row: 0, Kind: TileWall},
	}
	if len(m.Tiles) != len(wantTiles) {
		t.Fatalf("tiles = %v, want %v", m.Tiles, wantTiles)
	}
	for i, tile := range wantTiles {
		if m.Tiles[i] != tile {
			t.Fatalf("tile %d = %+v, want %+v", i, m.Tiles[i], tile)
		}
	}
	wantSpawns := []Spawn{
		{Column: 1, Row: 1, Kind: SpawnPlayer},
		{Column: 0, Row: 2, Kind: SpawnPursuer},
		{Column: 2, Row: 2, Kind: SpawnWanderer},
	}
	if len(m.Spawns) != len(wantSpawns) {
		t.Fatalf("spawns = %v, want %v", m.Spawns, wantSpawns)
	}
	for i, s := range wantSpawns {
		if m.Spawns[i] != s {
			t.Fatalf("spawn %d = %+v, want %+v", i, m.Spawns[i], s)
		}
	}
}

func TestTileCollidable(t *testing.T) {
	tests := []struct {
		kind TileKind
		want bool
	}{
		{TileDirt, true},
		{TileGrass, false},
		{TileWall, true},
	}
	for _, tc := range tests {
		t.Run(tc.kind.String(), func(t *testing.T) {
			if got := tc.kind.Collidable(); got != tc.want {
				t.Fatalf("Collidable() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestParseCRLF(t *testing.T) {
	m, err := Parse(strings.NewReader("dd\r\ndd\r\n"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if m.Columns != 2 || len(m.Tiles) != 4 {
		t.Fatalf("columns=%d tiles=%d, want 2 and 4", m.Columns, len(m.Tiles))
	}
}

func TestLoadEmbedded(t *testing.T) {
	m, err := Load("arena.txt")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if m.Rows != 20 || m.Columns != 30 {
		t.Fatalf("arena extent = %dx%d, want 30x20", m.Columns, m.Rows)
	}
	if _, ok := m.Player(); !ok {
		t.Fatalf("arena has no player spawn")
	}
	if m.Name != "arena.txt" {
		t.Fatalf("name = %q", m.Name)
	}
}

func TestLoadMissing(t *testing.T) {
	if _, err := Load("levels/nope.txt"); err == nil {
		t.Fatalf("expected error for missing level")
	}
}
