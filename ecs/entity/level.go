package entity

import (
	"fmt"
	"log"

	"github.com/milk9111/tilechase/common"
	"github.com/milk9111/tilechase/ecs"
	"github.com/milk9111/tilechase/levels"
)

// Level lists what BuildLevel spawned.
type Level struct {
	Player    ecs.Entity
	Pursuers  []ecs.Entity
	Wanderers []ecs.Entity
	Terrain   int
	Skipped   int
}

// BuildLevel populates w from a parsed map and installs a spatial index with
// its static half built. Tiles and spawns that fall outside the grid or fail
// to build are logged and skipped.
func BuildLevel(w *ecs.World, cfg common.Config, m *levels.Map) (Level, error) {
	var lvl Level
	if w == nil {
		return lvl, fmt.Errorf("level: world is nil")
	}
	if m == nil {
		return lvl, fmt.Errorf("level: map is nil")
	}

	for _, tile := range m.Tiles {
		if !cfg.InBounds(common.Cell{X: tile.Column, Y: tile.Row}) {
			log.Printf("level: %s tile (%d,%d) outside %dx%d grid, skipped", tile.Kind, tile.Column, tile.Row, cfg.Columns, cfg.Rows)
			lvl.Skipped++
			continue
		}
		if _, err := NewTerrain(w, cfg, tile); err != nil {
			log.Printf("level: %v", err)
			lvl.Skipped++
			continue
		}
		lvl.Terrain++
	}

	for _, spawn := range m.Spawns {
		cell := common.Cell{X: spawn.Column, Y: spawn.Row}
		if !cfg.InBounds(cell) {
			log.Printf("level: %s spawn %v outside grid, skipped", spawn.Kind, cell)
			lvl.Skipped++
			continue
		}
		x, y := cfg.CellOrigin(cell)
		switch spawn.Kind {
		case levels.SpawnPlayer:
			if lvl.Player.Valid() {
				log.Printf("level: extra player spawn at %v, skipped", cell)
				lvl.Skipped++
				continue
			}
			e, err := NewPlayer(w, cfg, x, y)
			if err != nil {
				log.Printf("level: %v", err)
				lvl.Skipped++
				continue
			}
			lvl.Player = e
		case levels.SpawnPursuer:
			e, err := NewPursuer(w, cfg, x, y)
			if err != nil {
				log.Printf("level: %v", err)
				lvl.Skipped++
				continue
			}
			lvl.Pursuers = append(lvl.Pursuers, e)
		case levels.SpawnWanderer:
			e, err := NewWanderer(w, cfg, x, y)
			if err != nil {
				log.Printf("level: %v", err)
				lvl.Skipped++
				continue
			}
			lvl.Wanderers = append(lvl.Wanderers, e)
		}
	}

	idx := ecs.NewSpatialIndex()
	idx.BuildStatic(w)
	idx.RebuildDynamic(w)
	w.SetSpatialIndex(idx)

	return lvl, nil
}
