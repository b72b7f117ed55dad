package entity

import (
	"fmt"

	"github.com/milk9111/tilechase/common"
	"github.com/milk9111/tilechase/ecs"
	"github.com/milk9111/tilechase/ecs/component"
	"github.com/milk9111/tilechase/levels"
)

const (
	PlayerPrefab   = "player.yaml"
	PursuerPrefab  = "pursuer.yaml"
	WandererPrefab = "wanderer.yaml"
	TerrainPrefab  = "terrain.yaml"
)

func NewPlayer(w *ecs.World, cfg common.Config, x, y int) (ecs.Entity, error) {
	e, err := BuildEntity(w, cfg, PlayerPrefab, x, y)
	if err != nil {
		return 0, fmt.Errorf("player: %w", err)
	}
	return e, nil
}

func NewPursuer(w *ecs.World, cfg common.Config, x, y int) (ecs.Entity, error) {
	e, err := BuildEntity(w, cfg, PursuerPrefab, x, y)
	if err != nil {
		return 0, fmt.Errorf("pursuer: %w", err)
	}
	return e, nil
}

func NewWanderer(w *ecs.World, cfg common.Config, x, y int) (ecs.Entity, error) {
	e, err := BuildEntity(w, cfg, WandererPrefab, x, y)
	if err != nil {
		return 0, fmt.Errorf("wanderer: %w", err)
	}
	return e, nil
}

// NewWeapon builds a weapon prefab bound to owner. It starts sheathed at the
// owner's position.
func NewWeapon(w *ecs.World, cfg common.Config, prefabPath string, owner ecs.Entity) (ecs.Entity, error) {
	ot, ok := ecs.Get(w, owner, component.TransformComponent.Kind())
	if !ok {
		return 0, fmt.Errorf("weapon: owner %v has no transform", owner)
	}
	e, err := BuildEntity(w, cfg, prefabPath, ot.X, ot.Y)
	if err != nil {
		return 0, fmt.Errorf("weapon: %w", err)
	}
	wp, ok := ecs.Get(w, e, component.WeaponComponent.Kind())
	if !ok {
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("weapon: prefab %q has no weapon component", prefabPath)
	}
	wp.Owner = uint64(owner)
	return e, nil
}

// NewTerrain places one map tile. Grass is background only and gets no
// collider.
func NewTerrain(w *ecs.World, cfg common.Config, tile levels.Tile) (ecs.Entity, error) {
	x, y := cfg.CellOrigin(common.Cell{X: tile.Column, Y: tile.Row})
	e, err := BuildEntity(w, cfg, TerrainPrefab, x, y)
	if err != nil {
		return 0, fmt.Errorf("terrain: %w", err)
	}
	if !tile.Kind.Collidable() {
		ecs.Remove(w, e, component.CollidableComponent.Kind())
	}
	if fp, ok := ecs.Get(w, e, component.FootprintComponent.Kind()); ok {
		fp.Label = tile.Kind.String()
	}
	return e, nil
}
