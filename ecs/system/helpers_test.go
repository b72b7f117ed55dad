package system

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/milk9111/tilechase/common"
	"github.com/milk9111/tilechase/ecs"
	"github.com/milk9111/tilechase/ecs/component"
)

func gridConfig(t *testing.T, columns, rows int) common.Config {
	t.Helper()
	cfg := common.Config{
		ScreenWidth:  columns * 40,
		ScreenHeight: rows * 40,
		Rows:         rows,
		Columns:      columns,
		GoalExempt:   true,
	}.Normalize()
	require.NoError(t, cfg.Validate())
	return cfg
}

func add[T any](t *testing.T, w *ecs.World, e ecs.Entity, kind component.ComponentKind[T], v *T) {
	t.Helper()
	require.NoError(t, ecs.Add(w, e, kind, v))
}

// spawnActor places a 40x40 mobile collider with a detector at x, y.
func spawnActor(t *testing.T, w *ecs.World, cfg common.Config, x, y int, faction component.Faction) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(w)
	add(t, w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y})
	add(t, w, e, component.FootprintComponent.Kind(), &component.Footprint{
		Bounds:  common.Rect{X: x, Y: y, Width: cfg.CellWidth, Height: cfg.CellHeight},
		Cell:    cfg.CellOf(x, y),
		Visible: true,
	})
	add(t, w, e, component.CollidableComponent.Kind(), &component.Collidable{})
	add(t, w, e, component.CollisionDetectorComponent.Kind(), &component.CollisionDetector{Faction: faction})
	return e
}

// spawnWall places a static collider filling a cell.
func spawnWall(t *testing.T, w *ecs.World, cfg common.Config, cell common.Cell) ecs.Entity {
	t.Helper()
	x, y := cfg.CellOrigin(cell)
	e := ecs.CreateEntity(w)
	add(t, w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y})
	add(t, w, e, component.FootprintComponent.Kind(), &component.Footprint{
		Bounds:  common.Rect{X: x, Y: y, Width: cfg.CellWidth, Height: cfg.CellHeight},
		Cell:    cell,
		Visible: true,
		Label:   "wall",
	})
	add(t, w, e, component.CollidableComponent.Kind(), &component.Collidable{Static: true})
	return e
}

func spawnPlayer(t *testing.T, w *ecs.World, cfg common.Config, cell common.Cell) ecs.Entity {
	t.Helper()
	x, y := cfg.CellOrigin(cell)
	e := spawnActor(t, w, cfg, x, y, component.FactionFriendly)
	add(t, w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{})
	add(t, w, e, component.HealthComponent.Kind(), &component.Health{Max: 100, Current: 100})
	return e
}

func spawnPursuer(t *testing.T, w *ecs.World, cfg common.Config, cell common.Cell) ecs.Entity {
	t.Helper()
	x, y := cfg.CellOrigin(cell)
	e := spawnActor(t, w, cfg, x, y, component.FactionEnemy)
	add(t, w, e, component.PursuerTagComponent.Kind(), &component.PursuerTag{})
	add(t, w, e, component.TargetingComponent.Kind(), &component.Targeting{})
	add(t, w, e, component.PathfindingComponent.Kind(), &component.Pathfinding{})
	add(t, w, e, component.MoverComponent.Kind(), &component.Mover{Speed: 1})
	add(t, w, e, component.IntentComponent.Kind(), &component.Intent{})
	return e
}

func transformOf(t *testing.T, w *ecs.World, e ecs.Entity) *component.Transform {
	t.Helper()
	tr, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	require.True(t, ok)
	return tr
}

func reindex(w *ecs.World) {
	NewSpatialIndexSystem().Update(w)
}
