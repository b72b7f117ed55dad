package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milk9111/tilechase/common"
	"github.com/milk9111/tilechase/ecs"
	"github.com/milk9111/tilechase/ecs/component"
)

func TestCollisionHeadOnCorridor(t *testing.T) {
	w := ecs.NewWorld()
	cfg := gridConfig(t, 10, 5)
	a := spawnActor(t, w, cfg, 80, 80, component.FactionFriendly)
	b := spawnActor(t, w, cfg, 120, 80, component.FactionEnemy)
	ta, tb := transformOf(t, w, a), transformOf(t, w, b)
	ta.VX, tb.VX = 1, -1

	reindex(w)
	NewCollisionSystem(cfg).Update(w)

	assert.Zero(t, ta.VX)
	assert.Zero(t, tb.VX)
	assert.Zero(t, ta.VY, "y velocity untouched")
	assert.Zero(t, tb.VY, "y velocity untouched")
	assert.Equal(t, 80, ta.X, "collision never moves entities")
}

func TestCollisionSlidesAlongWall(t *testing.T) {
	w := ecs.NewWorld()
	cfg := gridConfig(t, 10, 5)
	spawnWall(t, w, cfg, common.Cell{X: 3, Y: 2})
	e := spawnActor(t, w, cfg, 80, 80, component.FactionFriendly)
	tr := transformOf(t, w, e)
	tr.VX, tr.VY = 1, 1

	reindex(w)
	NewCollisionSystem(cfg).Update(w)

	assert.Zero(t, tr.VX, "wall blocks x")
	assert.Equal(t, 1, tr.VY, "free to slide along y")
}

func TestCollisionCornerStopsBothAxes(t *testing.T) {
	w := ecs.NewWorld()
	cfg := gridConfig(t, 10, 5)
	spawnWall(t, w, cfg, common.Cell{X: 3, Y: 3})
	e := spawnActor(t, w, cfg, 80, 80, component.FactionFriendly)
	tr := transformOf(t, w, e)
	tr.VX, tr.VY = 1, 1

	reindex(w)
	NewCollisionSystem(cfg).Update(w)

	assert.Zero(t, tr.VX)
	assert.Zero(t, tr.VY)
}

func TestCollisionSingleAxisMoveBlocksThatAxis(t *testing.T) {
	w := ecs.NewWorld()
	cfg := gridConfig(t, 10, 5)
	spawnWall(t, w, cfg, common.Cell{X: 2, Y: 3})
	e := spawnActor(t, w, cfg, 80, 80, component.FactionFriendly)
	tr := transformOf(t, w, e)
	tr.VY = 1

	reindex(w)
	NewCollisionSystem(cfg).Update(w)
	assert.Zero(t, tr.VY)
	assert.Zero(t, tr.VX)
}

func TestCollisionSymmetry(t *testing.T) {
	cfg := gridConfig(t, 10, 10)
	for dx := -41; dx <= 41; dx++ {
		for dy := -41; dy <= 41; dy += 41 {
			for vx := -1; vx <= 1; vx++ {
				for vy := -1; vy <= 1; vy++ {
					w := ecs.NewWorld()
					a := spawnActor(t, w, cfg, 160, 160, component.FactionFriendly)
					b := spawnActor(t, w, cfg, 160+dx, 160+dy, component.FactionEnemy)
					ta, tb := transformOf(t, w, a), transformOf(t, w, b)
					ta.VX, ta.VY = vx, vy
					tb.VX, tb.VY = -vx, -vy

					reindex(w)
					NewCollisionSystem(cfg).Update(w)

					require.Equal(t, ta.VX == 0, tb.VX == 0, "x flag dx=%d dy=%d v=(%d,%d)", dx, dy, vx, vy)
					require.Equal(t, ta.VY == 0, tb.VY == 0, "y flag dx=%d dy=%d v=(%d,%d)", dx, dy, vx, vy)
				}
			}
		}
	}
}

func TestCollisionTouchedAndEvents(t *testing.T) {
	w := ecs.NewWorld()
	cfg := gridConfig(t, 10, 5)
	a := spawnActor(t, w, cfg, 80, 80, component.FactionFriendly)
	b := spawnActor(t, w, cfg, 120, 80, component.FactionEnemy)
	transformOf(t, w, a).VX = 1

	var seen []component.TouchEvent
	w.AddSystem(NewSpatialIndexSystem())
	w.AddSystem(NewCollisionSystem(cfg))
	w.AddSystem(probe(func(w *ecs.World) {
		seen = append(seen, ecs.Events[component.TouchEvent](w)...)
	}))
	w.Update()

	require.Equal(t, []component.TouchEvent{{Entity: uint64(a), Other: uint64(b)}}, seen)
	det, _ := ecs.Get(w, a, component.CollisionDetectorComponent.Kind())
	assert.Equal(t, []uint64{uint64(b)}, det.Touched)
	assert.Empty(t, ecs.Events[component.TouchEvent](w), "events flushed after the frame")

	// Nothing moves toward b next frame, so the touched list is rebuilt empty.
	transformOf(t, w, a).VX = 0
	seen = nil
	w.Update()
	det, _ = ecs.Get(w, a, component.CollisionDetectorComponent.Kind())
	assert.Empty(t, det.Touched)
	assert.Empty(t, seen)
}

func TestCollisionInvisibleAndGhostOccupants(t *testing.T) {
	w := ecs.NewWorld()
	cfg := gridConfig(t, 10, 5)
	mover := spawnActor(t, w, cfg, 80, 80, component.FactionFriendly)

	hidden := spawnActor(t, w, cfg, 120, 80, component.FactionEnemy)
	fp, _ := ecs.Get(w, hidden, component.FootprintComponent.Kind())
	fp.Visible = false

	ghost := spawnActor(t, w, cfg, 80, 120, component.FactionEnemy)
	col, _ := ecs.Get(w, ghost, component.CollidableComponent.Kind())
	col.Ghost = true

	tr := transformOf(t, w, mover)
	tr.VX, tr.VY = 1, 1

	reindex(w)
	NewCollisionSystem(cfg).Update(w)

	assert.Zero(t, tr.VX, "hidden occupant still blocks")
	assert.Equal(t, 1, tr.VY, "ghost never blocks")
	det, _ := ecs.Get(w, mover, component.CollisionDetectorComponent.Kind())
	assert.Equal(t, []uint64{uint64(ghost)}, det.Touched, "only visible occupants are touched")
}

func TestCollisionSharedCellExcludesSelf(t *testing.T) {
	w := ecs.NewWorld()
	cfg := gridConfig(t, 10, 5)
	a := spawnActor(t, w, cfg, 80, 80, component.FactionFriendly)
	b := spawnActor(t, w, cfg, 90, 90, component.FactionFriendly)

	reindex(w)
	NewCollisionSystem(cfg).Update(w)

	da, _ := ecs.Get(w, a, component.CollisionDetectorComponent.Kind())
	db, _ := ecs.Get(w, b, component.CollisionDetectorComponent.Kind())
	assert.Equal(t, []uint64{uint64(b)}, da.Touched)
	assert.Equal(t, []uint64{uint64(a)}, db.Touched)
}

func TestCollisionWithoutDetectorIsOccupantOnly(t *testing.T) {
	w := ecs.NewWorld()
	cfg := gridConfig(t, 10, 5)
	wall := spawnWall(t, w, cfg, common.Cell{X: 2, Y: 2})
	tr := transformOf(t, w, wall)
	tr.VX = 1

	reindex(w)
	NewCollisionSystem(cfg).Update(w)
	assert.Equal(t, 1, tr.VX)
}

type probe func(w *ecs.World)

func (p probe) Update(w *ecs.World) { p(w) }
