package system

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milk9111/tilechase/common"
	"github.com/milk9111/tilechase/ecs"
	"github.com/milk9111/tilechase/ecs/component"
)

type pathWorld struct {
	w     *ecs.World
	cfg   common.Config
	clock *common.ManualClock
	paths *PathfindingSystem
}

func newPathWorld(t *testing.T, columns, rows int) *pathWorld {
	t.Helper()
	cfg := gridConfig(t, columns, rows)
	clock := &common.ManualClock{}
	return &pathWorld{w: ecs.NewWorld(), cfg: cfg, clock: clock, paths: NewPathfindingSystem(cfg, clock)}
}

func (p *pathWorld) frame() {
	reindex(p.w)
	NewTargetingSystem().Update(p.w)
	p.paths.Update(p.w)
}

func pathOf(t *testing.T, w *ecs.World, e ecs.Entity) *component.Pathfinding {
	t.Helper()
	pf, ok := ecs.Get(w, e, component.PathfindingComponent.Kind())
	require.True(t, ok)
	return pf
}

func targetOf(t *testing.T, w *ecs.World, e ecs.Entity) *component.Targeting {
	t.Helper()
	tg, ok := ecs.Get(w, e, component.TargetingComponent.Kind())
	require.True(t, ok)
	return tg
}

func TestPathAroundObstacle(t *testing.T) {
	pw := newPathWorld(t, 5, 5)
	spawnWall(t, pw.w, pw.cfg, common.Cell{X: 2, Y: 2})
	pursuer := spawnPursuer(t, pw.w, pw.cfg, common.Cell{X: 0, Y: 2})
	spawnPlayer(t, pw.w, pw.cfg, common.Cell{X: 4, Y: 2})

	pw.frame()

	pf := pathOf(t, pw.w, pursuer)
	require.True(t, pf.Initialized)
	require.Len(t, pf.Path, 7)
	assert.Equal(t, common.Cell{X: 0, Y: 2}, pf.Path[0].Cell)
	assert.Equal(t, common.Cell{X: 4, Y: 2}, pf.Path[6].Cell, "goal is reachable although the player blocks it")

	tg := targetOf(t, pw.w, pursuer)
	wx, wy := pw.cfg.CellOrigin(pf.Path[1].Cell)
	assert.Equal(t, wx, tg.TargetX)
	assert.Equal(t, wy, tg.TargetY)
	assert.Equal(t, 160, tg.RawX)
}

func TestWaypointShortcutWhenAdjacent(t *testing.T) {
	pw := newPathWorld(t, 5, 5)
	pursuer := spawnPursuer(t, pw.w, pw.cfg, common.Cell{X: 1, Y: 1})
	player := spawnPlayer(t, pw.w, pw.cfg, common.Cell{X: 2, Y: 1})
	pt := transformOf(t, pw.w, player)
	pt.X += 7

	pw.frame()

	pf := pathOf(t, pw.w, pursuer)
	require.Len(t, pf.Path, 2)
	tg := targetOf(t, pw.w, pursuer)
	assert.Equal(t, pt.X, tg.TargetX, "steers at the raw position, not path[1]")
	assert.Equal(t, pt.Y, tg.TargetY)
}

func TestUnreachableTargetFallsBackToDirectPursuit(t *testing.T) {
	pw := newPathWorld(t, 5, 5)
	for _, c := range []common.Cell{{X: 3, Y: 1}, {X: 2, Y: 2}, {X: 4, Y: 2}, {X: 3, Y: 3}} {
		spawnWall(t, pw.w, pw.cfg, c)
	}
	pursuer := spawnPursuer(t, pw.w, pw.cfg, common.Cell{X: 0, Y: 0})
	spawnPlayer(t, pw.w, pw.cfg, common.Cell{X: 3, Y: 2})

	pw.frame()

	pf := pathOf(t, pw.w, pursuer)
	assert.True(t, pf.Initialized)
	assert.NotNil(t, pf.Path, "empty, not uncomputed")
	assert.Empty(t, pf.Path)
	tg := targetOf(t, pw.w, pursuer)
	assert.Equal(t, tg.RawX, tg.TargetX)
	assert.Equal(t, tg.RawY, tg.TargetY)
}

func TestRecomputeThrottle(t *testing.T) {
	pw := newPathWorld(t, 5, 5)
	first := spawnPursuer(t, pw.w, pw.cfg, common.Cell{X: 0, Y: 0})
	second := spawnPursuer(t, pw.w, pw.cfg, common.Cell{X: 0, Y: 4})
	spawnPlayer(t, pw.w, pw.cfg, common.Cell{X: 4, Y: 2})

	pw.frame()
	assert.Equal(t, 2, pw.paths.LastFrameSearches(), "initial searches are not throttled")

	pw.clock.Advance(100 * time.Millisecond)
	pw.frame()
	assert.Zero(t, pw.paths.LastFrameSearches(), "interval not yet elapsed")

	pw.clock.Advance(400 * time.Millisecond)
	pw.frame()
	assert.Equal(t, 1, pw.paths.LastFrameSearches(), "both due, one search")
	a, b := pathOf(t, pw.w, first), pathOf(t, pw.w, second)
	assert.Equal(t, 3, a.Searches+b.Searches, "exactly one of them refreshed")

	pw.clock.Advance(50 * time.Millisecond)
	pw.frame()
	assert.Equal(t, 1, pw.paths.LastFrameSearches())
	assert.Equal(t, 2, a.Searches)
	assert.Equal(t, 2, b.Searches, "the other refreshed on the next frame")
	assert.ElementsMatch(t, []time.Duration{500 * time.Millisecond, 550 * time.Millisecond}, []time.Duration{a.LastRecompute, b.LastRecompute})
}

func TestInvalidTargetSkipsFrame(t *testing.T) {
	pw := newPathWorld(t, 5, 5)
	pursuer := spawnPursuer(t, pw.w, pw.cfg, common.Cell{X: 0, Y: 0})
	player := spawnPlayer(t, pw.w, pw.cfg, common.Cell{X: 4, Y: 4})

	reindex(pw.w)
	NewTargetingSystem().Update(pw.w)
	ecs.DestroyEntity(pw.w, player)

	tg := targetOf(t, pw.w, pursuer)
	tg.TargetX, tg.TargetY = 11, 22
	tr := transformOf(t, pw.w, pursuer)
	tr.VX, tr.VY = 1, -1

	pw.paths.Update(pw.w)
	NewSteeringSystem().Update(pw.w)

	pf := pathOf(t, pw.w, pursuer)
	assert.False(t, pf.Initialized)
	assert.Zero(t, pw.paths.LastFrameSearches())
	assert.Equal(t, 11, tg.TargetX)
	assert.Equal(t, 22, tg.TargetY)
	assert.Equal(t, 1, tr.VX, "velocity left as it was")
	assert.Equal(t, -1, tr.VY)
}

func TestTargetingWithoutPlayer(t *testing.T) {
	pw := newPathWorld(t, 5, 5)
	pursuer := spawnPursuer(t, pw.w, pw.cfg, common.Cell{X: 0, Y: 0})

	pw.frame()

	assert.False(t, targetOf(t, pw.w, pursuer).HasTarget)
	assert.False(t, pathOf(t, pw.w, pursuer).Initialized)
}
