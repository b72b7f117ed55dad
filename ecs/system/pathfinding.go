package system

import (
	"time"

	"github.com/milk9111/tilechase/common"
	"github.com/milk9111/tilechase/ecs"
	"github.com/milk9111/tilechase/ecs/component"
	"github.com/milk9111/tilechase/pathfind"
)

// waypointMinPath is the shortest path still followed cell by cell. Shorter
// paths mean the target is adjacent or the search failed, and steering goes
// straight at the target instead.
const waypointMinPath = 3

// PathfindingSystem keeps each pursuer's path to its target fresh. A new
// pursuer searches on its first frame; after that a path is recomputed once
// the repath interval has elapsed, and at most one such recompute runs per
// frame across all pursuers.
type PathfindingSystem struct {
	Config common.Config
	Clock  common.Clock

	finder            *pathfind.Finder
	lastFrameSearches int
}

func NewPathfindingSystem(cfg common.Config, clock common.Clock) *PathfindingSystem {
	finder := pathfind.NewFinder(cfg.Columns, cfg.Rows)
	finder.GoalExempt = cfg.GoalExempt
	return &PathfindingSystem{Config: cfg, Clock: clock, finder: finder}
}

// LastFrameSearches is the number of searches run by the latest Update.
func (ps *PathfindingSystem) LastFrameSearches() int {
	if ps == nil {
		return 0
	}
	return ps.lastFrameSearches
}

func (ps *PathfindingSystem) Update(w *ecs.World) {
	if ps == nil || w == nil {
		return
	}
	if ps.finder == nil {
		ps.finder = pathfind.NewFinder(ps.Config.Columns, ps.Config.Rows)
		ps.finder.GoalExempt = ps.Config.GoalExempt
	}

	var now time.Duration
	if ps.Clock != nil {
		now = ps.Clock.Now()
	}
	interval := ps.Config.RepathInterval()
	idx := w.SpatialIndex()
	blocked := func(c common.Cell) bool { return idx.Blocked(c) }

	ps.lastFrameSearches = 0
	recomputed := false

	ecs.ForEach3(w, component.PathfindingComponent.Kind(), component.TargetingComponent.Kind(), component.FootprintComponent.Kind(), func(e ecs.Entity, pf *component.Pathfinding, tg *component.Targeting, fp *component.Footprint) {
		if !tg.HasTarget {
			return
		}
		target := ecs.Entity(tg.Target)
		if !ecs.IsAlive(w, target) {
			return
		}
		tfp, ok := ecs.Get(w, target, component.FootprintComponent.Kind())
		if !ok {
			return
		}

		switch {
		case !pf.Initialized:
			ps.search(pf, fp.Cell, tfp.Cell, blocked)
			pf.Initialized = true
			pf.LastRecompute = now
		case !recomputed && now-pf.LastRecompute >= interval:
			ps.search(pf, fp.Cell, tfp.Cell, blocked)
			pf.LastRecompute = now
			recomputed = true
		}

		if wp, ok := pf.Waypoint(waypointMinPath); ok {
			tg.TargetX, tg.TargetY = ps.Config.CellOrigin(wp.Cell)
			return
		}
		tg.TargetX, tg.TargetY = tg.RawX, tg.RawY
	})
}

func (ps *PathfindingSystem) search(pf *component.Pathfinding, start, goal common.Cell, blocked pathfind.BlockedFunc) {
	pf.Path = ps.finder.Find(start, goal, blocked)
	pf.Searches++
	pf.Expanded = ps.finder.Stats().Expanded
	ps.lastFrameSearches++
}
