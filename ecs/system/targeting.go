package system

import (
	"github.com/milk9111/tilechase/ecs"
	"github.com/milk9111/tilechase/ecs/component"
)

// TargetingSystem points every pursuer at the player. The effective target
// starts as the player's raw position; pathfinding may replace it with a
// waypoint later in the frame.
type TargetingSystem struct{}

func NewTargetingSystem() *TargetingSystem {
	return &TargetingSystem{}
}

func (s *TargetingSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	player, ok := ecs.First(w, component.PlayerTagComponent.Kind())
	var pt *component.Transform
	if ok {
		pt, ok = ecs.Get(w, player, component.TransformComponent.Kind())
	}

	ecs.ForEach(w, component.TargetingComponent.Kind(), func(_ ecs.Entity, tg *component.Targeting) {
		if !ok {
			tg.HasTarget = false
			return
		}
		tg.Target = uint64(player)
		tg.HasTarget = true
		tg.RawX, tg.RawY = pt.X, pt.Y
		tg.TargetX, tg.TargetY = pt.X, pt.Y
	})
}
