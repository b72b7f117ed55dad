package system

import (
	"github.com/milk9111/tilechase/common"
	"github.com/milk9111/tilechase/ecs"
	"github.com/milk9111/tilechase/ecs/component"
)

// SteeringSystem turns intent and targets into this frame's velocity, then
// derives facing from it.
//
// Pursuers head for their effective target one pixel step per axis scaled
// by speed and attack when the target is within one cell. A pursuer whose
// target is gone keeps last frame's velocity. Everything else with a Mover
// follows its Intent.
type SteeringSystem struct{}

func NewSteeringSystem() *SteeringSystem {
	return &SteeringSystem{}
}

func (s *SteeringSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach3(w, component.MoverComponent.Kind(), component.IntentComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, m *component.Mover, intent *component.Intent, t *component.Transform) {
		tg, pursuing := ecs.Get(w, e, component.TargetingComponent.Kind())
		if !pursuing {
			t.VX = common.Sign(intent.MoveX) * m.Speed
			t.VY = common.Sign(intent.MoveY) * m.Speed
			return
		}
		if !tg.HasTarget || !ecs.IsAlive(w, ecs.Entity(tg.Target)) {
			return
		}
		intent.MoveX = common.Sign(tg.TargetX - t.X)
		intent.MoveY = common.Sign(tg.TargetY - t.Y)
		intent.Attacking = withinReach(w, e, ecs.Entity(tg.Target))
		t.VX = intent.MoveX * m.Speed
		t.VY = intent.MoveY * m.Speed
	})

	ecs.ForEach(w, component.TransformComponent.Kind(), func(_ ecs.Entity, t *component.Transform) {
		if t.VX == 0 && t.VY == 0 {
			return
		}
		t.Facing = FacingFor(t.VX, t.VY)
	})
}

// FacingFor maps a non-zero velocity to one of eight directions.
func FacingFor(vx, vy int) component.Direction {
	switch sx, sy := common.Sign(vx), common.Sign(vy); {
	case sx > 0 && sy > 0:
		return component.DirectionRightDown
	case sx > 0 && sy < 0:
		return component.DirectionRightUp
	case sx < 0 && sy > 0:
		return component.DirectionLeftDown
	case sx < 0 && sy < 0:
		return component.DirectionLeftUp
	case sx > 0:
		return component.DirectionRight
	case sx < 0:
		return component.DirectionLeft
	case sy < 0:
		return component.DirectionUp
	}
	return component.DirectionDown
}

func withinReach(w *ecs.World, e, target ecs.Entity) bool {
	a, ok := ecs.Get(w, e, component.FootprintComponent.Kind())
	if !ok {
		return false
	}
	b, ok := ecs.Get(w, target, component.FootprintComponent.Kind())
	if !ok {
		return false
	}
	return a.Cell.Manhattan(b.Cell) <= 1
}
