package system

import (
	"github.com/milk9111/tilechase/ecs"
	"github.com/milk9111/tilechase/ecs/component"
)

// MovementSystem commits whatever velocity survived collision.
type MovementSystem struct{}

func NewMovementSystem() *MovementSystem {
	return &MovementSystem{}
}

func (s *MovementSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	ecs.ForEach(w, component.TransformComponent.Kind(), func(_ ecs.Entity, t *component.Transform) {
		t.X += t.VX
		t.Y += t.VY
	})
}
