package system

import (
	"github.com/milk9111/tilechase/ecs"
	"github.com/milk9111/tilechase/ecs/component"
)

// StatusSystem holds stunned entities in place until their stun runs out.
type StatusSystem struct{}

func NewStatusSystem() *StatusSystem {
	return &StatusSystem{}
}

func (s *StatusSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	ecs.ForEach2(w, component.HealthComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, h *component.Health, t *component.Transform) {
		if !h.Stunned {
			return
		}
		if h.StunRemaining <= 0 {
			h.Stunned = false
			return
		}
		h.StunRemaining--
		t.VX, t.VY = 0, 0
	})
}
