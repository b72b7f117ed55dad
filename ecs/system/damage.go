package system

import (
	"github.com/milk9111/tilechase/ecs"
	"github.com/milk9111/tilechase/ecs/component"
)

// DamageSystem applies queued damage and clamps health at zero.
type DamageSystem struct{}

func NewDamageSystem() *DamageSystem {
	return &DamageSystem{}
}

func (s *DamageSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	ecs.ForEach(w, component.HealthComponent.Kind(), func(_ ecs.Entity, h *component.Health) {
		if h.DamageTaken > 0 {
			h.Current -= h.DamageTaken
			h.DamageTaken = 0
		}
		if h.Current < 0 {
			h.Current = 0
		}
	})
}
