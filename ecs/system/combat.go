package system

import (
	"github.com/milk9111/tilechase/ecs"
	"github.com/milk9111/tilechase/ecs/component"
)

// CombatSystem reads this frame's touch events. An armed damage dealer of
// another faction queues its damage on the touched entity and disarms, so a
// swing lands at most once.
type CombatSystem struct{}

func NewCombatSystem() *CombatSystem {
	return &CombatSystem{}
}

func (s *CombatSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	for _, ev := range ecs.Events[component.TouchEvent](w) {
		victim := ecs.Entity(ev.Entity)
		det, ok := ecs.Get(w, victim, component.CollisionDetectorComponent.Kind())
		if !ok {
			continue
		}
		h, ok := ecs.Get(w, victim, component.HealthComponent.Kind())
		if !ok {
			continue
		}
		dd, ok := ecs.Get(w, ecs.Entity(ev.Other), component.DamageDealerComponent.Kind())
		if !ok || !dd.Armed || dd.Faction == det.Faction {
			continue
		}

		h.DamageTaken += dd.DamagePerHit
		dd.Armed = false
		if dd.Stun && !h.Stunned {
			h.Stunned = true
			h.StunRemaining = h.StunFrames
		}
	}
}
