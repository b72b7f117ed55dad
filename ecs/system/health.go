package system

import (
	"log"

	"github.com/milk9111/tilechase/ecs"
	"github.com/milk9111/tilechase/ecs/component"
)

// HealthSystem destroys entities whose health reached zero together with
// the weapons they own. Weapons left without a live owner go too.
type HealthSystem struct{}

func NewHealthSystem() *HealthSystem {
	return &HealthSystem{}
}

func (s *HealthSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	var dead []ecs.Entity
	ecs.ForEach(w, component.HealthComponent.Kind(), func(e ecs.Entity, h *component.Health) {
		if h.Current <= 0 {
			dead = append(dead, e)
		}
	})
	for _, e := range dead {
		label := ""
		if fp, ok := ecs.Get(w, e, component.FootprintComponent.Kind()); ok {
			label = fp.Label
		}
		ecs.DestroyEntity(w, e)
		log.Printf("health: %s %v destroyed", label, e)
	}

	ecs.ForEach(w, component.WeaponComponent.Kind(), func(e ecs.Entity, wp *component.Weapon) {
		if !ecs.IsAlive(w, ecs.Entity(wp.Owner)) {
			ecs.DestroyEntity(w, e)
		}
	})
}
